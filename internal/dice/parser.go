package dice

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Limits for a single dice term such as 100d1000
const (
	MaxDiceCount = 100
	MaxDieSides  = 1000
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokDice
	tokRef
	tokPlus
	tokMinus
	tokStar
	tokLParen
	tokRParen
	tokFlavor
)

type token struct {
	kind  tokenKind
	num   int
	count int
	sides int
	text  string
	pos   int
}

func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	i := 0

	readInt := func() (int, error) {
		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		n, err := strconv.Atoi(string(runes[start:i]))
		if err != nil {
			return 0, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
				fmt.Sprintf("number out of range at position %d", start))
		}
		return n, nil
	}

	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || ((r == 'd' || r == 'D') && i+1 < len(runes) && unicode.IsDigit(runes[i+1])):
			pos := i
			count := 1
			if unicode.IsDigit(r) {
				n, err := readInt()
				if err != nil {
					return nil, err
				}
				count = n
			}
			if i < len(runes) && (runes[i] == 'd' || runes[i] == 'D') {
				i++
				if i >= len(runes) || !unicode.IsDigit(runes[i]) {
					return nil, dnderr.InvalidArgumentf("missing die size at position %d", pos)
				}
				sides, err := readInt()
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, token{kind: tokDice, count: count, sides: sides, pos: pos})
				continue
			}
			tokens = append(tokens, token{kind: tokNumber, num: count, pos: pos})
		case r == '@':
			pos := i
			i++
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_' || runes[i] == '.') {
				i++
			}
			if start == i {
				return nil, dnderr.InvalidArgumentf("empty reference at position %d", pos)
			}
			path := strings.TrimSuffix(string(runes[start:i]), ".")
			tokens = append(tokens, token{kind: tokRef, text: path, pos: pos})
		case r == '[':
			pos := i
			end := i + 1
			for end < len(runes) && runes[end] != ']' {
				end++
			}
			if end >= len(runes) {
				return nil, dnderr.InvalidArgumentf("unterminated flavor tag at position %d", pos)
			}
			tokens = append(tokens, token{kind: tokFlavor, text: string(runes[i+1 : end]), pos: pos})
			i = end + 1
		case r == '+':
			tokens = append(tokens, token{kind: tokPlus, pos: i})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokMinus, pos: i})
			i++
		case r == '*':
			tokens = append(tokens, token{kind: tokStar, pos: i})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen, pos: i})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen, pos: i})
			i++
		default:
			return nil, dnderr.InvalidArgumentf("unexpected %q at position %d", r, i)
		}
	}

	return append(tokens, token{kind: tokEOF, pos: len(runes)}), nil
}

// Expression is a parsed roll formula
type Expression struct {
	raw  string
	root node
}

// Raw returns the formula text the expression was parsed from
func (e *Expression) Raw() string {
	return e.raw
}

// Parse parses a roll formula such as "2*(1d8 + @dmg[DMG Mod] + 3)[Kinetic]".
// Supported: integers, NdM dice, @path references, + - *, parentheses and
// [flavor] tags after any operand.
func Parse(formula string) (*Expression, error) {
	if strings.TrimSpace(formula) == "" {
		return nil, dnderr.InvalidArgument("formula is empty")
	}

	tokens, err := lex(formula)
	if err != nil {
		return nil, dnderr.Wrapf(err, "invalid formula %q", formula)
	}

	p := &parser{tokens: tokens}
	root, err := p.parseSum()
	if err != nil {
		return nil, dnderr.Wrapf(err, "invalid formula %q", formula)
	}
	if p.peek().kind != tokEOF {
		return nil, dnderr.InvalidArgumentf("invalid formula %q: unexpected input at position %d", formula, p.peek().pos)
	}

	return &Expression{raw: formula, root: root}, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) parseSum() (node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().kind {
		case tokPlus, tokMinus:
			op := p.next()
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			sym := byte('+')
			if op.kind == tokMinus {
				sym = '-'
			}
			left = &binaryNode{op: sym, left: left, right: right}
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.peek().kind == tokStar {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: '*', left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &negNode{inner: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.next()

	var n node
	switch t.kind {
	case tokNumber:
		n = &numNode{value: t.num}
	case tokDice:
		if t.count > 0 && t.sides < 1 {
			return nil, dnderr.InvalidArgumentf("invalid die size d%d at position %d", t.sides, t.pos)
		}
		if t.count > MaxDiceCount {
			return nil, dnderr.InvalidArgumentf("cannot roll more than %d dice at position %d", MaxDiceCount, t.pos)
		}
		if t.sides > MaxDieSides {
			return nil, dnderr.InvalidArgumentf("dice cannot have more than %d sides at position %d", MaxDieSides, t.pos)
		}
		n = &diceNode{count: t.count, sides: t.sides}
	case tokRef:
		n = &refNode{path: t.text}
	case tokLParen:
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.next().kind != tokRParen {
			return nil, dnderr.InvalidArgumentf("missing closing parenthesis for position %d", t.pos)
		}
		n = &groupNode{inner: inner}
	case tokEOF:
		return nil, dnderr.InvalidArgument("unexpected end of formula")
	default:
		return nil, dnderr.InvalidArgumentf("unexpected token at position %d", t.pos)
	}

	if p.peek().kind == tokFlavor {
		setFlavor(n, p.next().text)
	}
	return n, nil
}

func setFlavor(n node, flavor string) {
	switch v := n.(type) {
	case *numNode:
		v.flavor = flavor
	case *diceNode:
		v.flavor = flavor
	case *refNode:
		v.flavor = flavor
	case *groupNode:
		v.flavor = flavor
	}
}
