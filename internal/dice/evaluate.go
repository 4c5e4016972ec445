package dice

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// DieRoll records the outcome of one dice term in a formula
type DieRoll struct {
	Count   int
	Sides   int
	Flavor  string
	Results []int
	Total   int
}

// Notation returns the NdM form of the term
func (d DieRoll) Notation() string {
	return strconv.Itoa(d.Count) + "d" + strconv.Itoa(d.Sides)
}

// Result is an evaluated formula
type Result struct {
	// Formula is the canonical formula with references replaced by values
	Formula string
	Total   int
	Dice    []DieRoll
}

// Evaluator rolls formulas against a roll data context
type Evaluator struct {
	roller Roller
	logger *zap.Logger
}

type EvaluatorConfig struct {
	Roller Roller
	Logger *zap.Logger
}

// NewEvaluator creates a formula evaluator
func NewEvaluator(cfg *EvaluatorConfig) *Evaluator {
	if cfg == nil {
		panic("evaluator config is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Evaluator{
		roller: cfg.Roller,
		logger: logger,
	}
}

// Evaluate parses and rolls formula. References like @dmg or @acc.mod
// resolve against data and must name a number.
func (e *Evaluator) Evaluate(ctx context.Context, formula string, data map[string]any) (*Result, error) {
	expr, err := Parse(formula)
	if err != nil {
		return nil, err
	}
	return e.EvaluateExpression(ctx, expr, data)
}

// EvaluateExpression rolls an already parsed expression
func (e *Evaluator) EvaluateExpression(ctx context.Context, expr *Expression, data map[string]any) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := []byte("{}")
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, dnderr.Wrap(err, "failed to encode roll data")
		}
		doc = b
	}

	st := &evalState{roller: e.roller, doc: doc}
	total, err := expr.root.eval(st)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to evaluate %q", expr.raw)
	}

	var b strings.Builder
	expr.root.render(&b)

	e.logger.Debug("evaluated formula",
		zap.String("formula", expr.raw),
		zap.String("resolved", b.String()),
		zap.Int("total", total),
	)

	return &Result{
		Formula: b.String(),
		Total:   total,
		Dice:    st.dice,
	}, nil
}

type evalState struct {
	roller Roller
	doc    []byte
	dice   []DieRoll
}

func (s *evalState) resolve(path string) (int, error) {
	res := gjson.GetBytes(s.doc, path)
	if !res.Exists() {
		return 0, dnderr.InvalidArgumentf("unknown reference @%s", path)
	}

	switch res.Type {
	case gjson.Number:
		return int(res.Int()), nil
	case gjson.True:
		return 1, nil
	case gjson.False, gjson.Null:
		return 0, nil
	case gjson.String:
		n, err := strconv.Atoi(strings.TrimSpace(res.Str))
		if err != nil {
			return 0, dnderr.InvalidArgumentf("reference @%s is not numeric", path)
		}
		return n, nil
	default:
		return 0, dnderr.InvalidArgumentf("reference @%s is not numeric", path)
	}
}

type node interface {
	eval(s *evalState) (int, error)
	render(b *strings.Builder)
}

type numNode struct {
	value  int
	flavor string
}

func (n *numNode) eval(*evalState) (int, error) {
	return n.value, nil
}

func (n *numNode) render(b *strings.Builder) {
	b.WriteString(strconv.Itoa(n.value))
	writeFlavor(b, n.flavor)
}

type diceNode struct {
	count  int
	sides  int
	flavor string
}

func (n *diceNode) eval(s *evalState) (int, error) {
	roll := DieRoll{Count: n.count, Sides: n.sides, Flavor: n.flavor}
	if n.count > 0 {
		res, err := s.roller.Roll(n.count, n.sides, 0)
		if err != nil {
			return 0, dnderr.Wrapf(err, "failed to roll %dd%d", n.count, n.sides)
		}
		roll.Results = res.Rolls
		roll.Total = res.Total
	}
	s.dice = append(s.dice, roll)
	return roll.Total, nil
}

func (n *diceNode) render(b *strings.Builder) {
	b.WriteString(strconv.Itoa(n.count))
	b.WriteByte('d')
	b.WriteString(strconv.Itoa(n.sides))
	writeFlavor(b, n.flavor)
}

type refNode struct {
	path     string
	flavor   string
	value    int
	resolved bool
}

func (n *refNode) eval(s *evalState) (int, error) {
	v, err := s.resolve(n.path)
	if err != nil {
		return 0, err
	}
	n.value = v
	n.resolved = true
	return v, nil
}

func (n *refNode) render(b *strings.Builder) {
	if n.resolved {
		b.WriteString(strconv.Itoa(n.value))
	} else {
		b.WriteByte('@')
		b.WriteString(n.path)
	}
	writeFlavor(b, n.flavor)
}

type groupNode struct {
	inner  node
	flavor string
}

func (n *groupNode) eval(s *evalState) (int, error) {
	return n.inner.eval(s)
}

func (n *groupNode) render(b *strings.Builder) {
	b.WriteByte('(')
	n.inner.render(b)
	b.WriteByte(')')
	writeFlavor(b, n.flavor)
}

type negNode struct {
	inner node
}

func (n *negNode) eval(s *evalState) (int, error) {
	v, err := n.inner.eval(s)
	return -v, err
}

func (n *negNode) render(b *strings.Builder) {
	b.WriteByte('-')
	n.inner.render(b)
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n *binaryNode) eval(s *evalState) (int, error) {
	l, err := n.left.eval(s)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(s)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	default:
		return 0, dnderr.Internalf("unknown operator %q", n.op)
	}
}

func (n *binaryNode) render(b *strings.Builder) {
	n.left.render(b)
	if n.op == '*' {
		b.WriteByte('*')
	} else {
		b.WriteByte(' ')
		b.WriteByte(n.op)
		b.WriteByte(' ')
	}
	n.right.render(b)
}
