package dice

import (
	"strconv"
	"strings"
)

// Term is one piece of a roll formula. Terms render to the bracket-tagged
// formula syntax understood by Evaluator.
type Term interface {
	render(b *strings.Builder)
}

// Dice is an NdM term
type Dice struct {
	Count  int
	Sides  int
	Flavor string
}

// Flat is a constant modifier
type Flat struct {
	Value  int
	Flavor string
}

// Ref is an @path reference resolved from roll data at evaluation time
type Ref struct {
	Path   string
	Flavor string
}

// Raw is an expression kept verbatim, such as a class melee dice string
type Raw struct {
	Expr   string
	Flavor string
}

// Group wraps terms in parentheses. Multiplier values above 1 are rendered
// as a leading N*.
type Group struct {
	Terms      []Term
	Multiplier int
	Flavor     string
}

// Formula is an ordered sum of terms
type Formula struct {
	Terms []Term
}

// NewFormula starts a formula with the given terms
func NewFormula(terms ...Term) *Formula {
	return &Formula{Terms: terms}
}

// Add appends a term and returns the formula for chaining
func (f *Formula) Add(t Term) *Formula {
	f.Terms = append(f.Terms, t)
	return f
}

// AddIf appends t only when cond holds
func (f *Formula) AddIf(cond bool, t Term) *Formula {
	if cond {
		f.Terms = append(f.Terms, t)
	}
	return f
}

func (f *Formula) String() string {
	var b strings.Builder
	renderSum(&b, f.Terms)
	return b.String()
}

func renderSum(b *strings.Builder, terms []Term) {
	for i, t := range terms {
		if i > 0 {
			if flat, ok := t.(Flat); ok && flat.Value < 0 {
				b.WriteString(" - ")
				Flat{Value: -flat.Value, Flavor: flat.Flavor}.render(b)
				continue
			}
			b.WriteString(" + ")
		}
		t.render(b)
	}
}

func writeFlavor(b *strings.Builder, flavor string) {
	if flavor == "" {
		return
	}
	b.WriteByte('[')
	b.WriteString(flavor)
	b.WriteByte(']')
}

func (d Dice) render(b *strings.Builder) {
	b.WriteString(strconv.Itoa(d.Count))
	b.WriteByte('d')
	b.WriteString(strconv.Itoa(d.Sides))
	writeFlavor(b, d.Flavor)
}

func (f Flat) render(b *strings.Builder) {
	b.WriteString(strconv.Itoa(f.Value))
	writeFlavor(b, f.Flavor)
}

func (r Ref) render(b *strings.Builder) {
	b.WriteByte('@')
	b.WriteString(r.Path)
	writeFlavor(b, r.Flavor)
}

func (r Raw) render(b *strings.Builder) {
	b.WriteString(r.Expr)
	writeFlavor(b, r.Flavor)
}

func (g Group) render(b *strings.Builder) {
	if g.Multiplier > 1 {
		b.WriteString(strconv.Itoa(g.Multiplier))
		b.WriteByte('*')
	}
	b.WriteByte('(')
	renderSum(b, g.Terms)
	b.WriteByte(')')
	writeFlavor(b, g.Flavor)
}
