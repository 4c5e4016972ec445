package dice_test

import (
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	"github.com/stretchr/testify/assert"
)

func TestFormula_String(t *testing.T) {
	tests := []struct {
		name    string
		formula *dice.Formula
		want    string
	}{
		{
			name:    "single die",
			formula: dice.NewFormula(dice.Dice{Count: 1, Sides: 8}),
			want:    "1d8",
		},
		{
			name: "flavored terms",
			formula: dice.NewFormula(
				dice.Dice{Count: 1, Sides: 12, Flavor: "Crit"},
				dice.Ref{Path: "dmg", Flavor: "DMG Mod"},
			),
			want: "1d12[Crit] + @dmg[DMG Mod]",
		},
		{
			name: "negative flat renders as subtraction",
			formula: dice.NewFormula(
				dice.Dice{Count: 2, Sides: 6},
				dice.Flat{Value: -2},
			),
			want: "2d6 - 2",
		},
		{
			name: "doubled group",
			formula: dice.NewFormula(dice.Group{
				Multiplier: 2,
				Flavor:     "Kinetic",
				Terms: []dice.Term{
					dice.Raw{Expr: "1d8"},
					dice.Flat{Value: 3, Flavor: "Melee Dmg Effects"},
				},
			}),
			want: "2*(1d8 + 3[Melee Dmg Effects])[Kinetic]",
		},
		{
			name: "multiplier of one is omitted",
			formula: dice.NewFormula(dice.Group{
				Multiplier: 1,
				Terms:      []dice.Term{dice.Flat{Value: 4}},
			}),
			want: "(4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.formula.String())
		})
	}
}

func TestFormula_AddIf(t *testing.T) {
	f := dice.NewFormula(dice.Dice{Count: 1, Sides: 6}).
		AddIf(false, dice.Flat{Value: 1}).
		AddIf(true, dice.Flat{Value: 2}).
		Add(dice.Flat{Value: 3})

	assert.Equal(t, "1d6 + 2 + 3", f.String())
	assert.Len(t, f.Terms, 3)
}

func TestFormula_StringIsStable(t *testing.T) {
	build := func() *dice.Formula {
		return dice.NewFormula(dice.Group{
			Terms: []dice.Term{
				dice.Raw{Expr: "2d4"},
				dice.Dice{Count: 1, Sides: 12, Flavor: "Crit"},
			},
			Flavor: "Kinetic",
		})
	}

	assert.Equal(t, build().String(), build().String())
}
