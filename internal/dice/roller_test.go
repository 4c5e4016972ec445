package dice_test

import (
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	mockdice "github.com/KirkDiggler/bnb-bot-discord/internal/dice/mock"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "natural 20",
			setupRolls: []int{20},
			count:      1,
			sides:      20,
			bonus:      5,
			wantTotal:  25,
			wantRolls:  []int{20},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{10},
			count:      2,
			sides:      6,
			wantErr:    true,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller()
			roller.SetRolls(tt.setupRolls)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
		})
	}
}

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 200; i++ {
		result, err := roller.Roll(3, 12, 2)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 3)
		for _, r := range result.Rolls {
			assert.GreaterOrEqual(t, r, 1)
			assert.LessOrEqual(t, r, 12)
		}
		assert.Equal(t, result.RawTotal+2, result.Total)
	}

	_, err := roller.Roll(0, 6, 0)
	assert.Error(t, err)
	_, err = roller.Roll(1, 0, 0)
	assert.Error(t, err)
	_, err = roller.Roll(dice.MaxDiceCount+1, 6, 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
	_, err = roller.Roll(1, dice.MaxDieSides+1, 0)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
