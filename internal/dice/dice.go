package dice

import (
	"math/rand"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// RollResult is the outcome of rolling count dice of one size plus a bonus
type RollResult struct {
	Total    int
	RawTotal int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
}

// Roll rolls count dice with size faces using math/rand and adds bonus
func Roll(count, size, bonus int) (*RollResult, error) {
	if count < 1 || count > MaxDiceCount {
		return nil, dnderr.InvalidArgumentf("invalid dice count %d", count)
	}

	if size < 1 || size > MaxDieSides {
		return nil, dnderr.InvalidArgumentf("invalid dice size %d", size)
	}

	total := 0
	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(size) + 1
		total += roll
		out[i] = roll
	}

	return &RollResult{
		Total:    total + bonus,
		RawTotal: total,
		Rolls:    out,
		Bonus:    bonus,
		Count:    count,
		Sides:    size,
	}, nil
}
