package dice

// Roller rolls dice for the formula evaluator. Tests use
// mockdice.ManualMockRoller to script results.
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}
