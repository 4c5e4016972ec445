package actor_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	mockdice "github.com/KirkDiggler/bnb-bot-discord/internal/dice/mock"
	"github.com/KirkDiggler/bnb-bot-discord/internal/domain/actor"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollData_VaultHunterFlattens(t *testing.T) {
	a := newVaultHunter()
	a.System.Abilities = map[string]any{
		"deathBlossom": map[string]any{"uses": 2},
	}
	_, err := actor.Prepare(a)
	require.NoError(t, err)

	data, err := actor.RollData(a)
	require.NoError(t, err)

	stats, ok := data["stats"].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, stats["acc"], data["acc"])
	assert.Equal(t, float64(8), data["acc"].(map[string]any)["value"])
	assert.Equal(t, map[string]any{"uses": float64(2)}, data["deathBlossom"])
	assert.Equal(t, map[string]any{"value": float64(20), "max": float64(20)}, data["flesh"])
	assert.Equal(t, 3, data["lvl"])

	t.Run("flattened entries are independent copies", func(t *testing.T) {
		data["acc"].(map[string]any)["value"] = float64(100)
		assert.Equal(t, float64(8), stats["acc"].(map[string]any)["value"])
		assert.Equal(t, 8, a.System.Stats["acc"].Value)
	})
}

func TestRollData_LevelDefaultsToZero(t *testing.T) {
	a := newVaultHunter()
	a.System.Attributes.Level = nil

	data, err := actor.RollData(a)
	require.NoError(t, err)
	assert.Equal(t, 0, data["lvl"])
}

func TestRollData_NPCIsNotFlattened(t *testing.T) {
	a := newVaultHunter()
	a.Type = entities.ActorTypeNPC

	data, err := actor.RollData(a)
	require.NoError(t, err)

	assert.Contains(t, data, "stats")
	assert.NotContains(t, data, "acc")
	assert.NotContains(t, data, "lvl")
}

func TestDamageRollData_BindsModToUse(t *testing.T) {
	a := newVaultHunter()
	_, err := actor.Prepare(a)
	require.NoError(t, err)

	data, err := actor.DamageRollData(a)
	require.NoError(t, err)

	assert.Equal(t, 6, data["dmg"])
	assert.Equal(t, 4, data["acc"])
	assert.Contains(t, data, "stats")

	a.System.Attributes.Badass.RollsEnabled = true
	_, err = actor.Prepare(a)
	require.NoError(t, err)

	data, err = actor.DamageRollData(a)
	require.NoError(t, err)
	assert.Equal(t, 8, data["acc"])
}

func TestDamageRollData_NoStats(t *testing.T) {
	a := newVaultHunter()
	a.Type = entities.ActorTypeNPC
	a.System.Stats = nil

	data, err := actor.DamageRollData(a)
	require.NoError(t, err)
	assert.Equal(t, 0, data["dmg"])
}

func TestRollData_StatSubPathsResolve(t *testing.T) {
	a := newVaultHunter()
	_, err := actor.Prepare(a)
	require.NoError(t, err)

	data, err := actor.RollData(a)
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	ev := dice.NewEvaluator(&dice.EvaluatorConfig{Roller: roller})

	res, err := ev.Evaluate(context.Background(), "@acc.mod + 4", data)
	require.NoError(t, err)
	assert.Equal(t, a.System.Stats["acc"].Mod+4, res.Total)
	assert.Equal(t, "4 + 4", res.Formula)

	res, err = ev.Evaluate(context.Background(), "@dmg.modToUse + @lvl", data)
	require.NoError(t, err)
	assert.Equal(t, a.System.Stats["dmg"].ModToUse+3, res.Total)

	_, err = ev.Evaluate(context.Background(), "@acc", data)
	assert.True(t, dnderr.IsInvalidArgument(err))
}
