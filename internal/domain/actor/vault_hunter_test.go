package actor_test

import (
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/domain/actor"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultHunter() *entities.Actor {
	return &entities.Actor{
		ID:   "vh-1",
		Name: "Zer0",
		Type: entities.ActorTypeVaultHunter,
		System: &entities.System{
			Stats: map[string]*entities.Stat{
				entities.StatAccuracy: {Misc: 1},
				entities.StatDamage:   {ModBonus: 1},
				entities.StatSpeed:    {},
				entities.StatMastery:  {},
			},
			Checks: map[string]*entities.Check{
				entities.CheckMelee:    {Stat: entities.StatDamage},
				entities.CheckShooting: {Stat: entities.StatAccuracy},
				entities.CheckThrow:    {Stat: entities.StatAccuracy},
				"sneak":                {Stat: entities.StatSpeed, Misc: 2},
				"initiative":           {Stat: entities.StatSpeed, UsesBadassRank: true, Base: 1},
			},
			Archetypes: &entities.Archetypes{
				Archetype1: &entities.Archetype{
					Name:      "Sniper",
					BaseStats: map[string]int{"acc": 4, "dmg": 2, "spd": 3, "mst": 1},
				},
			},
			Class: &entities.Class{
				Name:      "Assassin",
				BaseStats: map[string]int{"acc": 2, "dmg": 3, "spd": 1, "mst": 2},
				MeleeDice: "1d8",
			},
			Attributes: &entities.Attributes{
				Level:  &entities.Level{Value: 3},
				Badass: &entities.Badass{Rank: 4},
				Hps: map[string]*entities.HP{
					"flesh":  {Value: 20, Max: 20},
					"shield": {Value: 10, Max: 15},
				},
			},
			Bonus: &entities.Bonus{
				Stats: map[string]*entities.StatEffects{
					entities.StatDamage: {Value: 1, Mod: 2},
				},
				Checks: map[string]int{"sneak": 3},
				Combat: map[string]*entities.CombatBonus{
					entities.CheckShooting: {Acc: 2},
					entities.CombatAttack:  {Acc: 1, Dmg: 2},
				},
			},
			ArchetypeLevelBonusTotals: &entities.LevelBonusTotals{
				Stats: map[string]int{"acc": 1},
			},
		},
	}
}

func TestPrepare_VaultHunterStats(t *testing.T) {
	a := newVaultHunter()

	_, err := actor.Prepare(a)
	require.NoError(t, err)

	stats := a.System.Stats

	// acc: 4 + 2 + 1 misc + 0 effects + 1 level-up
	assert.Equal(t, 8, stats["acc"].Value)
	assert.Equal(t, 4, stats["acc"].Mod)
	assert.Equal(t, 4, stats["acc"].ModToUse)

	// dmg: 2 + 3 + 0 + 1 effect value; mod 3 + 1 modBonus + 2 effect mod
	assert.Equal(t, 6, stats["dmg"].Value)
	assert.Equal(t, 6, stats["dmg"].Mod)
	assert.Equal(t, entities.StatEffects{Value: 1, Mod: 2}, *stats["dmg"].Effects)

	assert.Equal(t, 4, stats["spd"].Value)
	assert.Equal(t, 2, stats["spd"].Mod)
	assert.Equal(t, entities.StatEffects{}, *stats["spd"].Effects)
}

func TestPrepare_BadassRollsUseStatValue(t *testing.T) {
	a := newVaultHunter()
	a.System.Attributes.Badass.RollsEnabled = true

	_, err := actor.Prepare(a)
	require.NoError(t, err)

	for key, stat := range a.System.Stats {
		assert.Equal(t, stat.Value, stat.ModToUse, key)
	}
	assert.Equal(t, 8, a.System.Checks[entities.CheckShooting].Value)
}

func TestPrepare_VaultHunterChecks(t *testing.T) {
	a := newVaultHunter()

	_, err := actor.Prepare(a)
	require.NoError(t, err)

	checks := a.System.Checks

	t.Run("combat category adds general attack accuracy", func(t *testing.T) {
		shooting := checks[entities.CheckShooting]
		assert.Equal(t, 4, shooting.Value)
		assert.Equal(t, 3, shooting.Effects)
		assert.Equal(t, 7, shooting.Total)
	})

	t.Run("no bonus means zero effects", func(t *testing.T) {
		melee := checks[entities.CheckMelee]
		assert.Equal(t, 6, melee.Value)
		assert.Equal(t, 0, melee.Effects)
		assert.Equal(t, 6, melee.Total)
	})

	t.Run("direct check bonus", func(t *testing.T) {
		sneak := checks["sneak"]
		assert.Equal(t, 2, sneak.Value)
		assert.Equal(t, 3, sneak.Effects)
		assert.Equal(t, 7, sneak.Total)
	})

	t.Run("badass rank and base", func(t *testing.T) {
		initiative := checks["initiative"]
		assert.Equal(t, 4+1+2, initiative.Total)
	})
}

func TestPrepare_DirectCheckBonusWinsOverCombat(t *testing.T) {
	a := newVaultHunter()
	a.System.Bonus.Checks[entities.CheckShooting] = 0

	_, err := actor.Prepare(a)
	require.NoError(t, err)

	assert.Equal(t, 0, a.System.Checks[entities.CheckShooting].Effects)
}

func TestPrepare_RecomputesFromSource(t *testing.T) {
	a := newVaultHunter()

	_, err := actor.Prepare(a)
	require.NoError(t, err)
	first := a.System.Stats["acc"].Value

	a.System.Stats["acc"].Value = 99
	a.System.Checks[entities.CheckMelee].Total = 99

	_, err = actor.Prepare(a)
	require.NoError(t, err)

	assert.Equal(t, first, a.System.Stats["acc"].Value)
	assert.Equal(t, 6, a.System.Checks[entities.CheckMelee].Total)
}

func TestPrepare_NegativeValueFloorsMod(t *testing.T) {
	a := newVaultHunter()
	a.System.Stats["mst"].Misc = -6

	_, err := actor.Prepare(a)
	require.NoError(t, err)

	assert.Equal(t, -3, a.System.Stats["mst"].Value)
	assert.Equal(t, -2, a.System.Stats["mst"].Mod)
}

func TestPrepare_MissingSections(t *testing.T) {
	a := &entities.Actor{
		Type: entities.ActorTypeVaultHunter,
		System: &entities.System{
			Stats:  map[string]*entities.Stat{"acc": {Misc: 3}},
			Checks: map[string]*entities.Check{"search": {Stat: "mst", Misc: 1}},
		},
	}

	patches, err := actor.Prepare(a)
	require.NoError(t, err)
	require.Len(t, patches, 1)

	assert.Equal(t, 3, a.System.Stats["acc"].Value)
	assert.Equal(t, 1, a.System.Stats["acc"].Mod)
	assert.Equal(t, 1, a.System.Checks["search"].Total)
}

func TestPrepare_ThrowMigration(t *testing.T) {
	a := newVaultHunter()
	delete(a.System.Checks, entities.CheckThrow)

	patches, err := actor.Prepare(a)
	require.NoError(t, err)

	require.Len(t, patches, 1)
	assert.Equal(t, actor.ThrowCheckPath, patches[0].Path)
	assert.Equal(t, entities.Check{Stat: entities.StatAccuracy}, patches[0].Value)

	throw := a.System.Checks[entities.CheckThrow]
	require.NotNil(t, throw)
	assert.Equal(t, entities.StatAccuracy, throw.Stat)
	assert.Equal(t, 4, throw.Value)

	patches, err = actor.Prepare(a)
	require.NoError(t, err)
	assert.Empty(t, patches)
	assert.Equal(t, 4, a.System.Checks[entities.CheckThrow].Total)
}

func TestPrepare_NPCIsUntouched(t *testing.T) {
	a := newVaultHunter()
	a.Type = entities.ActorTypeNPC
	delete(a.System.Checks, entities.CheckThrow)

	patches, err := actor.Prepare(a)
	require.NoError(t, err)

	assert.Empty(t, patches)
	assert.Nil(t, a.System.Checks[entities.CheckThrow])
	assert.Equal(t, 0, a.System.Stats["acc"].Value)
}

func TestPrepare_Errors(t *testing.T) {
	_, err := actor.Prepare(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = actor.Prepare(&entities.Actor{Type: "loot"})
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestVariantFor(t *testing.T) {
	v, err := actor.VariantFor(entities.ActorTypeVaultHunter)
	require.NoError(t, err)
	assert.IsType(t, actor.VaultHunter{}, v)

	v, err = actor.VariantFor(entities.ActorTypeNPC)
	require.NoError(t, err)
	assert.IsType(t, actor.NPC{}, v)

	_, err = actor.VariantFor("vehicle")
	assert.Error(t, err)
}
