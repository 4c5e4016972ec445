package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

func TestActor_Accessors(t *testing.T) {
	var nilActor *entities.Actor
	assert.Equal(t, "0d0", nilActor.MeleeDice())
	assert.False(t, nilActor.BadassRollsEnabled())
	assert.Nil(t, nilActor.LevelBonusDamage())
	assert.Nil(t, nilActor.CombatBonus("melee"))

	a := &entities.Actor{
		Type: entities.ActorTypeVaultHunter,
		System: &entities.System{
			Class: &entities.Class{MeleeDice: "1d8"},
			Attributes: &entities.Attributes{
				Badass: &entities.Badass{Rank: 2, RollsEnabled: true},
			},
			Bonus: &entities.Bonus{
				Combat: map[string]*entities.CombatBonus{
					"melee": {Dmg: 3},
				},
			},
			ArchetypeLevelBonusTotals: &entities.LevelBonusTotals{
				BonusDamage: &entities.BonusDamage{PerHit: 2},
			},
		},
	}

	assert.True(t, a.IsVaultHunter())
	assert.False(t, a.IsNPC())
	assert.Equal(t, "1d8", a.MeleeDice())
	assert.True(t, a.BadassRollsEnabled())
	assert.Equal(t, 2, a.LevelBonusDamage().PerHit)
	assert.Equal(t, 3, a.CombatBonus("melee").Dmg)
	assert.Nil(t, a.CombatBonus("shooting"))
}

func TestActorType_Valid(t *testing.T) {
	assert.True(t, entities.ActorTypeVaultHunter.Valid())
	assert.True(t, entities.ActorTypeNPC.Valid())
	assert.False(t, entities.ActorType("character").Valid())
}

func TestWorldSettings_GetSet(t *testing.T) {
	ws := entities.DefaultWorldSettings()

	for _, key := range entities.SettingKeys() {
		require.NoError(t, ws.Set(key, true))
		v, err := ws.Get(key)
		require.NoError(t, err)
		assert.True(t, v, key)
	}

	err := ws.Set("useWings", true)
	assert.True(t, dnderr.IsValidation(err))

	_, err = ws.Get("useWings")
	assert.True(t, dnderr.IsValidation(err))
}
