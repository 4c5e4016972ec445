package testutils

import (
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// CreateTestVaultHunter creates a vault hunter with a sniper archetype, an
// assassin class and a few check and combat bonuses
func CreateTestVaultHunter(id, realmID, name string) *entities.Actor {
	return &entities.Actor{
		ID:      id,
		OwnerID: "owner-" + id,
		RealmID: realmID,
		Name:    name,
		Type:    entities.ActorTypeVaultHunter,
		System: &entities.System{
			Stats: map[string]*entities.Stat{
				entities.StatAccuracy: {Misc: 1},
				entities.StatDamage:   {},
				entities.StatSpeed:    {},
				entities.StatMastery:  {},
			},
			Checks: map[string]*entities.Check{
				entities.CheckMelee:    {Stat: entities.StatDamage},
				entities.CheckShooting: {Stat: entities.StatAccuracy},
				"sneak":                {Stat: entities.StatSpeed},
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
				Level:  &entities.Level{Value: 2},
				Badass: &entities.Badass{Rank: 1},
				Hps: map[string]*entities.HP{
					"flesh":  {Value: 20, Max: 20},
					"shield": {Value: 10, Max: 10},
				},
			},
		},
	}
}

// CreateTestNPC creates a bare NPC actor
func CreateTestNPC(id, realmID, name string) *entities.Actor {
	return &entities.Actor{
		ID:      id,
		OwnerID: "gm",
		RealmID: realmID,
		Name:    name,
		Type:    entities.ActorTypeNPC,
		System: &entities.System{
			Stats:  map[string]*entities.Stat{},
			Checks: map[string]*entities.Check{},
		},
	}
}
