package actor

import (
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// ThrowCheckPath is where the throw check migration is persisted
const ThrowCheckPath = "system.checks.throw"

// VaultHunter is the player character variant
type VaultHunter struct{}

func (VaultHunter) PrepareBaseData(*entities.Actor) {}

func (VaultHunter) PrepareDerivedData(a *entities.Actor) []Patch {
	patches := migrateDataVersions(a.System)

	rollsEnabled := a.BadassRollsEnabled()
	DeriveStats(a.System, rollsEnabled)
	DeriveChecks(a.System)

	return patches
}

func (VaultHunter) RollData(a *entities.Actor) (map[string]any, error) {
	data, err := systemData(a)
	if err != nil {
		return nil, err
	}

	for _, key := range []string{"abilities", "stats"} {
		flatten(data, data[key])
	}

	// stored documents keep hps under attributes; a top-level hps wins
	hps, ok := data["hps"]
	if !ok {
		if attrs, isMap := data["attributes"].(map[string]any); isMap {
			hps = attrs["hps"]
		}
	}
	flatten(data, hps)

	data["lvl"] = levelOf(a)

	return data, nil
}

// migrateDataVersions brings actors saved by older versions up to the
// current schema. It only writes when a field is missing.
func migrateDataVersions(sys *entities.System) []Patch {
	var patches []Patch

	if sys.Checks == nil {
		sys.Checks = make(map[string]*entities.Check)
	}
	if sys.Checks[entities.CheckThrow] == nil {
		sys.Checks[entities.CheckThrow] = &entities.Check{Stat: entities.StatAccuracy}
		patches = append(patches, Patch{
			Path:  ThrowCheckPath,
			Value: entities.Check{Stat: entities.StatAccuracy},
		})
	}

	return patches
}

// DeriveStats recomputes value, mod and modToUse for every stat.
//
//	value = archetype base + class base + misc + effect value + level-up bonus
//	mod   = floor(value/2) + modBonus + effect mod
func DeriveStats(sys *entities.System, badassRolls bool) {
	var archetypeBase, classBase, levelUp map[string]int
	if sys.Archetypes != nil && sys.Archetypes.Archetype1 != nil {
		archetypeBase = sys.Archetypes.Archetype1.BaseStats
	}
	if sys.Class != nil {
		classBase = sys.Class.BaseStats
	}
	if sys.ArchetypeLevelBonusTotals != nil {
		levelUp = sys.ArchetypeLevelBonusTotals.Stats
	}

	for key, stat := range sys.Stats {
		if stat == nil {
			stat = &entities.Stat{}
			sys.Stats[key] = stat
		}

		effects := entities.StatEffects{}
		if sys.Bonus != nil && sys.Bonus.Stats[key] != nil {
			effects = *sys.Bonus.Stats[key]
		}
		stat.Effects = &effects

		stat.Value = archetypeBase[key] + classBase[key] + stat.Misc + effects.Value + levelUp[key]
		stat.Mod = floorHalf(stat.Value) + stat.ModBonus + effects.Mod
		if badassRolls {
			stat.ModToUse = stat.Value
		} else {
			stat.ModToUse = stat.Mod
		}
	}
}

// DeriveChecks recomputes value, effects and total for every check. Stats
// must already be derived.
func DeriveChecks(sys *entities.System) {
	badassRank := 0
	if sys.Attributes != nil && sys.Attributes.Badass != nil {
		badassRank = sys.Attributes.Badass.Rank
	}

	for name, check := range sys.Checks {
		if check == nil {
			continue
		}

		check.Value = 0
		if stat := sys.Stats[check.Stat]; stat != nil {
			check.Value = stat.ModToUse
		}

		check.Effects = checkEffects(sys.Bonus, name)

		check.Total = check.Base + check.Value + check.Misc + check.Effects
		if check.UsesBadassRank {
			check.Total += badassRank
		}
	}
}

// checkEffects prefers a direct check bonus. Otherwise a combat category
// contributes its accuracy plus the general attack accuracy.
func checkEffects(bonus *entities.Bonus, check string) int {
	if bonus == nil {
		return 0
	}
	if v, ok := bonus.Checks[check]; ok {
		return v
	}
	if combat := bonus.Combat[check]; combat != nil {
		effects := combat.Acc
		if attack := bonus.Combat[entities.CombatAttack]; attack != nil {
			effects += attack.Acc
		}
		return effects
	}
	return 0
}

func floorHalf(v int) int {
	if v < 0 && v%2 != 0 {
		return v/2 - 1
	}
	return v / 2
}

func levelOf(a *entities.Actor) int {
	if a.System == nil || a.System.Attributes == nil || a.System.Attributes.Level == nil {
		return 0
	}
	return a.System.Attributes.Level.Value
}
