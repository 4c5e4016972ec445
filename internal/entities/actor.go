package entities

import "time"

type ActorType string

const (
	ActorTypeVaultHunter ActorType = "vault hunter"
	ActorTypeNPC         ActorType = "npc"
)

// Valid reports whether t is one of the known actor types
func (t ActorType) Valid() bool {
	return t == ActorTypeVaultHunter || t == ActorTypeNPC
}

// Actor is a character sheet record. System holds the game data; derived
// fields inside it are rebuilt on every preparation pass.
type Actor struct {
	ID             string          `json:"id" yaml:"id"`
	OwnerID        string          `json:"ownerId" yaml:"ownerId"`
	RealmID        string          `json:"realmId" yaml:"realmId"`
	Name           string          `json:"name" yaml:"name"`
	Type           ActorType       `json:"type" yaml:"type"`
	System         *System         `json:"system" yaml:"system"`
	Flags          map[string]any  `json:"flags,omitempty" yaml:"flags,omitempty"`
	PrototypeToken *PrototypeToken `json:"prototypeToken,omitempty" yaml:"prototypeToken,omitempty"`
	CreatedAt      time.Time       `json:"createdAt" yaml:"-"`
	UpdatedAt      time.Time       `json:"updatedAt" yaml:"-"`
}

func (a *Actor) IsVaultHunter() bool {
	return a != nil && a.Type == ActorTypeVaultHunter
}

func (a *Actor) IsNPC() bool {
	return a != nil && a.Type == ActorTypeNPC
}

// MeleeDice returns the class melee dice expression, or "0d0" when the
// actor has no class configured.
func (a *Actor) MeleeDice() string {
	if a == nil || a.System == nil || a.System.Class == nil || a.System.Class.MeleeDice == "" {
		return "0d0"
	}
	return a.System.Class.MeleeDice
}

// BadassRollsEnabled reports whether raw stat values drive rolls instead of mods
func (a *Actor) BadassRollsEnabled() bool {
	if a == nil || a.System == nil || a.System.Attributes == nil || a.System.Attributes.Badass == nil {
		return false
	}
	return a.System.Attributes.Badass.RollsEnabled
}

// LevelBonusDamage returns the archetype level-up damage totals, or nil
func (a *Actor) LevelBonusDamage() *BonusDamage {
	if a == nil || a.System == nil || a.System.ArchetypeLevelBonusTotals == nil {
		return nil
	}
	return a.System.ArchetypeLevelBonusTotals.BonusDamage
}

// CombatBonus returns the combat effect bonus for a category, or nil
func (a *Actor) CombatBonus(category string) *CombatBonus {
	if a == nil || a.System == nil || a.System.Bonus == nil {
		return nil
	}
	return a.System.Bonus.Combat[category]
}
