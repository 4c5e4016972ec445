package entities

// Stat keys used by the default schema
const (
	StatAccuracy = "acc"
	StatDamage   = "dmg"
	StatSpeed    = "spd"
	StatMastery  = "mst"
)

// Check and combat bonus keys with special handling
const (
	CheckThrow    = "throw"
	CheckMelee    = "melee"
	CheckShooting = "shooting"
	CombatAttack  = "attack"
)

// System is the game-specific payload of an actor
type System struct {
	Stats                     map[string]*Stat  `json:"stats" yaml:"stats"`
	Checks                    map[string]*Check `json:"checks" yaml:"checks"`
	Archetypes                *Archetypes       `json:"archetypes,omitempty" yaml:"archetypes,omitempty"`
	Class                     *Class            `json:"class,omitempty" yaml:"class,omitempty"`
	Attributes                *Attributes       `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Bonus                     *Bonus            `json:"bonus,omitempty" yaml:"bonus,omitempty"`
	ArchetypeLevelBonusTotals *LevelBonusTotals `json:"archetypeLevelBonusTotals,omitempty" yaml:"archetypeLevelBonusTotals,omitempty"`
	Abilities                 map[string]any    `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

// Stat is a primary attribute. Value, Mod and ModToUse are derived.
type Stat struct {
	Value    int          `json:"value" yaml:"value"`
	Mod      int          `json:"mod" yaml:"mod"`
	ModToUse int          `json:"modToUse" yaml:"modToUse"`
	Misc     int          `json:"misc" yaml:"misc"`
	ModBonus int          `json:"modBonus,omitempty" yaml:"modBonus,omitempty"`
	Effects  *StatEffects `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// StatEffects are active-effect contributions to a stat
type StatEffects struct {
	Value int `json:"value" yaml:"value"`
	Mod   int `json:"mod" yaml:"mod"`
}

// Check is a roll category derived from a stat. Value, Effects and Total
// are derived.
type Check struct {
	Stat           string `json:"stat" yaml:"stat"`
	Value          int    `json:"value" yaml:"value"`
	Misc           int    `json:"misc" yaml:"misc"`
	Effects        int    `json:"effects" yaml:"effects"`
	Total          int    `json:"total" yaml:"total"`
	UsesBadassRank bool   `json:"usesBadassRank,omitempty" yaml:"usesBadassRank,omitempty"`
	Base           int    `json:"base,omitempty" yaml:"base,omitempty"`
}

type Archetypes struct {
	Archetype1 *Archetype `json:"archetype1,omitempty" yaml:"archetype1,omitempty"`
	Archetype2 *Archetype `json:"archetype2,omitempty" yaml:"archetype2,omitempty"`
}

type Archetype struct {
	Name      string         `json:"name" yaml:"name"`
	BaseStats map[string]int `json:"baseStats" yaml:"baseStats"`
}

type Class struct {
	Name      string         `json:"name" yaml:"name"`
	BaseStats map[string]int `json:"baseStats" yaml:"baseStats"`
	MeleeDice string         `json:"meleeDice" yaml:"meleeDice"`
}

type Attributes struct {
	Level  *Level         `json:"level,omitempty" yaml:"level,omitempty"`
	Badass *Badass        `json:"badass,omitempty" yaml:"badass,omitempty"`
	Hps    map[string]*HP `json:"hps,omitempty" yaml:"hps,omitempty"`
}

type Level struct {
	Value int `json:"value" yaml:"value"`
}

type Badass struct {
	Rank         int  `json:"rank" yaml:"rank"`
	RollsEnabled bool `json:"rollsEnabled" yaml:"rollsEnabled"`
}

// HP is one health layer (flesh, shield, armor, bone, eridian)
type HP struct {
	Value int `json:"value" yaml:"value"`
	Max   int `json:"max" yaml:"max"`
}

// Bonus holds externally applied effect bonuses
type Bonus struct {
	Stats  map[string]*StatEffects `json:"stats,omitempty" yaml:"stats,omitempty"`
	Checks map[string]int          `json:"checks,omitempty" yaml:"checks,omitempty"`
	Combat map[string]*CombatBonus `json:"combat,omitempty" yaml:"combat,omitempty"`
}

// CombatBonus is an effect bonus for one attack category
type CombatBonus struct {
	Acc     int `json:"acc" yaml:"acc"`
	Dmg     int `json:"dmg" yaml:"dmg"`
	CritDmg int `json:"critdmg" yaml:"critdmg"`
}

// LevelBonusTotals are the accumulated archetype level-up rewards
type LevelBonusTotals struct {
	Stats       map[string]int `json:"stats,omitempty" yaml:"stats,omitempty"`
	BonusDamage *BonusDamage   `json:"bonusDamage,omitempty" yaml:"bonusDamage,omitempty"`
}

// BonusDamage is flat bonus damage keyed by damage category
type BonusDamage struct {
	AnyAttack      int `json:"anyAttack" yaml:"anyAttack"`
	ShootingAttack int `json:"shootingAttack" yaml:"shootingAttack"`
	MeleeAttack    int `json:"meleeAttack" yaml:"meleeAttack"`
	Grenade        int `json:"grenade" yaml:"grenade"`
	PerHit         int `json:"perHit" yaml:"perHit"`
	PerCrit        int `json:"perCrit" yaml:"perCrit"`
	IfAnyCrit      int `json:"ifAnyCrit" yaml:"ifAnyCrit"`
	OnNat20        int `json:"onNat20" yaml:"onNat20"`
}
