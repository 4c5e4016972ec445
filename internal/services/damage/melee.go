package damage

import (
	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// AttackType is the attack category a damage roll belongs to
type AttackType string

const (
	AttackTypeShooting AttackType = "shooting"
	AttackTypeMelee    AttackType = "melee"
	AttackTypeGrenade  AttackType = "grenade"
)

// Valid reports whether t is a known attack type
func (t AttackType) Valid() bool {
	switch t {
	case AttackTypeShooting, AttackTypeMelee, AttackTypeGrenade:
		return true
	}
	return false
}

// Damage type and formula tags
const (
	DamageTypeKinetic = "Kinetic"

	flavorCrit         = "Crit"
	flavorCritEffects  = "Crit Effects"
	flavorMeleeEffects = "Melee Dmg Effects"
	flavorLevelUp      = "Level Up Bonus"
	flavorDmgStat      = "DMG Stat"
	flavorDmgMod       = "DMG Mod"
)

// MeleeDamageInput carries what the melee card button encodes
type MeleeDamageInput struct {
	ActorID      string
	AttackType   AttackType
	Hits         int
	Crits        int
	PlusOneDice  bool
	DoubleDamage bool
	Crit         bool
	CritHit      bool

	UserID    string
	ChannelID string
}

// LevelUpDamage sums the archetype level-up damage bonuses that apply to an
// attack. Absent bonuses count as 0.
func LevelUpDamage(bonus *entities.BonusDamage, in *MeleeDamageInput) int {
	if bonus == nil || in == nil {
		return 0
	}

	total := bonus.AnyAttack
	switch in.AttackType {
	case AttackTypeShooting:
		total += bonus.ShootingAttack
	case AttackTypeMelee:
		total += bonus.MeleeAttack
	case AttackTypeGrenade:
		total += bonus.Grenade
	}

	total += bonus.PerHit * in.Hits
	total += bonus.PerCrit * in.Crits
	if in.Crits > 0 {
		total += bonus.IfAnyCrit
	}
	if in.CritHit {
		total += bonus.OnNat20
	}

	return total
}

// BuildMeleeFormula assembles the kinetic melee damage formula:
//
//	[2*](meleeDice [+ meleeDice] [+ 1d12[Crit]] [+ N[Crit Effects]] + @dmg[DMG Mod|Stat]
//	     [+ N[Melee Dmg Effects]] [+ N[Level Up Bonus]])[Kinetic]
func BuildMeleeFormula(a *entities.Actor, in *MeleeDamageInput, levelUp int) *dice.Formula {
	if in == nil {
		in = &MeleeDamageInput{}
	}

	meleeDice := a.MeleeDice()
	effectDamage, critEffectDamage := meleeEffects(a)

	dmgFlavor := flavorDmgMod
	if a.BadassRollsEnabled() {
		dmgFlavor = flavorDmgStat
	}

	inner := dice.NewFormula(dice.Raw{Expr: meleeDice}).
		AddIf(in.PlusOneDice, dice.Raw{Expr: meleeDice}).
		AddIf(in.Crit, dice.Dice{Count: 1, Sides: 12, Flavor: flavorCrit}).
		AddIf(in.Crit && critEffectDamage > 0, dice.Flat{Value: critEffectDamage, Flavor: flavorCritEffects}).
		Add(dice.Ref{Path: entities.StatDamage, Flavor: dmgFlavor}).
		AddIf(effectDamage > 0, dice.Flat{Value: effectDamage, Flavor: flavorMeleeEffects}).
		AddIf(levelUp > 0, dice.Flat{Value: levelUp, Flavor: flavorLevelUp})

	multiplier := 1
	if in.DoubleDamage {
		multiplier = 2
	}

	return dice.NewFormula(dice.Group{
		Terms:      inner.Terms,
		Multiplier: multiplier,
		Flavor:     DamageTypeKinetic,
	})
}

// meleeEffects returns the melee damage and crit damage granted by active
// effects on the melee and general attack categories
func meleeEffects(a *entities.Actor) (dmg, critDmg int) {
	for _, category := range []string{entities.CheckMelee, entities.CombatAttack} {
		if b := a.CombatBonus(category); b != nil {
			dmg += b.Dmg
			critDmg += b.CritDmg
		}
	}
	return dmg, critDmg
}
