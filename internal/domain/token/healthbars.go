package token

import (
	"strconv"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// Health layers tracked under attributes.hps
const (
	LayerFlesh   = "flesh"
	LayerArmor   = "armor"
	LayerShield  = "shield"
	LayerBone    = "bone"
	LayerEridian = "eridian"
)

// HealthFlags selects which health layers get a resource bar
type HealthFlags struct {
	UseArmor   bool
	UseBone    bool
	UseEridian bool
	UseFlesh   bool
	UseShield  bool
}

// ResolveHealthFlags picks the health layers for a new actor. NPCs always
// carry armor and read the NPC-scoped toggles; vault hunters read the
// player-scoped ones.
func ResolveHealthFlags(actorType entities.ActorType, world *entities.WorldSettings) HealthFlags {
	if world == nil {
		world = entities.DefaultWorldSettings()
	}

	flags := HealthFlags{
		UseFlesh:  true,
		UseShield: true,
	}

	if actorType == entities.ActorTypeNPC {
		flags.UseArmor = true
		flags.UseBone = world.UseNpcBone
		flags.UseEridian = world.UseNpcEridian
		return flags
	}

	flags.UseArmor = world.UsePlayerArmor
	flags.UseBone = world.UsePlayerBone
	flags.UseEridian = world.UsePlayerEridian
	return flags
}

type barStyle struct {
	label    string
	minColor string
	maxColor string
}

var layerStyles = map[string]barStyle{
	LayerFlesh:   {label: "Flesh", minColor: "#a20b0b", maxColor: "#e42f2f"},
	LayerArmor:   {label: "Armor", minColor: "#a86e05", maxColor: "#f2b233"},
	LayerShield:  {label: "Shield", minColor: "#0b5ea2", maxColor: "#2fa8e4"},
	LayerBone:    {label: "Bone", minColor: "#9c9a8a", maxColor: "#e8e4cf"},
	LayerEridian: {label: "Eridian", minColor: "#5a1a8c", maxColor: "#b160e8"},
}

// BuildResourceBars returns one bar per enabled layer, keyed by bar id.
// Each layer owns a fixed id (flesh bar1, shield bar2, armor bar3, bone bar4,
// eridian bar5) so ids line up with the token's default bars.
func BuildResourceBars(flags HealthFlags) map[string]*entities.ResourceBar {
	type layer struct {
		name    string
		enabled bool
	}
	layers := []layer{
		{LayerFlesh, flags.UseFlesh},
		{LayerShield, flags.UseShield},
		{LayerArmor, flags.UseArmor},
		{LayerBone, flags.UseBone},
		{LayerEridian, flags.UseEridian},
	}

	bars := make(map[string]*entities.ResourceBar)
	order := 0
	for i, l := range layers {
		if !l.enabled {
			continue
		}

		id := barID(i + 1)
		style := layerStyles[l.name]
		bars[id] = &entities.ResourceBar{
			ID:              id,
			Attribute:       HealthAttribute(l.name),
			Label:           style.label,
			MinColor:        style.minColor,
			MaxColor:        style.maxColor,
			Position:        "bottom-inner",
			Order:           order,
			OwnerVisibility: entities.BarVisibilityAlways,
			OtherVisibility: entities.BarVisibilityHover,
			HideEmpty:       l.name != LayerFlesh,
		}
		order++
	}

	return bars
}

// HealthAttribute is the token attribute path for a health layer
func HealthAttribute(layer string) string {
	return "attributes.hps." + layer
}

func barID(n int) string {
	return "bar" + strconv.Itoa(n)
}
