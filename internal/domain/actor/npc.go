package actor

import "github.com/KirkDiggler/bnb-bot-discord/internal/entities"

// NPC is the non-player variant. Its stat blocks are entered directly so
// nothing is derived.
type NPC struct{}

func (NPC) PrepareBaseData(*entities.Actor) {}

func (NPC) PrepareDerivedData(*entities.Actor) []Patch { return nil }

func (NPC) RollData(a *entities.Actor) (map[string]any, error) {
	return systemData(a)
}
