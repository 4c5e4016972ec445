package actor

import (
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Patch is a partial update the caller should persist, addressed by a
// dotted path into the stored actor document.
type Patch struct {
	Path  string
	Value any
}

// Variant carries the lifecycle behaviour for one actor type
type Variant interface {
	// PrepareBaseData runs before derived data is computed
	PrepareBaseData(a *entities.Actor)

	// PrepareDerivedData recomputes every derived field from source fields
	// and returns any migration patches that must be persisted.
	PrepareDerivedData(a *entities.Actor) []Patch

	// RollData projects the actor into the data context used by formulas
	RollData(a *entities.Actor) (map[string]any, error)
}

var variants = map[entities.ActorType]Variant{
	entities.ActorTypeVaultHunter: VaultHunter{},
	entities.ActorTypeNPC:         NPC{},
}

// VariantFor selects the lifecycle variant for an actor type
func VariantFor(t entities.ActorType) (Variant, error) {
	v, ok := variants[t]
	if !ok {
		return nil, dnderr.InvalidArgumentf("unknown actor type %q", t).
			WithMeta("actor_type", string(t))
	}
	return v, nil
}

// Prepare runs the base and derived preparation passes in order
func Prepare(a *entities.Actor) ([]Patch, error) {
	if a == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}

	v, err := VariantFor(a.Type)
	if err != nil {
		return nil, err
	}

	if a.System == nil {
		a.System = &entities.System{}
	}

	v.PrepareBaseData(a)
	return v.PrepareDerivedData(a), nil
}

// RollData returns the formula data context for a prepared actor
func RollData(a *entities.Actor) (map[string]any, error) {
	if a == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}

	v, err := VariantFor(a.Type)
	if err != nil {
		return nil, err
	}
	return v.RollData(a)
}
