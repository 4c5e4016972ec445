package token

import (
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

const defaultDimSight = 15

// InitPrototypeToken sets the default token for a newly created actor. It is
// only called on the create path; later edits to the token are preserved.
func InitPrototypeToken(a *entities.Actor, world *entities.WorldSettings) error {
	if a == nil {
		return dnderr.InvalidArgument("actor is required")
	}
	if !a.Type.Valid() {
		return dnderr.InvalidArgumentf("unknown actor type %q", a.Type)
	}

	flags := ResolveHealthFlags(a.Type, world)

	if a.PrototypeToken == nil {
		a.PrototypeToken = &entities.PrototypeToken{}
	}
	tok := a.PrototypeToken

	tok.Bar1 = entities.TokenBar{Attribute: HealthAttribute(LayerFlesh)}
	tok.Bar2 = entities.TokenBar{Attribute: HealthAttribute(LayerShield)}
	tok.DimSight = defaultDimSight
	tok.Vision = a.IsVaultHunter()
	tok.ActorLink = a.IsVaultHunter()
	tok.Flags.Barbrawl = &entities.BarbrawlFlags{
		ResourceBars: BuildResourceBars(flags),
	}

	return nil
}
