package settings

//go:generate mockgen -destination=mock/mock.go -package=mocksettings -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// Repository stores per-realm world settings. A realm that was never
// written reads as the defaults.
type Repository interface {
	// Get returns the realm's settings merged over the defaults
	Get(ctx context.Context, realmID string) (*entities.WorldSettings, error)

	// Set writes one setting. Unknown keys are rejected with a validation error.
	Set(ctx context.Context, realmID, key string, value bool) error
}
