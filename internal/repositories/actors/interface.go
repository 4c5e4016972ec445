package actors

//go:generate mockgen -destination=mock/mock.go -package=mockactors -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor. The actor must have an ID and a realm.
	Create(ctx context.Context, actor *entities.Actor) error

	// Get retrieves an actor by ID. A missing actor returns a not_found error.
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// ListByRealm retrieves every actor in a realm ordered by name
	ListByRealm(ctx context.Context, realmID string) ([]*entities.Actor, error)

	// Update replaces an existing actor document
	Update(ctx context.Context, actor *entities.Actor) error

	// UpdateField writes value at a dotted path of the stored document
	// (for example "system.checks.throw") and leaves every other field as stored.
	UpdateField(ctx context.Context, id, path string, value any) error

	// Delete removes an actor and its index entries
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps for created and updated fields
type TimeProvider interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
