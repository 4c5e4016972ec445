package settings

import (
	"context"
	"sync"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// InMemoryRepository keeps realm settings in a map
type InMemoryRepository struct {
	mu     sync.RWMutex
	realms map[string]entities.WorldSettings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		realms: make(map[string]entities.WorldSettings),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, realmID string) (*entities.WorldSettings, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	world, ok := r.realms[realmID]
	if !ok {
		return entities.DefaultWorldSettings(), nil
	}
	return &world, nil
}

func (r *InMemoryRepository) Set(_ context.Context, realmID, key string, value bool) error {
	if realmID == "" {
		return dnderr.InvalidArgument("realm ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	world, ok := r.realms[realmID]
	if !ok {
		world = *entities.DefaultWorldSettings()
	}
	if err := world.Set(key, value); err != nil {
		return err
	}

	r.realms[realmID] = world
	return nil
}
