package actors

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/tidwall/sjson"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// InMemoryRepository keeps actor documents as JSON so reads never alias
// stored state and partial updates behave like the Redis implementation.
type InMemoryRepository struct {
	mu     sync.RWMutex
	docs   map[string][]byte
	realms map[string]map[string]struct{}
	clock  TimeProvider
}

// NewInMemoryRepository creates a new in-memory actor repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		docs:   make(map[string][]byte),
		realms: make(map[string]map[string]struct{}),
		clock:  systemClock{},
	}
}

func (r *InMemoryRepository) Create(_ context.Context, actor *entities.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.docs[actor.ID]; exists {
		return dnderr.AlreadyExistsf("actor with ID '%s' already exists", actor.ID).
			WithMeta("actor_id", actor.ID)
	}

	now := r.clock.Now()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	data, err := json.Marshal(actor)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal actor")
	}

	r.docs[actor.ID] = data
	r.index(actor.RealmID, actor.ID)
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	data, exists := r.docs[id]
	r.mu.RUnlock()

	if !exists {
		return nil, notFound(id)
	}
	return decode(data)
}

func (r *InMemoryRepository) ListByRealm(ctx context.Context, realmID string) ([]*entities.Actor, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	r.mu.RLock()
	ids := make([]string, 0, len(r.realms[realmID]))
	for id := range r.realms[realmID] {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	result := make([]*entities.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, actor)
	}

	sortActors(result)
	return result, nil
}

func (r *InMemoryRepository) Update(_ context.Context, actor *entities.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.docs[actor.ID]
	if !exists {
		return notFound(actor.ID)
	}

	prev, err := decode(existing)
	if err != nil {
		return err
	}

	actor.CreatedAt = prev.CreatedAt
	actor.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(actor)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal actor")
	}

	r.docs[actor.ID] = data
	if prev.RealmID != actor.RealmID {
		delete(r.realms[prev.RealmID], actor.ID)
		r.index(actor.RealmID, actor.ID)
	}
	return nil
}

func (r *InMemoryRepository) UpdateField(_ context.Context, id, path string, value any) error {
	if id == "" {
		return dnderr.InvalidArgument("actor ID is required")
	}
	if path == "" {
		return dnderr.InvalidArgument("field path is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.docs[id]
	if !exists {
		return notFound(id)
	}

	patched, err := patchDocument(data, path, value, r.clock.Now())
	if err != nil {
		return err
	}

	r.docs[id] = patched
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, exists := r.docs[id]
	if !exists {
		return notFound(id)
	}

	actor, err := decode(data)
	if err != nil {
		return err
	}

	delete(r.docs, id)
	delete(r.realms[actor.RealmID], id)
	return nil
}

func (r *InMemoryRepository) index(realmID, id string) {
	if r.realms[realmID] == nil {
		r.realms[realmID] = make(map[string]struct{})
	}
	r.realms[realmID][id] = struct{}{}
}

func validateActor(actor *entities.Actor) error {
	if actor == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return dnderr.InvalidArgument("actor ID is required")
	}
	if actor.RealmID == "" {
		return dnderr.InvalidArgument("actor realm ID is required")
	}
	return nil
}

func notFound(id string) error {
	return dnderr.NotFoundf("actor with ID '%s' not found", id).
		WithMeta("actor_id", id)
}

func decode(data []byte) (*entities.Actor, error) {
	var actor entities.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal actor")
	}
	return &actor, nil
}

// patchDocument sets path to value and bumps updatedAt, leaving the rest
// of the document byte-for-byte as stored.
func patchDocument(data []byte, path string, value any, now time.Time) ([]byte, error) {
	patched, err := sjson.SetBytes(data, path, value)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			"failed to patch actor field").WithMeta("path", path)
	}

	patched, err = sjson.SetBytes(patched, "updatedAt", now)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to stamp actor update time")
	}
	return patched, nil
}

func sortActors(list []*entities.Actor) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
}
