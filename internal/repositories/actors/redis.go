package actors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// maxPatchAttempts bounds UpdateField retries when the document keeps changing
const maxPatchAttempts = 10

type redisRepo struct {
	client redis.UniversalClient
	clock  TimeProvider
	logger *zap.Logger
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// Clock defaults to the system clock
	Clock  TimeProvider
	Logger *zap.Logger
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Client == nil {
		panic("redis client cannot be nil")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  clock,
		logger: logger,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("actor:%s", id)
}

func (r *redisRepo) realmActorsKey(realmID string) string {
	return fmt.Sprintf("realm:%s:actors", realmID)
}

// Create stores a new actor and adds it to its realm index
func (r *redisRepo) Create(ctx context.Context, actor *entities.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(actor.ID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check actor existence")
	}
	if exists > 0 {
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

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(actor.ID), string(data), 0)
	pipe.SAdd(ctx, r.realmActorsKey(actor.RealmID), actor.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to create actor")
	}

	r.logger.Debug("created actor",
		zap.String("actor_id", actor.ID),
		zap.String("realm_id", actor.RealmID),
	)
	return nil
}

// Get retrieves an actor by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	data, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return decode(data)
}

// ListByRealm loads every indexed actor of a realm concurrently. Index
// entries whose document is gone are skipped.
func (r *redisRepo) ListByRealm(ctx context.Context, realmID string) ([]*entities.Actor, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.realmActorsKey(realmID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list actor IDs")
	}

	loaded := make([]*entities.Actor, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			actor, err := r.Get(gctx, id)
			if dnderr.IsNotFound(err) {
				r.logger.Warn("skipping stale realm index entry",
					zap.String("realm_id", realmID),
					zap.String("actor_id", id),
				)
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get actor %s: %w", id, err)
			}
			loaded[i] = actor
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]*entities.Actor, 0, len(loaded))
	for _, actor := range loaded {
		if actor != nil {
			result = append(result, actor)
		}
	}

	sortActors(result)
	return result, nil
}

// Update replaces an actor document, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, actor *entities.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}

	existing, err := r.Get(ctx, actor.ID)
	if err != nil {
		return err
	}

	actor.CreatedAt = existing.CreatedAt
	actor.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(actor)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal actor")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(actor.ID), string(data), 0)
	if existing.RealmID != actor.RealmID {
		pipe.SRem(ctx, r.realmActorsKey(existing.RealmID), actor.ID)
		pipe.SAdd(ctx, r.realmActorsKey(actor.RealmID), actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to update actor")
	}
	return nil
}

// UpdateField patches one path of the stored JSON document. The read and
// write run under WATCH so a concurrent writer aborts the patch, which is
// then retried against the fresh document.
func (r *redisRepo) UpdateField(ctx context.Context, id, path string, value any) error {
	if id == "" {
		return dnderr.InvalidArgument("actor ID is required")
	}
	if path == "" {
		return dnderr.InvalidArgument("field path is required")
	}

	key := r.key(id)
	patch := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return notFound(id)
		}
		if err != nil {
			return dnderr.Wrap(err, "failed to get actor").WithMeta("actor_id", id)
		}

		patched, err := patchDocument(data, path, value, r.clock.Now())
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, string(patched), 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxPatchAttempts; attempt++ {
		err := r.client.Watch(ctx, patch, key)
		if errors.Is(err, redis.TxFailedErr) {
			r.logger.Debug("actor changed during field update, retrying",
				zap.String("actor_id", id),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return dnderr.Wrap(err, "failed to update actor field").WithMeta("path", path)
		}

		r.logger.Debug("updated actor field",
			zap.String("actor_id", id),
			zap.String("path", path),
		)
		return nil
	}

	return dnderr.Internalf("actor %s kept changing during update of %s", id, path).
		WithMeta("path", path)
}

// Delete removes an actor and its realm index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	actor, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.realmActorsKey(actor.RealmID), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete actor")
	}
	return nil
}

func (r *redisRepo) load(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get actor").WithMeta("actor_id", id)
	}
	return data, nil
}
