package settings

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

type redisRepo struct {
	client redis.UniversalClient
	logger *zap.Logger
}

// RedisRepoConfig holds configuration for the Redis settings repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Logger *zap.Logger
}

// NewRedisRepository stores each realm as a hash of setting key to "true"/"false"
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Client == nil {
		panic("redis client cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &redisRepo{
		client: cfg.Client,
		logger: logger,
	}
}

func (r *redisRepo) key(realmID string) string {
	return fmt.Sprintf("settings:%s", realmID)
}

func (r *redisRepo) Get(ctx context.Context, realmID string) (*entities.WorldSettings, error) {
	if realmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	fields, err := r.client.HGetAll(ctx, r.key(realmID)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get settings").WithMeta("realm_id", realmID)
	}

	world := entities.DefaultWorldSettings()
	for k, raw := range fields {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			r.logger.Warn("ignoring malformed setting",
				zap.String("realm_id", realmID),
				zap.String("setting", k),
				zap.String("value", raw),
			)
			continue
		}
		if err := world.Set(k, value); err != nil {
			r.logger.Warn("ignoring unknown setting",
				zap.String("realm_id", realmID),
				zap.String("setting", k),
			)
		}
	}

	return world, nil
}

func (r *redisRepo) Set(ctx context.Context, realmID, key string, value bool) error {
	if realmID == "" {
		return dnderr.InvalidArgument("realm ID is required")
	}
	if _, err := entities.DefaultWorldSettings().Get(key); err != nil {
		return err
	}

	if err := r.client.HSet(ctx, r.key(realmID), key, strconv.FormatBool(value)).Err(); err != nil {
		return dnderr.Wrap(err, "failed to save setting").
			WithMeta("realm_id", realmID).
			WithMeta("setting", key)
	}

	r.logger.Info("setting updated",
		zap.String("realm_id", realmID),
		zap.String("setting", key),
		zap.Bool("value", value),
	)
	return nil
}
