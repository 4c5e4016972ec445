package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/actors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/settings"
)

const pingTimeout = 5 * time.Second

// Storage is the set of repositories a process runs against
type Storage struct {
	Actors   actors.Repository
	Settings settings.Repository

	// Backend is "redis" or "memory"
	Backend string

	client redis.UniversalClient
}

// Open connects the repositories described by cfg. An empty URL uses the
// in-memory repositories. A Redis URL that cannot be parsed or pinged is an
// error unless fallback is set, in which case in-memory storage is used.
func Open(ctx context.Context, cfg config.RedisConfig, fallback bool, logger *zap.Logger) (*Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.URL == "" {
		logger.Info("no REDIS_URL configured, using in-memory repositories")
		return NewInMemoryStorage(), nil
	}

	client, err := connect(ctx, cfg.URL)
	if err != nil {
		if !fallback {
			return nil, err
		}
		logger.Warn("falling back to in-memory repositories", zap.Error(err))
		return NewInMemoryStorage(), nil
	}

	logger.Info("using redis for persistence")
	return NewRedisStorage(client, logger), nil
}

// NewInMemoryStorage creates storage that lives only as long as the process
func NewInMemoryStorage() *Storage {
	return &Storage{
		Actors:   actors.NewInMemoryRepository(),
		Settings: settings.NewInMemoryRepository(),
		Backend:  "memory",
	}
}

// NewRedisStorage creates storage over an existing client
func NewRedisStorage(client redis.UniversalClient, logger *zap.Logger) *Storage {
	return &Storage{
		Actors: actors.NewRedisRepository(&actors.RedisRepoConfig{
			Client: client,
			Logger: logger.Named("actors"),
		}),
		Settings: settings.NewRedisRepository(&settings.RedisRepoConfig{
			Client: client,
			Logger: logger.Named("settings"),
		}),
		Backend: "redis",
		client:  client,
	}
}

// Close releases the Redis connection, if any
func (s *Storage) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "failed to parse REDIS_URL")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, dnderr.Wrapf(err, "failed to connect to redis at %s", opts.Addr)
	}

	return client, nil
}
