package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	"github.com/KirkDiggler/bnb-bot-discord/internal/observability"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services"
	"github.com/KirkDiggler/bnb-bot-discord/internal/uuid"
)

// Env is what every subcommand runs against
type Env struct {
	Provider *services.Provider
	Storage  *repositories.Storage
	Logger   *zap.Logger
}

// Setup builds the Env before a subcommand runs
type Setup func(ctx context.Context) (*Env, error)

// DefaultSetup reads the environment configuration and connects to the
// configured storage. Unlike the bot, an unreachable Redis is an error.
func DefaultSetup(ctx context.Context) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	store, err := repositories.Open(ctx, cfg.Redis, false, logger.Named("storage"))
	if err != nil {
		return nil, err
	}
	if store.Backend != "redis" {
		logger.Warn("REDIS_URL is not set, changes will not be persisted")
	}

	return &Env{
		Provider: services.NewProvider(&services.ProviderConfig{
			ActorRepository:    store.Actors,
			SettingsRepository: store.Settings,
			UUIDGenerator:      uuid.NewGoogleUUIDGenerator(),
			Assets:             cfg.Assets,
			Logger:             logger,
		}),
		Storage: store,
		Logger:  logger,
	}, nil
}

// NewRootCommand creates the bnbctl command tree
func NewRootCommand(setup Setup) *cobra.Command {
	env := &Env{}

	root := &cobra.Command{
		Use:           "bnbctl",
		Short:         "Operator tool for the Bunkers & Badasses bot",
		Long:          `bnbctl imports, inspects and migrates actors and manages realm settings in the bot's storage.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Context())
			if err != nil {
				return err
			}
			*env = *e
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if env.Logger != nil {
				_ = env.Logger.Sync()
			}
			if env.Storage != nil {
				return env.Storage.Close()
			}
			return nil
		},
	}

	root.AddCommand(
		newActorCommand(env),
		newSettingsCommand(env),
		newRollCommand(env),
		newMeleeCommand(env),
	)

	return root
}

// Execute runs the root command against the configured storage
func Execute() {
	root := NewRootCommand(DefaultSetup)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
