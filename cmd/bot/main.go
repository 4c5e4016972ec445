package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/chat"
	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/middleware"
	"github.com/KirkDiggler/bnb-bot-discord/internal/handlers/discord"
	"github.com/KirkDiggler/bnb-bot-discord/internal/observability"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services"
	"github.com/KirkDiggler/bnb-bot-discord/internal/uuid"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.LoadBot()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file found")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting bot",
		zap.String("app_id", cfg.Discord.AppID),
		zap.String("guild_id", cfg.Discord.GuildID),
	)

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("create discord session: %w", err)
	}

	store, err := repositories.Open(ctx, cfg.Redis, true, logger.Named("storage"))
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close storage", zap.Error(err))
		}
	}()

	provider := services.NewProvider(&services.ProviderConfig{
		ActorRepository:    store.Actors,
		SettingsRepository: store.Settings,
		Roller:             dice.NewRandomRoller(),
		Sink: chat.NewDiscordSink(&chat.DiscordSinkConfig{
			Sender: dg,
			Logger: logger.Named("chat"),
		}),
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		Assets:        cfg.Assets,
		Logger:        logger,
	})

	pipeline := core.NewPipeline(logger.Named("pipeline"))
	pipeline.Use(
		middleware.RecoverMiddleware(logger),
		middleware.LoggingMiddleware(logger),
	)
	discord.NewHandlerFromProvider(provider, logger.Named("handlers")).Register(pipeline)

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := pipeline.Execute(ctx, s, i); err != nil {
			logger.Error("failed to handle interaction",
				zap.String("interaction_id", i.ID),
				zap.Error(err),
			)
		}
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open discord connection: %w", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			logger.Warn("failed to close discord connection", zap.Error(err))
		}
	}()

	// An empty guild ID registers global commands, which can take up to an
	// hour to propagate.
	if err := discord.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID, logger); err != nil {
		return err
	}

	logger.Info("bot is running, press CTRL-C to exit",
		zap.String("storage", store.Backend),
		zap.Int("handlers", pipeline.HandlerCount()),
	)

	<-ctx.Done()
	logger.Info("shutting down")

	return nil
}
