package services

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/chat"
	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	"github.com/KirkDiggler/bnb-bot-discord/internal/render"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/actors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/settings"
	actorService "github.com/KirkDiggler/bnb-bot-discord/internal/services/actor"
	damageService "github.com/KirkDiggler/bnb-bot-discord/internal/services/damage"
	"github.com/KirkDiggler/bnb-bot-discord/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	ActorService  actorService.Service
	DamageService damageService.Service
	Settings      settings.Repository
	Evaluator     *dice.Evaluator
}

// ProviderConfig holds configuration for creating services. Every field is
// optional; missing repositories fall back to in-memory ones.
type ProviderConfig struct {
	ActorRepository    actors.Repository
	SettingsRepository settings.Repository
	Roller             dice.Roller
	Sink               chat.Sink
	Renderer           render.Renderer
	UUIDGenerator      uuid.Generator
	Assets             config.AssetsConfig
	Logger             *zap.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	actorRepo := cfg.ActorRepository
	if actorRepo == nil {
		actorRepo = actors.NewInMemoryRepository()
	}

	settingsRepo := cfg.SettingsRepository
	if settingsRepo == nil {
		settingsRepo = settings.NewInMemoryRepository()
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	sink := cfg.Sink
	if sink == nil {
		sink = chat.NewRecorder()
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = render.MustNew()
	}

	evaluator := dice.NewEvaluator(&dice.EvaluatorConfig{
		Roller: roller,
		Logger: logger.Named("dice"),
	})

	actorSvc := actorService.NewService(&actorService.ServiceConfig{
		Repository:    actorRepo,
		Settings:      settingsRepo,
		UUIDGenerator: cfg.UUIDGenerator,
		Logger:        logger.Named("actor"),
	})

	damageSvc := damageService.NewService(&damageService.ServiceConfig{
		ActorService: actorSvc,
		Evaluator:    evaluator,
		Renderer:     renderer,
		Sink:         sink,
		Assets:       cfg.Assets,
		Logger:       logger.Named("damage"),
	})

	return &Provider{
		ActorService:  actorSvc,
		DamageService: damageSvc,
		Settings:      settingsRepo,
		Evaluator:     evaluator,
	}
}
