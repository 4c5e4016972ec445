package discord

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/actor"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/damage"
)

const (
	// CommandName is the top-level slash command
	CommandName = "bnb"

	// DamageDomain prefixes the custom IDs of damage buttons
	DamageDomain = "damage"
)

// Handler owns the routers for every Discord interaction the bot answers
type Handler struct {
	actors    actor.Service
	damage    damage.Service
	evaluator *dice.Evaluator
	logger    *zap.Logger

	bnb          *core.Router
	damageRouter *core.Router
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ActorService  actor.Service   // Required
	DamageService damage.Service  // Required
	Evaluator     *dice.Evaluator // Required
	Logger        *zap.Logger
}

// NewHandlerFromProvider wires a handler from the service provider
func NewHandlerFromProvider(p *services.Provider, logger *zap.Logger) *Handler {
	return NewHandler(&HandlerConfig{
		ActorService:  p.ActorService,
		DamageService: p.DamageService,
		Evaluator:     p.Evaluator,
		Logger:        logger,
	})
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.ActorService == nil {
		panic("actor service is required")
	}
	if cfg.DamageService == nil {
		panic("damage service is required")
	}
	if cfg.Evaluator == nil {
		panic("evaluator is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		actors:       cfg.ActorService,
		damage:       cfg.DamageService,
		evaluator:    cfg.Evaluator,
		logger:       logger,
		bnb:          core.NewRouter(CommandName),
		damageRouter: core.NewRouter(DamageDomain),
	}
	h.registerRoutes()

	return h
}

func (h *Handler) registerRoutes() {
	// Slash commands
	h.bnb.Command("actor/create", h.handleActorCreate)
	h.bnb.Command("actor/show", h.handleActorShow)
	h.bnb.Command("actor/rolldata", h.handleActorRollData)
	h.bnb.Command("melee", h.handleMelee)
	h.bnb.Command("roll", h.handleRoll)

	// Components
	h.damageRouter.Component(ActionMelee, h.handleMeleeDamage)
}

// Routers returns the handlers to register with a pipeline
func (h *Handler) Routers() []core.Handler {
	return []core.Handler{h.bnb, h.damageRouter}
}

// Register adds every router to the pipeline
func (h *Handler) Register(p *core.Pipeline) {
	p.Register(h.Routers()...)
}
