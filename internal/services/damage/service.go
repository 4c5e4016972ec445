package damage

//go:generate mockgen -destination=mock/mock.go -package=mockdamage -source=service.go

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/chat"
	"github.com/KirkDiggler/bnb-bot-discord/internal/config"
	"github.com/KirkDiggler/bnb-bot-discord/internal/dice"
	domain "github.com/KirkDiggler/bnb-bot-discord/internal/domain/actor"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/render"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/actor"
)

// MeleeKineticImage is the card art for kinetic melee damage
const MeleeKineticImage = "elements/melee/Melee-Kinetic.png"

// Service rolls damage and posts the result to chat
type Service interface {
	// RollMelee rolls kinetic melee damage for an actor and posts it
	RollMelee(ctx context.Context, input *MeleeDamageInput) (*RollOutput, error)
}

// RollOutput is the outcome of a damage roll
type RollOutput struct {
	Formula string
	Result  *dice.Result
	Message *chat.Message
}

type service struct {
	actors    actor.Service
	evaluator *dice.Evaluator
	renderer  render.Renderer
	sink      chat.Sink
	assets    config.AssetsConfig
	logger    *zap.Logger
}

// ServiceConfig holds configuration for the damage service
type ServiceConfig struct {
	ActorService actor.Service   // Required
	Evaluator    *dice.Evaluator // Required
	Renderer     render.Renderer // Required
	Sink         chat.Sink       // Required
	Assets       config.AssetsConfig
	Logger       *zap.Logger
}

// NewService creates a new damage service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.ActorService == nil {
		panic("actor service is required")
	}
	if cfg.Evaluator == nil {
		panic("evaluator is required")
	}
	if cfg.Renderer == nil {
		panic("renderer is required")
	}
	if cfg.Sink == nil {
		panic("chat sink is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		actors:    cfg.ActorService,
		evaluator: cfg.Evaluator,
		renderer:  cfg.Renderer,
		sink:      cfg.Sink,
		assets:    cfg.Assets,
		logger:    logger,
	}
}

func (s *service) RollMelee(ctx context.Context, input *MeleeDamageInput) (*RollOutput, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.ActorID == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}
	if input.AttackType != "" && !input.AttackType.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown attack type %q", input.AttackType)
	}
	if input.Hits < 0 || input.Crits < 0 {
		return nil, dnderr.InvalidArgument("hits and crits cannot be negative")
	}

	a, err := s.actors.GetActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	data, err := domain.DamageRollData(a)
	if err != nil {
		return nil, err
	}

	levelUp := LevelUpDamage(a.LevelBonusDamage(), input)
	formula := BuildMeleeFormula(a, input, levelUp).String()

	res, err := s.evaluator.Evaluate(ctx, formula, data)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to roll melee damage").
			WithMeta("actor_id", a.ID).
			WithMeta("formula", formula)
	}

	image := s.assets.ImageURL(MeleeKineticImage)
	content, err := s.renderer.Render(render.TemplateDamageResults, render.DamageResults{
		Results: []render.DamageResult{
			{Type: DamageTypeKinetic, Formula: res.Formula, Total: res.Total},
		},
		ImageOverride: image,
	})
	if err != nil {
		return nil, err
	}

	posted, err := s.sink.Post(ctx, &chat.Message{
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Speaker:   chat.Speaker{ActorID: a.ID, Alias: a.Name},
		Flavor:    fmt.Sprintf("%s deals a blow.", a.Name),
		Type:      chat.MessageTypeRoll,
		RollMode:  chat.RollModePublic,
		Roll:      chat.RollFromResult(res),
		Content:   content,
		ImageURL:  image,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("melee damage rolled",
		zap.String("actor_id", a.ID),
		zap.String("formula", formula),
		zap.Int("total", res.Total),
		zap.Int("level_up_bonus", levelUp),
	)

	return &RollOutput{
		Formula: formula,
		Result:  res,
		Message: posted,
	}, nil
}
