package actor

//go:generate mockgen -destination=mock/mock.go -package=mockactor -source=service.go

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/KirkDiggler/bnb-bot-discord/internal/domain/actor"
	"github.com/KirkDiggler/bnb-bot-discord/internal/domain/token"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/actors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/settings"
	"github.com/KirkDiggler/bnb-bot-discord/internal/uuid"
)

// prepareConcurrency caps how many actors of a realm are prepared at once
const prepareConcurrency = 8

// Service defines the actor lifecycle operations
type Service interface {
	// CreateActor builds a new actor from defaults, initializes its token
	// from the realm settings and stores it
	CreateActor(ctx context.Context, input *CreateActorInput) (*entities.Actor, error)

	// ImportActor stores a complete actor document, assigning an ID if missing
	ImportActor(ctx context.Context, a *entities.Actor) (*entities.Actor, error)

	// ReplaceActor overwrites an existing actor document
	ReplaceActor(ctx context.Context, a *entities.Actor) (*entities.Actor, error)

	// GetActor loads and prepares an actor, persisting any data migrations
	GetActor(ctx context.Context, actorID string) (*entities.Actor, error)

	// ListActors prepares every actor of a realm
	ListActors(ctx context.Context, realmID string) ([]*entities.Actor, error)

	// MigrateRealm prepares every actor of a realm and reports how many
	// needed a migration written back
	MigrateRealm(ctx context.Context, realmID string) (int, error)

	// GetRollData returns the formula data context of a prepared actor
	GetRollData(ctx context.Context, actorID string) (map[string]any, error)

	// DeleteActor removes an actor from storage
	DeleteActor(ctx context.Context, actorID string) error
}

// CreateActorInput contains data for creating an actor
type CreateActorInput struct {
	Name    string
	Type    entities.ActorType
	OwnerID string
	RealmID string
	// System is optional. Missing stats, checks and attribute blocks are
	// filled from the defaults.
	System *entities.System
}

type service struct {
	repository    actors.Repository
	settings      settings.Repository
	uuidGenerator uuid.Generator
	logger        *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    actors.Repository   // Required
	Settings      settings.Repository // Required
	UUIDGenerator uuid.Generator      // Optional, will use default if nil
	Logger        *zap.Logger
}

// NewService creates a new actor service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Settings == nil {
		panic("settings repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		settings:      cfg.Settings,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        cfg.Logger,
	}

	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc
}

func (s *service) CreateActor(ctx context.Context, input *CreateActorInput) (*entities.Actor, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, dnderr.InvalidArgument("actor name is required")
	}
	if !input.Type.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown actor type %q", input.Type).
			WithMeta("actor_type", string(input.Type))
	}
	if input.RealmID == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	defaults, err := DefaultSystem()
	if err != nil {
		return nil, err
	}

	sys := input.System
	if sys == nil {
		sys = defaults
	} else {
		applyDefaults(sys, defaults)
	}

	a := &entities.Actor{
		OwnerID: input.OwnerID,
		RealmID: input.RealmID,
		Name:    name,
		Type:    input.Type,
		System:  sys,
	}

	if err := s.initToken(ctx, a); err != nil {
		return nil, err
	}

	a.ID = s.uuidGenerator.New()

	if err := s.repository.Create(ctx, a); err != nil {
		return nil, dnderr.Wrap(err, "failed to create actor").
			WithMeta("actor_name", name)
	}

	s.logger.Info("actor created",
		zap.String("actor_id", a.ID),
		zap.String("actor_type", string(a.Type)),
		zap.String("realm_id", a.RealmID),
	)

	if _, err := domain.Prepare(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ImportActor(ctx context.Context, a *entities.Actor) (*entities.Actor, error) {
	if err := validateDocument(a); err != nil {
		return nil, err
	}

	if a.ID == "" {
		a.ID = s.uuidGenerator.New()
	}
	if a.System == nil {
		a.System = &entities.System{}
	}

	// imported tokens are kept as they are
	if a.PrototypeToken == nil {
		if err := s.initToken(ctx, a); err != nil {
			return nil, err
		}
	}

	if err := s.repository.Create(ctx, a); err != nil {
		return nil, dnderr.Wrap(err, "failed to import actor").
			WithMeta("actor_id", a.ID)
	}

	s.logger.Info("actor imported",
		zap.String("actor_id", a.ID),
		zap.String("realm_id", a.RealmID),
	)

	return s.GetActor(ctx, a.ID)
}

func (s *service) ReplaceActor(ctx context.Context, a *entities.Actor) (*entities.Actor, error) {
	if err := validateDocument(a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}
	if a.System == nil {
		a.System = &entities.System{}
	}
	if a.PrototypeToken == nil {
		if err := s.initToken(ctx, a); err != nil {
			return nil, err
		}
	}

	if err := s.repository.Update(ctx, a); err != nil {
		return nil, dnderr.Wrap(err, "failed to replace actor").
			WithMeta("actor_id", a.ID)
	}

	s.logger.Info("actor replaced",
		zap.String("actor_id", a.ID),
		zap.String("realm_id", a.RealmID),
	)

	return s.GetActor(ctx, a.ID)
}

func (s *service) GetActor(ctx context.Context, actorID string) (*entities.Actor, error) {
	if actorID == "" {
		return nil, dnderr.InvalidArgument("actor ID is required")
	}

	a, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if _, err := s.prepare(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) ListActors(ctx context.Context, realmID string) ([]*entities.Actor, error) {
	list, _, err := s.prepareRealm(ctx, realmID)
	return list, err
}

func (s *service) MigrateRealm(ctx context.Context, realmID string) (int, error) {
	_, migrated, err := s.prepareRealm(ctx, realmID)
	if err != nil {
		return 0, err
	}

	s.logger.Info("realm migrated",
		zap.String("realm_id", realmID),
		zap.Int("migrated", migrated),
	)
	return migrated, nil
}

func (s *service) GetRollData(ctx context.Context, actorID string) (map[string]any, error) {
	a, err := s.GetActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return domain.RollData(a)
}

func (s *service) DeleteActor(ctx context.Context, actorID string) error {
	if actorID == "" {
		return dnderr.InvalidArgument("actor ID is required")
	}

	if err := s.repository.Delete(ctx, actorID); err != nil {
		return err
	}

	s.logger.Info("actor deleted", zap.String("actor_id", actorID))
	return nil
}

func validateDocument(a *entities.Actor) error {
	if a == nil {
		return dnderr.InvalidArgument("actor cannot be nil")
	}
	if strings.TrimSpace(a.Name) == "" {
		return dnderr.InvalidArgument("actor name is required")
	}
	if !a.Type.Valid() {
		return dnderr.InvalidArgumentf("unknown actor type %q", a.Type).
			WithMeta("actor_type", string(a.Type))
	}
	if a.RealmID == "" {
		return dnderr.InvalidArgument("realm ID is required")
	}
	return nil
}

// initToken resolves the realm settings once and configures the token
func (s *service) initToken(ctx context.Context, a *entities.Actor) error {
	world, err := s.settings.Get(ctx, a.RealmID)
	if err != nil {
		return dnderr.Wrap(err, "failed to load realm settings").
			WithMeta("realm_id", a.RealmID)
	}
	return token.InitPrototypeToken(a, world)
}

// prepare derives the actor in place and writes back each migration patch.
// A failed write is logged and the prepared actor is still returned; the
// migration runs again on the next read.
func (s *service) prepare(ctx context.Context, a *entities.Actor) (int, error) {
	patches, err := domain.Prepare(a)
	if err != nil {
		return 0, err
	}

	written := 0
	for _, p := range patches {
		if err := s.repository.UpdateField(ctx, a.ID, p.Path, p.Value); err != nil {
			s.logger.Warn("failed to persist actor migration",
				zap.String("actor_id", a.ID),
				zap.String("path", p.Path),
				zap.Error(err),
			)
			continue
		}
		written++
	}

	if written > 0 {
		s.logger.Debug("persisted actor migrations",
			zap.String("actor_id", a.ID),
			zap.Int("patches", written),
		)
	}
	return written, nil
}

func (s *service) prepareRealm(ctx context.Context, realmID string) ([]*entities.Actor, int, error) {
	if realmID == "" {
		return nil, 0, dnderr.InvalidArgument("realm ID is required")
	}

	list, err := s.repository.ListByRealm(ctx, realmID)
	if err != nil {
		return nil, 0, err
	}

	written := make([]int, len(list))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(prepareConcurrency)
	for i, a := range list {
		i, a := i, a
		g.Go(func() error {
			n, err := s.prepare(gctx, a)
			if err != nil {
				return dnderr.Wrapf(err, "failed to prepare actor %s", a.ID)
			}
			written[i] = n
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	migrated := 0
	for _, n := range written {
		if n > 0 {
			migrated++
		}
	}
	return list, migrated, nil
}
