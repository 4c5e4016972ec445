package actors

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	mockactors "github.com/KirkDiggler/bnb-bot-discord/internal/repositories/actors/mock"
	"github.com/KirkDiggler/bnb-bot-discord/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	client   *redis.Client
	mock     redismock.ClientMock
	mockCtrl *gomock.Controller
	clock    *mockactors.MockTimeProvider
	repo     Repository
	now      time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.client, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.clock = mockactors.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client: s.client,
		Clock:  s.clock,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) stored(actor *entities.Actor) string {
	stamped := *actor
	stamped.CreatedAt = s.now
	stamped.UpdatedAt = s.now
	data, err := json.Marshal(&stamped)
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	actor := testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0")
	expected := s.stored(actor)

	s.clock.EXPECT().Now().Return(s.now)
	s.mock.ExpectExists("actor:vh-1").SetVal(0)
	s.mock.ExpectSet("actor:vh-1", expected, 0).SetVal("OK")
	s.mock.ExpectSAdd("realm:realm-1:actors", "vh-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, actor))
	s.Equal(s.now, actor.CreatedAt)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	actor := testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0")

	s.mock.ExpectExists("actor:vh-1").SetVal(1)

	err := s.repo.Create(ctx, actor)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_DependencyError() {
	ctx := context.Background()
	actor := testutils.CreateTestNPC("npc-1", "realm-1", "Bandit")

	s.mock.ExpectExists("actor:npc-1").SetErr(errors.New("redis error"))

	s.Error(s.repo.Create(ctx, actor))
	s.Error(s.repo.Create(ctx, nil))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	actor := testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0")

	s.mock.ExpectGet("actor:vh-1").SetVal(s.stored(actor))

	got, err := s.repo.Get(ctx, "vh-1")
	s.Require().NoError(err)
	s.Equal("Zer0", got.Name)
	s.Equal(entities.ActorTypeVaultHunter, got.Type)
	s.Equal(s.now, got.CreatedAt)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("actor:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.True(dnderr.IsNotFound(err))

	_, err = s.repo.Get(ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListByRealm() {
	ctx := context.Background()
	s.mock.MatchExpectationsInOrder(false)

	moze := testutils.CreateTestVaultHunter("b", "realm-1", "Moze")
	amara := testutils.CreateTestVaultHunter("a", "realm-1", "Amara")

	s.mock.ExpectSMembers("realm:realm-1:actors").SetVal([]string{"b", "a", "stale"})
	s.mock.ExpectGet("actor:b").SetVal(s.stored(moze))
	s.mock.ExpectGet("actor:a").SetVal(s.stored(amara))
	s.mock.ExpectGet("actor:stale").RedisNil()

	list, err := s.repo.ListByRealm(ctx, "realm-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Amara", list[0].Name)
	s.Equal("Moze", list[1].Name)
}

func (s *RedisRepoTestSuite) TestListByRealm_Error() {
	ctx := context.Background()

	s.mock.ExpectSMembers("realm:realm-1:actors").SetErr(errors.New("redis error"))

	_, err := s.repo.ListByRealm(ctx, "realm-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestUpdate_ChangesRealmIndex() {
	ctx := context.Background()
	existing := testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0")
	created := s.now.Add(-time.Hour)

	old := *existing
	old.CreatedAt = created
	old.UpdatedAt = created
	oldData, err := json.Marshal(&old)
	s.Require().NoError(err)

	updated := testutils.CreateTestVaultHunter("vh-1", "realm-2", "Zer0")
	expected := *updated
	expected.CreatedAt = created
	expected.UpdatedAt = s.now
	expectedData, err := json.Marshal(&expected)
	s.Require().NoError(err)

	s.clock.EXPECT().Now().Return(s.now)
	s.mock.ExpectGet("actor:vh-1").SetVal(string(oldData))
	s.mock.ExpectSet("actor:vh-1", string(expectedData), 0).SetVal("OK")
	s.mock.ExpectSRem("realm:realm-1:actors", "vh-1").SetVal(1)
	s.mock.ExpectSAdd("realm:realm-2:actors", "vh-1").SetVal(1)

	s.NoError(s.repo.Update(ctx, updated))
	s.Equal(created, updated.CreatedAt)
}

func (s *RedisRepoTestSuite) TestUpdateField() {
	ctx := context.Background()
	actor := testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0")
	stored := s.stored(actor)
	later := s.now.Add(time.Minute)

	throw := entities.Check{Stat: entities.StatAccuracy}
	expected, err := sjson.Set(stored, "system.checks.throw", throw)
	s.Require().NoError(err)
	expected, err = sjson.Set(expected, "updatedAt", later)
	s.Require().NoError(err)

	s.clock.EXPECT().Now().Return(later)
	s.mock.ExpectWatch("actor:vh-1")
	s.mock.ExpectGet("actor:vh-1").SetVal(stored)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("actor:vh-1", expected, 0).SetVal("OK")
	s.mock.ExpectTxPipelineExec()

	s.Require().NoError(s.repo.UpdateField(ctx, "vh-1", "system.checks.throw", throw))

	s.Equal("acc", gjson.Get(expected, "system.checks.throw.stat").String())
	s.Equal(gjson.Get(stored, "system.class").Raw, gjson.Get(expected, "system.class").Raw)
}

func (s *RedisRepoTestSuite) TestUpdateField_NotFound() {
	ctx := context.Background()

	s.mock.ExpectWatch("actor:missing")
	s.mock.ExpectGet("actor:missing").RedisNil()

	err := s.repo.UpdateField(ctx, "missing", "name", "x")
	s.True(dnderr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdateField_RetriesWhenDocumentChanges() {
	ctx := context.Background()
	stored := s.stored(testutils.CreateTestVaultHunter("vh-1", "realm-1", "Zer0"))
	later := s.now.Add(time.Minute)

	expected, err := sjson.Set(stored, "name", "Zer0 Prime")
	s.Require().NoError(err)
	expected, err = sjson.Set(expected, "updatedAt", later)
	s.Require().NoError(err)

	s.mock.ExpectWatch("actor:vh-1").SetErr(redis.TxFailedErr)
	s.clock.EXPECT().Now().Return(later)
	s.mock.ExpectWatch("actor:vh-1")
	s.mock.ExpectGet("actor:vh-1").SetVal(stored)
	s.mock.ExpectTxPipeline()
	s.mock.ExpectSet("actor:vh-1", expected, 0).SetVal("OK")
	s.mock.ExpectTxPipelineExec()

	s.NoError(s.repo.UpdateField(ctx, "vh-1", "name", "Zer0 Prime"))
}

func (s *RedisRepoTestSuite) TestUpdateField_GivesUpOnContention() {
	ctx := context.Background()

	for i := 0; i < maxPatchAttempts; i++ {
		s.mock.ExpectWatch("actor:vh-1").SetErr(redis.TxFailedErr)
	}

	err := s.repo.UpdateField(ctx, "vh-1", "name", "x")
	s.Require().Error(err)
	s.True(dnderr.Is(err, dnderr.CodeInternal))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	actor := testutils.CreateTestNPC("npc-1", "realm-1", "Bandit")

	s.mock.ExpectGet("actor:npc-1").SetVal(s.stored(actor))
	s.mock.ExpectDel("actor:npc-1").SetVal(1)
	s.mock.ExpectSRem("realm:realm-1:actors", "npc-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "npc-1"))
}

func TestNewRedisRepository_Panics(t *testing.T) {
	assert.Panics(t, func() { NewRedisRepository(nil) })
	assert.Panics(t, func() { NewRedisRepository(&RedisRepoConfig{}) })
}
