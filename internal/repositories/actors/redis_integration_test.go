//go:build integration
// +build integration

package actors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/repositories/actors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := actors.NewRedisRepository(&actors.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and retrieve actor", func(t *testing.T) {
		vh := testutils.CreateTestVaultHunter("it-vh-1", "it-realm", "Zer0")
		require.NoError(t, repo.Create(ctx, vh))

		got, err := repo.Get(ctx, vh.ID)
		require.NoError(t, err)
		assert.Equal(t, vh.Name, got.Name)
		assert.Equal(t, vh.System.Class.MeleeDice, got.System.Class.MeleeDice)
		assert.Len(t, got.System.Stats, 4)
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		vh := testutils.CreateTestVaultHunter("it-vh-2", "it-realm", "Moze")
		require.NoError(t, repo.Create(ctx, vh))

		err := repo.Create(ctx, vh)
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("update field persists migration", func(t *testing.T) {
		vh := testutils.CreateTestVaultHunter("it-vh-3", "it-realm", "Amara")
		require.NoError(t, repo.Create(ctx, vh))

		err := repo.UpdateField(ctx, vh.ID, "system.checks.throw", entities.Check{Stat: entities.StatAccuracy})
		require.NoError(t, err)

		got, err := repo.Get(ctx, vh.ID)
		require.NoError(t, err)
		require.Contains(t, got.System.Checks, entities.CheckThrow)
		assert.Equal(t, entities.StatAccuracy, got.System.Checks[entities.CheckThrow].Stat)
		assert.Equal(t, "Amara", got.Name)
	})

	t.Run("concurrent field updates are all kept", func(t *testing.T) {
		vh := testutils.CreateTestVaultHunter("it-vh-cc", "it-realm-cc", "Fl4k")
		require.NoError(t, repo.Create(ctx, vh))

		checks := []string{"sneak", "talk", "search", "insight"}

		var g errgroup.Group
		for _, check := range checks {
			g.Go(func() error {
				return repo.UpdateField(ctx, vh.ID, "system.checks."+check, entities.Check{Stat: entities.StatSpeed})
			})
		}
		require.NoError(t, g.Wait())

		got, err := repo.Get(ctx, vh.ID)
		require.NoError(t, err)
		for _, check := range checks {
			assert.Contains(t, got.System.Checks, check)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		list, err := repo.ListByRealm(ctx, "it-realm")
		require.NoError(t, err)
		assert.Len(t, list, 3)

		require.NoError(t, repo.Delete(ctx, "it-vh-1"))

		list, err = repo.ListByRealm(ctx, "it-realm")
		require.NoError(t, err)
		assert.Len(t, list, 2)

		_, err = repo.Get(ctx, "it-vh-1")
		assert.True(t, dnderr.IsNotFound(err))
	})
}
