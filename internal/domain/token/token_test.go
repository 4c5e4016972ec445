package token_test

import (
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/domain/token"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHealthFlags(t *testing.T) {
	tests := []struct {
		name      string
		actorType entities.ActorType
		world     *entities.WorldSettings
		want      token.HealthFlags
	}{
		{
			name:      "npc always has armor",
			actorType: entities.ActorTypeNPC,
			world:     &entities.WorldSettings{UsePlayerArmor: false},
			want:      token.HealthFlags{UseArmor: true, UseFlesh: true, UseShield: true},
		},
		{
			name:      "npc reads npc scoped toggles",
			actorType: entities.ActorTypeNPC,
			world:     &entities.WorldSettings{UseNpcBone: true, UsePlayerEridian: true},
			want:      token.HealthFlags{UseArmor: true, UseBone: true, UseFlesh: true, UseShield: true},
		},
		{
			name:      "vault hunter reads player scoped toggles",
			actorType: entities.ActorTypeVaultHunter,
			world:     &entities.WorldSettings{UseNpcBone: true, UseNpcEridian: true, UsePlayerEridian: true},
			want:      token.HealthFlags{UseEridian: true, UseFlesh: true, UseShield: true},
		},
		{
			name:      "vault hunter with player armor",
			actorType: entities.ActorTypeVaultHunter,
			world:     &entities.WorldSettings{UsePlayerArmor: true, UsePlayerBone: true},
			want:      token.HealthFlags{UseArmor: true, UseBone: true, UseFlesh: true, UseShield: true},
		},
		{
			name:      "nil settings fall back to defaults",
			actorType: entities.ActorTypeVaultHunter,
			want:      token.HealthFlags{UseArmor: true, UseFlesh: true, UseShield: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, token.ResolveHealthFlags(tt.actorType, tt.world))
		})
	}
}

func TestBuildResourceBars(t *testing.T) {
	bars := token.BuildResourceBars(token.HealthFlags{UseFlesh: true, UseShield: true, UseEridian: true})

	require.Len(t, bars, 3)
	assert.Equal(t, "attributes.hps.flesh", bars["bar1"].Attribute)
	assert.Equal(t, "attributes.hps.shield", bars["bar2"].Attribute)
	assert.Equal(t, "attributes.hps.eridian", bars["bar5"].Attribute)
	assert.NotContains(t, bars, "bar3")

	assert.Equal(t, 0, bars["bar1"].Order)
	assert.Equal(t, 2, bars["bar5"].Order)
	assert.False(t, bars["bar1"].HideEmpty)
	assert.True(t, bars["bar2"].HideEmpty)

	for id, bar := range bars {
		assert.Equal(t, id, bar.ID)
		assert.NotEmpty(t, bar.Label)
		assert.Equal(t, entities.BarVisibilityAlways, bar.OwnerVisibility)
	}
}

func TestInitPrototypeToken(t *testing.T) {
	t.Run("vault hunter", func(t *testing.T) {
		a := &entities.Actor{Type: entities.ActorTypeVaultHunter}

		err := token.InitPrototypeToken(a, &entities.WorldSettings{UsePlayerBone: true})
		require.NoError(t, err)

		tok := a.PrototypeToken
		require.NotNil(t, tok)
		assert.Equal(t, "attributes.hps.flesh", tok.Bar1.Attribute)
		assert.Equal(t, "attributes.hps.shield", tok.Bar2.Attribute)
		assert.Equal(t, 15, tok.DimSight)
		assert.True(t, tok.Vision)
		assert.True(t, tok.ActorLink)

		require.NotNil(t, tok.Flags.Barbrawl)
		assert.Contains(t, tok.Flags.Barbrawl.ResourceBars, "bar4")
		assert.NotContains(t, tok.Flags.Barbrawl.ResourceBars, "bar3")
	})

	t.Run("npc", func(t *testing.T) {
		a := &entities.Actor{Type: entities.ActorTypeNPC}

		err := token.InitPrototypeToken(a, entities.DefaultWorldSettings())
		require.NoError(t, err)

		tok := a.PrototypeToken
		assert.False(t, tok.Vision)
		assert.False(t, tok.ActorLink)
		assert.Equal(t, 15, tok.DimSight)
		assert.Equal(t, "attributes.hps.armor", tok.Flags.Barbrawl.ResourceBars["bar3"].Attribute)
	})

	t.Run("invalid input", func(t *testing.T) {
		assert.True(t, dnderr.IsInvalidArgument(token.InitPrototypeToken(nil, nil)))
		assert.True(t, dnderr.IsInvalidArgument(token.InitPrototypeToken(&entities.Actor{Type: "car"}, nil)))
	})
}
