package builders_test

import (
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/builders"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder(t *testing.T) {
	ts := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	embed := builders.NewEmbed().
		Title("Zer0 deals a blow.").
		Description(strings.Repeat("x", 5000)).
		Color(builders.ColorKinetic).
		Author("Zer0").
		Footer("").
		Thumbnail("https://assets.example/melee.png").
		Field("Kinetic", "", true).
		Timestamp(ts).
		Build()

	assert.Equal(t, "Zer0 deals a blow.", embed.Title)
	assert.Len(t, []rune(embed.Description), 4096)
	assert.Equal(t, "Zer0", embed.Author.Name)
	assert.Nil(t, embed.Footer)
	assert.Equal(t, "https://assets.example/melee.png", embed.Thumbnail.URL)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "-", embed.Fields[0].Value)
	assert.Equal(t, "2026-10-19T12:00:00Z", embed.Timestamp)
}

func TestComponentBuilder_WrapsRows(t *testing.T) {
	b := builders.NewComponentBuilder()
	for i := 0; i < 7; i++ {
		b.Button("b", discordgo.PrimaryButton, "x:y")
	}

	rows := b.Build()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, 5)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 2)
}

func TestComponentBuilder_EmojiButton(t *testing.T) {
	rows := builders.NewComponentBuilder().
		EmojiButton("Roll Damage", "🎲", discordgo.DangerButton, "damage:melee:a").
		Build()

	require.Len(t, rows, 1)
	btn := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
	assert.Equal(t, "damage:melee:a", btn.CustomID)
	assert.Equal(t, "🎲", btn.Emoji.Name)
}
