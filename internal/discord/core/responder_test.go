package core_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	mockcore "github.com/KirkDiggler/bnb-bot-discord/internal/discord/core/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscordResponder_Respond(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mockcore.NewMockInteractionSession(ctrl)
	interaction := &discordgo.Interaction{ID: "i-1"}

	session.EXPECT().
		InteractionRespond(interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
			assert.Equal(t, "hello", resp.Data.Content)
			assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			return nil
		})

	r := core.NewDiscordResponder(session, interaction)
	require.NoError(t, r.Respond(core.NewEphemeralResponse("hello")))
	assert.True(t, r.HasResponded())
	assert.False(t, r.IsDeferred())
}

func TestDiscordResponder_UpdateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mockcore.NewMockInteractionSession(ctrl)
	interaction := &discordgo.Interaction{ID: "i-1"}

	session.EXPECT().
		InteractionRespond(interaction, gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
			return nil
		})

	r := core.NewDiscordResponder(session, interaction)
	require.NoError(t, r.Respond(core.NewResponse("updated").AsUpdate()))
}

func TestDiscordResponder_DeferThenRespondEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mockcore.NewMockInteractionSession(ctrl)
	interaction := &discordgo.Interaction{ID: "i-1"}

	gomock.InOrder(
		session.EXPECT().InteractionRespond(interaction, gomock.Any()).Return(nil),
		session.EXPECT().
			InteractionResponseEdit(interaction, gomock.Any()).
			DoAndReturn(func(_ *discordgo.Interaction, edit *discordgo.WebhookEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
				require.NotNil(t, edit.Content)
				assert.Equal(t, "later", *edit.Content)
				return &discordgo.Message{ID: "m-1"}, nil
			}),
	)

	r := core.NewDiscordResponder(session, interaction)
	require.NoError(t, r.Defer(true))
	assert.True(t, r.IsDeferred())

	require.NoError(t, r.Respond(core.NewResponse("later")))

	assert.Error(t, r.Defer(false))
}

func TestDiscordResponder_EditBeforeRespond(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mockcore.NewMockInteractionSession(ctrl)

	r := core.NewDiscordResponder(session, &discordgo.Interaction{})
	assert.Error(t, r.Edit(core.NewResponse("x")))
}

func TestDiscordResponder_RespondError(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mockcore.NewMockInteractionSession(ctrl)
	interaction := &discordgo.Interaction{}

	session.EXPECT().InteractionRespond(interaction, gomock.Any()).Return(errors.New("unknown interaction"))

	r := core.NewDiscordResponder(session, interaction)
	assert.Error(t, r.Respond(core.NewResponse("x")))
	assert.False(t, r.HasResponded())
}
