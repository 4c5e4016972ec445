package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// TestInteractionContext builds an InteractionContext without a Discord session
type TestInteractionContext struct {
	*InteractionContext
}

// NewTestInteractionContext creates a test interaction context
func NewTestInteractionContext() *TestInteractionContext {
	return &TestInteractionContext{
		InteractionContext: &InteractionContext{
			Context:   context.Background(),
			Logger:    zap.NewNop(),
			UserID:    "test-user-123",
			GuildID:   "test-guild-123",
			ChannelID: "test-channel-123",
			params:    make(map[string]any),
		},
	}
}

// WithParam adds a parameter as if it were a command option
func (t *TestInteractionContext) WithParam(key string, value any) *TestInteractionContext {
	t.params[key] = value
	return t
}

func (t *TestInteractionContext) WithUserID(userID string) *TestInteractionContext {
	t.UserID = userID
	return t
}

func (t *TestInteractionContext) WithGuildID(guildID string) *TestInteractionContext {
	t.GuildID = guildID
	return t
}

// AsCommand simulates a slash command. path is the subcommand path, for
// example "actor", "create".
func (t *TestInteractionContext) AsCommand(name string, path ...string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name: name,
			},
		},
	}

	switch len(path) {
	case 1:
		t.params[paramSubcommand] = path[0]
	case 2:
		t.params[paramGroup] = path[0]
		t.params[paramSubcommand] = path[1]
	}
	return t
}

// AsComponent simulates a component interaction
func (t *TestInteractionContext) AsComponent(customID string) *TestInteractionContext {
	t.Interaction = &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
			},
		},
	}
	t.params["custom_id"] = customID
	return t
}

// MockResponder records responses instead of calling Discord
type MockResponder struct {
	DeferCalls   []bool
	Responses    []*Response
	Edits        []*Response
	RespondError error
	Deferred     bool
	Responded    bool
}

func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	m.Deferred = true
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	if m.Responded {
		return m.Edit(response)
	}
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return m.RespondError
}

func (m *MockResponder) Edit(response *Response) error {
	m.Edits = append(m.Edits, response)
	return nil
}

func (m *MockResponder) HasResponded() bool {
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	return m.Deferred
}

// LastResponse returns the last response sent or edited
func (m *MockResponder) LastResponse() *Response {
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	return nil
}
