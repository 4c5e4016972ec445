package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/builders"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// MessageSender is the part of *discordgo.Session used to post messages
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordSink posts chat messages to a Discord channel as an embed
type DiscordSink struct {
	sender MessageSender
	logger *zap.Logger
}

type DiscordSinkConfig struct {
	Sender MessageSender
	Logger *zap.Logger
}

func NewDiscordSink(cfg *DiscordSinkConfig) *DiscordSink {
	if cfg == nil || cfg.Sender == nil {
		panic("message sender is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DiscordSink{
		sender: cfg.Sender,
		logger: logger,
	}
}

func (s *DiscordSink) Post(ctx context.Context, msg *Message) (*Message, error) {
	if msg == nil {
		return nil, dnderr.InvalidArgument("message is required")
	}
	if msg.ChannelID == "" {
		return nil, dnderr.InvalidArgument("channel id is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sent, err := s.sender.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{BuildEmbed(msg)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to post message to channel %s", msg.ChannelID).
			WithMeta("channel_id", msg.ChannelID)
	}

	s.logger.Debug("posted chat message",
		zap.String("channel_id", msg.ChannelID),
		zap.String("message_id", sent.ID),
		zap.String("speaker", msg.Speaker.Alias),
	)

	created := *msg
	created.ID = sent.ID
	created.CreatedAt = sent.Timestamp
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now()
	}
	return &created, nil
}

// BuildEmbed renders a chat message as a Discord embed
func BuildEmbed(msg *Message) *discordgo.MessageEmbed {
	color := builders.ColorInfo
	if msg.Type == MessageTypeRoll {
		color = builders.ColorKinetic
	}

	b := builders.NewEmbed().
		Author(msg.Speaker.Alias).
		Title(msg.Flavor).
		Description(msg.Content).
		Color(color).
		Thumbnail(msg.ImageURL)

	if msg.Roll != nil {
		b.Footer(diceSummary(msg.Roll))
	}

	return b.Build()
}

// diceSummary lists each die term with its faces, e.g. "1d8 [5] · 1d12[Crit] [11]"
func diceSummary(r *Roll) string {
	parts := make([]string, 0, len(r.Dice))
	for _, d := range r.Dice {
		if d.Count == 0 {
			continue
		}
		label := d.Notation()
		if d.Flavor != "" {
			label += "[" + d.Flavor + "]"
		}
		parts = append(parts, fmt.Sprintf("%s %v", label, d.Results))
	}
	return strings.Join(parts, " · ")
}
