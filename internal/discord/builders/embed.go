package builders

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord limits
const (
	maxFieldValue  = 1024
	maxDescription = 4096
)

// Common embed colors
const (
	ColorKinetic = 0xc8a165
	ColorError   = 0xd32f2f
	ColorInfo    = 0x1f8fd6
	ColorVault   = 0xf2b233
)

// EmbedBuilder provides a fluent API for building Discord embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type: discordgo.EmbedTypeRich,
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the description, truncated to Discord's limit
func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = truncate(description, maxDescription)
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Timestamp(ts time.Time) *EmbedBuilder {
	if !ts.IsZero() {
		b.embed.Timestamp = ts.Format(time.RFC3339)
	}
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	if text != "" {
		b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	}
	return b
}

func (b *EmbedBuilder) Author(name string) *EmbedBuilder {
	if name != "" {
		b.embed.Author = &discordgo.MessageEmbedAuthor{Name: name}
	}
	return b
}

func (b *EmbedBuilder) Thumbnail(url string) *EmbedBuilder {
	if url != "" {
		b.embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}
	return b
}

// Field adds a field; empty values are replaced with a dash
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if value == "" {
		value = "-"
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  truncate(value, maxFieldValue),
		Inline: inline,
	})
	return b
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// ErrorEmbed creates a pre-styled error embed
func ErrorEmbed(title, description string) *EmbedBuilder {
	return NewEmbed().
		Title("❌ " + title).
		Description(description).
		Color(ColorError)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
