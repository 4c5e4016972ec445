package builders

import (
	"github.com/bwmarrin/discordgo"
)

const maxPerRow = 5

// ComponentBuilder lays buttons out into action rows
type ComponentBuilder struct {
	rows       []discordgo.MessageComponent
	currentRow []discordgo.MessageComponent
}

func NewComponentBuilder() *ComponentBuilder {
	return &ComponentBuilder{}
}

// Button adds a button with a prebuilt custom ID to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, customID string) *ComponentBuilder {
	b.add(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
	})
	return b
}

// EmojiButton adds a button with an emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, customID string) *ComponentBuilder {
	b.add(discordgo.Button{
		Label:    label,
		Style:    style,
		CustomID: customID,
		Emoji:    &discordgo.ComponentEmoji{Name: emoji},
	})
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{Components: b.currentRow})
		b.currentRow = nil
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

func (b *ComponentBuilder) add(c discordgo.MessageComponent) {
	if len(b.currentRow) >= maxPerRow {
		b.NewRow()
	}
	b.currentRow = append(b.currentRow, c)
}
