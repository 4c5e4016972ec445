package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	paramGroup      = "subcommand_group"
	paramSubcommand = "subcommand"
)

// InteractionContext wraps a Discord interaction with parsed parameters
type InteractionContext struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	UserID    string
	GuildID   string
	ChannelID string

	Context context.Context
	Logger  *zap.Logger

	params map[string]any
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, logger *zap.Logger) *InteractionContext {
	if logger == nil {
		logger = zap.NewNop()
	}

	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		Logger:      logger,
		params:      make(map[string]any),
	}

	if i.Member != nil && i.Member.User != nil {
		ic.UserID = i.Member.User.ID
	} else if i.User != nil {
		ic.UserID = i.User.ID
	}
	ic.GuildID = i.GuildID
	ic.ChannelID = i.ChannelID

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(i.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.params["custom_id"] = i.MessageComponentData().CustomID
	}

	return ic
}

func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.params[paramGroup] = opt.Name
			ic.parseOptions(opt.Options)
		case discordgo.ApplicationCommandOptionSubCommand:
			ic.params[paramSubcommand] = opt.Name
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) any {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if v, ok := ic.params[name].(string); ok {
		return v
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0
func (ic *InteractionContext) GetIntParam(name string) int {
	switch v := ic.params[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// GetBoolParam retrieves a bool parameter or returns false
func (ic *InteractionContext) GetBoolParam(name string) bool {
	v, _ := ic.params[name].(bool)
	return v
}

func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction != nil && ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// GetCustomID returns the custom ID for component interactions
func (ic *InteractionContext) GetCustomID() string {
	return ic.GetStringParam("custom_id")
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommandGroup returns the subcommand group name if present
func (ic *InteractionContext) GetSubcommandGroup() string {
	return ic.GetStringParam(paramGroup)
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam(paramSubcommand)
}

// Route returns the command path, e.g. "actor/create" or "melee"
func (ic *InteractionContext) Route() string {
	group, sub := ic.GetSubcommandGroup(), ic.GetSubcommand()
	switch {
	case group != "" && sub != "":
		return group + "/" + sub
	case sub != "":
		return sub
	default:
		return group
	}
}
