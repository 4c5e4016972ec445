package discord

import (
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/damage"
)

// CommandRegistrar is the part of *discordgo.Session used to register commands
type CommandRegistrar interface {
	ApplicationCommandCreate(appID string, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

var zero = 0.0

// Commands returns the slash command definitions
func Commands() []*discordgo.ApplicationCommand {
	actorOption := func(name string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        name,
			Description: "Actor ID",
			Required:    true,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandName,
			Description: "Bunkers & Badasses commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "actor",
					Description: "Actor management commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "create",
							Description: "Create a new actor",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Actor name",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "type",
									Description: "Actor type (defaults to vault hunter)",
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Vault Hunter", Value: string(entities.ActorTypeVaultHunter)},
										{Name: "NPC", Value: string(entities.ActorTypeNPC)},
									},
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "realm",
									Description: "Realm ID (defaults to this server)",
								},
							},
						},
						{
							Name:        "show",
							Description: "Show an actor",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options:     []*discordgo.ApplicationCommandOption{actorOption("id")},
						},
						{
							Name:        "rolldata",
							Description: "Show the data formulas can reference",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options:     []*discordgo.ApplicationCommandOption{actorOption("id")},
						},
					},
				},
				{
					Name:        "melee",
					Description: "Post a melee card with a damage button",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						actorOption("actor"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "attack",
							Description: "Attack type for level-up bonuses (defaults to melee)",
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Melee", Value: string(damage.AttackTypeMelee)},
								{Name: "Shooting", Value: string(damage.AttackTypeShooting)},
								{Name: "Grenade", Value: string(damage.AttackTypeGrenade)},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hits",
							Description: "Number of hits",
							MinValue:    &zero,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "crits",
							Description: "Number of crits",
							MinValue:    &zero,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "plus_one_dice",
							Description: "Roll the melee dice one extra time",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "double_damage",
							Description: "Double the total damage",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "crit",
							Description: "Add a crit die",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "crit_hit",
							Description: "The attack roll was a natural 20",
						},
					},
				},
				{
					Name:        "roll",
					Description: "Roll a formula with an actor's data, e.g. 1d20 + @acc.mod",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						actorOption("actor"),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "formula",
							Description: "Dice formula",
							Required:    true,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands creates the slash commands for an application. An empty
// guildID registers them globally.
func RegisterCommands(s CommandRegistrar, appID, guildID string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return dnderr.Wrapf(err, "failed to create command %s", cmd.Name)
		}
		logger.Info("registered command",
			zap.String("command", cmd.Name),
			zap.String("guild_id", guildID),
		)
	}

	return nil
}
