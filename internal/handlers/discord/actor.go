package discord

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/bnb-bot-discord/internal/entities"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/actor"
)

// statOrder is the display order of the core stats
var statOrder = []string{
	entities.StatAccuracy,
	entities.StatDamage,
	entities.StatSpeed,
	entities.StatMastery,
}

func (h *Handler) handleActorCreate(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	actorType := entities.ActorType(ctx.GetStringParam("type"))
	if actorType == "" {
		actorType = entities.ActorTypeVaultHunter
	}

	realmID := ctx.GetStringParam("realm")
	if realmID == "" {
		realmID = ctx.GuildID
	}

	a, err := h.actors.CreateActor(ctx.Context, &actor.CreateActorInput{
		Name:    ctx.GetStringParam("name"),
		Type:    actorType,
		OwnerID: ctx.UserID,
		RealmID: realmID,
	})
	if err != nil {
		return nil, err
	}

	ctx.Logger.Info("actor created",
		zap.String("actor_id", a.ID),
		zap.String("realm_id", a.RealmID),
		zap.String("user_id", ctx.UserID),
	)

	embed := actorEmbed(a)
	embed.Title = "Created " + a.Name
	return core.Respond(core.NewEmbedResponse(embed)), nil
}

func (h *Handler) handleActorShow(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	a, err := h.actors.GetActor(ctx.Context, ctx.GetStringParam("id"))
	if err != nil {
		return nil, err
	}

	return core.Respond(core.NewEmbedResponse(actorEmbed(a))), nil
}

func (h *Handler) handleActorRollData(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	actorID := ctx.GetStringParam("id")
	data, err := h.actors.GetRollData(ctx.Context, actorID)
	if err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to encode roll data for actor %s", actorID)
	}

	embed := builders.NewEmbed().
		Title("Roll data").
		Description("```json\n" + string(raw) + "\n```").
		Color(builders.ColorInfo).
		Build()

	return core.Respond(core.NewEmbedResponse(embed).AsEphemeral()), nil
}

// actorEmbed summarizes a prepared actor
func actorEmbed(a *entities.Actor) *discordgo.MessageEmbed {
	b := builders.NewEmbed().
		Title(a.Name).
		Description(actorSubtitle(a)).
		Color(builders.ColorVault).
		Footer("ID: " + a.ID)

	sys := a.System
	if sys == nil {
		return b.Build()
	}

	if len(sys.Stats) > 0 {
		lines := make([]string, 0, len(sys.Stats))
		for _, key := range statOrder {
			stat, ok := sys.Stats[key]
			if !ok || stat == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf("**%s** %d (mod %+d)", strings.ToUpper(key), stat.Value, stat.Mod))
		}
		b.Field("Stats", strings.Join(lines, "\n"), true)
	}

	if len(sys.Checks) > 0 {
		keys := make([]string, 0, len(sys.Checks))
		for key := range sys.Checks {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, key := range keys {
			check := sys.Checks[key]
			if check == nil {
				continue
			}
			lines = append(lines, fmt.Sprintf("%s (%s) %+d", key, strings.ToUpper(check.Stat), check.Total))
		}
		b.Field("Checks", strings.Join(lines, "\n"), true)
	}

	if attrs := sys.Attributes; attrs != nil && len(attrs.Hps) > 0 {
		b.Field("Health", healthSummary(attrs.Hps), false)
	}

	return b.Build()
}

func actorSubtitle(a *entities.Actor) string {
	parts := []string{string(a.Type)}
	if sys := a.System; sys != nil {
		if sys.Attributes != nil && sys.Attributes.Level != nil {
			parts = append(parts, fmt.Sprintf("level %d", sys.Attributes.Level.Value))
		}
		if sys.Class != nil && sys.Class.Name != "" {
			parts = append(parts, sys.Class.Name)
		}
		if sys.Archetypes != nil && sys.Archetypes.Archetype1 != nil && sys.Archetypes.Archetype1.Name != "" {
			parts = append(parts, sys.Archetypes.Archetype1.Name)
		}
	}
	return strings.Join(parts, " · ")
}

func healthSummary(hps map[string]*entities.HP) string {
	keys := make([]string, 0, len(hps))
	for key := range hps {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		hp := hps[key]
		if hp == nil || hp.Max <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %d/%d", key, hp.Value, hp.Max))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " · ")
}
