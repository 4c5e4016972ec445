package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/builders"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/KirkDiggler/bnb-bot-discord/internal/services/damage"
)

// ActionMelee is the damage button action for kinetic melee damage
const ActionMelee = "melee"

// Melee option flags carried in the button custom ID
const (
	flagPlusOneDice  = 'p'
	flagDoubleDamage = 'd'
	flagCrit         = 'c'
	flagCritHit      = 'h'
	noFlags          = "-"
)

// MeleeButtonID builds the custom ID of a melee "Roll Damage" button:
// damage:melee:<actorID>:<attackType>:<hits>:<crits>:<flags>
func MeleeButtonID(in *damage.MeleeDamageInput) (string, error) {
	return core.NewCustomIDBuilder(DamageDomain).Button(ActionMelee, in.ActorID,
		string(in.AttackType),
		strconv.Itoa(in.Hits),
		strconv.Itoa(in.Crits),
		encodeFlags(in),
	)
}

// ParseMeleeButton reads a melee damage input back from a custom ID.
// Missing or malformed counts are treated as 0.
func ParseMeleeButton(customID string) (*damage.MeleeDamageInput, error) {
	id, err := core.ParseCustomID(customID)
	if err != nil {
		return nil, err
	}
	if id.Domain != DamageDomain || id.Action != ActionMelee {
		return nil, dnderr.InvalidArgumentf("not a melee damage button: %q", customID)
	}
	if id.Target == "" {
		return nil, dnderr.InvalidArgument("melee damage button has no actor")
	}

	in := &damage.MeleeDamageInput{
		ActorID:    id.Target,
		AttackType: damage.AttackType(id.Arg(0)),
		Hits:       atoiOrZero(id.Arg(1)),
		Crits:      atoiOrZero(id.Arg(2)),
	}
	if in.AttackType == "" {
		in.AttackType = damage.AttackTypeMelee
	}
	decodeFlags(id.Arg(3), in)

	return in, nil
}

func encodeFlags(in *damage.MeleeDamageInput) string {
	var b strings.Builder
	if in.PlusOneDice {
		b.WriteRune(flagPlusOneDice)
	}
	if in.DoubleDamage {
		b.WriteRune(flagDoubleDamage)
	}
	if in.Crit {
		b.WriteRune(flagCrit)
	}
	if in.CritHit {
		b.WriteRune(flagCritHit)
	}
	if b.Len() == 0 {
		return noFlags
	}
	return b.String()
}

func decodeFlags(s string, in *damage.MeleeDamageInput) {
	for _, r := range s {
		switch r {
		case flagPlusOneDice:
			in.PlusOneDice = true
		case flagDoubleDamage:
			in.DoubleDamage = true
		case flagCrit:
			in.Crit = true
		case flagCritHit:
			in.CritHit = true
		}
	}
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// handleMelee posts a melee card with a button that rolls the damage
func (h *Handler) handleMelee(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	in := &damage.MeleeDamageInput{
		ActorID:      ctx.GetStringParam("actor"),
		AttackType:   damage.AttackType(ctx.GetStringParam("attack")),
		Hits:         max(ctx.GetIntParam("hits"), 0),
		Crits:        max(ctx.GetIntParam("crits"), 0),
		PlusOneDice:  ctx.GetBoolParam("plus_one_dice"),
		DoubleDamage: ctx.GetBoolParam("double_damage"),
		Crit:         ctx.GetBoolParam("crit"),
		CritHit:      ctx.GetBoolParam("crit_hit"),
	}
	if in.AttackType == "" {
		in.AttackType = damage.AttackTypeMelee
	}
	if !in.AttackType.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown attack type %q", in.AttackType)
	}

	a, err := h.actors.GetActor(ctx.Context, in.ActorID)
	if err != nil {
		return nil, err
	}

	buttonID, err := MeleeButtonID(in)
	if err != nil {
		return nil, err
	}

	embed := builders.NewEmbed().
		Title(a.Name + " readies a melee attack").
		Description(meleeSummary(in)).
		Color(builders.ColorKinetic).
		Field("Melee Dice", a.MeleeDice(), true).
		Footer("ID: " + a.ID).
		Build()

	components := builders.NewComponentBuilder().
		EmojiButton("Roll Damage", "🎲", discordgo.DangerButton, buttonID).
		Build()

	return core.Respond(core.NewEmbedResponse(embed).WithComponents(components...)), nil
}

func meleeSummary(in *damage.MeleeDamageInput) string {
	lines := []string{
		fmt.Sprintf("Attack: **%s**", in.AttackType),
		fmt.Sprintf("Hits: **%d** · Crits: **%d**", in.Hits, in.Crits),
	}

	var opts []string
	if in.PlusOneDice {
		opts = append(opts, "+1 dice")
	}
	if in.DoubleDamage {
		opts = append(opts, "double damage")
	}
	if in.Crit {
		opts = append(opts, "crit")
	}
	if in.CritHit {
		opts = append(opts, "crit hit")
	}
	if len(opts) > 0 {
		lines = append(lines, "Options: "+strings.Join(opts, ", "))
	}
	return strings.Join(lines, "\n")
}

// handleMeleeDamage rolls the damage for a melee card button. The roll is
// posted to the channel by the damage service; the clicker gets a receipt.
func (h *Handler) handleMeleeDamage(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	in, err := ParseMeleeButton(ctx.GetCustomID())
	if err != nil {
		return nil, err
	}
	in.UserID = ctx.UserID
	in.ChannelID = ctx.ChannelID

	out, err := h.damage.RollMelee(ctx.Context, in)
	if err != nil {
		return nil, err
	}

	ctx.Logger.Debug("melee damage button handled",
		zap.String("actor_id", in.ActorID),
		zap.String("formula", out.Formula),
		zap.Int("total", out.Result.Total),
	)

	return core.Respond(core.NewEphemeralResponse(
		fmt.Sprintf("🎲 %s deals **%d** %s damage.", speakerName(out), out.Result.Total, damage.DamageTypeKinetic),
	)), nil
}

func speakerName(out *damage.RollOutput) string {
	if out.Message != nil && out.Message.Speaker.Alias != "" {
		return out.Message.Speaker.Alias
	}
	return "The actor"
}
