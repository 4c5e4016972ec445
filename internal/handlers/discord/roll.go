package discord

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/bnb-bot-discord/internal/chat"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// handleRoll evaluates a free formula such as "1d20 + @acc.mod" against an
// actor's roll data and answers with the result.
func (h *Handler) handleRoll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	formula := strings.TrimSpace(ctx.GetStringParam("formula"))
	if formula == "" {
		return nil, dnderr.InvalidArgument("formula is required")
	}

	a, err := h.actors.GetActor(ctx.Context, ctx.GetStringParam("actor"))
	if err != nil {
		return nil, err
	}

	data, err := h.actors.GetRollData(ctx.Context, a.ID)
	if err != nil {
		return nil, err
	}

	res, err := h.evaluator.Evaluate(ctx.Context, formula, data)
	if err != nil {
		return nil, err
	}

	msg := &chat.Message{
		UserID:    ctx.UserID,
		ChannelID: ctx.ChannelID,
		Speaker:   chat.Speaker{ActorID: a.ID, Alias: a.Name},
		Flavor:    a.Name + " rolls " + formula,
		Type:      chat.MessageTypeRoll,
		RollMode:  chat.RollModePublic,
		Roll:      chat.RollFromResult(res),
		Content:   "`" + res.Formula + "` = **" + strconv.Itoa(res.Total) + "**",
	}

	return core.Respond(core.NewEmbedResponse(chat.BuildEmbed(msg))), nil
}
