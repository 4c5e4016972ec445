package core

import (
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

func errNoRoute(ctx *InteractionContext) error {
	return dnderr.NotFoundf("no handler for %s", Describe(ctx)).
		WithMeta("custom_id", ctx.GetCustomID())
}

// Describe names the interaction for logs, e.g. "bnb/actor/create" or
// "damage:melee".
func Describe(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if route := ctx.Route(); route != "" {
			return ctx.GetCommandName() + "/" + route
		}
		return ctx.GetCommandName()
	case ctx.IsComponent():
		if id, err := ParseCustomID(ctx.GetCustomID()); err == nil {
			return id.Domain + ":" + id.Action
		}
		return ctx.GetCustomID()
	default:
		return "unknown"
	}
}
