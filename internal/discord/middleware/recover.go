package middleware

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// RecoverMiddleware converts a handler panic into an internal error so one
// bad interaction cannot take the gateway loop down.
func RecoverMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("handler panicked",
						zap.String("interaction", core.Describe(ctx)),
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					result = nil
					err = dnderr.Internalf("handler panicked: %v", r)
				}
			}()

			return next.Handle(ctx)
		})
	}
}
