package middleware

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
)

// LoggingMiddleware logs each interaction with its duration and outcome
func LoggingMiddleware(logger *zap.Logger) core.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx)

			fields := []zap.Field{
				zap.String("interaction", core.Describe(ctx)),
				zap.String("user_id", ctx.UserID),
				zap.String("guild_id", ctx.GuildID),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Info("interaction failed", append(fields, zap.Error(err))...)
				return result, err
			}

			logger.Debug("interaction handled", fields...)
			return result, nil
		})
	}
}
