package middleware_test

import (
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/middleware"
	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecoverMiddleware(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(obs)

	h := middleware.RecoverMiddleware(logger)(core.HandlerFunc(func(*core.InteractionContext) (*core.HandlerResult, error) {
		panic("boom")
	}))

	ctx := core.NewTestInteractionContext().AsCommand("bnb", "roll")
	result, err := h.Handle(ctx.InteractionContext)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, dnderr.CodeInternal, dnderr.GetCode(err))
	assert.Equal(t, 1, logs.FilterMessage("handler panicked").Len())
}

func TestLoggingMiddleware(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(obs)

	ok := middleware.LoggingMiddleware(logger)(core.HandlerFunc(func(*core.InteractionContext) (*core.HandlerResult, error) {
		return core.Respond(core.NewResponse("ok")), nil
	}))
	failing := middleware.LoggingMiddleware(logger)(core.HandlerFunc(func(*core.InteractionContext) (*core.HandlerResult, error) {
		return nil, dnderr.NotFound("gone")
	}))

	ctx := core.NewTestInteractionContext().AsCommand("bnb", "actor", "show")

	_, err := ok.Handle(ctx.InteractionContext)
	require.NoError(t, err)
	_, err = failing.Handle(ctx.InteractionContext)
	require.Error(t, err)

	handled := logs.FilterMessage("interaction handled").All()
	require.Len(t, handled, 1)
	assert.Equal(t, "bnb/actor/show", handled[0].ContextMap()["interaction"])
	assert.Equal(t, 1, logs.FilterMessage("interaction failed").Len())
}
