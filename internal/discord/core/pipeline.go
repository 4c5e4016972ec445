package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	dnderr "github.com/KirkDiggler/bnb-bot-discord/internal/errors"
)

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler turns a handler error into a response
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// Pipeline manages handler registration and execution. The first handler
// that can handle an interaction wins.
type Pipeline struct {
	handlers     []Handler
	middleware   []Middleware
	errorHandler ErrorHandler
	logger       *zap.Logger

	mu sync.RWMutex
}

// NewPipeline creates a new handler pipeline
func NewPipeline(logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		errorHandler: DefaultErrorHandler,
		logger:       logger,
	}
}

// Use adds middleware applied to handlers registered afterwards
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = wrapCanHandle(h, p.middleware[i](wrapped))
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// Execute runs the pipeline for a Discord interaction
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ic := NewInteractionContext(ctx, s, i, p.logger)
	return p.Dispatch(ic, NewDiscordResponder(s, i.Interaction))
}

// Dispatch runs the pipeline for a prepared context and responder
func (p *Pipeline) Dispatch(ic *InteractionContext, responder Responder) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	errorHandler := p.errorHandler
	p.mu.RUnlock()

	for _, handler := range handlers {
		if !handler.CanHandle(ic) {
			continue
		}

		result, err := handler.Handle(ic)
		if err != nil {
			result = errorHandler(ic, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return dnderr.Wrap(err, "failed to send response")
			}
		}
		return nil
	}

	p.logger.Warn("no handler for interaction",
		zap.String("command", ic.GetCommandName()),
		zap.String("route", ic.Route()),
		zap.String("custom_id", ic.GetCustomID()),
	)

	if !responder.HasResponded() {
		return responder.Respond(NewEphemeralResponse("I don't know how to handle that command."))
	}
	return nil
}

func sendResponse(responder Responder, result *HandlerResult) error {
	if result.Deferred || responder.IsDeferred() {
		return responder.Edit(result.Response)
	}
	return responder.Respond(result.Response)
}

// DefaultErrorHandler shows the user-facing message for coded errors and a
// generic message for everything else.
func DefaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	if !dnderr.IsNotFound(err) && !dnderr.IsInvalidArgument(err) && !dnderr.IsValidation(err) {
		ctx.Logger.Error("interaction failed",
			zap.String("route", ctx.Route()),
			zap.String("custom_id", ctx.GetCustomID()),
			zap.Error(err),
		)
	}

	return Respond(NewEphemeralResponse("❌ " + dnderr.UserMessage(err)))
}

// MiddlewareChain creates a single middleware from multiple middleware
func MiddlewareChain(middleware ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(middleware) - 1; i >= 0; i-- {
			next = middleware[i](next)
		}
		return next
	}
}

// wrapCanHandle keeps the routing decision of the inner handler when a
// middleware returns a HandlerFunc.
func wrapCanHandle(inner, wrapped Handler) Handler {
	return &routedHandler{route: inner, Handler: wrapped}
}

type routedHandler struct {
	Handler
	route Handler
}

func (h *routedHandler) CanHandle(ctx *InteractionContext) bool {
	return h.route.CanHandle(ctx)
}
