package core

// Router dispatches one domain's interactions. Slash commands named after the
// domain route by subcommand path; components route by the action in their
// custom ID.
type Router struct {
	domain     string
	handlers   map[string]Handler
	middleware []Middleware
	customIDs  *CustomIDBuilder
}

// NewRouter creates a new domain router
func NewRouter(domain string) *Router {
	return &Router{
		domain:    domain,
		handlers:  make(map[string]Handler),
		customIDs: NewCustomIDBuilder(domain),
	}
}

// Use adds middleware for routes registered afterwards
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) handle(pattern string, handler Handler) *Router {
	wrapped := handler
	for i := len(r.middleware) - 1; i >= 0; i-- {
		wrapped = r.middleware[i](wrapped)
	}
	r.handlers[pattern] = wrapped
	return r
}

// Command registers a handler for a subcommand path such as "actor/create".
// An empty path handles the bare command.
func (r *Router) Command(path string, fn HandlerFunc) *Router {
	return r.handle("cmd:"+path, fn)
}

// Component registers a handler for a component action
func (r *Router) Component(action string, fn HandlerFunc) *Router {
	return r.handle("component:"+action, fn)
}

// CustomIDs returns the custom ID builder for this router's domain
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.customIDs
}

// CanHandle reports whether a route is registered for the interaction
func (r *Router) CanHandle(ctx *InteractionContext) bool {
	_, ok := r.handlers[r.pattern(ctx)]
	return ok
}

// Handle dispatches to the registered route
func (r *Router) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	h, ok := r.handlers[r.pattern(ctx)]
	if !ok {
		return nil, errNoRoute(ctx)
	}
	return h.Handle(ctx)
}

func (r *Router) pattern(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != r.domain {
			return ""
		}
		return "cmd:" + ctx.Route()
	case ctx.IsComponent():
		id, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || id.Domain != r.domain {
			return ""
		}
		return "component:" + id.Action
	default:
		return ""
	}
}
