package rest

import (
	"net/http"

	"github.com/heartmarshall/kanjilens-backend/internal/transport/middleware"
)

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Reviews *ReviewHandler
	Text    *TextHandler
	Health  *HealthHandler
}

// RouterOptions configures the optional parts of the router.
type RouterOptions struct {
	// Metrics instruments every route when set.
	Metrics *middleware.HTTPMetrics
	// MetricsHandler is served at MetricsPath when set.
	MetricsHandler http.Handler
	MetricsPath    string
	// AuthLimit throttles the credential endpoints on top of the global limit.
	AuthLimit middleware.Middleware
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	mux := http.NewServeMux()

	handle := func(pattern string, handler http.Handler, mws ...middleware.Middleware) {
		handler = middleware.Chain(mws...)(handler)
		if opts.Metrics != nil {
			handler = opts.Metrics.Route(pattern, handler)
		}
		mux.Handle(pattern, handler)
	}
	fn := func(f http.HandlerFunc) http.Handler { return f }

	// Probes.
	handle("GET /live", fn(h.Health.Live))
	handle("GET /ready", fn(h.Health.Ready))
	handle("GET /health", fn(h.Health.Health))
	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, opts.MetricsHandler)
	}

	// Accounts.
	handle("POST /api/auth/register", fn(h.Auth.Register), opts.AuthLimit)
	handle("POST /api/auth/login", fn(h.Auth.Login), opts.AuthLimit)
	handle("POST /api/auth/google", fn(h.Auth.Google), opts.AuthLimit)
	handle("GET /api/auth/me", fn(h.Auth.Me), middleware.RequireAuth)

	// Reviews.
	handle("GET /api/reviews/due", fn(h.Reviews.Due), middleware.RequireAuth)
	handle("GET /api/reviews/stats", fn(h.Reviews.Stats), middleware.RequireAuth)
	handle("GET /api/reviews/{kanji}", fn(h.Reviews.Get), middleware.RequireAuth)
	handle("POST /api/reviews/{kanji}", fn(h.Reviews.Record), middleware.RequireAuth)

	// Text.
	handle("POST /api/annotate", fn(h.Text.Annotate))
	handle("GET /api/kanji/{kanji}", fn(h.Text.Kanji))

	return mux
}
