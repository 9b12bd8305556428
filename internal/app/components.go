package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/kanjilens-backend/internal/adapter/furigana"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres"
	reviewrepo "github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres/review"
	userrepo "github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/provider/kanjiapi"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/provider/translate"
	authpkg "github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/config"
	authsvc "github.com/heartmarshall/kanjilens-backend/internal/service/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review/sm2"
	"github.com/heartmarshall/kanjilens-backend/internal/service/text"
	"github.com/heartmarshall/kanjilens-backend/internal/transport/middleware"
	"github.com/heartmarshall/kanjilens-backend/internal/transport/rest"
)

// components holds everything built from the configuration that needs
// releasing on shutdown, plus the root HTTP handler.
type components struct {
	handler http.Handler
	limiter *middleware.RateLimiter
}

// Close stops background work started by the components.
func (c *components) Close() {
	if c.limiter != nil {
		c.limiter.Stop()
	}
}

// newComponents wires repositories, providers, services and transport.
func newComponents(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*components, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Repositories.
	txm := postgres.NewTxManager(pool)
	reviews := reviewrepo.New(pool)
	users := userrepo.New(pool)

	// External providers.
	annotator, err := furigana.New(logger)
	if err != nil {
		return nil, fmt.Errorf("furigana: %w", err)
	}
	kanjiProvider := kanjiapi.NewProvider(cfg.Kanji.BaseURL, cfg.Kanji.Timeout, logger)
	translator, err := translate.New(cfg.Translation, logger)
	if err != nil {
		return nil, err
	}
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	reviewService := review.NewService(logger, reviews, reviewConfig(cfg.SRS), review.NewMetrics(reg))
	textService := text.NewService(logger, annotator, kanjiProvider, translator, textConfig(cfg))
	authService := authsvc.NewService(logger, users, txm, googleVerifier(cfg.Auth, logger), jwtMgr, cfg.Auth)

	// Transport.
	maxBody := cfg.Server.MaxBodyBytes
	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger, maxBody),
		Reviews: rest.NewReviewHandler(reviewService, logger, maxBody),
		Text:    rest.NewTextHandler(textService, logger, maxBody),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	c := &components{}
	opts := rest.RouterOptions{}
	var httpMetrics *middleware.HTTPMetrics
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewHTTPMetrics(reg)
		opts.Metrics = httpMetrics
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	var apiLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		c.limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		apiLimit = c.limiter.Limit("api", cfg.RateLimit.APIPerMinute)
		opts.AuthLimit = c.limiter.Limit("auth", cfg.RateLimit.AuthPerMinute)
	}

	var inFlight middleware.Middleware
	if httpMetrics != nil {
		inFlight = httpMetrics.InFlight
	}

	c.handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		inFlight,
		middleware.SecurityHeaders,
		middleware.CORS(cfg.CORS),
		apiLimit,
		middleware.Auth(authService),
	)(rest.NewRouter(handlers, opts))

	return c, nil
}

func reviewConfig(cfg config.SRSConfig) review.Config {
	return review.Config{
		Params: sm2.Parameters{
			InitialEase:    cfg.InitialEaseFactor,
			MinEase:        cfg.MinEaseFactor,
			PassingQuality: sm2.Quality(cfg.PassingGrade),
			FirstInterval:  cfg.FirstIntervalDays,
			SecondInterval: cfg.SecondInterval,
		},
		MaxWriteAttempts: cfg.MaxWriteAttempts,
		DefaultDueLimit:  cfg.DueQueueLimit,
		MaxDueLimit:      cfg.DueQueueMaxLimit,
	}
}

func textConfig(cfg *config.Config) text.Config {
	return text.Config{
		MaxRunes:          cfg.Annotate.MaxRunes,
		LookupConcurrency: cfg.Kanji.Concurrency,
		CacheSize:         cfg.Kanji.CacheSize,
		CacheTTL:          cfg.Kanji.CacheTTL,
		LookupTimeout:     cfg.Kanji.LookupTimeout,
	}
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (*authpkg.OAuthIdentity, error)
}

// googleVerifier returns a nil interface when Google sign-in is not
// configured, which the auth service reports as unavailable.
func googleVerifier(cfg config.AuthConfig, logger *slog.Logger) idTokenVerifier {
	if !cfg.GoogleEnabled() {
		return nil
	}
	return google.NewVerifier(cfg.GoogleClientID, logger)
}
