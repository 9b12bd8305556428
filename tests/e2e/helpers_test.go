//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kanjilens-backend/internal/adapter/furigana"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres"
	reviewrepo "github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres/review"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/kanjilens-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/provider/kanjiapi"
	"github.com/heartmarshall/kanjilens-backend/internal/adapter/provider/translate"
	authpkg "github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/config"
	authsvc "github.com/heartmarshall/kanjilens-backend/internal/service/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review"
	"github.com/heartmarshall/kanjilens-backend/internal/service/text"
	"github.com/heartmarshall/kanjilens-backend/internal/transport/middleware"
	"github.com/heartmarshall/kanjilens-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// fakeKanjiAPI serves a tiny kanji dictionary in the kanjiapi.dev format.
func fakeKanjiAPI(t *testing.T) *httptest.Server {
	t.Helper()

	entries := map[string]map[string]any{
		"日": {"kanji": "日", "grade": 1, "jlpt": 4, "stroke_count": 4, "meanings": []string{"day", "sun", "Japan"},
			"on_readings": []string{"ニチ", "ジツ"}, "kun_readings": []string{"ひ", "-び", "-か"}, "unicode": "65e5"},
		"本": {"kanji": "本", "grade": 1, "jlpt": 4, "stroke_count": 5, "meanings": []string{"book", "present", "main"},
			"on_readings": []string{"ホン"}, "kun_readings": []string{"もと"}, "unicode": "672c"},
		"語": {"kanji": "語", "grade": 2, "jlpt": 4, "stroke_count": 14, "meanings": []string{"word", "speech", "language"},
			"on_readings": []string{"ゴ"}, "kun_readings": []string{"かた.る", "かた.らう"}, "unicode": "8a9e"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		char, err := url.PathUnescape(strings.TrimPrefix(r.URL.EscapedPath(), "/v1/kanji/"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		entry, ok := entries[char]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entry) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)
	reg := prometheus.NewRegistry()

	// 3. Repositories.
	reviewRepo := reviewrepo.New(pool)
	userRepo := userrepo.New(pool)

	// 4. External providers.
	annotator, err := furigana.New(logger)
	require.NoError(t, err)
	kanjiProvider := kanjiapi.NewProvider(fakeKanjiAPI(t).URL, 5*time.Second, logger)
	translator, err := translate.New(config.TranslationConfig{Provider: config.TranslationNone}, logger)
	require.NoError(t, err)

	// 5. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		PasswordHashCost: 4,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 6. Services. Google sign-in stays disabled.
	authService := authsvc.NewService(logger, userRepo, txm, nil, jwtMgr, authCfg)
	reviewService := review.NewService(logger, reviewRepo, review.DefaultConfig(), review.NewMetrics(reg))
	textService := text.NewService(logger, annotator, kanjiProvider, translator, text.Config{
		MaxRunes:          2000,
		LookupConcurrency: 4,
		CacheSize:         64,
		CacheTTL:          time.Minute,
	})

	// 7. Router + middleware chain.
	httpMetrics := middleware.NewHTTPMetrics(reg)
	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger, 0),
		Reviews: rest.NewReviewHandler(reviewService, logger, 0),
		Text:    rest.NewTextHandler(textService, logger, 0),
		Health:  rest.NewHealthHandler(pool, "test-version"),
	}, rest.RouterOptions{
		Metrics:        httpMetrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		MetricsPath:    "/metrics",
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		httpMetrics.InFlight,
		middleware.SecurityHeaders,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request and decodes the JSON response into a map.
func restJSON(t *testing.T, ts *testServer, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// reviewPath returns the escaped review URL for a kanji.
func reviewPath(kanji string) string {
	return "/api/reviews/" + url.PathEscape(kanji)
}

// ---------------------------------------------------------------------------
// createTestUserAndGetToken seeds a user directly into the DB and returns a
// valid JWT access token for that user along with the user's ID.
// ---------------------------------------------------------------------------

func createTestUserAndGetToken(t *testing.T, ts *testServer) (string, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)

	tok, _, err := ts.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok, user.ID.String()
}

// registerUser registers through the API and returns the access token.
func registerUser(t *testing.T, ts *testServer, prefix string) string {
	t.Helper()

	suffix := fmt.Sprintf("%d", time.Now().UnixNano())
	status, body := restJSON(t, ts, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    prefix + "-" + suffix + "@example.com",
		"username": prefix + suffix[len(suffix)-6:],
		"password": "securepassword123",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)
	return body["accessToken"].(string)
}
