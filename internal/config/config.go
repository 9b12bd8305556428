package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Log         LogConfig         `yaml:"log"`
	SRS         SRSConfig         `yaml:"srs"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Kanji       KanjiConfig       `yaml:"kanji"`
	Annotate    AnnotateConfig    `yaml:"annotate"`
	Translation TranslationConfig `yaml:"translation"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"65536"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"kanjilens"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	GoogleClientID   string        `yaml:"google_client_id"   env:"AUTH_GOOGLE_CLIENT_ID"`
}

// GoogleEnabled reports whether Google sign-in is configured.
func (c AuthConfig) GoogleEnabled() bool {
	return c.GoogleClientID != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds SM-2 scheduling parameters.
type SRSConfig struct {
	InitialEaseFactor float64 `yaml:"initial_ease_factor" env:"SRS_INITIAL_EASE"        env-default:"2.5"`
	MinEaseFactor     float64 `yaml:"min_ease_factor"     env:"SRS_MIN_EASE"            env-default:"1.3"`
	PassingGrade      int     `yaml:"passing_grade"       env:"SRS_PASSING_GRADE"       env-default:"3"`
	FirstIntervalDays float64 `yaml:"first_interval"      env:"SRS_FIRST_INTERVAL"      env-default:"1"`
	SecondInterval    float64 `yaml:"second_interval"     env:"SRS_SECOND_INTERVAL"     env-default:"6"`
	MaxWriteAttempts  int     `yaml:"max_write_attempts"  env:"SRS_MAX_WRITE_ATTEMPTS"  env-default:"3"`
	DueQueueLimit     int     `yaml:"due_queue_limit"     env:"SRS_DUE_QUEUE_LIMIT"     env-default:"20"`
	DueQueueMaxLimit  int     `yaml:"due_queue_max_limit" env:"SRS_DUE_QUEUE_MAX_LIMIT" env-default:"200"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"10"`
	APIPerMinute    int           `yaml:"api_per_minute"   env:"RATE_LIMIT_API_PER_MINUTE"   env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// KanjiConfig holds the kanji dictionary provider settings.
type KanjiConfig struct {
	BaseURL       string        `yaml:"base_url"       env:"KANJI_API_BASE_URL"    env-default:"https://kanjiapi.dev"`
	Timeout       time.Duration `yaml:"timeout"        env:"KANJI_API_TIMEOUT"     env-default:"5s"`
	CacheSize     int           `yaml:"cache_size"     env:"KANJI_CACHE_SIZE"      env-default:"4096"`
	CacheTTL      time.Duration `yaml:"cache_ttl"      env:"KANJI_CACHE_TTL"       env-default:"24h"`
	Concurrency   int           `yaml:"concurrency"    env:"KANJI_API_CONCURRENCY" env-default:"8"`
	LookupTimeout time.Duration `yaml:"lookup_timeout" env:"KANJI_LOOKUP_TIMEOUT"  env-default:"15s"`
}

// AnnotateConfig bounds text annotation requests.
type AnnotateConfig struct {
	MaxRunes int `yaml:"max_runes" env:"ANNOTATE_MAX_RUNES" env-default:"2000"`
}

// Translation providers.
const (
	TranslationNone      = "none"
	TranslationAnthropic = "anthropic"
	TranslationOpenAI    = "openai"
)

// TranslationConfig selects and configures the generative-AI translator.
type TranslationConfig struct {
	Provider  string        `yaml:"provider"   env:"TRANSLATION_PROVIDER"   env-default:"none"`
	APIKey    string        `yaml:"api_key"    env:"TRANSLATION_API_KEY"`
	Model     string        `yaml:"model"      env:"TRANSLATION_MODEL"`
	BaseURL   string        `yaml:"base_url"   env:"TRANSLATION_BASE_URL"`
	MaxTokens int64         `yaml:"max_tokens" env:"TRANSLATION_MAX_TOKENS" env-default:"1024"`
	Timeout   time.Duration `yaml:"timeout"    env:"TRANSLATION_TIMEOUT"    env-default:"20s"`
}

// NormalizedProvider returns the provider name lower-cased and trimmed.
func (c TranslationConfig) NormalizedProvider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
