package config

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE_BACKEND.
const (
	StoreBackendPostgres = "postgres"
	StoreBackendSQLite   = "sqlite"
	StoreBackendMemory   = "memory"
)

const (
	defaultJWTSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultGeminiModel = "gemini-3-flash-preview"
	defaultStaffSecret = "venda"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StoreBackend  string
	DatabaseURL   string
	EnableDBCheck bool
	SQLitePath    string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	SessionCookieName string
	LoginRateLimit    string

	// Login secrets. A *Hash value, when set, wins over the plaintext one.
	AdminSecret     string
	AdminSecretHash string
	StaffSecret     string
	StaffSecretHash string

	GeminiAPIKey   string
	GeminiModel    string
	GeminiEndpoint string

	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	CORSAllowedOrigins []string
}

// Option overrides a default before the environment is read.
type Option func(v *viper.Viper)

// WithDefault changes the default of key. Environment values still win.
func WithDefault(key string, value any) Option {
	return func(v *viper.Viper) {
		v.SetDefault(key, value)
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig(opts ...Option) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", "")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("SQLITE_PATH", defaultSQLitePath())
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "cashclose")
	v.SetDefault("SESSION_COOKIE_NAME", "cashclose_session")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("ADMIN_SECRET", "")
	v.SetDefault("ADMIN_SECRET_HASH", "")
	v.SetDefault("STAFF_SECRET", defaultStaffSecret)
	v.SetDefault("STAFF_SECRET_HASH", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("API_KEY", "")
	v.SetDefault("GEMINI_MODEL", defaultGeminiModel)
	v.SetDefault("GEMINI_ENDPOINT", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "cashclose")
	v.SetDefault("AMQP_QUEUE", "cashclose.closings")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	for _, opt := range opts {
		opt(v)
	}
	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		LoginRateLimit:    v.GetString("LOGIN_RATE_LIMIT"),
		AdminSecret:       v.GetString("ADMIN_SECRET"),
		AdminSecretHash:   v.GetString("ADMIN_SECRET_HASH"),
		StaffSecret:       v.GetString("STAFF_SECRET"),
		StaffSecretHash:   v.GetString("STAFF_SECRET_HASH"),
		GeminiAPIKey:      v.GetString("GEMINI_API_KEY"),
		GeminiModel:       v.GetString("GEMINI_MODEL"),
		GeminiEndpoint:    v.GetString("GEMINI_ENDPOINT"),
		AMQPURL:           v.GetString("AMQP_URL"),
		AMQPExchange:      v.GetString("AMQP_EXCHANGE"),
		AMQPQueue:         v.GetString("AMQP_QUEUE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.LogLevel = parseLogLevel(v.GetString("LOG_LEVEL"))

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(v.GetString("STORE_BACKEND")))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = StoreBackendMemory
		if cfg.DatabaseURL != "" {
			cfg.StoreBackend = StoreBackendPostgres
		}
	}
	if cfg.StoreBackend == StoreBackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.AdminSecret == "" && cfg.AdminSecretHash == "" {
		log.Println("Warning: ADMIN_SECRET not set. Admin login is disabled.")
	}

	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = v.GetString("API_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Closing analysis will return a configuration notice.")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = defaultGeminiModel
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", s)
		return slog.LevelInfo
	}
	return level
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cashclose.db"
	}
	return filepath.Join(dir, "cashclose", "cashclose.db")
}
