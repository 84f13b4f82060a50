package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MixmaxPlaceholderKey is the value shipped in example env files.
const MixmaxPlaceholderKey = "your_key_here"

type Config struct {
	Port                   string
	DashboardSecret        string
	CronSecret             string
	JWTSecret              string
	JWTSessionExpiration   time.Duration
	FrontendURL            string
	AirtableToken          string
	AirtableCounselorToken string
	AirtableBaseURL        string
	AirtableRateLimit      float64
	MixmaxAPIKey           string
	MixmaxBaseURL          string
	MixmaxConcurrency      int
	EngagementCacheBackend string
	EngagementCachePath    string
	MongoDBURI             string
	MongoDBDatabase        string
	GoogleClientID         string
	GoogleClientSecret     string
	GmailRefreshToken      string
	GmailSender            string
	NotifyEmail            string
	HTTPTimeout            time.Duration
	RefreshWorkerEnabled   bool
	LogLevel               string
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	sessionExp, _ := time.ParseDuration(getEnv("JWT_SESSION_EXPIRATION", "12h"))
	httpTimeout, _ := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	rateLimit, _ := strconv.ParseFloat(getEnv("AIRTABLE_RATE_LIMIT", "5"), 64)
	concurrency, _ := strconv.Atoi(getEnv("MIXMAX_CONCURRENCY", "4"))
	workerEnabled, _ := strconv.ParseBool(getEnv("REFRESH_WORKER_ENABLED", "false"))

	return &Config{
		Port:                   getEnv("PORT", "8080"),
		DashboardSecret:        getEnv("DASHBOARD_SECRET", ""),
		CronSecret:             getEnv("CRON_SECRET", ""),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTSessionExpiration:   sessionExp,
		FrontendURL:            getEnv("FRONTEND_URL", "http://localhost:3000"),
		AirtableToken:          getEnv("AIRTABLE_TOKEN", ""),
		AirtableCounselorToken: getEnv("AIRTABLE_COUNSELOR_TOKEN", ""),
		AirtableBaseURL:        getEnv("AIRTABLE_BASE_URL", "https://api.airtable.com/v0"),
		AirtableRateLimit:      rateLimit,
		MixmaxAPIKey:           getEnv("MIXMAX_API_KEY", ""),
		MixmaxBaseURL:          getEnv("MIXMAX_BASE_URL", "https://api.mixmax.com/v1"),
		MixmaxConcurrency:      concurrency,
		EngagementCacheBackend: getEnv("ENGAGEMENT_CACHE_BACKEND", "file"),
		EngagementCachePath:    getEnv("ENGAGEMENT_CACHE_PATH", "data/mixmax-cache.json"),
		MongoDBURI:             getEnv("MONGODB_URI", ""),
		MongoDBDatabase:        getEnv("MONGODB_DATABASE", "partnerdash"),
		GoogleClientID:         getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:     getEnv("GOOGLE_CLIENT_SECRET", ""),
		GmailRefreshToken:      getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailSender:            getEnv("GMAIL_SENDER", ""),
		NotifyEmail:            getEnv("NOTIFY_EMAIL", ""),
		HTTPTimeout:            httpTimeout,
		RefreshWorkerEnabled:   workerEnabled,
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
}

// ConfigurationError reports a credential that is missing or still a placeholder.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s is not set", e.Key)
}

// RequireAirtable checks the read token for the record source.
func (c *Config) RequireAirtable() error {
	if c.AirtableToken == "" {
		return &ConfigurationError{Key: "AIRTABLE_TOKEN"}
	}
	return nil
}

// RequireMixmax checks the engagement feed API key.
func (c *Config) RequireMixmax() error {
	return CheckMixmaxKey(c.MixmaxAPIKey)
}

// CheckMixmaxKey rejects empty and placeholder API keys.
func CheckMixmaxKey(key string) error {
	if key == "" || key == MixmaxPlaceholderKey {
		return &ConfigurationError{Key: "MIXMAX_API_KEY"}
	}
	return nil
}

// RequireGmail checks the credentials used to send the daily digest.
func (c *Config) RequireGmail() error {
	switch {
	case c.GoogleClientID == "":
		return &ConfigurationError{Key: "GOOGLE_CLIENT_ID"}
	case c.GoogleClientSecret == "":
		return &ConfigurationError{Key: "GOOGLE_CLIENT_SECRET"}
	case c.GmailRefreshToken == "":
		return &ConfigurationError{Key: "GMAIL_REFRESH_TOKEN"}
	case c.NotifyEmail == "":
		return &ConfigurationError{Key: "NOTIFY_EMAIL"}
	}
	return nil
}

// CounselorWriteToken returns the token used for partner writes, falling back to the read token.
func (c *Config) CounselorWriteToken() string {
	if c.AirtableCounselorToken != "" {
		return c.AirtableCounselorToken
	}
	return c.AirtableToken
}

// SlogLevel maps LOG_LEVEL onto a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
