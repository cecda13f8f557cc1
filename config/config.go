package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// API Configuration
	APIPort        string
	APIHost        string
	APIEnvironment string

	// Redis (optional - catalog caching only)
	RedisURL     string
	RedisEnabled bool

	// Remote data providers (read-only; fallback data is used when unset or failing)
	CampaignSourceURL    string
	LeaderboardSourceURL string
	EventsSourceURL      string
	ProviderTimeoutSecs  int

	// Referral link base
	ReferralBaseURL string

	// Enrollment review simulation delays (seconds)
	ReviewDelaySeconds   int
	ApprovalDelaySeconds int

	// CORS
	CORSAllowedOrigins []string

	// Rate Limiting
	RateLimitRequestsPerMinute int
	RateLimitBurst             int

	// Sentry
	SentryDSN         string
	SentryEnvironment string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		// API
		APIPort:        getEnv("API_PORT", "8080"),
		APIHost:        getEnv("API_HOST", "0.0.0.0"),
		APIEnvironment: getEnv("API_ENVIRONMENT", "development"),

		// Redis
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		RedisEnabled: getEnvAsBool("REDIS_ENABLED", false),

		// Providers
		CampaignSourceURL:    getEnv("CAMPAIGN_SOURCE_URL", ""),
		LeaderboardSourceURL: getEnv("LEADERBOARD_SOURCE_URL", ""),
		EventsSourceURL:      getEnv("EVENTS_SOURCE_URL", ""),
		ProviderTimeoutSecs:  getEnvAsInt("PROVIDER_TIMEOUT_SECONDS", 10),

		// Referral links
		ReferralBaseURL: getEnv("REFERRAL_BASE_URL", "https://snoonu.com/ref"),

		// Review simulation
		ReviewDelaySeconds:   getEnvAsInt("REVIEW_DELAY_SECONDS", 4),
		ApprovalDelaySeconds: getEnvAsInt("APPROVAL_DELAY_SECONDS", 4),

		// CORS
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),

		// Rate Limiting
		RateLimitRequestsPerMinute: getEnvAsInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 60),
		RateLimitBurst:             getEnvAsInt("RATE_LIMIT_BURST", 10),

		// Sentry
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "development"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
