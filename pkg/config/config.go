package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string

	// Scoring capability configuration
	ScoringAPIURL  string
	ScoringTimeout time.Duration

	// Default tier thresholds
	ThresholdExcellent float64
	ThresholdGood      float64
	ThresholdPartial   float64

	// Batch evaluation configuration
	BatchConcurrency int
	BatchTimeout     time.Duration
	MaxBatchSize     int

	// Path to an optional YAML file with domain override profiles
	DomainProfilesPath string

	// Security configuration
	AllowedOrigins string
	TrustedProxies string
	MaxRequestSize int64
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		ScoringAPIURL:  getEnv("SCORING_API_URL", ""),
		ScoringTimeout: time.Duration(getEnvAsInt("SCORING_TIMEOUT_SECONDS", 10)) * time.Second,

		ThresholdExcellent: getEnvAsFloat("THRESHOLD_EXCELLENT", 0.85),
		ThresholdGood:      getEnvAsFloat("THRESHOLD_GOOD", 0.70),
		ThresholdPartial:   getEnvAsFloat("THRESHOLD_PARTIAL", 0.50),

		BatchConcurrency: getEnvAsInt("BATCH_CONCURRENCY", 8),
		BatchTimeout:     time.Duration(getEnvAsInt("BATCH_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxBatchSize:     getEnvAsInt("MAX_BATCH_SIZE", 100),

		DomainProfilesPath: getEnv("DOMAIN_PROFILES_PATH", ""),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		TrustedProxies: getEnv("TRUSTED_PROXIES", ""),
		MaxRequestSize: getEnvAsInt64("MAX_REQUEST_SIZE", 1*1024*1024), // 1MB default
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasScoringEndpoint returns true if a scoring capability endpoint is configured
func (c *Config) HasScoringEndpoint() bool {
	return c.ScoringAPIURL != ""
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return []string{}
	}
	return strings.Split(c.AllowedOrigins, ",")
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return []string{} // No trusted proxies by default
	}
	return strings.Split(c.TrustedProxies, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
