package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one route pattern.
type EndpointConfig struct {
	Path   string        // Path prefix; a trailing "/" matches any sub-path
	Method string        // HTTP method
	Limit  int           // Requests per window
	Window time.Duration // Refill window
	Burst  int           // Burst capacity, defaults to Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

const envPrefix = "SKILLMATCH_RATE_LIMIT_"

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool(envPrefix+"ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt(envPrefix+"DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration(envPrefix+"DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration(envPrefix+"CLEANUP_INTERVAL", 5*time.Minute),
		IdleTimeout:     getEnvDuration(envPrefix+"IDLE_TIMEOUT", time.Hour),
		Whitelist:       parseIPList(os.Getenv(envPrefix + "WHITELIST")),
		Blacklist:       parseIPList(os.Getenv(envPrefix + "BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Ranking reads every posting or candidate from the database
		{Path: "/candidates/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/job-postings/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},

		// Assessment writes
		{Path: "/candidates/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/candidates/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},

		// Stateless scoring
		{Path: "/skills/extract", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/jobs/classify", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Path: "/match", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
