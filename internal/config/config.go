package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendURL      string
	RedisAddr       string
	RedisPassword   string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	CookieSecure    bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty REDIS_ADDR selects the in-memory session store.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BackendURL:      envOrDefault("BACKEND_URL", "http://localhost:8000"),
		RedisAddr:       envOrDefault("REDIS_ADDR", ""),
		RedisPassword:   envOrDefault("REDIS_PASSWORD", ""),
		SessionTTL:      envDuration("SESSION_TTL_SECONDS", 24*time.Hour),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CookieSecure:    envBool("COOKIE_SECURE", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed
		}
	}
	return def
}
