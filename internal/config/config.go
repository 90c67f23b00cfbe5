package config

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	InstanceName    string
	LogLevel        slog.Level
	StaticDir       string

	// View-state token keys. Empty keys are replaced with random ones at
	// startup, which invalidates tokens issued by a previous process.
	StateHashKey  []byte
	StateBlockKey []byte
	StateMaxAge   time.Duration

	NotifyTTL   time.Duration
	NotifyLimit int
}

func Load() (Config, error) {
	hashKey, err := getEnvAsKey("STATE_HASH_KEY", 32, 64)
	if err != nil {
		return Config{}, err
	}
	blockKey, err := getEnvAsKey("STATE_BLOCK_KEY", 16, 24, 32)
	if err != nil {
		return Config{}, err
	}
	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            getEnv("BACKEND_PORT", "8080"),
		ReadTimeout:     getEnvAsDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvAsDuration("WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:     getEnvAsDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		InstanceName:    getEnv("INSTANCE_NAME", "myapp-1"),
		LogLevel:        level,
		StaticDir:       getEnv("STATIC_DIR", "./web/static"),
		StateHashKey:    hashKey,
		StateBlockKey:   blockKey,
		StateMaxAge:     getEnvAsDuration("STATE_MAX_AGE", time.Hour),
		NotifyTTL:       getEnvAsDuration("NOTIFY_TTL", 5*time.Second),
		NotifyLimit:     getEnvAsInt("NOTIFY_LIMIT", 3),
	}
	if cfg.NotifyLimit < 1 {
		return Config{}, fmt.Errorf("NOTIFY_LIMIT must be at least 1, got %d", cfg.NotifyLimit)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if dur, err := time.ParseDuration(value); err == nil && dur > 0 {
			return dur
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvAsKey reads a hex encoded key of one of the given sizes.
// Unset means "generate one".
func getEnvAsKey(key string, sizes ...int) ([]byte, error) {
	value := getEnv(key, "")
	if value == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	for _, n := range sizes {
		if len(b) == n {
			return b, nil
		}
	}
	return nil, fmt.Errorf("invalid %s: key must be one of %v bytes, got %d", key, sizes, len(b))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
