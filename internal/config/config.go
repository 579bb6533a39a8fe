package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string
	LogDir      string

	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	FishingConfigPath string
	LootTableDir      string

	// UniqueStore selects the durable backend: file, sqlite or postgres
	UniqueStore     string
	UniqueStorePath string
	SQLitePath      string
	DatabaseURL     string
	DBMaxConns      int
	DBMaxIdle       time.Duration
	DBMaxLife       time.Duration

	DebugLogDir           string
	DebugLogRetentionDays int

	DiscordWebhookID    string
	DiscordWebhookToken string

	CORSAllowedOrigins []string
	APIKey             string
	ShutdownTimeout    time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:           getEnv(EnvEnvironment, DefaultEnvironment),
		LogLevel:              strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:             strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:                getEnv(EnvLogDir, DefaultLogDir),
		LogMaxSizeMB:          getEnvAsInt(EnvLogMaxSizeMB, DefaultLogMaxSizeMB),
		LogMaxBackups:         getEnvAsInt(EnvLogMaxBackups, DefaultLogMaxBackups),
		LogMaxAgeDays:         getEnvAsInt(EnvLogMaxAgeDays, DefaultLogMaxAgeDays),
		FishingConfigPath:     getEnv(EnvFishingConfigPath, ConfigPathFishing),
		LootTableDir:          getEnv(EnvLootTableDir, ConfigPathLootTables),
		UniqueStore:           strings.ToLower(getEnv(EnvUniqueStore, StoreFile)),
		UniqueStorePath:       getEnv(EnvUniqueStorePath, DefaultUniqueStorePath),
		SQLitePath:            getEnv(EnvSQLitePath, DefaultSQLitePath),
		DatabaseURL:           getEnv(EnvDatabaseURL, ""),
		DBMaxConns:            getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxIdle:             getEnvAsDuration(EnvDBMaxIdle, DefaultDBMaxIdle),
		DBMaxLife:             getEnvAsDuration(EnvDBMaxLife, DefaultDBMaxLife),
		DebugLogDir:           getEnv(EnvDebugLogDir, DefaultDebugLogDir),
		DebugLogRetentionDays: getEnvAsInt(EnvDebugLogRetentionDays, DefaultDebugLogRetentionDays),
		DiscordWebhookID:      getEnv(EnvDiscordWebhookID, ""),
		DiscordWebhookToken:   getEnv(EnvDiscordWebhookToken, ""),
		CORSAllowedOrigins:    getEnvAsList(EnvCORSAllowedOrigins, nil),
		APIKey:                getEnv(EnvAPIKey, ""),
		ShutdownTimeout:       getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// DiscordEnabled reports whether unique-claim announcements should be posted
func (c *Config) DiscordEnabled() bool {
	return c.DiscordWebhookID != "" && c.DiscordWebhookToken != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration retrieves a duration environment variable ("30s", "5m") or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return defaultValue
	}
	return d
}

// getEnvAsList splits a comma separated environment variable
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
