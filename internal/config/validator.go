package config

import (
	"fmt"
	"strings"
)

// ValidateEnv checks that the variables required by the selected backends are set
func ValidateEnv(cfg *Config) error {
	var missing []string

	switch cfg.UniqueStore {
	case StoreFile:
		if cfg.UniqueStorePath == "" {
			missing = append(missing, EnvUniqueStorePath)
		}
	case StoreSQLite:
		if cfg.SQLitePath == "" {
			missing = append(missing, EnvSQLitePath)
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, EnvDatabaseURL)
		}
	default:
		return fmt.Errorf("unsupported %s %q: expected one of %s, %s, %s",
			EnvUniqueStore, cfg.UniqueStore, StoreFile, StoreSQLite, StorePostgres)
	}

	if cfg.FishingConfigPath == "" {
		missing = append(missing, EnvFishingConfigPath)
	}
	if cfg.LootTableDir == "" {
		missing = append(missing, EnvLootTableDir)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like half-configured integrations)
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	if err := ValidateEnv(cfg); err != nil {
		return nil, err
	}

	var warnings []string

	if (cfg.DiscordWebhookID == "") != (cfg.DiscordWebhookToken == "") {
		warnings = append(warnings, "DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must both be set - announcements are disabled")
	}

	if cfg.APIKey == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if cfg.DebugLogRetentionDays <= 0 {
		warnings = append(warnings, "DEBUG_LOG_RETENTION_DAYS is not positive - fishing debug logs will never be pruned")
	}

	return warnings, nil
}
