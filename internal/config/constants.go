package config

import "time"

// Configuration file paths
const (
	ConfigPathFishing    = "configs/fishing.yaml"
	ConfigPathLootTables = "configs/loot_tables"
)

// Unique store backends
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvLogDir                = "LOG_DIR"
	EnvLogMaxSizeMB          = "LOG_MAX_SIZE_MB"
	EnvLogMaxBackups         = "LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays         = "LOG_MAX_AGE_DAYS"
	EnvFishingConfigPath     = "FISHING_CONFIG_PATH"
	EnvLootTableDir          = "LOOT_TABLE_DIR"
	EnvUniqueStore           = "UNIQUE_STORE"
	EnvUniqueStorePath       = "UNIQUE_STORE_PATH"
	EnvSQLitePath            = "SQLITE_PATH"
	EnvDatabaseURL           = "DATABASE_URL"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDBMaxIdle             = "DB_MAX_IDLE"
	EnvDBMaxLife             = "DB_MAX_LIFE"
	EnvDebugLogDir           = "DEBUG_LOG_DIR"
	EnvDebugLogRetentionDays = "DEBUG_LOG_RETENTION_DAYS"
	EnvDiscordWebhookID      = "DISCORD_WEBHOOK_ID"
	EnvDiscordWebhookToken   = "DISCORD_WEBHOOK_TOKEN"
	EnvCORSAllowedOrigins    = "CORS_ALLOWED_ORIGINS"
	EnvAPIKey                = "API_KEY"
	EnvShutdownTimeout       = "SHUTDOWN_TIMEOUT"
)

// Environment defaults
const (
	DefaultPort                  = "8080"
	DefaultEnvironment           = "dev"
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "text"
	DefaultLogDir                = "logs"
	DefaultLogMaxSizeMB          = 50
	DefaultLogMaxBackups         = 9
	DefaultLogMaxAgeDays         = 30
	DefaultUniqueStorePath       = "data/unique_items.yml"
	DefaultSQLitePath            = "data/unique_items.db"
	DefaultDBMaxConns            = 10
	DefaultDBMaxIdle             = 5 * time.Minute
	DefaultDBMaxLife             = time.Hour
	DefaultDebugLogDir           = "logs/fishing"
	DefaultDebugLogRetentionDays = 14
	DefaultShutdownTimeout       = 10 * time.Second
)

// Fishing config defaults. Every default of the fishing configuration lives here.
const (
	DefaultGlobalLuckMin = -10.0
	DefaultGlobalLuckMax = 10.0

	DefaultLuckOfTheSeaMaxLevel         = 10
	DefaultLuckOfTheSeaPerLevel         = 0.5
	DefaultLuckOfTheSeaSpecialThreshold = 100
	DefaultLuckOfTheSeaSpecialBonus     = 2.0
	DefaultLuckOfTheSeaSpecialConduit   = 0.5

	DefaultFortuneMaxLevel    = 10
	DefaultFortunePerLevel    = 0.5
	DefaultMisfortuneMaxLevel = 10
	DefaultMisfortunePerLevel = 0.5

	DefaultEquipmentMin = -6.0
	DefaultEquipmentMax = 6.0

	DefaultExperienceMaxLevel = 100
	DefaultExperiencePerLevel = 0.01

	DefaultLuckScale     = 0.1
	DefaultQualityImpact = 0.5
	DefaultMaxMultiplier = 3.0
	DefaultPenaltyScale  = 0.05

	DefaultRainOverrideBlock = "twilightforest:rainy_cloud"
	DefaultRainScanHeight    = 32

	DefaultTimingBaseLuckBonus = 1.5

	DefaultDoubleFishingMinLuckOfTheSea = 10
	DefaultDoubleFishingMinConduitLevel = 2

	DefaultMaxRerolls = 3

	DefaultLootLuckScale = 10.0
	DefaultLootMinLuck   = -1024.0
	DefaultLootMaxLuck   = 1024.0
)

// Log messages
const (
	LogMsgReloaded     = "Fishing configuration reloaded"
	LogMsgReloadFailed = "Fishing configuration reload failed, keeping previous snapshot"
)

// Log fields
const (
	LogFieldPath       = "path"
	LogFieldCategories = "categories"
	LogFieldShared     = "shared"
)
