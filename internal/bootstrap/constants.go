package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileName is the active application log inside LOG_DIR; rotated copies sit next to it
	LogFileName = "customize-fishing.log"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting CustomizeFishing"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the number of retry attempts for a failed subscriber
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDeadLetterFile is the dead-letter log inside LOG_DIR
	EventDeadLetterFile = "event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	ErrMsgFailedCreateDeadLetter     = "failed to open dead-letter file"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgDiscordAnnouncerEnabled    = "Discord unique-claim announcer enabled"
	LogMsgDiscordAnnouncerDisabled   = "Discord webhook not configured, announcements disabled"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateWebhookClient  = "failed to create discord webhook client"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgUniqueStoreSelected = "Unique item store selected"
	ErrMsgUnknownUniqueStore  = "unknown unique store backend"
	ErrMsgFailedOpenStore     = "failed to open unique store"
	ErrMsgFailedMigrate       = "failed to migrate unique store"
)

// =============================================================================
// Configuration Reload
// =============================================================================

const (
	LogMsgLootTablesLoaded   = "Loot tables loaded"
	LogMsgConfigReloadFailed = "Configuration reload failed"
	LogMsgReloadEventFailed  = "Failed to publish config reload event"
	ErrMsgFailedLoadFishing  = "failed to load fishing config"
	ErrMsgFailedLoadLoot     = "failed to load loot tables"
	ErrMsgFailedReloadUnique = "failed to reload unique store"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	JobNameDebugLogPrune  = "debuglog-prune"
	JobNameUniqueSnapshot = "unique-stats-snapshot"

	ScheduleDebugLogPrune  = "@daily"
	ScheduleUniqueSnapshot = "@every 5m"

	LogMsgUniqueSnapshot       = "Unique item stats refreshed"
	ErrMsgFailedScheduleJob    = "failed to schedule job"
	ErrMsgFailedUniqueSnapshot = "failed to read unique item stats"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgCloseFailed                = "Failed to close resource"
)
