package loot

// File layout
const (
	TableFileExtension = ".json"
)

// Sampler cache
const (
	DefaultSamplerCacheSize = 512
)

// Log messages
const (
	LogMsgTablesLoaded  = "Loot tables loaded"
	LogMsgTableInvalid  = "Skipping invalid loot table"
	LogMsgUniqueScanned = "Unique items discovered in loot tables"
)

// Log fields
const (
	LogFieldDir       = "dir"
	LogFieldTable     = "table"
	LogFieldTables    = "tables"
	LogFieldUniqueIDs = "unique_ids"
)
