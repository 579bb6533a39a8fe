package unique

import "time"

// Claim cache
const (
	DefaultClaimCacheSize = 4096
	DefaultClaimCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgClaimed           = "Unique item claimed"
	LogMsgCollision         = "Unique item already claimed"
	LogMsgClaimNotPersisted = "Unique claim kept in memory but not persisted"
	LogMsgStoreError        = "Unique item store error"
	LogMsgRerollExhausted   = "Re-roll limit reached, using fallback"
)

// Log fields
const (
	LogFieldWorld    = "world"
	LogFieldUniqueID = "unique_id"
	LogFieldClaimant = "claimant"
	LogFieldRerolls  = "rerolls"
)
