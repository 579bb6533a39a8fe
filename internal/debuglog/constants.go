package debuglog

// File layout
const (
	FileDateFormat = "2006-01-02"
	FileExtension  = ".log"
	TimeFormat     = "2006-01-02 15:04:05"
	LineTimeFormat = "15:04:05.000"
)

// Log messages
const (
	LogMsgQueueFull   = "Debug log queue full, dropping trace"
	LogMsgWriteFailed = "Failed to write fishing debug log"
	LogMsgPruneFailed = "Failed to prune fishing debug log"
	LogMsgPruned      = "Pruned fishing debug logs"
)

// Log fields
const (
	LogFieldPlayerID = "player_id"
	LogFieldLines    = "lines"
	LogFieldPath     = "path"
	LogFieldRemoved  = "removed"
)
