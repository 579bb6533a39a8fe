package scheduler

// Log messages
const (
	LogMsgJobRegistered = "Scheduled job registered"
	LogMsgJobEnqueued   = "Scheduled job enqueued"
	LogMsgJobSkipped    = "Scheduled job skipped, worker queue full"
	LogMsgJobRunNow     = "Running job immediately"
)
