package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Pool Sizing
// ============================================================================

const (
	// DefaultWorkerCount is the number of goroutines serving background jobs
	DefaultWorkerCount = 2
	// DefaultQueueSize bounds buffered jobs before TryEnqueue starts rejecting
	DefaultQueueSize = 256
)
