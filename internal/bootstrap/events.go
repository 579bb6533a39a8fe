package bootstrap

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
)

// InitializeEventSystem creates the in-process bus and the resilient publisher wrapping it.
// Subscribers register on the publisher; events that keep failing land in the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, *event.DeadLetterWriter, error) {
	bus := event.NewMemoryBus()

	deadLetterPath := filepath.Join(cfg.LogDir, EventDeadLetterFile)
	deadLetter, err := event.NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
	}, deadLetter)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return publisher, deadLetter, nil
}
