package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/scheduler"
	"github.com/osse101/CustomizeFishing_Go/internal/server"
	"github.com/osse101/CustomizeFishing_Go/internal/sse"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	Hub                *sse.Hub
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Repositories       *Repositories
	Closers            []io.Closer
}

// GracefulShutdown stops the application in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. scheduler and SSE hub
//  3. worker pool (drains queued trace flushes and announcements)
//  4. event publisher (flushes pending retries)
//  5. stores and files
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Repositories != nil {
		c.Repositories.Close()
	}
	for _, closer := range c.Closers {
		if err := closer.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
