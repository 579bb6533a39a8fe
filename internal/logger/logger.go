package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey string

const (
	requestIDKey ctxKey = "requestID"
	attemptIDKey ctxKey = "attemptID"
	playerIDKey  ctxKey = "playerID"
)

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, if present.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDKey)
}

// WithAttempt tags the context with a fishing attempt id and the catching player.
func WithAttempt(ctx context.Context, attemptID, playerID string) context.Context {
	ctx = context.WithValue(ctx, attemptIDKey, attemptID)
	return context.WithValue(ctx, playerIDKey, playerID)
}

// AttemptIDFromContext extracts the fishing attempt id, if present.
func AttemptIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, attemptIDKey)
}

func stringValue(ctx context.Context, key ctxKey) (string, bool) {
	v := ctx.Value(key)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes request, attempt and player attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	if id, ok := AttemptIDFromContext(ctx); ok {
		log = log.With(AttrKeyAttemptID, id)
	}
	if id, ok := stringValue(ctx, playerIDKey); ok {
		log = log.With(AttrKeyPlayerID, id)
	}
	return log
}

// NewHandler builds the slog handler described by cfg, writing to w.
func NewHandler(cfg Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return handler.WithAttrs(cfg.BaseAttributes())
}

// Init installs a default logger built from cfg and returns it.
func Init(cfg Config, w io.Writer) *slog.Logger {
	log := slog.New(NewHandler(cfg, w))
	slog.SetDefault(log)
	return log
}
