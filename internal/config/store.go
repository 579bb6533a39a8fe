package config

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// Store owns the active fishing configuration snapshot. Readers take a snapshot
// with Current and keep it for the whole attempt; Reload swaps it atomically.
type Store struct {
	path    string
	current atomic.Pointer[FishingConfig]
	group   singleflight.Group
}

// NewStore loads the file at path and fails fast when it is invalid
func NewStore(path string) (*Store, error) {
	cfg, err := LoadFishingConfig(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(cfg)
	return s, nil
}

// NewStaticStore wraps an already built configuration. Reload keeps it unchanged.
func NewStaticStore(cfg *FishingConfig) *Store {
	s := &Store{}
	s.current.Store(cfg)
	return s
}

// Current returns the active snapshot
func (s *Store) Current() *FishingConfig {
	return s.current.Load()
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the file. Concurrent calls share one read. On failure the
// previous snapshot stays active and the error is returned.
func (s *Store) Reload(ctx context.Context) (*FishingConfig, error) {
	if s.path == "" {
		return s.Current(), nil
	}

	v, err, shared := s.group.Do(s.path, func() (interface{}, error) {
		cfg, err := LoadFishingConfig(s.path)
		if err != nil {
			return nil, err
		}
		s.current.Store(cfg)
		return cfg, nil
	})

	log := logger.FromContext(ctx)
	if err != nil {
		log.Error(LogMsgReloadFailed, LogFieldPath, s.path, "error", err)
		return nil, err
	}

	cfg := v.(*FishingConfig)
	log.Info(LogMsgReloaded, LogFieldPath, s.path, LogFieldCategories, len(cfg.Categories), LogFieldShared, shared)
	return cfg, nil
}

// LogValue keeps the snapshot compact in structured logs
func (c *FishingConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", c.Enabled),
		slog.Int(LogFieldCategories, len(c.Categories)),
		slog.Int("timing_tiers", len(c.TimingSystem.Tiers)),
	)
}
