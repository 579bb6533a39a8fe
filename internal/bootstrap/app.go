package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/event"
	"github.com/osse101/CustomizeFishing_Go/internal/fishing"
	"github.com/osse101/CustomizeFishing_Go/internal/loot"
	"github.com/osse101/CustomizeFishing_Go/internal/scheduler"
	"github.com/osse101/CustomizeFishing_Go/internal/server"
	"github.com/osse101/CustomizeFishing_Go/internal/sse"
	"github.com/osse101/CustomizeFishing_Go/internal/unique"
	"github.com/osse101/CustomizeFishing_Go/internal/validation"
	"github.com/osse101/CustomizeFishing_Go/internal/worker"
)

// App is the assembled service
type App struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Hub       *sse.Hub
	Pool      *worker.Pool
	Publisher *event.ResilientPublisher
	Repos     *Repositories

	closers []io.Closer
}

// Build wires every component from the process configuration. Nothing is started yet.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := config.NewStore(cfg.FishingConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadFishing, err)
	}

	resolver, err := loot.NewTableResolver(cfg.LootTableDir, validation.NewSchemaValidator(), nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLoot, err)
	}
	if err := resolver.Reload(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadLoot, err)
	}
	slog.Info(LogMsgLootTablesLoaded, "tables", len(resolver.Tables()), "known_uniques", len(resolver.UniqueIDs()))

	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	publisher, deadLetter, err := InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return nil, err
	}

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize)
	hub := sse.NewHub()

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus: publisher,
		Hub:      hub,
		Pool:     pool,
		Config:   cfg,
	}); err != nil {
		repos.Close()
		return nil, err
	}

	tracker := unique.NewTracker(repos.Unique, nil)
	trace := debuglog.New(cfg.DebugLogDir, pool)
	fishingService := fishing.NewService(store, resolver, tracker, publisher, trace, nil)
	configSync := NewConfigSync(store, resolver, tracker, publisher)

	sched := scheduler.New(pool)
	if err := ScheduleJobs(sched, trace, cfg.DebugLogRetentionDays, UniqueSnapshotJob(tracker, resolver)); err != nil {
		repos.Close()
		return nil, err
	}

	srv := server.NewServer(server.Options{
		Port:        cfg.Port,
		APIKey:      cfg.APIKey,
		CORSOrigins: cfg.CORSAllowedOrigins,
	}, server.Dependencies{
		Fishing:  fishingService,
		Stats:    tracker,
		Catalog:  resolver,
		Reloader: configSync,
		Hub:      hub,
		Checkers: repos.Checkers,
	})

	return &App{
		Server:    srv,
		Scheduler: sched,
		Hub:       hub,
		Pool:      pool,
		Publisher: publisher,
		Repos:     repos,
		closers:   []io.Closer{deadLetter},
	}, nil
}

// Start launches the background components. The HTTP listener is started by the caller.
func (a *App) Start() {
	a.Pool.Start()
	a.Hub.Start()
	a.Scheduler.Start()
}

// Shutdown stops everything Build created
func (a *App) Shutdown(ctx context.Context, extra ...io.Closer) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:             a.Server,
		Scheduler:          a.Scheduler,
		Hub:                a.Hub,
		Pool:               a.Pool,
		ResilientPublisher: a.Publisher,
		Repositories:       a.Repos,
		Closers:            append(a.closers, extra...),
	})
}
