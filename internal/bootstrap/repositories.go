package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/database"
	"github.com/osse101/CustomizeFishing_Go/internal/database/postgres"
	"github.com/osse101/CustomizeFishing_Go/internal/database/sqlite"
	"github.com/osse101/CustomizeFishing_Go/internal/handler"
	"github.com/osse101/CustomizeFishing_Go/internal/unique"
)

// Repositories holds the durable stores used by the application and what is needed to check and close them.
type Repositories struct {
	Unique   unique.Repository
	Checkers []handler.HealthChecker

	closers []func()
}

// Close releases the database handles, if any
func (r *Repositories) Close() {
	for _, c := range r.closers {
		c()
	}
}

// InitializeRepositories opens the unique item store selected by UNIQUE_STORE.
// Database backends are migrated before use.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{}

	switch cfg.UniqueStore {
	case config.StoreFile:
		store, err := unique.NewFileStore(ctx, cfg.UniqueStorePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		repos.Unique = store

	case config.StoreSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		repos.Unique = sqlite.NewUniqueRepository(db)
		repos.Checkers = append(repos.Checkers, sqlPinger{db: db})
		repos.closers = append(repos.closers, func() { db.Close() })

	case config.StorePostgres:
		pool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		sqlDB := database.SQLFromPool(pool)
		if err := database.Migrate(ctx, sqlDB, database.DialectPostgres); err != nil {
			sqlDB.Close()
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		sqlDB.Close()
		repos.Unique = postgres.NewUniqueRepository(pool)
		repos.Checkers = append(repos.Checkers, pool)
		repos.closers = append(repos.closers, pool.Close)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownUniqueStore, cfg.UniqueStore)
	}

	slog.Info(LogMsgUniqueStoreSelected, "backend", cfg.UniqueStore)
	return repos, nil
}

// sqlPinger adapts *sql.DB to the readiness check
type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}
