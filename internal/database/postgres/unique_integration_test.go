package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/CustomizeFishing_Go/internal/database"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (*pgxpool.Pool, func()) {
	// testcontainers panics when Docker is missing
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return nil, terminate
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return nil, terminate
	}
	if err := database.Migrate(ctx, database.SQLFromPool(pool), database.DialectPostgres); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return nil, terminate
	}
	return pool, terminate
}

func requirePool(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestUniqueRepository_Integration(t *testing.T) {
	requirePool(t)
	ctx := context.Background()
	repo := NewUniqueRepository(testPool)
	at := time.UnixMilli(1_700_000_000_123).UTC()

	inserted, err := repo.Insert(ctx, domain.UniqueItemRecord{
		World: "world", UniqueID: "sea_king", CaughtBy: "uuid-a", CaughtByName: "Alice", CaughtAt: at,
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(ctx, domain.UniqueItemRecord{
		World: "world", UniqueID: "sea_king", CaughtBy: "uuid-b", CaughtByName: "Bob", CaughtAt: at.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	rec, ok, err := repo.Get(ctx, "world", "sea_king")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Alice", rec.CaughtByName)
	assert.True(t, at.Equal(rec.CaughtAt))

	_, ok, err = repo.Get(ctx, "world", "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	list, err := repo.ListWorld(ctx, "world")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUniqueRepository_ConcurrentClaims_Integration(t *testing.T) {
	requirePool(t)
	ctx := context.Background()
	repo := NewUniqueRepository(testPool)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := repo.Insert(ctx, domain.UniqueItemRecord{
				World: "race", UniqueID: "X", CaughtBy: fmt.Sprintf("uuid-%d", i), CaughtByName: "P", CaughtAt: time.Now(),
			})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
