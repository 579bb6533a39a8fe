package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// UniqueRepository implements unique.Repository on PostgreSQL.
// The (world, unique_id) primary key makes the first insert win across processes.
type UniqueRepository struct {
	db *pgxpool.Pool
}

// NewUniqueRepository creates a new unique item repository
func NewUniqueRepository(db *pgxpool.Pool) *UniqueRepository {
	return &UniqueRepository{db: db}
}

// Insert stores rec unless the id is already claimed in that world
func (r *UniqueRepository) Insert(ctx context.Context, rec domain.UniqueItemRecord) (bool, error) {
	query := `
		INSERT INTO unique_items (world, unique_id, caught_by, caught_by_name, caught_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (world, unique_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, rec.World, rec.UniqueID, rec.CaughtBy, rec.CaughtByName, rec.CaughtAt)
	if err != nil {
		return false, fmt.Errorf("%w: failed to insert unique item: %v", domain.ErrStoreUnavailable, err)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns the claim for (world, id)
func (r *UniqueRepository) Get(ctx context.Context, world, uniqueID string) (domain.UniqueItemRecord, bool, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		WHERE world = $1 AND unique_id = $2
	`
	rows, err := r.db.Query(ctx, query, world, uniqueID)
	if err != nil {
		return domain.UniqueItemRecord{}, false, fmt.Errorf("%w: failed to get unique item: %v", domain.ErrStoreUnavailable, err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[domain.UniqueItemRecord])
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UniqueItemRecord{}, false, nil
	}
	if err != nil {
		return domain.UniqueItemRecord{}, false, fmt.Errorf("%w: failed to scan unique item: %v", domain.ErrStoreUnavailable, err)
	}
	rec.CaughtAt = rec.CaughtAt.UTC()
	return rec, true, nil
}

// ListWorld returns the claims of one world, oldest first
func (r *UniqueRepository) ListWorld(ctx context.Context, world string) ([]domain.UniqueItemRecord, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		WHERE world = $1
		ORDER BY caught_at, unique_id
	`
	return r.list(ctx, query, world)
}

// Load returns every claim grouped by world
func (r *UniqueRepository) Load(ctx context.Context) ([]domain.UniqueItemRecord, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		ORDER BY world, caught_at, unique_id
	`
	return r.list(ctx, query)
}

func (r *UniqueRepository) list(ctx context.Context, query string, args ...any) ([]domain.UniqueItemRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list unique items: %v", domain.ErrStoreUnavailable, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.UniqueItemRecord])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan unique items: %v", domain.ErrStoreUnavailable, err)
	}
	for i := range records {
		records[i].CaughtAt = records[i].CaughtAt.UTC()
	}
	return records, nil
}
