// Package sqlite stores unique item claims in an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// UniqueRepository implements unique.Repository on SQLite. caught_at is stored as epoch milliseconds.
type UniqueRepository struct {
	db *sql.DB
}

// NewUniqueRepository creates a new unique item repository
func NewUniqueRepository(db *sql.DB) *UniqueRepository {
	return &UniqueRepository{db: db}
}

// Insert stores rec unless the id is already claimed in that world
func (r *UniqueRepository) Insert(ctx context.Context, rec domain.UniqueItemRecord) (bool, error) {
	query := `
		INSERT OR IGNORE INTO unique_items (world, unique_id, caught_by, caught_by_name, caught_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query, rec.World, rec.UniqueID, rec.CaughtBy, rec.CaughtByName, rec.CaughtAt.UnixMilli())
	if err != nil {
		return false, fmt.Errorf("%w: failed to insert unique item: %v", domain.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: failed to read insert result: %v", domain.ErrStoreUnavailable, err)
	}
	return n == 1, nil
}

// Get returns the claim for (world, id)
func (r *UniqueRepository) Get(ctx context.Context, world, uniqueID string) (domain.UniqueItemRecord, bool, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		WHERE world = ? AND unique_id = ?
	`
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, world, uniqueID))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UniqueItemRecord{}, false, nil
	}
	if err != nil {
		return domain.UniqueItemRecord{}, false, fmt.Errorf("%w: failed to get unique item: %v", domain.ErrStoreUnavailable, err)
	}
	return rec, true, nil
}

// ListWorld returns the claims of one world in insertion order
func (r *UniqueRepository) ListWorld(ctx context.Context, world string) ([]domain.UniqueItemRecord, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		WHERE world = ?
		ORDER BY rowid
	`
	return r.list(ctx, query, world)
}

// Load returns every claim grouped by world
func (r *UniqueRepository) Load(ctx context.Context) ([]domain.UniqueItemRecord, error) {
	query := `
		SELECT world, unique_id, caught_by, caught_by_name, caught_at
		FROM unique_items
		ORDER BY world, rowid
	`
	return r.list(ctx, query)
}

func (r *UniqueRepository) list(ctx context.Context, query string, args ...any) ([]domain.UniqueItemRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list unique items: %v", domain.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var out []domain.UniqueItemRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan unique item: %v", domain.ErrStoreUnavailable, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate unique items: %v", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (domain.UniqueItemRecord, error) {
	var (
		rec      domain.UniqueItemRecord
		caughtAt int64
	)
	if err := s.Scan(&rec.World, &rec.UniqueID, &rec.CaughtBy, &rec.CaughtByName, &caughtAt); err != nil {
		return domain.UniqueItemRecord{}, err
	}
	rec.CaughtAt = time.UnixMilli(caughtAt).UTC()
	return rec, nil
}
