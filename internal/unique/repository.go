// Package unique keeps the per-world registry of one-of-a-kind items and the bounded
// re-roll protocol that keeps a claimed item from being awarded twice.
package unique

import (
	"context"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Repository is the durable claim registry.
// Insert must never overwrite: when (world, id) already exists it returns false and leaves the row as is.
// Insert may return true together with an error when the claim was applied in memory but not persisted.
type Repository interface {
	Insert(ctx context.Context, rec domain.UniqueItemRecord) (bool, error)
	Get(ctx context.Context, world, uniqueID string) (domain.UniqueItemRecord, bool, error)
	ListWorld(ctx context.Context, world string) ([]domain.UniqueItemRecord, error)
	Load(ctx context.Context) ([]domain.UniqueItemRecord, error)
}

// Reloader is implemented by repositories that cache state and can re-read it
type Reloader interface {
	Reload(ctx context.Context) error
}
