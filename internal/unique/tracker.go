package unique

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CustomizeFishing_Go/internal/concurrency"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// Tracker answers "has this unique item been caught in this world" and claims it atomically
type Tracker struct {
	repo   Repository
	locks  *concurrency.LockManager
	claims *expirable.LRU[string, domain.UniqueItemRecord]
	now    func() time.Time
}

// NewTracker wraps repo. Confirmed claims are cached; records are immutable so the cache never goes stale.
func NewTracker(repo Repository, locks *concurrency.LockManager) *Tracker {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Tracker{
		repo:   repo,
		locks:  locks,
		claims: expirable.NewLRU[string, domain.UniqueItemRecord](DefaultClaimCacheSize, nil, DefaultClaimCacheTTL),
		now:    time.Now,
	}
}

func claimKey(world, uniqueID string) string {
	return concurrency.Key("unique", world, uniqueID)
}

// IsUnique reports whether item carries a unique id
func (t *Tracker) IsUnique(item *domain.Item) bool {
	return item.IsUnique()
}

// Record returns the stored claim for (world, id)
func (t *Tracker) Record(ctx context.Context, world, uniqueID string) (domain.UniqueItemRecord, bool, error) {
	key := claimKey(world, uniqueID)
	if rec, ok := t.claims.Get(key); ok {
		return rec, true, nil
	}
	rec, ok, err := t.repo.Get(ctx, world, uniqueID)
	if err != nil {
		return domain.UniqueItemRecord{}, false, fmt.Errorf("failed to look up %s in %s: %w", uniqueID, world, err)
	}
	if ok {
		t.claims.Add(key, rec)
	}
	return rec, ok, nil
}

// IsAlreadyCaught reports whether the id has a claim in world
func (t *Tracker) IsAlreadyCaught(ctx context.Context, world, uniqueID string) (bool, error) {
	_, ok, err := t.Record(ctx, world, uniqueID)
	return ok, err
}

// Claimant returns the first finder of (world, id)
func (t *Tracker) Claimant(ctx context.Context, world, uniqueID string) (domain.Claimant, bool, error) {
	rec, ok, err := t.Record(ctx, world, uniqueID)
	if err != nil || !ok {
		return domain.Claimant{}, false, err
	}
	return rec.Claimant(), true, nil
}

// MarkCaught claims (world, id) for claimant if nobody has. It returns the stored record and
// whether this call created it. Repeated calls never change the original claimant or time.
func (t *Tracker) MarkCaught(ctx context.Context, world, uniqueID string, claimant domain.Claimant) (domain.UniqueItemRecord, bool, error) {
	log := logger.FromContext(ctx)
	key := claimKey(world, uniqueID)

	var (
		stored  domain.UniqueItemRecord
		claimed bool
	)
	err := t.locks.WithLock(key, func() error {
		existing, ok, err := t.Record(ctx, world, uniqueID)
		if err != nil {
			return err
		}
		if ok {
			stored = existing
			return nil
		}

		rec := domain.UniqueItemRecord{
			World:        world,
			UniqueID:     uniqueID,
			CaughtBy:     claimant.ID,
			CaughtByName: claimant.Name,
			CaughtAt:     t.now().UTC().Truncate(time.Millisecond),
		}
		inserted, insertErr := t.repo.Insert(ctx, rec)
		if inserted {
			stored, claimed = rec, true
			t.claims.Add(key, rec)
			if insertErr != nil {
				log.Warn(LogMsgClaimNotPersisted, LogFieldWorld, world, LogFieldUniqueID, uniqueID, "error", insertErr)
			}
			return nil
		}
		if insertErr != nil {
			return insertErr
		}

		// lost a race against another process sharing the repository
		existing, ok, err = t.repo.Get(ctx, world, uniqueID)
		if err != nil {
			return err
		}
		if ok {
			stored = existing
			t.claims.Add(key, existing)
		}
		return nil
	})
	if err != nil {
		log.Error(LogMsgStoreError, LogFieldWorld, world, LogFieldUniqueID, uniqueID, "error", err)
		return domain.UniqueItemRecord{}, false, err
	}

	if claimed {
		log.Info(LogMsgClaimed, LogFieldWorld, world, LogFieldUniqueID, uniqueID, LogFieldClaimant, claimant.Name)
	}
	return stored, claimed, nil
}

// AttachProvenance returns a copy of item with "<prefix><first finder>" as the first lore line
func (t *Tracker) AttachProvenance(item *domain.Item, prefix string, rec domain.UniqueItemRecord) *domain.Item {
	out := item.Clone()
	out.PrependLore(prefix + rec.CaughtByName)
	return out
}

// Reprint re-attaches the provenance note of an already claimed item, naming the stored
// first finder rather than the current holder.
func (t *Tracker) Reprint(ctx context.Context, world string, item *domain.Item, prefix string) (*domain.Item, error) {
	if !item.IsUnique() {
		return item.Clone(), nil
	}
	rec, ok, err := t.Record(ctx, world, item.UniqueID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s has no claim in %s", domain.ErrInvalidInput, item.UniqueID, world)
	}
	out := item.Clone()
	if len(out.Lore) > 0 && strings.HasPrefix(out.Lore[0], prefix) {
		out.Lore = out.Lore[1:]
	}
	out.PrependLore(prefix + rec.CaughtByName)
	return out, nil
}

// Reload drops cached claims and re-reads the repository when it supports it
func (t *Tracker) Reload(ctx context.Context) error {
	t.claims.Purge()
	if r, ok := t.repo.(Reloader); ok {
		if err := r.Reload(ctx); err != nil {
			return fmt.Errorf("failed to reload unique store: %w", err)
		}
	}
	return nil
}

// Stats summarises one world. known is the number of unique ids declared in loot tables.
func (t *Tracker) Stats(ctx context.Context, world string, known int) (domain.WorldUniqueStats, error) {
	records, err := t.repo.ListWorld(ctx, world)
	if err != nil {
		return domain.WorldUniqueStats{}, fmt.Errorf("failed to list %s: %w", world, err)
	}
	return domain.WorldUniqueStats{
		World:        world,
		ClaimedCount: len(records),
		KnownCount:   known,
		Records:      records,
	}, nil
}

// All returns every stored claim
func (t *Tracker) All(ctx context.Context) ([]domain.UniqueItemRecord, error) {
	return t.repo.Load(ctx)
}
