package unique

import (
	"context"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/logger"
)

// Drawer re-fishes with the cached conditions of the current attempt
type Drawer interface {
	// Draw selects a category again and resolves an item from it
	Draw(ctx context.Context) (string, *domain.Item, error)
	// DrawFrom resolves an item from a fixed category
	DrawFrom(ctx context.Context, category string) (*domain.Item, error)
}

// Outcome is the item that survives the unique-item protocol
type Outcome struct {
	Category string
	Item     *domain.Item
	Record   *domain.UniqueItemRecord
	Claimed  bool
	Rerolls  int
	Fallback bool
	// Collisions lists every already-claimed id that was rejected
	Collisions []string
}

// Reroller runs the bounded claim-or-reroll loop
type Reroller struct {
	tracker          *Tracker
	maxRerolls       int
	prefix           string
	fallbackMaterial string
	defaultCategory  string
	trace            debuglog.Sink
}

// NewReroller binds the protocol to the active configuration
func NewReroller(tracker *Tracker, cfg *config.FishingConfig, trace debuglog.Sink) *Reroller {
	if trace == nil {
		trace = debuglog.Discard
	}
	return &Reroller{
		tracker:          tracker,
		maxRerolls:       cfg.UniqueItems.MaxRerolls,
		prefix:           cfg.UniqueItems.ProvenancePrefix,
		fallbackMaterial: cfg.UniqueItems.FallbackMaterial,
		defaultCategory:  cfg.DefaultCategory,
		trace:            trace,
	}
}

// Resolve accepts item when it is not unique, claims it when it is unique and unclaimed,
// and otherwise re-draws up to maxRerolls times. When every draw collides, one item from
// the default category is used, or a plain fallback stack if that is unique or missing.
func (r *Reroller) Resolve(ctx context.Context, world string, claimant domain.Claimant, category string, item *domain.Item, drawer Drawer) Outcome {
	log := logger.FromContext(ctx)
	out := Outcome{Category: category}

	cur := item
	for {
		if cur != nil {
			if !cur.IsUnique() {
				out.Item = cur
				return out
			}

			rec, claimed, err := r.tracker.MarkCaught(ctx, world, cur.UniqueID, claimant)
			switch {
			case err != nil:
				r.trace.Logf(claimant.ID, "[REROLL] could not claim %s: %v", cur.UniqueID, err)
			case claimed:
				r.trace.Logf(claimant.ID, "[REROLL] claimed %s", cur.UniqueID)
				out.Item = r.tracker.AttachProvenance(cur, r.prefix, rec)
				out.Record = &rec
				out.Claimed = true
				return out
			default:
				r.trace.Logf(claimant.ID, "[REROLL] %s already caught by %s", cur.UniqueID, rec.CaughtByName)
				log.Info(LogMsgCollision, LogFieldWorld, world, LogFieldUniqueID, cur.UniqueID, LogFieldClaimant, rec.CaughtByName)
			}
			out.Collisions = append(out.Collisions, cur.UniqueID)
		}

		if out.Rerolls >= r.maxRerolls {
			break
		}
		out.Rerolls++

		next, nextItem, err := drawer.Draw(ctx)
		if err != nil {
			r.trace.Logf(claimant.ID, "[REROLL] attempt %d failed: %v", out.Rerolls, err)
			cur = nil
			continue
		}
		r.trace.Logf(claimant.ID, "[REROLL] attempt %d re-selected %s: %s", out.Rerolls, next, nextItem.Label())
		out.Category, cur = next, nextItem
	}

	log.Warn(LogMsgRerollExhausted, LogFieldWorld, world, LogFieldRerolls, out.Rerolls)
	r.trace.Logf(claimant.ID, "[REROLL] limit %d reached, falling back to %s", r.maxRerolls, r.defaultCategory)

	out.Category = r.defaultCategory
	out.Fallback = true
	fallback, err := drawer.DrawFrom(ctx, r.defaultCategory)
	if err != nil || fallback == nil || fallback.IsUnique() {
		if err != nil {
			r.trace.Logf(claimant.ID, "[REROLL] fallback draw failed: %v", err)
		}
		fallback = domain.NewItem(r.fallbackMaterial, 1)
	}
	out.Item = fallback
	return out
}
