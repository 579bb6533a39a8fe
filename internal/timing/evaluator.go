// Package timing turns the delay between a bite and the player's reel-in into a reaction tier.
package timing

import (
	"time"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Evaluator checks reaction times against the configured tiers
type Evaluator struct {
	enabled bool
	base    float64
	tiers   []domain.TimingTier
}

// NewEvaluator snapshots the timing section of cfg
func NewEvaluator(cfg *config.FishingConfig) Evaluator {
	return Evaluator{
		enabled: cfg.TimingSystem.Enabled,
		base:    cfg.TimingSystem.BaseLuckBonus,
		tiers:   cfg.TimingTiers(),
	}
}

// Evaluate returns a hit for the first declared tier whose max time covers elapsedMs.
// Tiers are not re-sorted: a stricter tier declared first wins even if a later one also matches.
func (e Evaluator) Evaluate(elapsedMs int64) domain.TimingResult {
	if !e.enabled {
		return domain.TimingMiss{}
	}
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	for _, tier := range e.tiers {
		if tier.Matches(elapsedMs) {
			return domain.TimingHit{
				Tier:           tier,
				ReactionTimeMs: elapsedMs,
				Bonus:          tier.LuckBonus(e.base),
			}
		}
	}
	return domain.TimingMiss{}
}

// FromBite evaluates the time between biteAt and now. Without a recorded bite the result is a miss.
func (e Evaluator) FromBite(biteAt, now time.Time, bitten bool) domain.TimingResult {
	if !bitten || biteAt.IsZero() {
		return domain.TimingMiss{}
	}
	return e.Evaluate(now.Sub(biteAt).Milliseconds())
}

// Tiers returns the configured tiers in declaration order
func (e Evaluator) Tiers() []domain.TimingTier {
	return e.tiers
}
