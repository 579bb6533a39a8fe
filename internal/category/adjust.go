package category

import (
	"math"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
)

// AdjustChance applies total luck to a base chance (percentage points).
//
// Positive luck on a positive-quality category multiplies the chance by
// 1 + ln(1 + luck*luckScale) * ln(1 + quality*qualityImpact), capped at maxMultiplier.
// Negative luck subtracts |luck| * penaltyScale * quality and never goes below zero.
func AdjustChance(base, quality, totalLuck float64, adj config.LuckAdjustmentConfig) float64 {
	if totalLuck == 0 || quality == 0 {
		return base
	}

	if totalLuck > 0 {
		if quality <= 0 {
			return base
		}
		scaledLuck := math.Log1p(totalLuck * adj.LuckScale)
		qualityFactor := math.Log1p(quality * adj.QualityImpact)
		multiplier := min(1+scaledLuck*qualityFactor, adj.MaxMultiplier)
		return base * multiplier
	}

	penalty := math.Abs(totalLuck) * adj.PenaltyScale * quality
	return math.Max(base-penalty, 0)
}
