package luck

import (
	"math"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/utils"
)

// Calculator turns a LuckResult into per-factor bonuses and total luck
type Calculator struct {
	effects config.LuckEffectsConfig
}

// NewCalculator binds the luck formulas to a configuration snapshot
func NewCalculator(cfg *config.FishingConfig) Calculator {
	return Calculator{effects: cfg.LuckEffects}
}

// LuckOfTheSeaBonus is min(level, max) x perLevel, plus a conduit-scaled bonus above the special threshold
func (c Calculator) LuckOfTheSeaBonus(level, conduitLevel int) float64 {
	e := c.effects.LuckOfTheSea
	bonus := float64(min(level, e.MaxLevel)) * e.PerLevel
	if level > e.SpecialThreshold {
		bonus += e.SpecialBonus + float64(conduitLevel)*e.SpecialConduitBonus
	}
	return bonus
}

// FortuneBonus is min(level, max) x perLevel
func (c Calculator) FortuneBonus(level int) float64 {
	return float64(min(level, c.effects.Fortune.MaxLevel)) * c.effects.Fortune.PerLevel
}

// MisfortunePenalty is the negative counterpart of FortuneBonus
func (c Calculator) MisfortunePenalty(level int) float64 {
	return -float64(min(level, c.effects.Misfortune.MaxLevel)) * c.effects.Misfortune.PerLevel
}

// EquipmentBonus re-applies the six-slot bound to an already aggregated value
func (c Calculator) EquipmentBonus(equipmentLuck float64) float64 {
	slots := float64(len(domain.AllEquipmentSlots))
	return utils.Clamp(equipmentLuck, c.effects.Equipment.MinValue*slots, c.effects.Equipment.MaxValue*slots)
}

// ExperienceBonus is min(level, max) x perLevel
func (c Calculator) ExperienceBonus(level int) float64 {
	return float64(min(level, c.effects.Experience.MaxLevel)) * c.effects.Experience.PerLevel
}

// Breakdown computes every factor and the clamped total
func (c Calculator) Breakdown(r domain.LuckResult) domain.LuckBreakdown {
	b := domain.LuckBreakdown{
		LuckOfTheSea: c.LuckOfTheSeaBonus(r.LuckOfTheSeaLevel, r.ConduitLevel),
		Fortune:      c.FortuneBonus(r.FortuneLevel),
		Misfortune:   c.MisfortunePenalty(r.MisfortuneLevel),
		Equipment:    c.EquipmentBonus(r.EquipmentLuck),
		Weather:      r.WeatherLuck,
		Timing:       r.TimingLuck,
		Experience:   c.ExperienceBonus(r.ExperienceLevel),
	}

	sum := b.LuckOfTheSea + b.Equipment + b.Weather + b.Timing + b.Experience + (b.Fortune + b.Misfortune)
	if math.IsNaN(sum) {
		// left unclamped so selection can detect it and fall back
		b.Total = sum
		return b
	}
	b.Total = utils.Clamp(sum, c.effects.Global.Min, c.effects.Global.Max)
	return b
}

// Total returns the clamped total luck
func (c Calculator) Total(r domain.LuckResult) float64 {
	return c.Breakdown(r).Total
}
