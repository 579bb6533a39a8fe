package luck

import (
	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/debuglog"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Aggregator snapshots every luck contributor of a player for one attempt
type Aggregator struct {
	trace debuglog.Sink
}

// NewAggregator creates an aggregator that traces into sink
func NewAggregator(sink debuglog.Sink) *Aggregator {
	if sink == nil {
		sink = debuglog.Discard
	}
	return &Aggregator{trace: sink}
}

// Aggregate builds the LuckResult. It has no error path: missing state reads as zero.
func (a *Aggregator) Aggregate(cfg *config.FishingConfig, player domain.PlayerState, weather domain.Weather, timing domain.TimingResult) domain.LuckResult {
	equip := cfg.LuckEffects.Equipment
	slots := EquipmentLuck(player.Equipment, equip.MinValue, equip.MaxValue)

	a.trace.Logf(player.ID, " EQUIPMENT LUCK:")
	for _, slot := range domain.AllEquipmentSlots {
		a.trace.Logf(player.ID, "   %-8s raw=%.3f clamped=%.3f", slot, slots.Raw[slot], slots.Clamped[slot])
	}
	a.trace.Logf(player.ID, "   TOTAL %.3f", slots.Total)

	if timing == nil {
		timing = domain.TimingMiss{}
	}

	result := domain.LuckResult{
		LuckOfTheSeaLevel: LuckOfTheSeaLevel(player),
		FortuneLevel:      player.EffectLevel(domain.EffectLuck),
		MisfortuneLevel:   player.EffectLevel(domain.EffectUnluck),
		ConduitLevel:      player.EffectLevel(domain.EffectConduitPower),
		EquipmentLuck:     slots.Total,
		WeatherLuck:       cfg.WeatherLuckFor(weather),
		TimingLuck:        timing.LuckBonus(),
		ExperienceLevel:   player.ExperienceLevel,
	}

	b := NewCalculator(cfg).Breakdown(result)
	a.trace.Logf(player.ID, " LUCK: sea=%d(%.2f) fortune=%d(%.2f) misfortune=%d(%.2f) conduit=%d equip=%.2f weather=%s(%.2f) timing=%.2f xp=%d(%.2f) total=%.2f",
		result.LuckOfTheSeaLevel, b.LuckOfTheSea,
		result.FortuneLevel, b.Fortune,
		result.MisfortuneLevel, b.Misfortune,
		result.ConduitLevel, b.Equipment,
		weather, b.Weather, b.Timing,
		result.ExperienceLevel, b.Experience, b.Total)

	return result
}

// LuckOfTheSeaLevel is the higher enchantment level of the main and off hand
func LuckOfTheSeaLevel(player domain.PlayerState) int {
	level := 0
	for _, slot := range []domain.EquipmentSlot{domain.SlotHand, domain.SlotOffHand} {
		if item, ok := player.Equipment[slot]; ok && item.LuckOfTheSea > level {
			level = item.LuckOfTheSea
		}
	}
	return level
}
