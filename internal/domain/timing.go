package domain

import (
	"encoding/json"
	"math"
)

// TimingTier is a named reaction-speed band
type TimingTier struct {
	Name            string  `json:"name"`
	MaxTimeMs       float64 `json:"max_time_ms"`
	BonusMultiplier float64 `json:"bonus_multiplier"`
	Message         string  `json:"message,omitempty"`
}

// Matches reports whether a reaction time falls inside this tier
func (t TimingTier) Matches(reactionTimeMs int64) bool {
	return float64(reactionTimeMs) <= t.MaxTimeMs
}

// LuckBonus scales the configured base bonus by this tier's multiplier
func (t TimingTier) LuckBonus(baseLuckBonus float64) float64 {
	return baseLuckBonus * t.BonusMultiplier
}

// TimingResult is either TimingMiss or TimingHit. Switch on the concrete type:
//
//	switch r := result.(type) {
//	case TimingHit:
//	case TimingMiss:
//	}
type TimingResult interface {
	LuckBonus() float64
	isTimingResult()
}

// TimingMiss means no bite was recorded or the reaction was slower than every tier
type TimingMiss struct{}

func (TimingMiss) LuckBonus() float64 { return 0 }
func (TimingMiss) isTimingResult()    {}

// MarshalJSON renders a miss as {"hit":false}
func (TimingMiss) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Hit bool `json:"hit"`
	}{})
}

// TimingHit carries the matched tier and the bonus it grants
type TimingHit struct {
	Tier           TimingTier
	ReactionTimeMs int64
	Bonus          float64
}

func (h TimingHit) LuckBonus() float64 { return h.Bonus }
func (TimingHit) isTimingResult()      {}

// MarshalJSON renders the hit with its tier name and bonus
func (h TimingHit) MarshalJSON() ([]byte, error) {
	maxTime := h.Tier.MaxTimeMs
	if math.IsInf(maxTime, 1) {
		maxTime = -1
	}
	return json.Marshal(struct {
		Hit            bool    `json:"hit"`
		Tier           string  `json:"tier"`
		TierMaxTimeMs  float64 `json:"tier_max_time_ms"`
		ReactionTimeMs int64   `json:"reaction_time_ms"`
		LuckBonus      float64 `json:"luck_bonus"`
		Message        string  `json:"message,omitempty"`
	}{
		Hit:            true,
		Tier:           h.Tier.Name,
		TierMaxTimeMs:  maxTime,
		ReactionTimeMs: h.ReactionTimeMs,
		LuckBonus:      h.Bonus,
		Message:        h.Tier.Message,
	})
}

// IsHit reports whether the result is a TimingHit
func IsHit(r TimingResult) bool {
	_, ok := r.(TimingHit)
	return ok
}
