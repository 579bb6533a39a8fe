package timing

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func ms(v float64) *float64 {
	return &v
}

func TestEvaluator_Evaluate(t *testing.T) {
	e := NewEvaluator(config.DefaultFishingConfig())

	tests := []struct {
		name      string
		elapsed   int64
		wantTier  string
		wantBonus float64
	}{
		{"just", 50, "just", 3.0},
		{"just boundary is inclusive", 100, "just", 3.0},
		{"perfect", 101, "perfect", 2.25},
		{"great", 450, "great", 1.5},
		{"good", 1000, "good", 0.75},
		{"negative elapsed reads as zero", -20, "just", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Evaluate(tt.elapsed)
			hit, ok := got.(domain.TimingHit)
			require.True(t, ok, "expected a hit, got %T", got)
			assert.Equal(t, tt.wantTier, hit.Tier.Name)
			assert.InDelta(t, tt.wantBonus, hit.Bonus, 1e-9)
			assert.InDelta(t, tt.wantBonus, got.LuckBonus(), 1e-9)
		})
	}
}

func TestEvaluator_TooSlowIsMiss(t *testing.T) {
	e := NewEvaluator(config.DefaultFishingConfig())
	got := e.Evaluate(1001)
	assert.IsType(t, domain.TimingMiss{}, got)
	assert.Zero(t, got.LuckBonus())
}

func TestEvaluator_DeclaredOrderWins(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.TimingSystem.Tiers = []config.TimingTierConfig{
		{Name: "just", MaxTimeMs: ms(100), BonusMultiplier: 2},
		{Name: "perfect", MaxTimeMs: ms(300), BonusMultiplier: 1.5},
	}
	got := NewEvaluator(cfg).Evaluate(50)

	hit, ok := got.(domain.TimingHit)
	require.True(t, ok)
	assert.Equal(t, "just", hit.Tier.Name)
}

func TestEvaluator_LenientTierFirstShadowsStricter(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.TimingSystem.Tiers = []config.TimingTierConfig{
		{Name: "slow", MaxTimeMs: ms(1000), BonusMultiplier: 0.5},
		{Name: "fast", MaxTimeMs: ms(100), BonusMultiplier: 2},
	}
	hit, ok := NewEvaluator(cfg).Evaluate(10).(domain.TimingHit)
	require.True(t, ok)
	assert.Equal(t, "slow", hit.Tier.Name)
}

func TestEvaluator_UnboundedTier(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.TimingSystem.Tiers = []config.TimingTierConfig{
		{Name: "any"},
	}
	hit, ok := NewEvaluator(cfg).Evaluate(math.MaxInt32).(domain.TimingHit)
	require.True(t, ok)
	assert.Equal(t, "any", hit.Tier.Name)
	assert.Zero(t, hit.Bonus)
}

func TestEvaluator_Disabled(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.TimingSystem.Enabled = false
	assert.IsType(t, domain.TimingMiss{}, NewEvaluator(cfg).Evaluate(10))
}

func TestEvaluator_FromBite(t *testing.T) {
	e := NewEvaluator(config.DefaultFishingConfig())
	bite := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no bite recorded", func(t *testing.T) {
		assert.IsType(t, domain.TimingMiss{}, e.FromBite(time.Time{}, bite, false))
	})

	t.Run("zero bite time", func(t *testing.T) {
		assert.IsType(t, domain.TimingMiss{}, e.FromBite(time.Time{}, bite, true))
	})

	t.Run("perfect reaction", func(t *testing.T) {
		hit, ok := e.FromBite(bite, bite.Add(250*time.Millisecond), true).(domain.TimingHit)
		require.True(t, ok)
		assert.Equal(t, "perfect", hit.Tier.Name)
		assert.Equal(t, int64(250), hit.ReactionTimeMs)
	})
}

func TestTimingResult_JSON(t *testing.T) {
	miss, err := json.Marshal(domain.TimingMiss{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hit":false}`, string(miss))

	hit, err := json.Marshal(domain.TimingHit{
		Tier:           domain.TimingTier{Name: "just", MaxTimeMs: 100, BonusMultiplier: 2},
		ReactionTimeMs: 42,
		Bonus:          3,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hit":true,"tier":"just","tier_max_time_ms":100,"reaction_time_ms":42,"luck_bonus":3}`, string(hit))
}
