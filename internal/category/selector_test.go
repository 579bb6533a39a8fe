package category

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

func category(priority int, quality, chance float64) config.CategoryConfig {
	return config.CategoryConfig{
		Priority:   intPtr(priority),
		Quality:    quality,
		Chance:     chance,
		Conditions: &config.ConditionsConfig{},
	}
}

// tieredConfig is the god / legendary / treasure set used for the ordering regression tests
func tieredConfig() *config.FishingConfig {
	cfg := config.DefaultFishingConfig()
	cfg.Categories = map[string]config.CategoryConfig{
		"god":       category(3, 1.0, 0.0001),
		"legendary": category(8, 1.0, 1.0),
		"treasure":  category(13, 3.0, 40.0),
	}
	return cfg
}

// fixedRoll returns an rnd that yields roll/total
func fixedRoll(roll, total float64) func() float64 {
	return func() float64 { return roll / total }
}

type recordingSink struct {
	lines []string
}

func (r *recordingSink) Logf(_ string, format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestSelector_DescendingPriorityOrder(t *testing.T) {
	s := NewSelector(nil, nil)
	candidates := s.Candidates(tieredConfig(), "p", Context{})

	require.Len(t, candidates, 3)
	assert.Equal(t, "treasure", candidates[0].Name)
	assert.Equal(t, "legendary", candidates[1].Name)
	assert.Equal(t, "god", candidates[2].Name)

	for _, c := range candidates {
		assert.Equal(t, c.Base, c.Adjusted, "zero luck must leave %s unchanged", c.Name)
	}
}

func TestSelector_CumulativeBoundaries(t *testing.T) {
	const total = 41.0001

	tests := []struct {
		name string
		roll float64
		want string
	}{
		{"bottom of treasure", 0, "treasure"},
		{"tiny roll lands in treasure not god", 0.00005, "treasure"},
		{"top of treasure", 39.999, "treasure"},
		{"bottom of legendary", 40.001, "legendary"},
		{"top of legendary", 40.999, "legendary"},
		{"god slice", 41.00005, "god"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(fixedRoll(tt.roll, total), nil)
			sel := s.Select(tieredConfig(), "p", Context{})

			assert.Equal(t, tt.want, sel.Category)
			assert.False(t, sel.Fallback)
			assert.InDelta(t, total, sel.Total, 1e-9)
			assert.InDelta(t, tt.roll, sel.Roll, 1e-9)
		})
	}
}

func TestSelector_SingleDraw(t *testing.T) {
	calls := 0
	s := NewSelector(func() float64 {
		calls++
		return 0.5
	}, nil)

	s.Select(tieredConfig(), "p", Context{})
	assert.Equal(t, 1, calls)
}

func TestSelector_DeterministicWithSeed(t *testing.T) {
	draw := func() []string {
		rng := rand.New(rand.NewSource(7))
		s := NewSelector(rng.Float64, nil)
		out := make([]string, 0, 50)
		for i := 0; i < 50; i++ {
			out = append(out, s.Select(tieredConfig(), "p", Context{TotalLuck: 3}).Category)
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestSelector_Fallbacks(t *testing.T) {
	t.Run("no categories", func(t *testing.T) {
		cfg := config.DefaultFishingConfig()
		sel := NewSelector(nil, nil).Select(cfg, "p", Context{})
		assert.Equal(t, domain.DefaultCategory, sel.Category)
		assert.True(t, sel.Fallback)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		cfg := tieredConfig()
		for name, c := range cfg.Categories {
			c.Conditions = nil
			cfg.Categories[name] = c
		}
		sel := NewSelector(nil, nil).Select(cfg, "p", Context{})
		assert.True(t, sel.Fallback)
		assert.Empty(t, sel.Candidates)
	})

	t.Run("negative luck zeroes every chance", func(t *testing.T) {
		cfg := config.DefaultFishingConfig()
		cfg.Categories = map[string]config.CategoryConfig{
			"rare": category(5, 2, 0.1),
		}
		cfg.Categories["rare"].Conditions.MinLuckEffect = -100
		sel := NewSelector(nil, nil).Select(cfg, "p", Context{TotalLuck: -10})
		assert.True(t, sel.Fallback)
	})

	t.Run("non finite luck does not roll", func(t *testing.T) {
		s := NewSelector(func() float64 {
			t.Fatal("rnd must not be called")
			return 0
		}, nil)
		sel := s.Select(tieredConfig(), "p", Context{TotalLuck: math.NaN()})
		assert.Equal(t, domain.DefaultCategory, sel.Category)
		assert.True(t, sel.Fallback)
	})

	t.Run("default category chance is reported", func(t *testing.T) {
		cfg := tieredConfig()
		cfg.Categories["common"] = config.CategoryConfig{Priority: intPtr(20), Chance: 55}
		sel := NewSelector(nil, nil).Select(cfg, "p", Context{TotalLuck: math.Inf(1)})
		assert.Equal(t, "common", sel.Category)
		assert.Equal(t, 20, sel.Priority)
		assert.InDelta(t, 55.0, sel.BaseChance, 1e-9)
	})
}

func TestSelector_Trace(t *testing.T) {
	cfg := tieredConfig()
	cfg.Categories["closed"] = config.CategoryConfig{Chance: 10}
	sink := &recordingSink{}

	NewSelector(fixedRoll(40.5, 41.0001), sink).Select(cfg, "p", Context{})

	joined := strings.Join(sink.lines, "\n")
	assert.Contains(t, joined, "ROLL")
	assert.Contains(t, joined, "reason")
	assert.Contains(t, joined, LabelHit)
	assert.Contains(t, joined, LabelMiss)
	assert.Contains(t, joined, LabelSkip)
}

func TestSelector_DistributionMatchesWeights(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.Categories = map[string]config.CategoryConfig{
		"a": category(1, 0, 10),
		"b": category(2, 0, 30),
		"c": category(3, 0, 60),
	}

	const draws = 30000
	rng := rand.New(rand.NewSource(42))
	s := NewSelector(rng.Float64, nil)

	counts := map[string]float64{}
	for i := 0; i < draws; i++ {
		counts[s.Select(cfg, "p", Context{TotalLuck: 5}).Category]++
	}

	observed := []float64{counts["a"], counts["b"], counts["c"]}
	expected := []float64{draws * 0.1, draws * 0.3, draws * 0.6}

	chi := stat.ChiSquare(observed, expected)
	critical := distuv.ChiSquared{K: 2}.Quantile(0.999)
	assert.Less(t, chi, critical, "observed %v expected %v", observed, expected)
}

func TestSelector_WeightMonotonicity(t *testing.T) {
	frequency := func(chance float64) int {
		cfg := config.DefaultFishingConfig()
		cfg.Categories = map[string]config.CategoryConfig{
			"target": category(1, 0, chance),
			"other":  category(1, 0, 50),
		}
		rng := rand.New(rand.NewSource(99))
		s := NewSelector(rng.Float64, nil)
		n := 0
		for i := 0; i < 5000; i++ {
			if s.Select(cfg, "p", Context{}).Category == "target" {
				n++
			}
		}
		return n
	}

	low := frequency(10)
	high := frequency(20)
	assert.GreaterOrEqual(t, high, low)
}
