package luck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func slotPtr(s domain.EquipmentSlot) *domain.EquipmentSlot {
	return &s
}

func TestSlotLuck(t *testing.T) {
	tests := []struct {
		name      string
		modifiers []domain.AttributeModifier
		slot      domain.EquipmentSlot
		want      float64
	}{
		{
			name: "no modifiers",
			slot: domain.SlotHand,
			want: 0,
		},
		{
			name: "add number",
			modifiers: []domain.AttributeModifier{
				{Amount: 2, Operation: domain.OpAddNumber},
				{Amount: 1.5, Operation: domain.OpAddNumber},
			},
			slot: domain.SlotHead,
			want: 3.5,
		},
		{
			name: "scalar then multiply",
			modifiers: []domain.AttributeModifier{
				{Amount: 2, Operation: domain.OpAddNumber},
				{Amount: 0.5, Operation: domain.OpAddScalar},
				{Amount: 1, Operation: domain.OpMultiplyScalar1},
			},
			slot: domain.SlotChest,
			want: 6,
		},
		{
			name: "multiply compounds",
			modifiers: []domain.AttributeModifier{
				{Amount: 1, Operation: domain.OpAddNumber},
				{Amount: 1, Operation: domain.OpMultiplyScalar1},
				{Amount: 1, Operation: domain.OpMultiplyScalar1},
			},
			slot: domain.SlotFeet,
			want: 4,
		},
		{
			name: "modifier for another slot is ignored",
			modifiers: []domain.AttributeModifier{
				{Amount: 3, Operation: domain.OpAddNumber, Slot: slotPtr(domain.SlotHead)},
				{Amount: 1, Operation: domain.OpAddNumber, Slot: slotPtr(domain.SlotHand)},
			},
			slot: domain.SlotHand,
			want: 1,
		},
		{
			name: "scalar without base stays zero",
			modifiers: []domain.AttributeModifier{
				{Amount: 5, Operation: domain.OpAddScalar},
			},
			slot: domain.SlotLegs,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlotLuck(domain.EquippedItem{LuckModifiers: tt.modifiers}, tt.slot)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func addNumber(amount float64) domain.EquippedItem {
	return domain.EquippedItem{
		LuckModifiers: []domain.AttributeModifier{{Amount: amount, Operation: domain.OpAddNumber}},
	}
}

func TestEquipmentLuck(t *testing.T) {
	t.Run("per slot clamp", func(t *testing.T) {
		b := EquipmentLuck(map[domain.EquipmentSlot]domain.EquippedItem{
			domain.SlotHead: addNumber(10),
			domain.SlotFeet: addNumber(-8),
			domain.SlotHand: addNumber(2),
		}, -6, 6)

		assert.InDelta(t, 10.0, b.Raw[domain.SlotHead], 1e-9)
		assert.InDelta(t, 6.0, b.Clamped[domain.SlotHead], 1e-9)
		assert.InDelta(t, -6.0, b.Clamped[domain.SlotFeet], 1e-9)
		assert.InDelta(t, 2.0, b.Total, 1e-9)
		assert.Len(t, b.Clamped, len(domain.AllEquipmentSlots))
	})

	t.Run("total stays within six slots of bounds", func(t *testing.T) {
		equipment := make(map[domain.EquipmentSlot]domain.EquippedItem)
		for _, slot := range domain.AllEquipmentSlots {
			equipment[slot] = addNumber(100)
		}
		b := EquipmentLuck(equipment, -6, 6)
		assert.InDelta(t, 36.0, b.Total, 1e-9)
	})

	t.Run("empty equipment", func(t *testing.T) {
		b := EquipmentLuck(nil, -6, 6)
		assert.Zero(t, b.Total)
	})
}

func TestCalculator_Factors(t *testing.T) {
	c := NewCalculator(config.DefaultFishingConfig())

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"sea level 3", c.LuckOfTheSeaBonus(3, 0), 1.5},
		{"sea level capped", c.LuckOfTheSeaBonus(50, 0), 5.0},
		{"sea at threshold has no special", c.LuckOfTheSeaBonus(100, 3), 5.0},
		{"sea above threshold with conduit", c.LuckOfTheSeaBonus(101, 2), 5.0 + 2.0 + 1.0},
		{"fortune", c.FortuneBonus(2), 1.0},
		{"fortune capped", c.FortuneBonus(255), 5.0},
		{"misfortune", c.MisfortunePenalty(1), -0.5},
		{"misfortune capped", c.MisfortunePenalty(40), -5.0},
		{"experience", c.ExperienceBonus(30), 0.3},
		{"experience capped", c.ExperienceBonus(500), 1.0},
		{"equipment within bounds", c.EquipmentBonus(12), 12},
		{"equipment clamped", c.EquipmentBonus(-50), -36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.got, 1e-9)
		})
	}
}

func TestCalculator_Total(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	c := NewCalculator(cfg)

	tests := []struct {
		name   string
		result domain.LuckResult
		want   float64
	}{
		{
			name:   "nothing",
			result: domain.LuckResult{},
			want:   0,
		},
		{
			name: "sum of factors",
			result: domain.LuckResult{
				LuckOfTheSeaLevel: 3,
				FortuneLevel:      1,
				EquipmentLuck:     1,
				WeatherLuck:       0.5,
				TimingLuck:        1.5,
				ExperienceLevel:   10,
			},
			want: 1.5 + 0.5 + 1 + 0.5 + 1.5 + 0.1,
		},
		{
			name:   "clamped to global max",
			result: domain.LuckResult{LuckOfTheSeaLevel: 10, FortuneLevel: 10, EquipmentLuck: 30},
			want:   10,
		},
		{
			name:   "clamped to global min",
			result: domain.LuckResult{MisfortuneLevel: 10, EquipmentLuck: -36},
			want:   -10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, c.Total(tt.result), 1e-9)
		})
	}
}

func TestCalculator_NaNIsNotClamped(t *testing.T) {
	c := NewCalculator(config.DefaultFishingConfig())
	total := c.Total(domain.LuckResult{WeatherLuck: math.NaN()})
	assert.True(t, math.IsNaN(total))
}

func TestCalculator_BreakdownPotion(t *testing.T) {
	c := NewCalculator(config.DefaultFishingConfig())
	b := c.Breakdown(domain.LuckResult{FortuneLevel: 3, MisfortuneLevel: 1})
	assert.InDelta(t, 1.0, b.Potion(), 1e-9)
	assert.InDelta(t, 1.0, b.Total, 1e-9)
}

type recordingSink struct {
	lines []string
}

func (r *recordingSink) Logf(_ string, format string, _ ...any) {
	r.lines = append(r.lines, format)
}

func TestAggregator_Aggregate(t *testing.T) {
	cfg := config.DefaultFishingConfig()
	cfg.WeatherLuck["rain"] = 1.25

	player := domain.PlayerState{
		ID:   "p1",
		Name: "Steve",
		Equipment: map[domain.EquipmentSlot]domain.EquippedItem{
			domain.SlotHand:    {Material: domain.MaterialFishingRod, LuckOfTheSea: 2},
			domain.SlotOffHand: {Material: domain.MaterialFishingRod, LuckOfTheSea: 5},
			domain.SlotHead:    addNumber(1),
		},
		Effects: []domain.StatusEffect{
			{Type: domain.EffectLuck, Amplifier: 1},
			{Type: domain.EffectConduitPower, Amplifier: 0},
		},
		ExperienceLevel: 42,
	}
	hit := domain.TimingHit{Tier: domain.TimingTier{Name: "great"}, ReactionTimeMs: 400, Bonus: 1.5}

	sink := &recordingSink{}
	got := NewAggregator(sink).Aggregate(cfg, player, domain.WeatherRain, hit)

	assert.Equal(t, domain.LuckResult{
		LuckOfTheSeaLevel: 5,
		FortuneLevel:      2,
		MisfortuneLevel:   0,
		ConduitLevel:      1,
		EquipmentLuck:     1,
		WeatherLuck:       1.25,
		TimingLuck:        1.5,
		ExperienceLevel:   42,
	}, got)
	assert.NotEmpty(t, sink.lines)
}

func TestAggregator_NilTimingIsMiss(t *testing.T) {
	got := NewAggregator(nil).Aggregate(config.DefaultFishingConfig(), domain.PlayerState{ID: "p"}, domain.WeatherClear, nil)
	assert.Zero(t, got.TimingLuck)
}

func TestLuckOfTheSeaLevel(t *testing.T) {
	assert.Equal(t, 0, LuckOfTheSeaLevel(domain.PlayerState{}))
	assert.Equal(t, 3, LuckOfTheSeaLevel(domain.PlayerState{
		Equipment: map[domain.EquipmentSlot]domain.EquippedItem{
			domain.SlotHand: {LuckOfTheSea: 3},
			domain.SlotHead: {LuckOfTheSea: 9},
		},
	}))
}
