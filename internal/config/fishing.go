package config

import (
	"math"
	"sort"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// FishingConfig is the typed fishing configuration. It is decoded once per load or
// reload on top of DefaultFishingConfig and never mutated afterwards.
type FishingConfig struct {
	Enabled         bool                      `yaml:"enabled"`
	DefaultCategory string                    `yaml:"default_category" validate:"required"`
	LuckEffects     LuckEffectsConfig         `yaml:"luck_effects"`
	LuckAdjustment  LuckAdjustmentConfig      `yaml:"luck_adjustment"`
	WeatherLuck     map[string]float64        `yaml:"weather_luck" validate:"dive,keys,oneof=clear rain thunder,endkeys"`
	WeatherOverride WeatherOverrideConfig     `yaml:"weather_override"`
	TimingSystem    TimingConfig              `yaml:"timing_system"`
	DoubleFishing   DoubleFishingConfig       `yaml:"double_fishing"`
	UniqueItems     UniqueItemsConfig         `yaml:"unique_items"`
	Loot            LootConfig                `yaml:"loot"`
	PlayerHead      PlayerHeadConfig          `yaml:"player_head"`
	Categories      map[string]CategoryConfig `yaml:"categories" validate:"dive"`
}

type LuckEffectsConfig struct {
	Global       RangeConfig        `yaml:"global"`
	LuckOfTheSea LuckOfTheSeaConfig `yaml:"luck_of_the_sea"`
	Fortune      LevelBonusConfig   `yaml:"fortune"`
	Misfortune   LevelBonusConfig   `yaml:"misfortune"`
	Equipment    EquipmentConfig    `yaml:"equipment_luck"`
	Experience   LevelBonusConfig   `yaml:"experience"`
}

type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type LevelBonusConfig struct {
	MaxLevel int     `yaml:"max_level" validate:"gte=0"`
	PerLevel float64 `yaml:"per_level"`
}

// LuckOfTheSeaConfig adds a special bonus above SpecialThreshold, scaled by the conduit level
type LuckOfTheSeaConfig struct {
	MaxLevel            int     `yaml:"max_level" validate:"gte=0"`
	PerLevel            float64 `yaml:"per_level"`
	SpecialThreshold    int     `yaml:"special_threshold" validate:"gte=0"`
	SpecialBonus        float64 `yaml:"special_bonus"`
	SpecialConduitBonus float64 `yaml:"special_conduit_bonus"`
}

type EquipmentConfig struct {
	MinValue float64 `yaml:"min_value"`
	MaxValue float64 `yaml:"max_value"`
}

type LuckAdjustmentConfig struct {
	LuckScale     float64 `yaml:"luck_scale" validate:"gte=0"`
	QualityImpact float64 `yaml:"quality_impact" validate:"gte=0"`
	MaxMultiplier float64 `yaml:"max_multiplier" validate:"gte=1"`
	PenaltyScale  float64 `yaml:"penalty_scale" validate:"gte=0"`
}

type WeatherOverrideConfig struct {
	Block      string `yaml:"block"`
	ScanHeight int    `yaml:"scan_height" validate:"gte=0,lte=384"`
}

type TimingConfig struct {
	Enabled       bool               `yaml:"enabled"`
	BaseLuckBonus float64            `yaml:"base_luck_bonus"`
	Tiers         []TimingTierConfig `yaml:"tiers" validate:"dive"`
}

// TimingTierConfig leaves MaxTimeMs nil for "no limit"
type TimingTierConfig struct {
	Name            string   `yaml:"name" validate:"required"`
	MaxTimeMs       *float64 `yaml:"max_time_ms"`
	BonusMultiplier float64  `yaml:"bonus_multiplier"`
	Message         string   `yaml:"message"`
}

type DoubleFishingConfig struct {
	Enabled         bool `yaml:"enabled"`
	MinLuckOfTheSea int  `yaml:"min_luck_of_the_sea" validate:"gte=0"`
	MinConduitLevel int  `yaml:"min_conduit_level" validate:"gte=0"`
}

type UniqueItemsConfig struct {
	MaxRerolls       int    `yaml:"max_rerolls" validate:"gte=0,lte=20"`
	FallbackMaterial string `yaml:"fallback_material" validate:"required"`
	ProvenancePrefix string `yaml:"provenance_prefix"`
}

type LootConfig struct {
	LuckScale float64 `yaml:"luck_scale"`
	MinLuck   float64 `yaml:"min_luck"`
	MaxLuck   float64 `yaml:"max_luck"`
}

type PlayerHeadConfig struct {
	Category string `yaml:"category"`
}

// CategoryConfig is one entry under categories. Pointers distinguish "absent" from zero.
type CategoryConfig struct {
	Enabled    *bool                  `yaml:"enabled"`
	Priority   *int                   `yaml:"priority"`
	Quality    float64                `yaml:"quality"`
	Chance     float64                `yaml:"chance" validate:"gte=0"`
	Conditions *ConditionsConfig      `yaml:"conditions"`
	Effects    domain.CategoryEffects `yaml:"effects"`
}

type ConditionsConfig struct {
	RequireOpenWater     bool     `yaml:"require_open_water"`
	RequireDolphinsGrace bool     `yaml:"require_dolphins_grace"`
	MinLuckOfTheSea      int      `yaml:"min_luck_of_the_sea" validate:"gte=0"`
	MaxLuckOfTheSea      *int     `yaml:"max_luck_of_the_sea"`
	MinLuckEffect        float64  `yaml:"min_luck_effect"`
	MaxLuckEffect        *float64 `yaml:"max_luck_effect"`
	Weather              []string `yaml:"weather" validate:"dive,oneof=clear rain thunder"`
}

// DefaultFishingConfig returns the configuration used for every key the file omits
func DefaultFishingConfig() *FishingConfig {
	return &FishingConfig{
		Enabled:         true,
		DefaultCategory: domain.DefaultCategory,
		LuckEffects: LuckEffectsConfig{
			Global: RangeConfig{Min: DefaultGlobalLuckMin, Max: DefaultGlobalLuckMax},
			LuckOfTheSea: LuckOfTheSeaConfig{
				MaxLevel:            DefaultLuckOfTheSeaMaxLevel,
				PerLevel:            DefaultLuckOfTheSeaPerLevel,
				SpecialThreshold:    DefaultLuckOfTheSeaSpecialThreshold,
				SpecialBonus:        DefaultLuckOfTheSeaSpecialBonus,
				SpecialConduitBonus: DefaultLuckOfTheSeaSpecialConduit,
			},
			Fortune:    LevelBonusConfig{MaxLevel: DefaultFortuneMaxLevel, PerLevel: DefaultFortunePerLevel},
			Misfortune: LevelBonusConfig{MaxLevel: DefaultMisfortuneMaxLevel, PerLevel: DefaultMisfortunePerLevel},
			Equipment:  EquipmentConfig{MinValue: DefaultEquipmentMin, MaxValue: DefaultEquipmentMax},
			Experience: LevelBonusConfig{MaxLevel: DefaultExperienceMaxLevel, PerLevel: DefaultExperiencePerLevel},
		},
		LuckAdjustment: LuckAdjustmentConfig{
			LuckScale:     DefaultLuckScale,
			QualityImpact: DefaultQualityImpact,
			MaxMultiplier: DefaultMaxMultiplier,
			PenaltyScale:  DefaultPenaltyScale,
		},
		WeatherLuck: map[string]float64{
			string(domain.WeatherClear):   0,
			string(domain.WeatherRain):    0,
			string(domain.WeatherThunder): 0,
		},
		WeatherOverride: WeatherOverrideConfig{
			Block:      DefaultRainOverrideBlock,
			ScanHeight: DefaultRainScanHeight,
		},
		TimingSystem: TimingConfig{
			Enabled:       true,
			BaseLuckBonus: DefaultTimingBaseLuckBonus,
			Tiers: []TimingTierConfig{
				{Name: "just", MaxTimeMs: floatPtr(100), BonusMultiplier: 2.0},
				{Name: "perfect", MaxTimeMs: floatPtr(300), BonusMultiplier: 1.5},
				{Name: "great", MaxTimeMs: floatPtr(600), BonusMultiplier: 1.0},
				{Name: "good", MaxTimeMs: floatPtr(1000), BonusMultiplier: 0.5},
			},
		},
		DoubleFishing: DoubleFishingConfig{
			Enabled:         true,
			MinLuckOfTheSea: DefaultDoubleFishingMinLuckOfTheSea,
			MinConduitLevel: DefaultDoubleFishingMinConduitLevel,
		},
		UniqueItems: UniqueItemsConfig{
			MaxRerolls:       DefaultMaxRerolls,
			FallbackMaterial: domain.MaterialCod,
			ProvenancePrefix: domain.LorePrefixFirstFinder,
		},
		Loot: LootConfig{
			LuckScale: DefaultLootLuckScale,
			MinLuck:   DefaultLootMinLuck,
			MaxLuck:   DefaultLootMaxLuck,
		},
		PlayerHead: PlayerHeadConfig{Category: domain.DefaultPlayerHeadCategory},
	}
}

// CategoryDefinitions converts the configured categories, ordered by name
func (c *FishingConfig) CategoryDefinitions() []domain.CategoryDefinition {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]domain.CategoryDefinition, 0, len(names))
	for _, name := range names {
		defs = append(defs, c.Categories[name].toDomain(name))
	}
	return defs
}

// Category looks up a single category definition
func (c *FishingConfig) Category(name string) (domain.CategoryDefinition, bool) {
	cc, ok := c.Categories[name]
	if !ok {
		return domain.CategoryDefinition{}, false
	}
	return cc.toDomain(name), true
}

// CategoryNames returns every configured category name, sorted
func (c *FishingConfig) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TimingTiers returns the tiers in declaration order. A tier without max_time_ms never expires.
func (c *FishingConfig) TimingTiers() []domain.TimingTier {
	tiers := make([]domain.TimingTier, 0, len(c.TimingSystem.Tiers))
	for _, t := range c.TimingSystem.Tiers {
		maxTime := math.Inf(1)
		if t.MaxTimeMs != nil {
			maxTime = *t.MaxTimeMs
		}
		tiers = append(tiers, domain.TimingTier{
			Name:            t.Name,
			MaxTimeMs:       maxTime,
			BonusMultiplier: t.BonusMultiplier,
			Message:         t.Message,
		})
	}
	return tiers
}

// WeatherLuckFor returns the configured bonus for a weather category, 0 when absent
func (c *FishingConfig) WeatherLuckFor(w domain.Weather) float64 {
	return c.WeatherLuck[w.ConfigKey()]
}

func (cc CategoryConfig) toDomain(name string) domain.CategoryDefinition {
	def := domain.CategoryDefinition{
		Name:     name,
		Enabled:  true,
		Priority: domain.DefaultPriority,
		Quality:  cc.Quality,
		Chance:   cc.Chance,
		Effects:  cc.Effects,
	}
	if cc.Enabled != nil {
		def.Enabled = *cc.Enabled
	}
	if cc.Priority != nil {
		def.Priority = *cc.Priority
	}
	if cc.Conditions != nil {
		cond := &domain.CategoryConditions{
			RequireOpenWater:     cc.Conditions.RequireOpenWater,
			RequireDolphinsGrace: cc.Conditions.RequireDolphinsGrace,
			MinLuckOfTheSea:      cc.Conditions.MinLuckOfTheSea,
			MaxLuckOfTheSea:      cc.Conditions.MaxLuckOfTheSea,
			MinLuckEffect:        cc.Conditions.MinLuckEffect,
			MaxLuckEffect:        cc.Conditions.MaxLuckEffect,
		}
		for _, w := range cc.Conditions.Weather {
			if weather, ok := domain.ParseWeather(w); ok {
				cond.Weather = append(cond.Weather, weather)
			}
		}
		def.Conditions = cond
	}
	return def
}

func floatPtr(v float64) *float64 {
	return &v
}
