package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

const rainyCloud = "twilightforest:rainy_cloud"

var hook = domain.Location{World: "world", X: 10, Y: 62, Z: -4}

func TestIsOpenWater(t *testing.T) {
	t.Run("all water", func(t *testing.T) {
		assert.True(t, IsOpenWater(NewSnapshot(hook, "minecraft:water"), hook))
	})

	t.Run("aquatic plants and air are allowed", func(t *testing.T) {
		snap := NewSnapshot(hook, "minecraft:water")
		snap.Set(1, 2, 1, "minecraft:air")
		snap.Set(-2, -1, 0, "minecraft:kelp_plant")
		snap.Set(0, 1, 0, "minecraft:lily_pad")
		assert.True(t, IsOpenWater(snap, hook))
	})

	t.Run("solid block at the edge breaks open water", func(t *testing.T) {
		snap := NewSnapshot(hook, "minecraft:water")
		snap.Set(2, -1, -2, "minecraft:stone")
		assert.False(t, IsOpenWater(snap, hook))
	})

	t.Run("hook block itself is ignored", func(t *testing.T) {
		snap := NewSnapshot(hook, "minecraft:water")
		snap.Set(0, 0, 0, "minecraft:stone")
		assert.True(t, IsOpenWater(snap, hook))
	})

	t.Run("blocks outside the box are ignored", func(t *testing.T) {
		snap := NewSnapshot(hook, "minecraft:water")
		snap.Set(3, 0, 0, "minecraft:stone")
		snap.Set(0, -2, 0, "minecraft:sand")
		snap.Set(0, 3, 0, "minecraft:oak_log")
		assert.True(t, IsOpenWater(snap, hook))
	})

	t.Run("no block view", func(t *testing.T) {
		assert.False(t, IsOpenWater(nil, hook))
	})
}

func TestResolveWeather(t *testing.T) {
	tests := []struct {
		name     string
		state    domain.WorldState
		cloudAt  int
		expected domain.Weather
	}{
		{"clear sky", domain.WorldState{}, 0, domain.WeatherClear},
		{"storm is rain", domain.WorldState{HasStorm: true}, 0, domain.WeatherRain},
		{"thunder wins over rain", domain.WorldState{HasStorm: true, Thundering: true}, 0, domain.WeatherThunder},
		{"cloud directly above forces rain", domain.WorldState{}, 1, domain.WeatherRain},
		{"cloud at the scan limit forces rain", domain.WorldState{}, 32, domain.WeatherRain},
		{"cloud beyond the scan limit is ignored", domain.WorldState{}, 33, domain.WeatherClear},
		{"cloud downgrades thunder to rain", domain.WorldState{HasStorm: true, Thundering: true}, 5, domain.WeatherRain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := NewSnapshot(hook, domain.MaterialAir)
			if tt.cloudAt > 0 {
				snap.Set(0, tt.cloudAt, 0, rainyCloud)
			}
			assert.Equal(t, tt.expected, ResolveWeather(tt.state, snap, hook, rainyCloud, 32))
		})
	}
}

func TestHasRainOverride_OffAxisIgnored(t *testing.T) {
	snap := NewSnapshot(hook, domain.MaterialAir)
	snap.Set(1, 5, 0, rainyCloud)
	assert.False(t, HasRainOverride(snap, hook, rainyCloud, 32))
	assert.False(t, HasRainOverride(snap, hook, "", 32))
}

func TestSnapshot_OtherWorldReadsDefault(t *testing.T) {
	snap := NewSnapshot(hook, domain.MaterialAir)
	snap.Set(0, 1, 0, rainyCloud)
	other := hook
	other.World = "world_nether"
	assert.Equal(t, domain.MaterialAir, snap.BlockAt(other.Offset(0, 1, 0)))
}
