// Package environment answers the world questions a catch depends on: which weather
// applies at the hook and whether the hook sits in open water.
package environment

import (
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Blocks that count as open water around the hook
var openWaterBlocks = map[string]bool{
	"minecraft:water":         true,
	"minecraft:air":           true,
	"minecraft:lily_pad":      true,
	"minecraft:seagrass":      true,
	"minecraft:tall_seagrass": true,
	"minecraft:kelp":          true,
	"minecraft:kelp_plant":    true,
}

// IsOpenWater checks the 5x4x5 box around the hook (x,z in [-2,2], y in [-1,2]).
// Every block other than the hook itself must be water, air or an aquatic plant.
func IsOpenWater(blocks domain.BlockView, hook domain.Location) bool {
	if blocks == nil {
		return false
	}
	for x := -2; x <= 2; x++ {
		for y := -1; y <= 2; y++ {
			for z := -2; z <= 2; z++ {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				if !openWaterBlocks[blocks.BlockAt(hook.Offset(x, y, z))] {
					return false
				}
			}
		}
	}
	return true
}

// HasRainOverride scans straight up from the hook, y+1 through y+height, for the override block
func HasRainOverride(blocks domain.BlockView, hook domain.Location, block string, height int) bool {
	if blocks == nil || block == "" {
		return false
	}
	for y := 1; y <= height; y++ {
		if blocks.BlockAt(hook.Offset(0, y, 0)) == block {
			return true
		}
	}
	return false
}

// ResolveWeather combines the world's storm flags with the rain override scan
func ResolveWeather(state domain.WorldState, blocks domain.BlockView, hook domain.Location, overrideBlock string, scanHeight int) domain.Weather {
	weather := domain.WeatherFromFlags(state.HasStorm, state.Thundering)
	if HasRainOverride(blocks, hook, overrideBlock, scanHeight) {
		return domain.WeatherRain
	}
	return weather
}
