package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

var validate = validator.New()

// LoadFishingConfig reads, decodes and validates the fishing configuration file
func LoadFishingConfig(path string) (*FishingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fishing config %s: %w", path, err)
	}
	cfg, err := ParseFishingConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseFishingConfig decodes YAML on top of the defaults and validates the result
func ParseFishingConfig(data []byte) (*FishingConfig, error) {
	cfg := DefaultFishingConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate runs tag validation plus the cross-field rules tags cannot express
func (c *FishingConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	var problems []error

	global := c.LuckEffects.Global
	if global.Min > global.Max {
		problems = append(problems, fmt.Errorf("luck_effects.global.min %.2f exceeds max %.2f", global.Min, global.Max))
	}
	equip := c.LuckEffects.Equipment
	if equip.MinValue > equip.MaxValue {
		problems = append(problems, fmt.Errorf("luck_effects.equipment_luck.min_value %.2f exceeds max_value %.2f", equip.MinValue, equip.MaxValue))
	}
	if c.Loot.MinLuck > c.Loot.MaxLuck {
		problems = append(problems, fmt.Errorf("loot.min_luck %.0f exceeds max_luck %.0f", c.Loot.MinLuck, c.Loot.MaxLuck))
	}

	seen := make(map[string]bool, len(c.TimingSystem.Tiers))
	for _, tier := range c.TimingSystem.Tiers {
		if seen[tier.Name] {
			problems = append(problems, fmt.Errorf("timing_system.tiers: duplicate tier %q", tier.Name))
		}
		seen[tier.Name] = true
		if tier.MaxTimeMs != nil && *tier.MaxTimeMs < 0 {
			problems = append(problems, fmt.Errorf("timing_system.tiers.%s.max_time_ms must not be negative", tier.Name))
		}
	}

	for _, name := range c.CategoryNames() {
		cond := c.Categories[name].Conditions
		if cond == nil {
			continue
		}
		if cond.MaxLuckOfTheSea != nil && *cond.MaxLuckOfTheSea < cond.MinLuckOfTheSea {
			problems = append(problems, fmt.Errorf("categories.%s.conditions: max_luck_of_the_sea below min_luck_of_the_sea", name))
		}
		if cond.MaxLuckEffect != nil && *cond.MaxLuckEffect < cond.MinLuckEffect {
			problems = append(problems, fmt.Errorf("categories.%s.conditions: max_luck_effect below min_luck_effect", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(problems...))
	}
	return nil
}
