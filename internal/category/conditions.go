package category

import (
	"fmt"

	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Context is the per-attempt state gating conditions are checked against
type Context struct {
	OpenWater     bool
	DolphinsGrace bool
	Weather       domain.Weather
	LuckOfTheSea  int
	TotalLuck     float64
}

// CheckConditions reports whether def may be drawn in c. When it may not, reason says why.
// A disabled category, or one without a conditions block, is never eligible.
func CheckConditions(def domain.CategoryDefinition, c Context) (ok bool, reason string) {
	if !def.Enabled {
		return false, ReasonDisabled
	}
	cond := def.Conditions
	if cond == nil {
		return false, ReasonNoConditions
	}
	if cond.RequireOpenWater && !c.OpenWater {
		return false, ReasonOpenWater
	}
	if cond.RequireDolphinsGrace && !c.DolphinsGrace {
		return false, ReasonDolphinsGrace
	}
	if c.LuckOfTheSea < cond.MinLuckOfTheSea {
		return false, fmt.Sprintf("%s %d < %d", ReasonLuckOfTheSea, c.LuckOfTheSea, cond.MinLuckOfTheSea)
	}
	if cond.MaxLuckOfTheSea != nil && c.LuckOfTheSea > *cond.MaxLuckOfTheSea {
		return false, fmt.Sprintf("%s %d > %d", ReasonLuckOfTheSea, c.LuckOfTheSea, *cond.MaxLuckOfTheSea)
	}
	if c.TotalLuck < cond.MinLuckEffect {
		return false, fmt.Sprintf("%s %.2f < %.2f", ReasonTotalLuck, c.TotalLuck, cond.MinLuckEffect)
	}
	if cond.MaxLuckEffect != nil && c.TotalLuck > *cond.MaxLuckEffect {
		return false, fmt.Sprintf("%s %.2f > %.2f", ReasonTotalLuck, c.TotalLuck, *cond.MaxLuckEffect)
	}
	if !cond.AllowsWeather(c.Weather) {
		return false, fmt.Sprintf("%s %s", ReasonWeather, c.Weather.ConfigKey())
	}
	return true, ""
}

// EligibleCount counts the categories of cfg whose conditions hold in c
func EligibleCount(cfg *config.FishingConfig, c Context) int {
	count := 0
	for _, def := range cfg.CategoryDefinitions() {
		if ok, _ := CheckConditions(def, c); ok {
			count++
		}
	}
	return count
}

// HigherPriority returns whichever category has the lower priority number.
// Ties go to cat1; unknown categories count as DefaultPriority.
func HigherPriority(cfg *config.FishingConfig, cat1, cat2 string) string {
	if priorityOf(cfg, cat1) <= priorityOf(cfg, cat2) {
		return cat1
	}
	return cat2
}

func priorityOf(cfg *config.FishingConfig, name string) int {
	if cfg == nil {
		return domain.DefaultPriority
	}
	def, ok := cfg.Category(name)
	if !ok {
		return domain.DefaultPriority
	}
	return def.Priority
}
