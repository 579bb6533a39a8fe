package fishing

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CustomizeFishing_Go/internal/category"
	"github.com/osse101/CustomizeFishing_Go/internal/config"
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
	"github.com/osse101/CustomizeFishing_Go/internal/luck"
)

// Explain renders the player-facing probability line for a category: the luck-adjusted
// chance, the adjustment against the base chance, then one part per active luck source.
// Unknown categories explain to the empty string.
func Explain(cfg *config.FishingConfig, categoryName string, lr domain.LuckResult, weather domain.Weather, timing domain.TimingResult) string {
	def, ok := cfg.Category(categoryName)
	if !ok {
		return ""
	}
	b := luck.NewCalculator(cfg).Breakdown(lr)
	adjusted := category.AdjustChance(def.Chance, def.Quality, b.Total, cfg.LuckAdjustment)

	var sb strings.Builder
	sb.WriteString(ExplainPrefix)
	switch {
	case adjusted <= 0 || math.IsNaN(adjusted):
		sb.WriteString(ExplainNever)
	case adjusted >= 100:
		sb.WriteString(ExplainAlways)
	default:
		sb.WriteString(category.FormatForDisplay(adjusted))
		if diff := adjusted - def.Chance; diff != 0 {
			sign := "+"
			if diff < 0 {
				sign = "-"
			}
			fmt.Fprintf(&sb, ExplainAdjustmentFmt, sign, category.FormatForDisplay(math.Abs(diff)))
		}
	}

	writeBonuses(&sb, lr, b, weather, timing)
	return sb.String()
}

func writeBonuses(sb *strings.Builder, lr domain.LuckResult, b domain.LuckBreakdown, weather domain.Weather, timing domain.TimingResult) {
	if lr.LuckOfTheSeaLevel > 0 {
		fmt.Fprintf(sb, ExplainLuckOfTheSea, b.LuckOfTheSea)
	}
	if potion := b.Potion(); potion > 0 {
		fmt.Fprintf(sb, ExplainFortunePlus, potion)
	} else if potion < 0 {
		fmt.Fprintf(sb, ExplainFortuneMinus, potion)
	}
	if b.Equipment > 0 {
		fmt.Fprintf(sb, ExplainEquipmentPlus, b.Equipment)
	} else if b.Equipment < 0 {
		fmt.Fprintf(sb, ExplainEquipmentMinus, b.Equipment)
	}
	if lr.ExperienceLevel > 0 {
		fmt.Fprintf(sb, ExplainExperience, b.Experience)
	}
	if lr.WeatherLuck > 0 {
		fmt.Fprintf(sb, ExplainWeather, weather.DisplayName(), lr.WeatherLuck)
	}
	if domain.IsHit(timing) && lr.TimingLuck > 0 {
		fmt.Fprintf(sb, ExplainTiming, lr.TimingLuck)
	}
}

// TimingLabel is the title shown for a timing hit, e.g. "PERFECT! 182ms". A miss has no label.
func TimingLabel(r domain.TimingResult) string {
	hit, ok := r.(domain.TimingHit)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s! %dms", toUpper(hit.Tier.Name), hit.ReactionTimeMs)
}

// DebugRodName is the display name of a debug rod forcing categoryName
func DebugRodName(categoryName string) string {
	return fmt.Sprintf("デバッグ釣り竿 [%s]", toUpper(categoryName))
}

// Casers are stateful, so each call builds its own
func toUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}
