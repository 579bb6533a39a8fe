package category

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatForLog renders a percentage with enough decimals to stay non-zero in trace files.
// 0.0001 -> "0.000100%", 0.0023 -> "0.0023%", 1.5 -> "1.5%".
func FormatForLog(chance float64) string {
	switch {
	case chance == 0:
		return "0%"
	case chance < 0.001:
		return fmt.Sprintf("%.6f%%", chance)
	case chance < 0.01:
		return fmt.Sprintf("%.4f%%", chance)
	case chance < 0.1:
		return fmt.Sprintf("%.3f%%", chance)
	case chance < 1:
		return fmt.Sprintf("%.2f%%", chance)
	case chance < 10:
		return fmt.Sprintf("%.1f%%", chance)
	default:
		return fmt.Sprintf("%.0f%%", chance)
	}
}

// FormatForDisplay renders a percentage for players. Values below 0.01 use
// scientific notation with superscript exponents: 0.0001 -> "1.0×10⁻⁴%".
func FormatForDisplay(chance float64) string {
	switch {
	case chance == 0 || math.IsNaN(chance):
		return "0%"
	case chance < 0:
		return "-" + FormatForDisplay(-chance)
	case chance < 0.01:
		coefficient := chance
		exponent := 0
		for coefficient < 1 {
			coefficient *= 10
			exponent--
		}
		if coefficient >= 10 {
			coefficient /= 10
			exponent++
		}
		return fmt.Sprintf("%.1f×10%s%%", coefficient, superscript(exponent))
	case chance < 1:
		return fmt.Sprintf("%.2f%%", chance)
	case chance < 10:
		return fmt.Sprintf("%.1f%%", chance)
	default:
		return fmt.Sprintf("%.0f%%", chance)
	}
}

var superscriptDigits = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

func superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteString("⁻")
		n = -n
	}
	for _, r := range strconv.Itoa(n) {
		b.WriteString(superscriptDigits[r-'0'])
	}
	return b.String()
}
