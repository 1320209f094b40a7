// Package format provides string formatting helpers for monetary amounts,
// rates, and projection horizons.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/kolodyr/f1nanc3/pkg/constants"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent renders a fractional rate as a percentage string, e.g. 0.08 -> "8%".
// Rates that do not land on a whole percent keep one decimal, e.g. "7.5%".
// The value is rounded to a tenth of a percent first so binary float noise
// does not leak into labels.
func Percent(rate float64) string {
	percent := math.Round(rate*constants.PercentageMultiplier*10) / 10
	if percent == math.Trunc(percent) {
		return fmt.Sprintf("%.0f%%", percent)
	}
	return fmt.Sprintf("%.1f%%", percent)
}

// Years renders a fractional year count for display, e.g. "23.5 years".
func Years(years float64) string {
	return fmt.Sprintf("%.1f years", years)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
