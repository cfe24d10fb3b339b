// Package format renders provider numbers for display. Absent values
// (zero or the Unknown sentinel) come out as "N/A" rather than a
// misleading $0.00.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"StockDash/internal/model"
)

// Currency formats a monetary value with K/M/B/T suffixes.
func Currency(v float64) string {
	if v == 0 || model.IsUnknown(v) {
		return "N/A"
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// Number formats a large count with K/M/B/T suffixes; small values get
// thousands separators.
func Number(v float64) string {
	if v == 0 || model.IsUnknown(v) {
		return "N/A"
	}
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return humanize.CommafWithDigits(v, 0)
	}
}

// Volume formats a share count with thousands separators.
func Volume(v int64) string {
	return humanize.Comma(v)
}

// Percent formats a provider ratio (0.15 -> "15.00%").
func Percent(v float64) string {
	if model.IsUnknown(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", v*100)
}

// Ratio formats a plain ratio such as trailing P/E.
func Ratio(v float64) string {
	if model.IsUnknown(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

// TimeAgo renders a view-history timestamp as a relative phrase.
func TimeAgo(t time.Time) string {
	return humanize.Time(t)
}
