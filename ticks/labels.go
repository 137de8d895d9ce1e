// Package ticks - numeric label formatting for axis ticks.
package ticks

import (
	"fmt"
	"math"
	"strings"
)

// Compact-notation breakpoints, descending.
var compactSuffixes = [...]struct {
	limit  float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
}

// FormatLabels renders each value through the given fmt verb ("%.2f",
// "%g", …). An empty format means "%g". Invalid verbs surface as fmt's
// own "%!"-style output — the standard numeric formatting contract.
//
// Output length always equals len(values).
func FormatLabels(values []float64, format string) []string {
	if format == "" {
		format = "%g"
	}

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprintf(format, v)
	}

	return out
}

// Compact renders v in chart-axis compact notation: magnitudes from 1e3
// upward get a k/M/B/T suffix with at most one decimal (a trailing ".0"
// is trimmed); smaller magnitudes render as "%g".
//
//	Compact(1500)      = "1.5k"
//	Compact(-2_000_000) = "-2M"
//	Compact(97)        = "97"
func Compact(v float64) string {
	abs := math.Abs(v)
	for _, b := range compactSuffixes {
		if abs >= b.limit {
			s := fmt.Sprintf("%.1f", v/b.limit)
			s = strings.TrimSuffix(s, ".0")

			return s + b.suffix
		}
	}

	return fmt.Sprintf("%g", v)
}
