package ticks_test

import (
	"testing"

	"github.com/katalvlaran/cascade/ticks"
	"github.com/stretchr/testify/assert"
)

// TestFormatLabels_Verbs verifies verb pass-through and the %g default.
func TestFormatLabels_Verbs(t *testing.T) {
	values := []float64{0, 20.5, 100}

	assert.Equal(t, []string{"0.0", "20.5", "100.0"}, ticks.FormatLabels(values, "%.1f"))
	assert.Equal(t, []string{"0", "20.5", "100"}, ticks.FormatLabels(values, ""))
	assert.Len(t, ticks.FormatLabels(nil, "%.2f"), 0)
}

// TestCompact_Suffixes verifies the k/M/B/T breakpoints and the trimmed
// trailing ".0".
func TestCompact_Suffixes(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{97, "97"},
		{999, "999"},
		{1500, "1.5k"},
		{-2_000_000, "-2M"},
		{2_500_000_000, "2.5B"},
		{1e12, "1T"},
		{0.5, "0.5"},
		{0, "0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ticks.Compact(tc.in), "Compact(%v)", tc.in)
	}
}
