// Package waterfall - the axis tick-plan composite.
package waterfall

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
	"github.com/katalvlaran/cascade/ticks"
)

// Ticks builds the axis plan for domain [lo, hi] over data:
//
//   - Ticks      — ticks.Generate, with Count scaled to the dataset
//     (clamp(len(data), 4, 10)) when the caller left Count and Step unset;
//   - Labels     — the Format verb when set; compact k/M/B/T notation when
//     the widest |tick| ≥ 1e4; else fixed precision matching the step;
//   - KeyMarkers — ticks within half a step of the cumulative level
//     reached at a critical-path record (top-k by |value|, §Analyze).
//
// Errors: ErrBadCriticalPaths for a negative opts.CriticalPaths, plus any
// ticks.Generate configuration error.
//
// Complexity: O(n log n + t·k) with t ticks and k critical paths.
func Ticks(lo, hi float64, data []record.Record, opts TickOptions) (TickPlan, error) {
	if opts.CriticalPaths < 0 {
		return TickPlan{}, fmt.Errorf("%w: %d", ErrBadCriticalPaths, opts.CriticalPaths)
	}
	opts.Fields = opts.Fields.WithDefaults()
	if opts.CriticalPaths == 0 {
		opts.CriticalPaths = DefaultCriticalPaths
	}
	if opts.Count == 0 && opts.Step == 0 {
		opts.Count = clamp(len(data), minAutoTicks, maxAutoTicks)
	}

	values, err := ticks.Generate(lo, hi, opts.Options)
	if err != nil {
		return TickPlan{}, err
	}

	step := tickStep(values)

	return TickPlan{
		Ticks:      values,
		Labels:     labels(values, step, opts.Format),
		KeyMarkers: keyMarkers(values, step, data, opts),
	}, nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// tickStep reads the effective step from the generated ticks (0 for a
// single-tick plan).
func tickStep(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}

	return values[1] - values[0]
}

// labels renders one label per tick: the explicit Format verb when set;
// compact notation for wide domains; else a fixed precision derived from
// the step's decimals.
func labels(values []float64, step float64, format string) []string {
	if format != "" {
		return ticks.FormatLabels(values, format)
	}

	var widest float64
	for _, v := range values {
		widest = math.Max(widest, math.Abs(v))
	}
	if widest >= compactLabelLimit {
		out := make([]string, len(values))
		for i, v := range values {
			out[i] = ticks.Compact(v)
		}

		return out
	}

	return ticks.FormatLabels(values, "%."+strconv.Itoa(stepDecimals(step))+"f")
}

// stepDecimals counts the fractional digits needed to render multiples of
// step exactly (capped at 6; 0 for integral or degenerate steps).
func stepDecimals(step float64) int {
	if step <= 0 {
		return 0
	}

	const maxDecimals = 6
	text := strconv.FormatFloat(step, 'f', -1, 64)
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		return 0
	}
	decimals := len(text) - dot - 1
	if decimals > maxDecimals {
		decimals = maxDecimals
	}

	return decimals
}

// keyMarkers selects the ticks lying within step/2 of a critical-path
// cumulative level.
func keyMarkers(values []float64, step float64, data []record.Record, opts TickOptions) []float64 {
	critical := criticalIndices(data, opts.Fields, opts.CriticalPaths)
	if len(critical) == 0 || step <= 0 {
		return nil
	}

	flow := seq.Cumulative(data, seq.Options{Fields: opts.Fields})
	levels := make([]float64, len(critical))
	for i, at := range critical {
		levels[i] = flow[at].Cumulative
	}

	half := step / 2
	var out []float64
	for _, t := range values {
		for _, level := range levels {
			if math.Abs(t-level) <= half {
				out = append(out, t)

				break
			}
		}
	}

	return out
}
