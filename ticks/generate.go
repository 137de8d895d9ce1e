// Package ticks - nice-number tick generation.
//
// Design principles:
//   - Validate configuration once at entry; fail fast, no partial output.
//   - Deterministic float handling: ticks are start + i·step (no running
//     accumulation), tiny FP noise around zero is snapped to 0.
//   - Strict sentinels from types.go; no panics on user input.
package ticks

import (
	"fmt"
	"math"
	"sort"
)

// niceMantissas are the admissible step mantissas, ascending.
var niceMantissas = [...]float64{1, 2, 5, 10}

// roundnessRange bounds the power-of-ten scan in the merge tie-breaker.
const roundnessRange = 18

// Generate computes the tick set for domain [lo, hi] per opts.
//
// Contracts:
//   - Output is strictly ascending with no duplicates.
//   - ticks[0] ≤ lo and ticks[len-1] ≥ hi (domain always covered; nice
//     rounding and floor-alignment may extend outward).
//   - A degenerate domain (hi == lo, no explicit step) yields [lo].
//
// Errors: ErrBadDomain (non-finite bounds or lo > hi), ErrBadStep
// (negative/NaN/+Inf step), ErrBadCount (negative count).
//
// Complexity: O(t log t) with t the number of generated ticks.
func Generate(lo, hi float64, opts Options) ([]float64, error) {
	if err := validate(lo, hi, opts); err != nil {
		return nil, err
	}

	step := resolveStep(lo, hi, opts)
	if step == 0 {
		// hi == lo with no explicit step: a single tick covers the domain.
		return []float64{lo}, nil
	}

	out := walk(lo, hi, step)

	if opts.IncludeZero && lo <= 0 && hi >= 0 && !contains(out, 0, step) {
		out = append(out, 0)
		sort.Float64s(out)
	}

	if opts.MergeThreshold > 0 {
		out = mergeClose(out, opts.MergeThreshold)
	}

	return out, nil
}

// validate rejects malformed domains and options before any work.
func validate(lo, hi float64, opts Options) error {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo > hi {
		return fmt.Errorf("%w: [%v, %v]", ErrBadDomain, lo, hi)
	}
	if opts.Step < 0 || math.IsNaN(opts.Step) || math.IsInf(opts.Step, 1) {
		return fmt.Errorf("%w: %v", ErrBadStep, opts.Step)
	}
	if opts.Count < 0 {
		return fmt.Errorf("%w: %d", ErrBadCount, opts.Count)
	}

	return nil
}

// resolveStep picks the tick step: an explicit Step verbatim, else the
// (optionally nice-rounded) rawStep for the requested count. Returns 0
// for a degenerate hi == lo domain without an explicit step.
func resolveStep(lo, hi float64, opts Options) float64 {
	if opts.Step > 0 {
		return opts.Step
	}

	count := opts.Count
	if count == 0 {
		count = DefaultCount
	}

	rawStep := (hi - lo) / float64(count)
	if rawStep == 0 {
		return 0
	}
	if opts.Nice {
		return niceCeil(rawStep)
	}

	return rawStep
}

// niceCeil rounds rawStep up to the smallest m·10^k with m in {1,2,5,10}
// and 10^k ≤ rawStep < 10^(k+1).
func niceCeil(rawStep float64) float64 {
	exp := math.Floor(math.Log10(rawStep))
	base := math.Pow(10, exp)
	frac := rawStep / base

	for _, m := range niceMantissas {
		if m >= frac {
			return m * base
		}
	}

	return niceMantissas[len(niceMantissas)-1] * base
}

// walk emits ticks from floor(lo/step)·step upward, stopping once the
// previous tick has reached hi. Each tick is start + i·step; values
// within relative tolerance of zero snap to 0.
func walk(lo, hi, step float64) []float64 {
	start := math.Floor(lo/step) * step

	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if math.Abs(v) < step*zeroTol {
			v = 0
		}
		out = append(out, v)
		if v >= hi {
			break
		}
	}

	return out
}

// contains reports whether ascending ts already holds v within step-scaled
// tolerance.
func contains(ts []float64, v, step float64) bool {
	for _, t := range ts {
		if math.Abs(t-v) <= step*zeroTol {
			return true
		}
	}

	return false
}

// mergeClose collapses adjacent ticks closer than threshold into the
// rounder of the two; ties keep the earlier tick.
func mergeClose(ts []float64, threshold float64) []float64 {
	out := ts[:0:0]
	for _, t := range ts {
		if len(out) > 0 && t-out[len(out)-1] < threshold {
			if roundness(t) > roundness(out[len(out)-1]) {
				out[len(out)-1] = t
			}

			continue
		}
		out = append(out, t)
	}

	return out
}

// roundness scores v by the largest power of ten that divides it within
// relative tolerance; zero is maximally round.
func roundness(v float64) int {
	if v == 0 {
		return roundnessRange + 1
	}
	for e := roundnessRange; e >= -roundnessRange; e-- {
		p := math.Pow(10, float64(e))
		r := v / p
		// v divides 10^e when r is a non-zero integer (within relative
		// tolerance); a zero rounding means 10^e overshoots v entirely.
		if math.Round(r) != 0 && math.Abs(r-math.Round(r)) <= zeroTol*math.Abs(r) {
			return e
		}
	}

	return -roundnessRange - 1
}
