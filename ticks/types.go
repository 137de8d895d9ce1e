// Package ticks core types: generation Options with documented defaults
// and sentinel errors.
package ticks

import (
	"errors"
)

// Sentinel errors for tick generation.
var (
	// ErrBadDomain indicates a non-finite domain or lo > hi.
	ErrBadDomain = errors.New("ticks: domain bounds must be finite with lo <= hi")

	// ErrBadStep indicates a negative, NaN, or infinite step.
	ErrBadStep = errors.New("ticks: step must be finite and non-negative")

	// ErrBadCount indicates a negative tick count.
	ErrBadCount = errors.New("ticks: count must be non-negative")
)

// Defaults — single source of truth for tick generation.
const (
	// DefaultCount is the target tick count when neither Count nor Step is set.
	DefaultCount = 5

	// DefaultNice enables nice-number step rounding by default.
	DefaultNice = true

	// zeroTol is the relative tolerance for "already a tick" and roundness
	// checks (matches the numeric policy used across cascade).
	zeroTol = 1e-9
)

// Options configures Generate.
//
// The zero value is NOT the documented default set (it disables Nice);
// start from DefaultOptions and override what you need.
type Options struct {
	// Count is the target number of intervals. Ignored when Step > 0.
	// Count 0 with Step 0 resolves to DefaultCount.
	Count int

	// Step, when > 0, is used verbatim and disables nice rounding.
	Step float64

	// Nice rounds the computed step up to the nearest {1,2,5}·10^k.
	Nice bool

	// Format is the fmt verb used by FormatLabels when labeling these
	// ticks (e.g. "%.2f"); empty means "%g".
	Format string

	// MergeThreshold, when > 0, collapses ticks closer than this absolute
	// distance into the rounder of the two.
	MergeThreshold float64

	// IncludeZero inserts 0 when it lies inside [lo, hi] and is not
	// already a tick.
	IncludeZero bool
}

// DefaultOptions returns the documented defaults:
// Count=5, Nice=true, no explicit step, no merging, no forced zero.
func DefaultOptions() Options {
	return Options{
		Count: DefaultCount,
		Nice:  DefaultNice,
	}
}
