// Package waterfall core types: composite options with defaults, the
// Analysis and TickPlan results, and sentinel errors.
package waterfall

import (
	"errors"

	"github.com/katalvlaran/cascade/quality"
	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
	"github.com/katalvlaran/cascade/ticks"
)

// Sentinel errors for waterfall composites.
var (
	// ErrBadCriticalPaths indicates a negative critical-path count.
	ErrBadCriticalPaths = errors.New("waterfall: critical path count must be non-negative")
)

// Composite defaults.
const (
	// DefaultCriticalPaths is the default top-k for critical-path selection.
	DefaultCriticalPaths = 3

	// Tick-count scaling bounds when the caller left Count and Step unset:
	// clamp(len(data), minAutoTicks, maxAutoTicks).
	minAutoTicks = 4
	maxAutoTicks = 10

	// compactLabelLimit is the |tick| magnitude from which labels switch
	// to compact k/M/B/T notation.
	compactLabelLimit = 1e4
)

// Options configures Analyze. Zero-valued tunables resolve to the same
// defaults as the seq and quality packages.
type Options struct {
	// Fields names the key/value fields; zero value resolves to defaults.
	Fields record.Fields

	// NeutralEpsilon is the flat-change tolerance (≤ 0 ⇒ 1e-9).
	NeutralEpsilon float64

	// CriticalPaths is the top-k count for critical-path selection
	// (0 ⇒ 3; negative is a configuration error).
	CriticalPaths int

	// SimilarityThreshold, FlatShare and SizeLimit tune the advisor rules
	// (zero values resolve to the quality package defaults).
	SimilarityThreshold float64
	FlatShare           float64
	SizeLimit           int
}

// DefaultOptions returns the documented defaults, mirroring seq and
// quality: DefaultFields, NeutralEpsilon=1e-9, CriticalPaths=3,
// SimilarityThreshold=0.05, FlatShare=0.5, SizeLimit=50.
func DefaultOptions() Options {
	return Options{
		Fields:              record.DefaultFields(),
		NeutralEpsilon:      seq.DefaultNeutralEpsilon,
		CriticalPaths:       DefaultCriticalPaths,
		SimilarityThreshold: quality.DefaultSimilarityThreshold,
		FlatShare:           quality.DefaultFlatShare,
		SizeLimit:           quality.DefaultSizeLimit,
	}
}

// withDefaults resolves zero-valued members once at entry.
func (o Options) withDefaults() Options {
	o.Fields = o.Fields.WithDefaults()
	if o.NeutralEpsilon <= 0 {
		o.NeutralEpsilon = seq.DefaultNeutralEpsilon
	}
	if o.CriticalPaths == 0 {
		o.CriticalPaths = DefaultCriticalPaths
	}

	return o
}

// TickOptions configures Ticks: the embedded ticks.Options plus the field
// convention and critical-path count used for key markers.
type TickOptions struct {
	ticks.Options

	// Fields names the key/value fields; zero value resolves to defaults.
	Fields record.Fields

	// CriticalPaths is the top-k count feeding the key markers
	// (0 ⇒ 3; negative is a configuration error).
	CriticalPaths int
}

// DefaultTickOptions returns the documented defaults: ticks defaults with
// Count unset (scaled to the dataset at call time), DefaultFields,
// CriticalPaths=3.
func DefaultTickOptions() TickOptions {
	opts := ticks.DefaultOptions()
	opts.Count = 0 // 0 ⇒ scale to len(data) at call time

	return TickOptions{
		Options:       opts,
		Fields:        record.DefaultFields(),
		CriticalPaths: DefaultCriticalPaths,
	}
}

// Analysis is the combined result of Analyze.
type Analysis struct {
	// Flow holds one Transition per adjacent record pair.
	Flow []seq.Transition

	// Cumulative is the running total through every step.
	Cumulative []seq.FlowPoint

	// CriticalPaths lists the key-field values of the top-k records by
	// |value|, ordered by descending |value| (ties keep input order).
	CriticalPaths []any

	// Suggestions are the advisor's optimization messages, in rule order.
	Suggestions []string
}

// TickPlan is the combined result of Ticks.
type TickPlan struct {
	// Ticks are the axis tick values, strictly ascending.
	Ticks []float64

	// Labels hold one formatted label per tick.
	Labels []string

	// KeyMarkers are the ticks lying within half a step of a
	// critical-path cumulative level.
	KeyMarkers []float64
}
