// Package seq core types: Transition, FlowPoint, the Direction and
// Magnitude enumerations, and the analysis Options with defaults.
package seq

import (
	"github.com/katalvlaran/cascade/record"
)

// DefaultNeutralEpsilon is the tolerance under which |change| counts as
// Neutral. Overridable per call via Options.NeutralEpsilon.
const DefaultNeutralEpsilon = 1e-9

// Direction classifies the sign of a step-to-step change.
type Direction int

const (
	// Neutral means |change| < NeutralEpsilon.
	Neutral Direction = iota
	// Increase means change ≥ NeutralEpsilon.
	Increase
	// Decrease means change ≤ −NeutralEpsilon.
	Decrease
)

// String implements fmt.Stringer for Direction.
func (d Direction) String() string {
	switch d {
	case Increase:
		return "increase"
	case Decrease:
		return "decrease"
	default:
		return "neutral"
	}
}

// Magnitude buckets |change| into terciles of the per-call distribution:
// lowest third Small, middle Medium, top Large. NaN changes compare false
// against both tercile cuts and therefore land in Large (degenerate
// output for malformed data, documented on Analyze).
type Magnitude int

const (
	// Small: |change| within the lowest tercile of the call's distribution.
	Small Magnitude = iota
	// Medium: |change| within the middle tercile.
	Medium
	// Large: |change| within the top tercile.
	Large
)

// String implements fmt.Stringer for Magnitude.
func (m Magnitude) String() string {
	switch m {
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "small"
	}
}

// Transition describes the change between two adjacent records.
// It is a derived, ephemeral result: the engine never retains it.
type Transition struct {
	// From and To are the key-field values of the pair's two records.
	From, To any

	// Change is next.value − cur.value.
	Change float64

	// ChangePercent is the relative change in percent. A zero base yields
	// 0 when Change is 0 and ±Inf otherwise, by the sign of Change.
	ChangePercent float64

	// Direction classifies the sign of Change under NeutralEpsilon.
	Direction Direction

	// Magnitude buckets |Change| by the call-global tercile distribution.
	Magnitude Magnitude
}

// FlowPoint is one step of the cumulative flow: each record's value is a
// delta, Cumulative is the running total through that step.
type FlowPoint struct {
	// Step is the record index.
	Step int

	// Cumulative is the running sum of values through Step, inclusive.
	Cumulative float64

	// Change is the value at this step (the delta applied).
	Change float64
}

// Options configures sequence analysis.
type Options struct {
	// Fields names the key/value fields; zero value resolves to defaults.
	Fields record.Fields

	// NeutralEpsilon is the |change| tolerance below which Direction is
	// Neutral. Values ≤ 0 resolve to DefaultNeutralEpsilon.
	NeutralEpsilon float64
}

// DefaultOptions returns the documented defaults:
// Fields=DefaultFields(), NeutralEpsilon=1e-9.
func DefaultOptions() Options {
	return Options{
		Fields:         record.DefaultFields(),
		NeutralEpsilon: DefaultNeutralEpsilon,
	}
}

// withDefaults resolves zero-valued members once at entry.
func (o Options) withDefaults() Options {
	o.Fields = o.Fields.WithDefaults()
	if o.NeutralEpsilon <= 0 {
		o.NeutralEpsilon = DefaultNeutralEpsilon
	}

	return o
}
