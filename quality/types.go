// Package quality core types: the validation Report, Anomaly records,
// and the advisor's tunable options with documented defaults.
package quality

import (
	"math"

	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
)

// Advisor defaults — the single source of truth for the heuristic knobs.
const (
	// DefaultFlatShare is the share of Neutral transitions above which the
	// advisor suggests consolidating flat segments.
	DefaultFlatShare = 0.5

	// DefaultSimilarityThreshold is the relative distance under which two
	// records count as near-duplicates for the merge suggestion.
	DefaultSimilarityThreshold = 0.05

	// DefaultSizeLimit is the record count above which the advisor
	// suggests aggregation or pagination.
	DefaultSizeLimit = 50
)

// iqrFenceFactor is the Tukey fence multiplier: Q1−k·IQR / Q3+k·IQR.
const iqrFenceFactor = 1.5

// minAnomalySample is the smallest sample admitting quartile fences.
const minAnomalySample = 4

// Report is the outcome of Validate: IsValid is true iff Errors is empty.
type Report struct {
	// IsValid reports whether every check passed.
	IsValid bool

	// Errors lists every failure found, human-readable, in scan order.
	Errors []string
}

// BoundSide names which Tukey fence an anomalous value violated.
type BoundSide int

const (
	// BelowLower: value < Q1 − 1.5·IQR.
	BelowLower BoundSide = iota
	// AboveUpper: value > Q3 + 1.5·IQR.
	AboveUpper
)

// String implements fmt.Stringer for BoundSide.
func (s BoundSide) String() string {
	if s == AboveUpper {
		return "above upper bound"
	}

	return "below lower bound"
}

// Anomaly is one flagged record, augmented with the bound it violated.
type Anomaly struct {
	// Index is the record's position in the input.
	Index int

	// Record is the flagged record itself (not a copy; never mutated).
	Record record.Record

	// Value is the record's value-field number.
	Value float64

	// Bound is the fence the value violated.
	Bound float64

	// Side tells which fence was violated.
	Side BoundSide
}

// AdvisorOptions configures Suggest. Zero-valued tunables resolve to the
// documented defaults, so the zero value is usable.
type AdvisorOptions struct {
	// Fields names the key/value fields; zero value resolves to defaults.
	Fields record.Fields

	// NeutralEpsilon is the flat-change tolerance (≤ 0 ⇒ 1e-9, matching seq).
	NeutralEpsilon float64

	// SimilarityThreshold drives the near-duplicate rule (≤ 0 ⇒ 0.05).
	SimilarityThreshold float64

	// FlatShare is the Neutral-share trigger for rule 1 (≤ 0 ⇒ 0.5).
	FlatShare float64

	// SizeLimit is the record-count trigger for rule 4 (≤ 0 ⇒ 50).
	SizeLimit int
}

// DefaultAdvisorOptions returns the documented defaults:
// DefaultFields, NeutralEpsilon=1e-9, SimilarityThreshold=0.05,
// FlatShare=0.5, SizeLimit=50.
func DefaultAdvisorOptions() AdvisorOptions {
	return AdvisorOptions{
		Fields:              record.DefaultFields(),
		NeutralEpsilon:      seq.DefaultNeutralEpsilon,
		SimilarityThreshold: DefaultSimilarityThreshold,
		FlatShare:           DefaultFlatShare,
		SizeLimit:           DefaultSizeLimit,
	}
}

// withDefaults resolves zero-valued members once at entry.
func (o AdvisorOptions) withDefaults() AdvisorOptions {
	o.Fields = o.Fields.WithDefaults()
	if o.NeutralEpsilon <= 0 {
		o.NeutralEpsilon = seq.DefaultNeutralEpsilon
	}
	if !(o.SimilarityThreshold > 0) || math.IsInf(o.SimilarityThreshold, 1) {
		// Catches zero, negatives, NaN and +Inf in one predicate.
		o.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if o.FlatShare <= 0 {
		o.FlatShare = DefaultFlatShare
	}
	if o.SizeLimit <= 0 {
		o.SizeLimit = DefaultSizeLimit
	}

	return o
}
