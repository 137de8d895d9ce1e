// Package cascade - the Processor façade and its functional options.
//
// This file defines:
//   - Option / Processor (functional options with internal state),
//   - documented defaults (constants re-exported from the subpackages),
//   - WithX constructors with strong validation (panic on nonsensical
//     values — programmer error, never data error),
//   - the ten processor operations plus the two waterfall composites,
//     each delegating to its subpackage with the configured tunables
//     injected.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Stateless after construction: a Processor is a bundle of tunables,
//     safe for unsynchronized concurrent use.
//   - Safe by construction: panic only on invalid option parameters.
package cascade

import (
	"math"

	"github.com/katalvlaran/cascade/merge"
	"github.com/katalvlaran/cascade/order"
	"github.com/katalvlaran/cascade/quality"
	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
	"github.com/katalvlaran/cascade/ticks"
	"github.com/katalvlaran/cascade/waterfall"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFieldsInvalid        = "cascade: WithFields: field names must be non-empty"
	panicEpsilonInvalid       = "cascade: WithNeutralEpsilon: eps must be finite and positive"
	panicSimilarityInvalid    = "cascade: WithSimilarityThreshold: threshold must be finite and non-negative"
	panicCriticalCountInvalid = "cascade: WithCriticalPathCount: k must be non-negative"
	panicSizeLimitInvalid     = "cascade: WithSizeLimit: n must be positive"
	panicTickMergeInvalid     = "cascade: WithTickMergeThreshold: threshold must be finite and non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates a Processor under construction. Safe to apply
// repeatedly (idempotent). Constructors panic only on nonsensical values.
type Option func(*Processor)

// WithFields sets the key/value field names read from every record.
// Panics when either name is empty.
func WithFields(key, value string) Option {
	if key == "" || value == "" {
		panic(panicFieldsInvalid)
	}

	return func(p *Processor) {
		p.fields = record.Fields{Key: key, Value: value}
	}
}

// WithNeutralEpsilon sets the |change| tolerance under which a transition
// counts as neutral. Panics unless eps is finite and positive.
func WithNeutralEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 1) {
		panic(panicEpsilonInvalid)
	}

	return func(p *Processor) { p.neutralEpsilon = eps }
}

// WithSimilarityThreshold sets the default relative distance for
// similarity merging and the advisor's near-duplicate rule.
// Panics unless t is finite and non-negative.
func WithSimilarityThreshold(t float64) Option {
	if !(t >= 0) || math.IsInf(t, 1) {
		panic(panicSimilarityInvalid)
	}

	return func(p *Processor) { p.similarityThreshold = t }
}

// WithCriticalPathCount sets the top-k for waterfall critical-path
// selection. Panics for negative k; k=0 restores the default.
func WithCriticalPathCount(k int) Option {
	if k < 0 {
		panic(panicCriticalCountInvalid)
	}

	return func(p *Processor) { p.criticalPaths = k }
}

// WithSizeLimit sets the record count above which the advisor suggests
// aggregation. Panics unless n is positive.
func WithSizeLimit(n int) Option {
	if n <= 0 {
		panic(panicSizeLimitInvalid)
	}

	return func(p *Processor) { p.sizeLimit = n }
}

// WithTickMergeThreshold sets the default absolute distance under which
// generated ticks collapse into one. Panics unless t is finite and
// non-negative.
func WithTickMergeThreshold(t float64) Option {
	if !(t >= 0) || math.IsInf(t, 1) {
		panic(panicTickMergeInvalid)
	}

	return func(p *Processor) { p.tickMergeThreshold = t }
}

// ---------- Processor ----------

// Processor bundles the ten analytic operations behind one configured
// value. It holds tunables only — no data, no caches — so a single
// Processor may be shared freely across goroutines.
type Processor struct {
	fields              record.Fields
	neutralEpsilon      float64
	similarityThreshold float64
	criticalPaths       int
	sizeLimit           int
	tickMergeThreshold  float64
}

// NewProcessor builds a Processor with the documented defaults
// (DefaultFields, NeutralEpsilon=1e-9, SimilarityThreshold=0.05,
// CriticalPaths=3, SizeLimit=50, no tick merging), then applies opts in
// order.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		fields:              record.DefaultFields(),
		neutralEpsilon:      seq.DefaultNeutralEpsilon,
		similarityThreshold: quality.DefaultSimilarityThreshold,
		criticalPaths:       waterfall.DefaultCriticalPaths,
		sizeLimit:           quality.DefaultSizeLimit,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// seqOptions assembles the seq options from the configured tunables.
func (p *Processor) seqOptions() seq.Options {
	return seq.Options{Fields: p.fields, NeutralEpsilon: p.neutralEpsilon}
}

// AnalyzeSequence derives one Transition per adjacent record pair.
// See seq.Analyze.
func (p *Processor) AnalyzeSequence(data []record.Record) []seq.Transition {
	return seq.Analyze(data, p.seqOptions())
}

// CumulativeFlow returns the running total through every step.
// See seq.Cumulative.
func (p *Processor) CumulativeFlow(data []record.Record) []seq.FlowPoint {
	return seq.Cumulative(data, p.seqOptions())
}

// OptimizeDataOrder arranges data per opts; an empty opts.Field reads the
// configured value field. See order.Arrange.
func (p *Processor) OptimizeDataOrder(data []record.Record, opts order.Options) ([]record.Record, error) {
	if opts.Field == "" {
		opts.Field = p.fields.Value
	}

	return order.Arrange(data, opts)
}

// PermuteByIndices reorders data by explicit indices. See record.Permute.
func (p *Processor) PermuteByIndices(data []record.Record, indices []int) ([]record.Record, error) {
	return record.Permute(data, indices)
}

// CreateDataPairs projects data into key/value pairs; a nil accessor
// reads the configured value field. See record.Pairs.
func (p *Processor) CreateDataPairs(data []record.Record, accessor record.Accessor) []record.Pair {
	return record.Pairs(data, accessor, p.fields)
}

// MergeDatasets folds datasets into one record list; zero opts.Fields
// members resolve to the configured fields. See merge.Datasets.
func (p *Processor) MergeDatasets(datasets [][]record.Record, opts merge.Options) ([]record.Record, error) {
	if opts.Fields.Key == "" {
		opts.Fields.Key = p.fields.Key
	}
	if opts.Fields.Value == "" {
		opts.Fields.Value = p.fields.Value
	}

	return merge.Datasets(datasets, opts)
}

// MergeSimilarItems consolidates near-duplicate records; a negative
// threshold resolves to the configured default. See merge.Similar.
func (p *Processor) MergeSimilarItems(data []record.Record, threshold float64) ([]record.Record, error) {
	if threshold < 0 {
		threshold = p.similarityThreshold
	}

	return merge.Similar(data, threshold, p.fields)
}

// ValidateSequentialData reports structural problems as data.
// See quality.Validate.
func (p *Processor) ValidateSequentialData(data []record.Record) quality.Report {
	return quality.Validate(data, p.fields)
}

// DetectDataAnomalies flags records outside the IQR fences.
// See quality.DetectAnomalies.
func (p *Processor) DetectDataAnomalies(data []record.Record) []quality.Anomaly {
	return quality.DetectAnomalies(data, p.fields)
}

// SuggestDataOptimizations returns the advisor's messages in rule order.
// See quality.Suggest.
func (p *Processor) SuggestDataOptimizations(data []record.Record) []string {
	return quality.Suggest(data, quality.AdvisorOptions{
		Fields:              p.fields,
		NeutralEpsilon:      p.neutralEpsilon,
		SimilarityThreshold: p.similarityThreshold,
		SizeLimit:           p.sizeLimit,
	})
}

// GenerateCustomTicks computes axis ticks for [lo, hi]; a zero
// opts.MergeThreshold inherits the configured default. See ticks.Generate.
func (p *Processor) GenerateCustomTicks(lo, hi float64, opts ticks.Options) ([]float64, error) {
	if opts.MergeThreshold == 0 {
		opts.MergeThreshold = p.tickMergeThreshold
	}

	return ticks.Generate(lo, hi, opts)
}

// Waterfall runs the full waterfall flow analysis with the Processor's
// tunables. See waterfall.Analyze.
func (p *Processor) Waterfall(data []record.Record) (waterfall.Analysis, error) {
	return waterfall.Analyze(data, waterfall.Options{
		Fields:              p.fields,
		NeutralEpsilon:      p.neutralEpsilon,
		CriticalPaths:       p.criticalPaths,
		SimilarityThreshold: p.similarityThreshold,
		SizeLimit:           p.sizeLimit,
	})
}

// WaterfallTicks builds the axis plan for [lo, hi] over data with the
// Processor's tunables. See waterfall.Ticks.
func (p *Processor) WaterfallTicks(lo, hi float64, data []record.Record) (waterfall.TickPlan, error) {
	opts := waterfall.DefaultTickOptions()
	opts.Fields = p.fields
	opts.CriticalPaths = p.criticalPaths
	opts.MergeThreshold = p.tickMergeThreshold

	return waterfall.Ticks(lo, hi, data, opts)
}

// ---------- Standalone composites (default tunables) ----------

// Waterfall runs waterfall.Analyze with the package defaults.
func Waterfall(data []record.Record) (waterfall.Analysis, error) {
	return waterfall.Analyze(data, waterfall.DefaultOptions())
}

// WaterfallTicks runs waterfall.Ticks with the package defaults.
func WaterfallTicks(lo, hi float64, data []record.Record) (waterfall.TickPlan, error) {
	return waterfall.Ticks(lo, hi, data, waterfall.DefaultTickOptions())
}
