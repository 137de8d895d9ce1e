// Package cascade is an in-memory analytics engine for sequential and
// waterfall-style chart data: step-to-step change analysis, configurable
// ordering and merging, axis tick generation, anomaly detection and
// data-shape optimization heuristics.
//
// 🚀 What is cascade?
//
//	A pure, dependency-light library that takes ordered labeled numeric
//	records and computes everything a chart renderer needs to reason
//	about them — it owns no rendering, DOM, or event concerns:
//		• Sequence analysis: change, percent, direction, magnitude terciles
//		• Ordering: stable grouped sorting by value/cumulative/magnitude/text
//		• Permutation & projection: index reordering, key/value pairs
//		• Merging: multi-dataset folds (combine/override/average/sum)
//		  and similarity-based consolidation
//		• Quality: structural validation, IQR anomaly fences, advisor rules
//		• Ticks: nice-number axis ticks with labels and threshold merging
//		• Waterfall composites: flow analysis and tuned axis tick plans
//
// ✨ Why choose cascade?
//
//   - Pure functions – no shared state, no I/O, safe for concurrent use
//   - Never-mutate contract – callers keep full ownership of their inputs
//   - Strict sentinel errors for configuration; data findings returned as data
//   - Pure Go – no cgo, a single test-only dependency
//
// Under the hood, everything is organized under focused subpackages:
//
//	record/    — the Record model, field convention, Permute, Pairs
//	seq/       — transition analysis & cumulative flow
//	order/     — grouped stable arrangement
//	merge/     — dataset merging & similarity consolidation
//	quality/   — validation, anomaly detection, suggestions
//	ticks/     — axis tick generation & label formatting
//	waterfall/ — the two waterfall composites
//
// The root package bundles them behind a configured Processor:
//
//	p := cascade.NewProcessor(cascade.WithFields("name", "amount"))
//	transitions := p.AnalyzeSequence(data)
//	axis, err := p.GenerateCustomTicks(0, 97, ticks.DefaultOptions())
//
// Quick ASCII example (a waterfall of quarterly deltas):
//
//	Q1 ████████████ +120
//	Q2     ████████ +80
//	Q3       ▒▒▒▒▒▒ −60
//	net ██████████████ 140
//
// Dive into examples/ for runnable walkthroughs of both composites.
//
//	go get github.com/katalvlaran/cascade
package cascade
