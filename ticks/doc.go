// Package ticks computes "nice" numeric axis tick sets and formats their
// labels.
//
// 🚀 What does it do?
//
//	Generate turns a [lo, hi] domain into a strictly ascending tick list:
//	  • an explicit Step is used verbatim;
//	  • otherwise rawStep = (hi−lo)/Count, and Nice rounds it up to the
//	    smallest of {1, 2, 5, 10}·10^k (classic nice-number rounding);
//	  • ticks start at floor(lo/step)·step and advance until the domain is
//	    covered, extending outward on misalignment;
//	  • IncludeZero inserts 0 when it falls inside the domain;
//	  • MergeThreshold collapses near-coincident ticks into the rounder one.
//	FormatLabels renders values through a fmt verb ("%.2f", "%g", …);
//	Compact renders wide-domain values with k/M/B/T suffixes.
//
// ✨ Guarantees:
//   - Output is strictly ascending with no duplicates.
//   - ticks[0] ≤ lo and ticks[last] ≥ hi (the domain is always covered).
//   - Invalid configuration fails fast with a sentinel error.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/ticks"
//
//	ts, err := ticks.Generate(0, 97, ticks.DefaultOptions())
//	// ts = [0 20 40 60 80 100]
//	labels := ticks.FormatLabels(ts, "%.0f")
//
// Performance: O(t log t) in the number of generated ticks.
package ticks
