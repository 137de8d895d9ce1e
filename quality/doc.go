// Package quality inspects record sequences for problems: structural
// validation, statistical anomaly detection, and rule-based optimization
// suggestions.
//
// 🚀 What does it do?
//
//	Validate accumulates every structural failure (missing fields,
//	non-finite values, duplicate keys) into a Report — it never throws,
//	because chart data is expected to be imperfect and callers should be
//	able to inspect problems without a failed pipeline.
//	DetectAnomalies flags records outside the Tukey fences
//	[Q1 − 1.5·IQR, Q3 + 1.5·IQR] of the value distribution.
//	Suggest evaluates independent heuristic rules (flat segments, confusing
//	ordering, near-duplicates, oversized datasets) and returns zero or one
//	message per rule, in fixed rule order.
//
// ✨ Guarantees:
//   - Findings are data, not errors: Report, []Anomaly, []string.
//   - Quartiles use the classic linear-interpolation percentile rule,
//     reproducible across platforms.
//   - Fewer than 4 finite values ⇒ no anomalies (insufficient sample).
//   - Pure functions: inputs are never mutated; safe for concurrent use.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/quality"
//
//	report := quality.Validate(data, record.DefaultFields())
//	if !report.IsValid {
//	  for _, msg := range report.Errors { fmt.Println(msg) }
//	}
//	outliers := quality.DetectAnomalies(data, record.DefaultFields())
//	advice := quality.Suggest(data, quality.DefaultAdvisorOptions())
//
// Performance: all operations are O(n log n) or better.
package quality
