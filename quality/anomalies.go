// Package quality - interquartile-range anomaly detection.
package quality

import (
	"math"

	"github.com/katalvlaran/cascade/internal/stats"
	"github.com/katalvlaran/cascade/record"
)

// DetectAnomalies flags records whose value lies outside the Tukey fences
// [Q1 − 1.5·IQR, Q3 + 1.5·IQR], with Q1/Q3 the linear-interpolation
// quartiles of the finite values in data.
//
// Contracts:
//   - Fewer than 4 finite values ⇒ nil (insufficient sample for quartiles).
//   - Non-finite or missing values neither enter the quartiles nor get
//     flagged; Validate reports them separately.
//   - Each Anomaly carries the record, its index, and the violated fence.
//
// Complexity: O(n log n) time (quartile sort), O(n) space.
func DetectAnomalies(data []record.Record, fields record.Fields) []Anomaly {
	fields = fields.WithDefaults()

	// Collect the finite sample.
	values := make([]float64, 0, len(data))
	for _, r := range data {
		v := record.Value(r, fields)
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	if len(values) < minAnomalySample {
		return nil
	}

	q1, q3 := stats.Quartiles(values)
	iqr := q3 - q1
	lower := q1 - iqrFenceFactor*iqr
	upper := q3 + iqrFenceFactor*iqr

	var out []Anomaly
	for i, r := range data {
		v := record.Value(r, fields)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		switch {
		case v < lower:
			out = append(out, Anomaly{Index: i, Record: r, Value: v, Bound: lower, Side: BelowLower})
		case v > upper:
			out = append(out, Anomaly{Index: i, Record: r, Value: v, Bound: upper, Side: AboveUpper})
		}
	}

	return out
}
