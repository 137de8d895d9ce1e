package quality_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cascade/quality"
	"github.com/katalvlaran/cascade/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valued builds records from a value list, labeled by index rune.
func valued(values ...float64) []record.Record {
	out := make([]record.Record, len(values))
	for i, v := range values {
		out[i] = record.Record{"label": string(rune('a' + i)), "value": v}
	}

	return out
}

// TestDetectAnomalies_FlagsUpperOutlier verifies the Tukey fences on a
// known sample: {1,2,3,4,100} gives Q1=2, Q3=4, upper fence 7.
func TestDetectAnomalies_FlagsUpperOutlier(t *testing.T) {
	out := quality.DetectAnomalies(valued(1, 2, 3, 4, 100), record.Fields{})
	require.Len(t, out, 1)

	assert.Equal(t, 4, out[0].Index)
	assert.Equal(t, 100.0, out[0].Value)
	assert.Equal(t, quality.AboveUpper, out[0].Side)
	assert.InDelta(t, 7.0, out[0].Bound, 1e-9, "upper fence Q3+1.5*IQR")
}

// TestDetectAnomalies_FlagsLowerOutlier verifies the symmetric lower fence.
func TestDetectAnomalies_FlagsLowerOutlier(t *testing.T) {
	out := quality.DetectAnomalies(valued(-100, 10, 11, 12, 13), record.Fields{})
	require.Len(t, out, 1)

	assert.Equal(t, 0, out[0].Index)
	assert.Equal(t, quality.BelowLower, out[0].Side)
}

// TestDetectAnomalies_InsufficientSample verifies the <4-point guard.
func TestDetectAnomalies_InsufficientSample(t *testing.T) {
	assert.Nil(t, quality.DetectAnomalies(valued(1, 2, 1000), record.Fields{}))
	assert.Nil(t, quality.DetectAnomalies(nil, record.Fields{}))
}

// TestDetectAnomalies_NonFiniteExcluded verifies that NaN/Inf values
// neither enter the quartiles nor get flagged, and that the finite
// sample alone must reach 4 points.
func TestDetectAnomalies_NonFiniteExcluded(t *testing.T) {
	data := valued(1, 2, 3, 100)
	data = append(data, record.Record{"label": "nan", "value": math.NaN()})

	// Finite sample {1,2,3,100}: Q1=1.75, Q3=27.25, IQR=25.5, upper=65.5.
	out := quality.DetectAnomalies(data, record.Fields{})
	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].Value)

	// Only 3 finite values: insufficient.
	small := valued(1, 2, 1000)
	small = append(small, record.Record{"label": "inf", "value": math.Inf(1)})
	assert.Nil(t, quality.DetectAnomalies(small, record.Fields{}))
}

// TestDetectAnomalies_TightSampleHasNoOutliers verifies the no-findings
// path on a uniform sample.
func TestDetectAnomalies_TightSampleHasNoOutliers(t *testing.T) {
	assert.Empty(t, quality.DetectAnomalies(valued(10, 11, 12, 13, 14), record.Fields{}))
}

// TestBoundSide_String pins the enum textual forms.
func TestBoundSide_String(t *testing.T) {
	assert.Equal(t, "below lower bound", quality.BelowLower.String())
	assert.Equal(t, "above upper bound", quality.AboveUpper.String())
}
