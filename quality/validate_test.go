package quality_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cascade/quality"
	"github.com/katalvlaran/cascade/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_CleanData verifies the all-green path.
func TestValidate_CleanData(t *testing.T) {
	data := []record.Record{
		{"label": "a", "value": 1.0},
		{"label": "b", "value": 2},
	}

	report := quality.Validate(data, record.Fields{})
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
}

// TestValidate_DuplicateKeyMessage pins the exact duplicate-key wording,
// which downstream tooling matches verbatim.
func TestValidate_DuplicateKeyMessage(t *testing.T) {
	data := []record.Record{
		{"label": "a", "value": 1.0},
		{"label": "a", "value": 2.0},
	}

	report := quality.Validate(data, record.Fields{})
	require.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "duplicate key: a", report.Errors[0])
}

// TestValidate_AccumulatesAllFailures verifies that every failure is
// collected instead of stopping at the first.
func TestValidate_AccumulatesAllFailures(t *testing.T) {
	data := []record.Record{
		{"value": 1.0},                       // missing key
		{"label": "b"},                       // missing value
		{"label": "c", "value": "NaN-ish"},   // non-numeric value
		{"label": "d", "value": math.NaN()},  // non-finite value
		{"label": "d", "value": math.Inf(1)}, // duplicate key + non-finite
	}

	report := quality.Validate(data, record.Fields{})
	require.False(t, report.IsValid)
	assert.Len(t, report.Errors, 6)

	assert.Contains(t, report.Errors[0], "missing key field")
	assert.Contains(t, report.Errors[1], "missing value field")
	assert.Contains(t, report.Errors[2], "not numeric")
	assert.Contains(t, report.Errors[3], "not finite")
	assert.Contains(t, report.Errors[4], "not finite")
	assert.Contains(t, report.Errors, "duplicate key: d")
}

// TestValidate_NonComparableKeyReported verifies the degraded-identity
// finding for slice-typed keys.
func TestValidate_NonComparableKeyReported(t *testing.T) {
	data := []record.Record{
		{"label": []any{"composite"}, "value": 1.0},
	}

	report := quality.Validate(data, record.Fields{})
	require.False(t, report.IsValid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "non-comparable")
}

// TestValidate_CustomFields verifies a non-default field convention.
func TestValidate_CustomFields(t *testing.T) {
	data := []record.Record{{"name": "n", "amount": 3.0}}

	report := quality.Validate(data, record.Fields{Key: "name", Value: "amount"})
	assert.True(t, report.IsValid)

	report = quality.Validate(data, record.Fields{})
	assert.False(t, report.IsValid, "default fields are absent on this record")
}

// TestValidate_Empty verifies that an empty dataset is trivially valid.
func TestValidate_Empty(t *testing.T) {
	assert.True(t, quality.Validate(nil, record.Fields{}).IsValid)
}
