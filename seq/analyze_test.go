package seq_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cascade/record"
	"github.com/katalvlaran/cascade/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// series builds labeled records from a value list.
func series(values ...float64) []record.Record {
	out := make([]record.Record, len(values))
	for i, v := range values {
		out[i] = record.Record{"label": string(rune('a' + i)), "value": v}
	}

	return out
}

// TestAnalyze_LengthInvariant verifies len(result) == max(n-1, 0) across
// degenerate and regular inputs.
func TestAnalyze_LengthInvariant(t *testing.T) {
	opts := seq.DefaultOptions()

	assert.Nil(t, seq.Analyze(nil, opts), "no records, no transitions")
	assert.Nil(t, seq.Analyze(series(42), opts), "single record, no transitions")
	assert.Len(t, seq.Analyze(series(1, 2), opts), 1)
	assert.Len(t, seq.Analyze(series(1, 2, 3, 4, 5), opts), 4)
}

// TestAnalyze_ChangesAndPercents replays the canonical 100→150→90 walk:
// +50 (+50%), then −60 (−40%).
func TestAnalyze_ChangesAndPercents(t *testing.T) {
	ts := seq.Analyze(series(100, 150, 90), seq.DefaultOptions())
	require.Len(t, ts, 2)

	assert.Equal(t, 50.0, ts[0].Change)
	assert.Equal(t, 50.0, ts[0].ChangePercent)
	assert.Equal(t, seq.Increase, ts[0].Direction)
	assert.Equal(t, "a", ts[0].From)
	assert.Equal(t, "b", ts[0].To)

	assert.Equal(t, -60.0, ts[1].Change)
	assert.Equal(t, -40.0, ts[1].ChangePercent)
	assert.Equal(t, seq.Decrease, ts[1].Direction)
}

// TestAnalyze_ZeroBasePercent verifies the zero-base contract: 0→0 gives
// 0%, a non-zero change from 0 gives ±Inf by sign.
func TestAnalyze_ZeroBasePercent(t *testing.T) {
	ts := seq.Analyze(series(0, 0, 5, 0, -3), seq.DefaultOptions())
	require.Len(t, ts, 4)

	assert.Equal(t, 0.0, ts[0].ChangePercent, "0→0 is 0%")
	assert.True(t, math.IsInf(ts[1].ChangePercent, 1), "0→5 is +Inf")
	assert.Equal(t, -100.0, ts[2].ChangePercent, "5→0 is -100%")

	// 0→−3 from a zero base: −Inf.
	ts2 := seq.Analyze(series(0, -3), seq.DefaultOptions())
	require.Len(t, ts2, 1)
	assert.True(t, math.IsInf(ts2[0].ChangePercent, -1))
}

// TestAnalyze_NeutralTolerance verifies Direction classification around
// the configurable epsilon.
func TestAnalyze_NeutralTolerance(t *testing.T) {
	opts := seq.DefaultOptions()
	opts.NeutralEpsilon = 0.5

	ts := seq.Analyze(series(10, 10.4, 11.4, 10.3), opts)
	require.Len(t, ts, 3)
	assert.Equal(t, seq.Neutral, ts[0].Direction, "|0.4| < 0.5 is neutral")
	assert.Equal(t, seq.Increase, ts[1].Direction)
	assert.Equal(t, seq.Decrease, ts[2].Direction)
}

// TestAnalyze_MagnitudeTerciles verifies that buckets follow the global
// |change| distribution: |changes| {1, 10, 100} split small/medium/large.
func TestAnalyze_MagnitudeTerciles(t *testing.T) {
	// values 0 →1 →11 →111: changes +1, +10, +100.
	ts := seq.Analyze(series(0, 1, 11, 111), seq.DefaultOptions())
	require.Len(t, ts, 3)

	assert.Equal(t, seq.Small, ts[0].Magnitude)
	assert.Equal(t, seq.Medium, ts[1].Magnitude)
	assert.Equal(t, seq.Large, ts[2].Magnitude)
}

// TestAnalyze_SinglePairIsSmall verifies that a lone transition sits at
// both tercile cuts and buckets as Small.
func TestAnalyze_SinglePairIsSmall(t *testing.T) {
	ts := seq.Analyze(series(5, 500), seq.DefaultOptions())
	require.Len(t, ts, 1)
	assert.Equal(t, seq.Small, ts[0].Magnitude)
}

// TestAnalyze_InputUntouched verifies the never-mutate contract.
func TestAnalyze_InputUntouched(t *testing.T) {
	data := series(3, 1, 4)
	_ = seq.Analyze(data, seq.DefaultOptions())

	assert.Equal(t, series(3, 1, 4), data)
}

// TestDirection_String pins the enum's textual form.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "increase", seq.Increase.String())
	assert.Equal(t, "decrease", seq.Decrease.String())
	assert.Equal(t, "neutral", seq.Neutral.String())
	assert.Equal(t, "small", seq.Small.String())
	assert.Equal(t, "medium", seq.Medium.String())
	assert.Equal(t, "large", seq.Large.String())
}
