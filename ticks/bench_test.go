package ticks_test

import (
	"testing"

	"github.com/katalvlaran/cascade/ticks"
)

// benchmarkGenerate runs Generate over a fixed domain with the given
// options, failing on unexpected errors.
func benchmarkGenerate(b *testing.B, lo, hi float64, opts ticks.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ticks.Generate(lo, hi, opts); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Nice benchmarks the default nice-step path.
func BenchmarkGenerate_Nice(b *testing.B) {
	benchmarkGenerate(b, 0, 9731, ticks.DefaultOptions())
}

// BenchmarkGenerate_DenseMerge benchmarks a dense explicit-step walk with
// threshold merging enabled.
func BenchmarkGenerate_DenseMerge(b *testing.B) {
	opts := ticks.DefaultOptions()
	opts.Step = 1
	opts.MergeThreshold = 2.5
	benchmarkGenerate(b, 0, 10_000, opts)
}
