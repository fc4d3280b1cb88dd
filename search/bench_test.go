package search_test

import (
	"testing"

	"github.com/katalvlaran/trackswitch/builder"
	"github.com/katalvlaran/trackswitch/search"
)

// BenchmarkSolve_Random100 measures a contest-sized system (N=100, fan-out 2).
// The network is built once; only Solve is timed.
func BenchmarkSolve_Random100(b *testing.B) {
	sys, err := builder.RandomSystem(100, builder.WithSeed(2003))
	if err != nil {
		b.Fatal(err)
	}
	nw := mustBuild(b, sys)
	start := nw.Entry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.Solve(nw, start); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Chain1000 measures the deepest case: one long default chain.
func BenchmarkSolve_Chain1000(b *testing.B) {
	sys, err := builder.Chain(1000)
	if err != nil {
		b.Fatal(err)
	}
	nw := mustBuild(b, sys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = search.Solve(nw, 1); err != nil {
			b.Fatal(err)
		}
	}
}
