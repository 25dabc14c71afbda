package pseudoflow

import (
	"math/rand"
	"testing"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
)

func benchNetwork(n int) *graph.Network {
	return randomNetwork(rand.New(rand.NewSource(7)), n, 8*n, 100)
}

func BenchmarkSolve(b *testing.B) {
	for _, tc := range []struct {
		name string
		lifo bool
	}{{"fifo", false}, {"lifo", true}} {
		b.Run(tc.name, func(b *testing.B) {
			net := benchNetwork(2000)
			opts := DefaultOptions()
			opts.LifoBuckets = tc.lifo
			s, err := New(net, opts)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.InitializePreflow(); err != nil {
					b.Fatal(err)
				}
				if err := s.Solve(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSweep(b *testing.B) {
	base := benchNetwork(2000)
	net := withCapacities(base, func(e graph.Edge) float64 {
		if isSourceArc(base, e) {
			return 0
		}
		return e.Capacity
	})
	params := make([]float64, 20)
	for i := range params {
		params[i] = float64(5 * i)
	}
	s, err := New(net, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.InitializePreflow(); err != nil {
			b.Fatal(err)
		}
		if _, err := s.Sweep(params); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRecoverFlow(b *testing.B) {
	net := benchNetwork(2000)
	s, err := New(net, DefaultOptions())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		if err := s.InitializePreflow(); err != nil {
			b.Fatal(err)
		}
		if err := s.Solve(); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if err := s.RecoverFlow(); err != nil {
			b.Fatal(err)
		}
	}
}
