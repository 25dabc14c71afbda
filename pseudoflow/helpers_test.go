package pseudoflow

import (
	"math/rand"
	"testing"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/stretchr/testify/require"
)

func idx(id int) int32 { return int32(id - 1) }

func network(n, source, sink int, edges ...graph.Edge) *graph.Network {
	return &graph.Network{NumNodes: n, Source: source, Sink: sink, Edges: edges}
}

func diamond() *graph.Network {
	return network(4, 1, 4,
		graph.Edge{From: 1, To: 2, Capacity: 3},
		graph.Edge{From: 1, To: 3, Capacity: 2},
		graph.Edge{From: 2, To: 4, Capacity: 2},
		graph.Edge{From: 3, To: 4, Capacity: 3},
		graph.Edge{From: 2, To: 3, Capacity: 1},
	)
}

// randomNetwork has integer capacities so the oracle and the solver agree exactly. Loops, arcs
// into the source, arcs out of the sink and parallel arcs all occur.
func randomNetwork(rng *rand.Rand, n, m, maxCap int) *graph.Network {
	net := network(n, 1, n)
	for i := 0; i < m; i++ {
		net.Edges = append(net.Edges, graph.Edge{
			From:     1 + rng.Intn(n),
			To:       1 + rng.Intn(n),
			Capacity: float64(rng.Intn(maxCap + 1)),
		})
	}
	for v := 2; v < n; v++ {
		if rng.Intn(2) == 0 {
			net.Edges = append(net.Edges, graph.Edge{From: 1, To: v, Capacity: float64(rng.Intn(maxCap + 1))})
		}
		if rng.Intn(2) == 0 {
			net.Edges = append(net.Edges, graph.Edge{From: v, To: n, Capacity: float64(rng.Intn(maxCap + 1))})
		}
	}
	return net
}

// withCapacities copies net, replacing each capacity by f(edge).
func withCapacities(net *graph.Network, f func(e graph.Edge) float64) *graph.Network {
	out := *net
	out.Edges = make([]graph.Edge, len(net.Edges))
	for i, e := range net.Edges {
		e.Capacity = f(e)
		out.Edges[i] = e
	}
	return &out
}

// edmondsKarp is an independent max flow oracle over a dense residual matrix.
func edmondsKarp(net *graph.Network) float64 {
	n := net.NumNodes
	res := make([][]float64, n)
	for i := range res {
		res[i] = make([]float64, n)
	}
	for _, e := range net.Edges {
		if e.From != e.To {
			res[e.From-1][e.To-1] += e.Capacity
		}
	}
	s, t := net.Source-1, net.Sink-1

	var total float64
	prev := make([]int, n)
	for {
		for i := range prev {
			prev[i] = -1
		}
		prev[s] = s
		queue := []int{s}
		for len(queue) > 0 && prev[t] == -1 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < n; v++ {
				if prev[v] == -1 && res[u][v] > 0 {
					prev[v] = u
					queue = append(queue, v)
				}
			}
		}
		if prev[t] == -1 {
			return total
		}
		push := res[prev[t]][t]
		for v := t; v != s; v = prev[v] {
			push = min(push, res[prev[v]][v])
		}
		for v := t; v != s; v = prev[v] {
			res[prev[v]][v] -= push
			res[v][prev[v]] += push
		}
		total += push
	}
}

// requireRecovered recovers the flow and requires it to pass every optimality check.
func requireRecovered(t *testing.T, s *Solver) Report {
	t.Helper()
	require.NoError(t, s.RecoverFlow())
	report := s.CheckOptimality()
	require.True(t, report.OK(), "optimality check: %v", report.Messages)
	return report
}
