package pseudoflow

import "github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"

type arcKind uint8

const (
	ignored    arcKind = iota // self loop, into the source or out of the sink
	direct                    // source to sink, saturated once and never in a tree
	fromSource                // kept on the source's list for parametric updates
	intoSink                  // kept on the sink's list for parametric updates
	internal                  // starts on its tail's out-of-tree list
)

func (s *Solver) kind(a *arc) arcKind {
	switch {
	case a.to == s.source || a.from == s.sink || a.from == a.to:
		return ignored
	case a.from == s.source && a.to == s.sink:
		return direct
	case a.from == s.source:
		return fromSource
	case a.to == s.sink:
		return intoSink
	}
	return internal
}

func (s *Solver) build(net *graph.Network) {
	n := s.numNodes
	s.nodes = make([]node, n)
	s.arcs = make([]arc, len(net.Edges))
	s.buckets = make([]bucket, n+1)
	s.labelCount = make([]int, n+1)

	deg := net.Degree()
	for i := range s.nodes {
		s.nodes[i].outOfTree = make([]int32, 0, deg[i])
	}
	for i, e := range net.Edges {
		s.arcs[i] = arc{
			from:         int32(e.From - 1),
			to:           int32(e.To - 1),
			capacity:     e.Capacity,
			baseCapacity: e.Capacity,
			direction:    Forward,
		}
	}
	s.reset()
}

// reset discards the forest, labels, buckets and flows, and rebuilds every out-of-tree list from
// the arc classification. Storage is reused.
func (s *Solver) reset() {
	for i := range s.nodes {
		s.nodes[i].reset()
	}
	for i := range s.buckets {
		s.buckets[i] = bucket{head: none, tail: none}
	}
	clear(s.labelCount)
	s.highestStrongLabel = 1
	s.recovered = false

	for i := range s.arcs {
		a := &s.arcs[i]
		a.flow = 0
		a.direction = Forward
		switch s.kind(a) {
		case direct:
			a.flow = a.capacity
		case fromSource:
			s.nodes[s.source].outOfTree = append(s.nodes[s.source].outOfTree, int32(i))
		case intoSink:
			s.nodes[s.sink].outOfTree = append(s.nodes[s.sink].outOfTree, int32(i))
		case internal:
			s.nodes[a.from].outOfTree = append(s.nodes[a.from].outOfTree, int32(i))
		}
	}
}

// inEdgeRange reports whether the arc's head is one of the nodes 1..numEdges.
func inEdgeRange(a *arc, numEdges int) bool {
	return int(a.to) < numEdges
}
