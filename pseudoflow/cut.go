package pseudoflow

// MinCutValue sums the capacity of every arc leaving the source side, the nodes labeled at
// least NumNodes.
func (s *Solver) MinCutValue() float64 {
	var cut float64
	for i := range s.arcs {
		a := &s.arcs[i]
		if s.nodes[a.from].label >= s.numNodes && s.nodes[a.to].label < s.numNodes {
			cut += a.capacity
		}
	}
	return cut
}

func (s *Solver) onSourceSide(i int32) bool {
	return i != s.source && i != s.sink && s.nodes[i].label >= s.numNodes
}

func (s *Solver) onSinkSide(i int32) bool {
	return i != s.source && i != s.sink && s.nodes[i].label < s.numNodes
}

// SourceSide marks, by id-1, the nodes on the source side of the cut. The source is included.
func (s *Solver) SourceSide() []bool {
	side := make([]bool, s.numNodes)
	for i := range s.nodes {
		side[i] = s.nodes[i].label >= s.numNodes
	}
	return side
}

// MinCutPartition marks, by id-1, which of the nodes 1..numEdges are on the source side.
func (s *Solver) MinCutPartition(numEdges int) []bool {
	return s.partition(numEdges, s.onSourceSide)
}

// MinCutSizes counts the source side nodes among 1..numEdges and among the rest, terminals
// excluded.
func (s *Solver) MinCutSizes(numEdges int) (edges, nodes int) {
	return s.sizes(numEdges, s.onSourceSide)
}

func (s *Solver) partition(numEdges int, in func(int32) bool) []bool {
	numEdges = min(numEdges, s.numNodes)
	part := make([]bool, numEdges)
	for i := range part {
		part[i] = in(int32(i))
	}
	return part
}

func (s *Solver) sizes(numEdges int, in func(int32) bool) (edges, nodes int) {
	for i := range s.nodes {
		if !in(int32(i)) {
			continue
		}
		if i < numEdges {
			edges++
		} else {
			nodes++
		}
	}
	return edges, nodes
}

// sinkInflow is the net flow into the sink.
func (s *Solver) sinkInflow() (inflow float64) {
	for i := range s.arcs {
		a := &s.arcs[i]
		if a.to == s.sink {
			inflow += a.flow
		}
		if a.from == s.sink {
			inflow -= a.flow
		}
	}
	return inflow
}
