package pseudoflow

import "fmt"

// InitializePreflow saturates every source and sink arc at its current capacity and puts each
// node left with positive excess in the label 1 bucket. Any previous solve is discarded.
func (s *Solver) InitializePreflow() error {
	if s.released {
		return ErrReleased
	}
	s.reset()
	s.saturateTerminalArcs()
	s.seedBuckets()
	return nil
}

// RebuildParametric restores every capacity to its built value, then gives source arcs into
// nodes 1..numEdges capacity c and the other source arcs capacity lambda, and initializes.
func (s *Solver) RebuildParametric(numEdges int, lambda, c float64) error {
	if s.released {
		return ErrReleased
	}
	for i := range s.arcs {
		a := &s.arcs[i]
		a.capacity = a.baseCapacity
		if s.kind(a) == fromSource {
			if inEdgeRange(a, numEdges) {
				a.capacity = c
			} else {
				a.capacity = lambda
			}
		}
	}
	s.edgeRange = numEdges
	return s.InitializePreflow()
}

// Reinitialize discards the forest and sets source arcs into nodes 1..numEdges to guess and the
// other source arcs to lambda before saturating. Sink capacities are left as they are.
func (s *Solver) Reinitialize(lambda, guess float64, numEdges int) error {
	if s.released {
		return ErrReleased
	}
	s.reset()
	for _, ai := range s.nodes[s.source].outOfTree {
		a := &s.arcs[ai]
		if inEdgeRange(a, numEdges) {
			a.capacity = guess
		} else {
			a.capacity = lambda
		}
		s.log.Trace().Int32("from", a.from+1).Int32("to", a.to+1).Float64("capacity", a.capacity).Msg("source arc")
	}
	s.edgeRange = numEdges
	s.saturateTerminalArcs()
	s.seedBuckets()
	return nil
}

// ReinitializeNegative discards the forest, sets every source arc to lambda and every sink arc
// to its built capacity minus guess.
func (s *Solver) ReinitializeNegative(lambda, guess float64) error {
	if s.released {
		return ErrReleased
	}
	for i := range s.arcs {
		a := &s.arcs[i]
		if s.kind(a) == intoSink && a.baseCapacity-guess < -s.opts.Epsilon {
			return fmt.Errorf("%w: sink arc (%d, %d) has capacity %g, below %g",
				ErrNegativeCapacity, a.from+1, a.to+1, a.baseCapacity, guess)
		}
	}
	s.reset()
	for _, ai := range s.nodes[s.source].outOfTree {
		a := &s.arcs[ai]
		a.capacity = lambda
		s.log.Trace().Int32("from", a.from+1).Int32("to", a.to+1).Float64("capacity", a.capacity).Msg("source arc")
	}
	for _, ai := range s.nodes[s.sink].outOfTree {
		a := &s.arcs[ai]
		a.capacity = max(a.baseCapacity-guess, 0)
		s.log.Trace().Int32("from", a.from+1).Int32("to", a.to+1).Float64("capacity", a.capacity).Msg("sink arc")
	}
	s.edgeRange = 0
	s.saturateTerminalArcs()
	s.seedBuckets()
	return nil
}

func (s *Solver) saturateTerminalArcs() {
	for _, ai := range s.nodes[s.source].outOfTree {
		a := &s.arcs[ai]
		a.flow = a.capacity
		s.nodes[a.to].excess += a.capacity
	}
	for _, ai := range s.nodes[s.sink].outOfTree {
		a := &s.arcs[ai]
		a.flow = a.capacity
		s.nodes[a.from].excess -= a.capacity
	}
	s.nodes[s.source].excess = 0
	s.nodes[s.sink].excess = 0
}

func (s *Solver) seedBuckets() {
	for i := range s.nodes {
		if int32(i) == s.source || int32(i) == s.sink {
			continue
		}
		if nd := &s.nodes[i]; s.positive(nd.excess) {
			nd.label = 1
			s.labelCount[1]++
			s.addToStrongBucket(int32(i))
		}
	}
	s.nodes[s.source].label = s.numNodes
	s.nodes[s.sink].label = 0
	s.labelCount[0] = (s.numNodes - 2) - s.labelCount[1]
	s.highestStrongLabel = 1
}
