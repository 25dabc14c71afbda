package pseudoflow

import "fmt"

// sourceUpdate returns the new capacity of a source arc and whether the update touches it.
type sourceUpdate func(a *arc) (float64, bool)

// UpdateCapacities moves the parametric source capacities to param and reuses the solved state:
// only the excess the change creates is pushed. Source arcs into nodes 1..numEdges of the last
// RebuildParametric or Reinitialize keep their capacity. A decrease on any arc is rejected with a
// *MonotonicityError before anything changes.
func (s *Solver) UpdateCapacities(param float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	edgeRange := s.edgeRange
	update := func(a *arc) (float64, bool) {
		if inEdgeRange(a, edgeRange) {
			return a.capacity, false
		}
		return param, true
	}
	if err := s.checkSourceUpdate(update); err != nil {
		return err
	}
	s.applySourceUpdate(update)
	return nil
}

// UpdateSrcCapacities sets the source arcs into nodes 1..numEdges to newCap. Decreases beyond
// the tolerance are rejected before anything changes.
func (s *Solver) UpdateSrcCapacities(newCap float64, numEdges int) error {
	if err := s.mutable(); err != nil {
		return err
	}
	update := func(a *arc) (float64, bool) {
		return newCap, inEdgeRange(a, numEdges)
	}
	if err := s.checkSourceUpdate(update); err != nil {
		return err
	}
	s.applySourceUpdate(update)
	return nil
}

// UpdateSinkCapacities adds delta, which must not be positive, to every sink arc.
func (s *Solver) UpdateSinkCapacities(delta float64) error {
	if err := s.mutable(); err != nil {
		return err
	}
	for _, ai := range s.nodes[s.sink].outOfTree {
		a := &s.arcs[ai]
		if delta > s.opts.Epsilon {
			return &MonotonicityError{Terminal: Sink, From: int(a.from) + 1, To: int(a.to) + 1, Old: a.capacity, New: a.capacity + delta}
		}
		if a.capacity+delta < -s.opts.Epsilon {
			return fmt.Errorf("%w: sink arc (%d, %d) from %g by %g", ErrNegativeCapacity, a.from+1, a.to+1, a.capacity, delta)
		}
	}

	for _, ai := range s.nodes[s.sink].outOfTree {
		a := &s.arcs[ai]
		a.capacity += delta
		a.flow += delta
		from := &s.nodes[a.from]
		from.excess -= delta
		s.log.Trace().Int32("from", a.from+1).Int32("to", a.to+1).Float64("capacity", a.capacity).Msg("sink arc")

		if from.label < s.numNodes && s.positive(from.excess) {
			s.pushExcess(a.from)
		}
	}
	s.highestStrongLabel = s.numNodes - 1
	return nil
}

func (s *Solver) checkSourceUpdate(update sourceUpdate) error {
	for _, ai := range s.nodes[s.source].outOfTree {
		a := &s.arcs[ai]
		newCap, ok := update(a)
		if !ok {
			continue
		}
		if newCap-a.capacity < -s.opts.Epsilon {
			return &MonotonicityError{Terminal: Source, From: int(a.from) + 1, To: int(a.to) + 1, Old: a.capacity, New: newCap}
		}
	}
	return nil
}

func (s *Solver) applySourceUpdate(update sourceUpdate) {
	for _, ai := range s.nodes[s.source].outOfTree {
		a := &s.arcs[ai]
		newCap, ok := update(a)
		if !ok {
			continue
		}
		delta := newCap - a.capacity
		a.capacity += delta
		a.flow += delta
		to := &s.nodes[a.to]
		to.excess += delta
		s.log.Trace().Int32("from", a.from+1).Int32("to", a.to+1).Float64("capacity", a.capacity).Msg("source arc")

		if to.label < s.numNodes && s.positive(to.excess) {
			s.pushExcess(a.to)
		}
	}
	s.highestStrongLabel = s.numNodes - 1
}
