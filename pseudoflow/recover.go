package pseudoflow

// RecoverFlow turns the pseudoflow left by Solve into a feasible flow of the same value: sink
// deficits are cancelled on the sink arcs, and the excess stranded on the source side is
// returned to the source by decomposing the flow along paths and cancelling cycles. After it
// the solver must be reinitialized before it can solve or update again.
func (s *Solver) RecoverFlow() error {
	if s.released {
		return ErrReleased
	}
	if s.recovered {
		return nil
	}

	for _, ai := range s.nodes[s.sink].outOfTree {
		a := &s.arcs[ai]
		from := &s.nodes[a.from]
		if from.excess < 0 {
			cancel := min(-from.excess, a.flow)
			a.flow -= cancel
			from.excess += cancel
		}
	}

	for _, ai := range s.nodes[s.source].outOfTree {
		to := s.arcs[ai].to
		s.nodes[to].outOfTree = append(s.nodes[to].outOfTree, ai)
	}
	s.nodes[s.source].excess = 0
	s.nodes[s.sink].excess = 0

	// Every source side node gets its tree arc back on the head's list, then each list keeps only
	// the arcs carrying flow, largest first.
	for i := range s.nodes {
		nd := &s.nodes[i]
		if !s.decomposable(int32(i)) || nd.parent == none {
			continue
		}
		if a := &s.arcs[nd.arcToParent]; a.flow != 0 {
			s.nodes[a.to].outOfTree = append(s.nodes[a.to].outOfTree, nd.arcToParent)
		}
	}
	for i := range s.nodes {
		if !s.decomposable(int32(i)) {
			continue
		}
		nd := &s.nodes[i]
		nd.nextArc = 0
		for j := 0; j < len(nd.outOfTree); j++ {
			if s.arcs[nd.outOfTree[j]].flow == 0 {
				last := len(nd.outOfTree) - 1
				nd.outOfTree[j] = nd.outOfTree[last]
				nd.outOfTree = nd.outOfTree[:last]
				j--
			}
		}
		s.sortByFlow(int32(i))
	}

	iteration := 0
	for i := range s.nodes {
		for s.positive(s.nodes[i].excess) {
			iteration++
			if !s.decompose(int32(i), &iteration) {
				s.log.Warn().Int("node", i+1).Float64("excess", s.nodes[i].excess).Msg("Flow decomposition ran out of arcs")
				break
			}
		}
	}

	s.recovered = true
	s.log.Debug().Float64("flow", s.sinkInflow()).Msg("Flow recovered")
	return nil
}

func (s *Solver) decomposable(i int32) bool {
	return i != s.source && i != s.sink && s.nodes[i].label >= s.numNodes
}

// currentArc is the arc under the node's cursor, or none when the node has run out.
func (s *Solver) currentArc(i int32) int32 {
	nd := &s.nodes[i]
	if nd.nextArc >= len(nd.outOfTree) {
		return none
	}
	return nd.outOfTree[nd.nextArc]
}

// cancel removes amount of flow from the arc under the node's cursor and returns the arc's tail.
func (s *Solver) cancel(current int32, amount float64) int32 {
	ai := s.currentArc(current)
	a := &s.arcs[ai]
	a.flow -= amount
	if a.flow != 0 {
		s.minisort(current)
	} else {
		s.nodes[current].nextArc++
	}
	return a.from
}

// decompose follows the largest inflow backward from excessNode. Reaching the source gives a
// path whose bottleneck is returned to the source; revisiting a node gives a cycle whose
// bottleneck is cancelled around it. It reports false if a node on the walk has no inflow left.
func (s *Solver) decompose(excessNode int32, iteration *int) bool {
	current := excessNode
	bottleneck := s.nodes[excessNode].excess

	for current != s.source && s.nodes[current].visited < *iteration {
		s.nodes[current].visited = *iteration
		ai := s.currentArc(current)
		if ai == none {
			return false
		}
		bottleneck = min(bottleneck, s.arcs[ai].flow)
		current = s.arcs[ai].from
	}

	if current == s.source {
		s.nodes[excessNode].excess -= bottleneck
		for current = excessNode; current != s.source; {
			current = s.cancel(current, bottleneck)
		}
		return true
	}

	// current closes a cycle: measure it, then cancel around it.
	*iteration++
	cycle := current
	bottleneck = s.arcs[s.currentArc(cycle)].flow
	for s.nodes[current].visited < *iteration {
		s.nodes[current].visited = *iteration
		ai := s.currentArc(current)
		bottleneck = min(bottleneck, s.arcs[ai].flow)
		current = s.arcs[ai].from
	}

	*iteration++
	for current = cycle; s.nodes[current].visited < *iteration; {
		s.nodes[current].visited = *iteration
		current = s.cancel(current, bottleneck)
	}
	return true
}
