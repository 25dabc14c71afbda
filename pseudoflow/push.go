package pseudoflow

// pushUpward moves the child's excess to its parent along a tree arc the child is the tail of.
// If the arc saturates first it leaves the tree and the child becomes a strong root.
func (s *Solver) pushUpward(ai, child, parent int32, resCap float64) {
	s.stats.Pushes++
	a := &s.arcs[ai]
	c := &s.nodes[child]
	p := &s.nodes[parent]

	if resCap >= c.excess {
		p.excess += c.excess
		a.flow += c.excess
		c.excess = 0
		return
	}

	a.direction = Backward
	p.excess += resCap
	c.excess -= resCap
	a.flow = a.capacity
	p.outOfTree = append(p.outOfTree, ai)
	s.breakRelationship(parent, child)
	s.addToStrongBucket(child)
}

// pushDownward moves the child's excess to its parent by cancelling flow on a tree arc the
// child is the head of.
func (s *Solver) pushDownward(ai, child, parent int32, flow float64) {
	s.stats.Pushes++
	a := &s.arcs[ai]
	c := &s.nodes[child]
	p := &s.nodes[parent]

	if flow >= c.excess {
		p.excess += c.excess
		a.flow -= c.excess
		c.excess = 0
		return
	}

	a.direction = Forward
	c.excess -= flow
	p.excess += flow
	a.flow = 0
	p.outOfTree = append(p.outOfTree, ai)
	s.breakRelationship(parent, child)
	s.addToStrongBucket(child)
}

// pushExcess walks from a node toward its root, pushing excess across every tree arc on the way.
func (s *Solver) pushExcess(strongRoot int32) {
	current := strongRoot
	for s.nodes[current].excess != 0 && s.nodes[current].parent != none {
		nd := &s.nodes[current]
		parent := nd.parent
		a := &s.arcs[nd.arcToParent]
		if a.direction == Forward {
			s.pushUpward(nd.arcToParent, current, parent, a.capacity-a.flow)
		} else {
			s.pushDownward(nd.arcToParent, current, parent, a.flow)
		}
		current = parent
	}

	if nd := &s.nodes[current]; s.positive(nd.excess) && !nd.inBucket {
		s.addToStrongBucket(current)
	}
}
