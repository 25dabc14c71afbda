package pseudoflow

func (s *Solver) addRelationship(newParent, child int32) {
	c := &s.nodes[child]
	p := &s.nodes[newParent]
	c.parent = newParent
	c.nextSibling = p.childList
	p.childList = child
}

func (s *Solver) breakRelationship(oldParent, child int32) {
	c := &s.nodes[child]
	p := &s.nodes[oldParent]
	c.parent = none

	if p.childList == child {
		p.childList = c.nextSibling
		c.nextSibling = none
		return
	}
	cur := p.childList
	for s.nodes[cur].nextSibling != child {
		cur = s.nodes[cur].nextSibling
	}
	s.nodes[cur].nextSibling = c.nextSibling
	c.nextSibling = none
}

// merge hangs the strong tree containing child under the weak node parent through newArc.
// The path from child to its old root is reversed: every node on it becomes the child of the
// node below it, and the arcs along it flip direction.
func (s *Solver) merge(parent, child, newArc int32) {
	s.stats.Mergers++

	current, newParent := child, parent
	for s.nodes[current].parent != none {
		cur := &s.nodes[current]
		oldArc := cur.arcToParent
		oldParent := cur.parent
		cur.arcToParent = newArc
		s.breakRelationship(oldParent, current)
		s.addRelationship(newParent, current)
		newParent = current
		current = oldParent
		newArc = oldArc
		s.arcs[newArc].direction = s.arcs[newArc].direction.flip()
	}
	s.nodes[current].arcToParent = newArc
	s.addRelationship(newParent, current)
}

// liftAll moves the whole tree under root to the source side.
func (s *Solver) liftAll(root int32) {
	current := root
	nd := &s.nodes[current]
	nd.nextScan = nd.childList
	s.labelCount[nd.label]--
	nd.label = s.numNodes

	for current != none {
		for s.nodes[current].nextScan != none {
			next := s.nodes[current].nextScan
			s.nodes[current].nextScan = s.nodes[next].nextSibling
			current = next

			nd = &s.nodes[current]
			nd.nextScan = nd.childList
			s.labelCount[nd.label]--
			nd.label = s.numNodes
		}
		if current == root {
			break
		}
		current = s.nodes[current].parent
	}
}
