package pseudoflow

// findWeakNode scans the strong node's out-of-tree arcs from its cursor for an arc to a node one
// label below the current highest strong label. The arc found is removed from the list.
func (s *Solver) findWeakNode(strong int32) (weak, ai int32) {
	nd := &s.nodes[strong]
	target := s.highestStrongLabel - 1

	for i := nd.nextArc; i < len(nd.outOfTree); i++ {
		s.stats.ArcScans++
		a := &s.arcs[nd.outOfTree[i]]

		weak = none
		if s.nodes[a.to].label == target {
			weak = a.to
		} else if s.nodes[a.from].label == target {
			weak = a.from
		}
		if weak != none {
			nd.nextArc = i
			ai = nd.outOfTree[i]
			last := len(nd.outOfTree) - 1
			nd.outOfTree[i] = nd.outOfTree[last]
			nd.outOfTree = nd.outOfTree[:last]
			return weak, ai
		}
	}
	nd.nextArc = len(nd.outOfTree)
	return none, none
}

// checkChildren advances the node's scan cursor to a child sharing its label. Without one the
// node is relabeled.
func (s *Solver) checkChildren(current int32) {
	nd := &s.nodes[current]
	for ; nd.nextScan != none; nd.nextScan = s.nodes[nd.nextScan].nextSibling {
		if s.nodes[nd.nextScan].label == nd.label {
			return
		}
	}

	s.labelCount[nd.label]--
	nd.label++
	s.labelCount[nd.label]++
	s.stats.Relabels++
	nd.nextArc = 0
}

// processRoot searches the strong tree depth first for a merger. If none is found every node
// on the way has been relabeled and the root goes back into a bucket.
func (s *Solver) processRoot(strongRoot int32) {
	strongNode := strongRoot
	s.nodes[strongRoot].nextScan = s.nodes[strongRoot].childList

	if weak, ai := s.findWeakNode(strongRoot); ai != none {
		s.merge(weak, strongRoot, ai)
		s.pushExcess(strongRoot)
		return
	}
	s.checkChildren(strongRoot)

	for strongNode != none {
		for s.nodes[strongNode].nextScan != none {
			next := s.nodes[strongNode].nextScan
			s.nodes[strongNode].nextScan = s.nodes[next].nextSibling
			strongNode = next
			s.nodes[strongNode].nextScan = s.nodes[strongNode].childList

			if weak, ai := s.findWeakNode(strongNode); ai != none {
				s.merge(weak, strongNode, ai)
				s.pushExcess(strongRoot)
				return
			}
			s.checkChildren(strongNode)
		}
		if strongNode = s.nodes[strongNode].parent; strongNode != none {
			s.checkChildren(strongNode)
		}
	}

	s.addToStrongBucket(strongRoot)
	s.highestStrongLabel++
}

// getHighestStrongRoot pops a root from the highest non-empty bucket. Roots above a label that
// no node holds any more are lifted to the source side instead. Roots left at label 0, which a
// parametric update can produce, are moved to label 1.
func (s *Solver) getHighestStrongRoot() int32 {
	for i := min(s.highestStrongLabel, s.numNodes); i > 0; i-- {
		if s.buckets[i].head == none {
			continue
		}
		s.highestStrongLabel = i
		if s.labelCount[i-1] > 0 {
			return s.popStrongBucket(i)
		}
		for root := s.popStrongBucket(i); root != none; root = s.popStrongBucket(i) {
			s.stats.Gaps++
			s.liftAll(root)
		}
	}

	if s.buckets[0].head == none {
		return none
	}
	for root := s.popStrongBucket(0); root != none; root = s.popStrongBucket(0) {
		s.nodes[root].label = 1
		s.labelCount[0]--
		s.labelCount[1]++
		s.stats.Relabels++
		s.addToStrongBucket(root)
	}
	s.highestStrongLabel = 1
	return s.popStrongBucket(1)
}

// Solve runs the pseudoflow loop until no strong root remains below the source label. Solving
// an already solved state does nothing.
func (s *Solver) Solve() error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.log.Debug().Int("nodes", s.numNodes).Int("arcs", len(s.arcs)).Msg("Solve start")

	for root := s.getHighestStrongRoot(); root != none; root = s.getHighestStrongRoot() {
		s.processRoot(root)
		if s.opts.CheckInvariants {
			s.checkInvariants()
		}
	}

	if e := s.log.Debug(); e.Enabled() {
		e.Object("stats", s.stats).Float64("minCut", s.MinCutValue()).Msg("Solve done")
	}
	return nil
}
