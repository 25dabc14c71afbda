package pseudoflow

import "github.com/polinapolina/dense-subgraphs-with-similar-edges/enforce"

// checkInvariants panics if labels, buckets, the forest or the arc flows are inconsistent.
func (s *Solver) checkInvariants() {
	eps := s.opts.Epsilon
	counts := make([]int, s.numNodes+1)

	for i := range s.nodes {
		id := int32(i)
		if id == s.source || id == s.sink {
			continue
		}
		nd := &s.nodes[i]
		enforce.ENFORCE(nd.label >= 0 && nd.label <= s.numNodes, "node ", i+1, " has label ", nd.label)
		counts[nd.label]++

		if nd.parent == none {
			continue
		}
		enforce.ENFORCE(!nd.inBucket, "node ", i+1, " is bucketed but has a parent")
		enforce.ENFORCE((s.nodes[nd.parent].label >= s.numNodes) == (nd.label >= s.numNodes),
			"node ", i+1, " and its parent are on different sides")

		found := false
		for c := s.nodes[nd.parent].childList; c != none; c = s.nodes[c].nextSibling {
			if c == id {
				found = true
				break
			}
		}
		enforce.ENFORCE(found, "node ", i+1, " missing from its parent's children")

		a := &s.arcs[nd.arcToParent]
		enforce.ENFORCE((a.from == id && a.to == nd.parent) || (a.to == id && a.from == nd.parent),
			"node ", i+1, " tree arc does not join it to its parent")

		steps := 0
		for p := nd.parent; p != none; p = s.nodes[p].parent {
			steps++
			enforce.ENFORCE(steps <= s.numNodes, "cycle above node ", i+1)
		}
	}
	for l := 0; l < s.numNodes; l++ {
		enforce.ENFORCE(counts[l] == s.labelCount[l], "label ", l, " count ", s.labelCount[l], " but ", counts[l], " nodes")
	}

	for l := range s.buckets {
		for r := s.buckets[l].head; r != none; r = s.nodes[r].bucketNext {
			nd := &s.nodes[r]
			enforce.ENFORCE(nd.inBucket && nd.parent == none && nd.label == l, "bucket ", l, " holds bad root ", r+1)
		}
	}

	for i := range s.arcs {
		a := &s.arcs[i]
		if s.kind(a) == ignored {
			continue
		}
		// Source arcs may carry a negative capacity, saturated from the start.
		lo, hi := min(a.capacity, 0), max(a.capacity, 0)
		enforce.ENFORCE(a.flow >= lo-eps && a.flow <= hi+eps, "arc ", i, " flow ", a.flow, " outside [", lo, ", ", hi, "]")
	}
}
