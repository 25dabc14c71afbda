package pseudoflow

import "golang.org/x/exp/slices"

// sortByFlow orders the node's out-of-tree arcs by decreasing flow.
func (s *Solver) sortByFlow(current int32) {
	slices.SortFunc(s.nodes[current].outOfTree, func(x, y int32) int {
		fx, fy := s.arcs[x].flow, s.arcs[y].flow
		switch {
		case fx > fy:
			return -1
		case fx < fy:
			return 1
		}
		return 0
	})
}

// minisort restores the decreasing order after the flow on the arc under the cursor dropped,
// by sliding it past every later arc that now carries more.
func (s *Solver) minisort(current int32) {
	nd := &s.nodes[current]
	list := nd.outOfTree
	moving := list[nd.nextArc]
	flow := s.arcs[moving].flow

	i := nd.nextArc + 1
	for ; i < len(list) && flow < s.arcs[list[i]].flow; i++ {
		list[i-1] = list[i]
	}
	list[i-1] = moving
}
