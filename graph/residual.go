package graph

import (
	"fmt"

	gograph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

// FlowArc is an arc with the capacity it was solved under and the flow it carries.
type FlowArc struct {
	From     int
	To       int
	Capacity float64
	Flow     float64
}

// FlowArcs pairs each edge of the network with its flow.
func (net *Network) FlowArcs(flows []float64) ([]FlowArc, error) {
	if len(flows) != len(net.Edges) {
		return nil, fmt.Errorf("%w: %d flows for %d arcs", ErrFlowCount, len(flows), len(net.Edges))
	}
	arcs := make([]FlowArc, len(net.Edges))
	for i, e := range net.Edges {
		arcs[i] = FlowArc{From: e.From, To: e.To, Capacity: e.Capacity, Flow: flows[i]}
	}
	return arcs, nil
}

// residualGraph has an arc u->v when u->v has more than eps spare capacity, and v->u when it
// carries more than eps flow.
func residualGraph(numNodes int, arcs []FlowArc, eps float64) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for id := 1; id <= numNodes; id++ {
		g.AddNode(simple.Node(id))
	}
	for _, a := range arcs {
		if a.From == a.To {
			continue
		}
		if a.Capacity-a.Flow > eps {
			g.SetEdge(g.NewEdge(simple.Node(a.From), simple.Node(a.To)))
		}
		if a.Flow > eps {
			g.SetEdge(g.NewEdge(simple.Node(a.To), simple.Node(a.From)))
		}
	}
	return g
}

// SinkReachable reports whether an augmenting path from source to sink remains. A feasible flow
// is maximum exactly when it does not.
func SinkReachable(numNodes, source, sink int, arcs []FlowArc, eps float64) bool {
	g := residualGraph(numNodes, arcs, eps)
	var bf traverse.BreadthFirst
	found := bf.Walk(g, simple.Node(source), func(n gograph.Node, _ int) bool {
		return n.ID() == int64(sink)
	})
	return found != nil
}

// ReachableFromSource marks, by id-1, every node reachable from the source in the residual
// graph: the source side of the minimum cut closest to the source.
func ReachableFromSource(numNodes, source int, arcs []FlowArc, eps float64) []bool {
	g := residualGraph(numNodes, arcs, eps)
	seen := make([]bool, numNodes)
	seen[source-1] = true
	bf := traverse.BreadthFirst{
		Visit: func(n gograph.Node) { seen[n.ID()-1] = true },
	}
	bf.Walk(g, simple.Node(source), nil)
	return seen
}
