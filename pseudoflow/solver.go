// Package pseudoflow computes maximum flows and minimum cuts with Hochbaum's pseudoflow
// algorithm (highest label first, with the gap heuristic) and re-solves parametric families
// incrementally when only source and sink adjacent capacities move.
package pseudoflow

import (
	"fmt"
	"math"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Solver owns the pseudoflow forest for one network. It is not safe for concurrent use.
type Solver struct {
	opts Options
	log  zerolog.Logger

	numNodes int
	source   int32
	sink     int32

	nodes      []node
	arcs       []arc
	buckets    []bucket
	labelCount []int

	highestStrongLabel int
	edgeRange          int // source arcs into nodes 1..edgeRange keep their capacity on UpdateCapacities

	recovered bool
	released  bool

	stats Stats
}

// New builds the solver's arrays for net. The preflow still has to be set up with
// InitializePreflow, Reinitialize, ReinitializeNegative or RebuildParametric.
func New(net *graph.Network, opts Options) (*Solver, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if err := net.Validate(); err != nil {
		return nil, err
	}
	if net.NumNodes >= math.MaxInt32 || len(net.Edges) >= math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d nodes, %d arcs", ErrTooLarge, net.NumNodes, len(net.Edges))
	}
	opts.normalize()

	s := &Solver{
		opts:     opts,
		log:      log.Logger,
		numNodes: net.NumNodes,
		source:   int32(net.Source - 1),
		sink:     int32(net.Sink - 1),
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	}
	s.build(net)
	return s, nil
}

// Run builds a solver, saturates the terminal arcs and solves.
func Run(net *graph.Network, opts Options) (*Solver, error) {
	s, err := New(net, opts)
	if err != nil {
		return nil, err
	}
	if err = s.InitializePreflow(); err != nil {
		return nil, err
	}
	if err = s.Solve(); err != nil {
		return nil, err
	}
	return s, nil
}

// Release drops the solver's storage. Any later mutating call returns ErrReleased.
func (s *Solver) Release() {
	s.nodes = nil
	s.arcs = nil
	s.buckets = nil
	s.labelCount = nil
	s.released = true
}

func (s *Solver) mutable() error {
	if s.released {
		return ErrReleased
	}
	if s.recovered {
		return ErrRecovered
	}
	return nil
}

func (s *Solver) NumNodes() int { return s.numNodes }
func (s *Solver) NumArcs() int  { return len(s.arcs) }

// Label of the node with the given 1-based id, -1 once released.
func (s *Solver) Label(id int) int {
	if s.released {
		return -1
	}
	return s.nodes[id-1].label
}

// Excess of the node with the given 1-based id, 0 once released.
func (s *Solver) Excess(id int) float64 {
	if s.released {
		return 0
	}
	return s.nodes[id-1].excess
}

// Flows returns the flow on every arc, in input order.
func (s *Solver) Flows() []float64 {
	flows := make([]float64, len(s.arcs))
	for i := range s.arcs {
		flows[i] = s.arcs[i].flow
	}
	return flows
}

// Capacities returns the current, possibly parametric, capacity of every arc in input order.
func (s *Solver) Capacities() []float64 {
	caps := make([]float64, len(s.arcs))
	for i := range s.arcs {
		caps[i] = s.arcs[i].capacity
	}
	return caps
}

// FlowArcs pairs every arc with its current capacity and flow, using 1-based ids.
func (s *Solver) FlowArcs() []graph.FlowArc {
	out := make([]graph.FlowArc, len(s.arcs))
	for i := range s.arcs {
		a := &s.arcs[i]
		out[i] = graph.FlowArc{From: int(a.from) + 1, To: int(a.to) + 1, Capacity: a.capacity, Flow: a.flow}
	}
	return out
}

func (s *Solver) Stats() Stats { return s.stats }
func (s *Solver) ResetStats()  { s.stats = Stats{} }

func (s *Solver) positive(x float64) bool { return x > s.opts.Epsilon }
