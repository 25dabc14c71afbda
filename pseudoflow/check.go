package pseudoflow

import (
	"fmt"
	"math"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/polinapolina/dense-subgraphs-with-similar-edges/utils"
)

// Report is the outcome of CheckOptimality.
type Report struct {
	MinCut     float64
	SinkInflow float64

	Feasible  bool // capacity bounds and flow conservation hold
	Optimal   bool // the flow value equals the cut value
	Certified bool // no augmenting path remains in the residual graph

	Messages []string
}

func (r Report) OK() bool { return r.Feasible && r.Optimal && r.Certified }

// CheckOptimality verifies a recovered flow: every arc within its capacity, every node other than
// the terminals balanced, the sink inflow equal to the cut, and the sink unreachable in the
// residual graph.
func (s *Solver) CheckOptimality() Report {
	eps := s.opts.Epsilon
	r := Report{Feasible: true}
	if s.released {
		r.Feasible = false
		r.Messages = append(r.Messages, ErrReleased.Error())
		return r
	}

	balance := make([]float64, s.numNodes)
	for i := range s.arcs {
		a := &s.arcs[i]
		if a.flow > a.capacity+eps || a.flow < -eps {
			r.Feasible = false
			r.Messages = append(r.Messages, fmt.Sprintf("Capacity constraint violated on arc (%d, %d): flow %g, capacity %g",
				a.from+1, a.to+1, a.flow, a.capacity))
		}
		balance[a.from] -= a.flow
		balance[a.to] += a.flow
	}
	for i, b := range balance {
		if int32(i) == s.source || int32(i) == s.sink {
			continue
		}
		if math.Abs(b) > eps {
			r.Feasible = false
			r.Messages = append(r.Messages, fmt.Sprintf("Flow balance constraint violated in node %d: excess %.15f", i+1, b))
		}
	}

	r.MinCut = s.MinCutValue()
	r.SinkInflow = balance[s.sink]
	r.Optimal = utils.FloatEquals(r.SinkInflow, r.MinCut, eps*max(1, math.Abs(r.MinCut)))
	if !r.Optimal {
		r.Messages = append(r.Messages, fmt.Sprintf("Flow is not optimal: max flow %g does not equal min cut %g", r.SinkInflow, r.MinCut))
	}

	r.Certified = !graph.SinkReachable(s.numNodes, int(s.source)+1, int(s.sink)+1, s.FlowArcs(), eps)
	if !r.Certified {
		r.Messages = append(r.Messages, "Augmenting path from source to sink remains in the residual graph")
	}

	ev := s.log.Info()
	if !r.OK() {
		ev = s.log.Warn().Strs("problems", r.Messages)
	}
	ev.Bool("feasible", r.Feasible).Bool("optimal", r.Optimal).Bool("certified", r.Certified).
		Float64("minCut", r.MinCut).Float64("flow", r.SinkInflow).Msg("Optimality check")
	return r
}
