package pseudoflow

import (
	"errors"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/utils"
)

const (
	DefaultLambdaMax       = 1e6
	DefaultRatioPrecision  = 1e-10
	DefaultLambdaTolerance = 1e-5
)

var ErrLambdaRange = errors.New("lambda range is empty")

// LambdaOptions bound LambdaSearch. Zero fields take their defaults: Max is DefaultLambdaMax,
// Delta is 0.001/numEdges², Precision is DefaultRatioPrecision, Tolerance is
// DefaultLambdaTolerance and Total is twice the built capacity into the sink. MaxSolves of zero
// leaves the number of solved lambdas unbounded.
type LambdaOptions struct {
	Min, Max      float64
	Delta         float64 // intervals no wider than this are not split
	Tolerance     float64 // solutions closer than this in both similarity and density are the same
	Precision     float64
	Total         float64
	MaxIterations int // per lambda, see IterateSourceCapacity
	MaxSolves     int
}

type LambdaSolution struct {
	Lambda     float64
	Similarity float64
	Density    float64
	Selected   []bool
}

type LambdaResult struct {
	Solutions []LambdaSolution // in the order found, both ends first
	Solves    int
}

type lambdaInterval struct {
	lo, hi LambdaSolution
}

func (o *LambdaOptions) normalize(numEdges int, total float64) {
	if o.Max == 0 {
		o.Max = DefaultLambdaMax
	}
	if o.Delta <= 0 {
		o.Delta = 0.001 / float64(max(numEdges*numEdges, 1))
	}
	if o.Precision <= 0 {
		o.Precision = DefaultRatioPrecision
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultLambdaTolerance
	}
	if o.Total == 0 {
		o.Total = total
	}
}

// LambdaSearch looks for the values of lambda, the capacity of the source arcs outside nodes
// 1..numEdges, at which the selection of IterateSourceCapacity changes. Both ends of [Min, Max]
// are solved and reported; an interval whose ends differ is split at its midpoint, and a
// midpoint differing from both ends is reported too. Halves narrower than Delta are dropped.
//
// Each lambda starts from a rebuilt network whose edge range capacity is -lambda times the number
// of other non-terminal nodes.
func (s *Solver) LambdaSearch(numEdges int, opts LambdaOptions) (LambdaResult, error) {
	if s.released {
		return LambdaResult{}, ErrReleased
	}
	opts.normalize(numEdges, 2*s.builtSinkCapacity())
	if opts.Max < opts.Min {
		return LambdaResult{}, ErrLambdaRange
	}
	vertices := float64(s.numNodes - 2 - min(numEdges, s.numNodes-2))

	var res LambdaResult
	solve := func(lambda float64) (LambdaSolution, error) {
		res.Solves++
		if err := s.RebuildParametric(numEdges, lambda, -lambda*vertices); err != nil {
			return LambdaSolution{}, err
		}
		r, err := s.IterateSourceCapacity(numEdges, lambda, -lambda*vertices, opts.Total, opts.Precision, opts.MaxIterations)
		if err != nil {
			return LambdaSolution{}, err
		}
		s.log.Debug().Float64("lambda", lambda).Float64("similarity", r.Similarity).Float64("density", r.Density).Int("iterations", r.Iterations).Msg("Lambda solved")
		return LambdaSolution{Lambda: lambda, Similarity: r.Similarity, Density: r.Density, Selected: r.Selected}, nil
	}
	distinct := func(a, b LambdaSolution) bool {
		return !utils.FloatEquals(a.Similarity, b.Similarity, opts.Tolerance) || !utils.FloatEquals(a.Density, b.Density, opts.Tolerance)
	}

	lo, err := solve(opts.Min)
	if err != nil {
		return res, err
	}
	res.Solutions = append(res.Solutions, lo)
	hi, err := solve(opts.Max)
	if err != nil {
		return res, err
	}

	var queue []lambdaInterval
	if distinct(lo, hi) {
		res.Solutions = append(res.Solutions, hi)
		queue = append(queue, lambdaInterval{lo, hi})
	}

	for len(queue) > 0 && (opts.MaxSolves <= 0 || res.Solves < opts.MaxSolves) {
		in := queue[0]
		queue = queue[1:]

		mid, err := solve((in.lo.Lambda + in.hi.Lambda) / 2)
		if err != nil {
			return res, err
		}
		dLo, dHi := distinct(mid, in.lo), distinct(mid, in.hi)
		if dLo && mid.Lambda-in.lo.Lambda > opts.Delta {
			queue = append(queue, lambdaInterval{in.lo, mid})
		}
		if dHi && in.hi.Lambda-mid.Lambda > opts.Delta {
			queue = append(queue, lambdaInterval{mid, in.hi})
		}
		if dLo && dHi {
			res.Solutions = append(res.Solutions, mid)
		}
	}
	return res, nil
}

func (s *Solver) builtSinkCapacity() (total float64) {
	for _, ai := range s.nodes[s.sink].outOfTree {
		total += s.arcs[ai].baseCapacity
	}
	return total
}
