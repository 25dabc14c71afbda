package pseudoflow

// DefaultMaxIterations bounds IterateSourceCapacity when maxIters is not positive.
const DefaultMaxIterations = 1000

// RatioResult is where IterateSourceCapacity stopped.
type RatioResult struct {
	Iterations int
	Capacity   float64 // edge-range source capacity of the last solve
	Gain       float64 // total/2 minus the last cut value
	Selected   []bool  // sink side membership of nodes 1..numEdges before the last solve

	// Similarity and Density describe Selected: the mean similarity per selected edge and the
	// ratio of selected edges to the vertices holding them. Both are -1 while nothing is selected.
	Similarity float64
	Density    float64
}

// IterateSourceCapacity raises the capacity of the source arcs into nodes 1..numEdges until the
// cut stops paying: after each solve, with F the number of those nodes left on the sink side and
// Q = total/2 - cut, it stops when Q < precision, F is zero or maxIters solves have run, and
// otherwise moves the capacity to c + Q/F and solves again. The selection returned is the one
// seen before the final solve, empty if the first solve already stops. lambda is the capacity
// the other source arcs were built with and only enters Similarity.
func (s *Solver) IterateSourceCapacity(numEdges int, lambda, c, total, precision float64, maxIters int) (RatioResult, error) {
	if maxIters <= 0 {
		maxIters = DefaultMaxIterations
	}
	res := RatioResult{
		Capacity:   c,
		Selected:   make([]bool, min(numEdges, s.numNodes)),
		Similarity: -1,
		Density:    -1,
	}

	for it := 1; ; it++ {
		if err := s.Solve(); err != nil {
			res.Iterations = it - 1
			return res, err
		}
		gain := total/2 - s.MinCutValue()
		fEdges, fNodes := s.sizes(numEdges, s.onSinkSide)
		s.log.Debug().Int("iteration", it).Float64("capacity", c).Float64("gain", gain).Int("sinkSideEdges", fEdges).Int("sinkSideNodes", fNodes).Msg("Source capacity iteration")

		res.Iterations, res.Capacity, res.Gain = it, c, gain
		if gain < precision || fEdges == 0 || it >= maxIters {
			return res, nil
		}

		res.Selected = s.partition(numEdges, s.onSinkSide)
		res.Similarity = c + (gain+lambda*float64(fNodes))/float64(fEdges)
		res.Density = -1
		if fNodes > 0 {
			res.Density = float64(fEdges) / float64(fNodes)
		}

		c += gain / float64(fEdges)
		if err := s.UpdateSrcCapacities(c, numEdges); err != nil {
			res.Capacity = c
			return res, err
		}
	}
}
