package pseudoflow

import "fmt"

// SweepPoint is the cut found at one parameter value.
type SweepPoint struct {
	Param      float64
	CutValue   float64
	SourceSide int // non-terminal nodes on the source side
}

// Sweep solves at each parameter in turn, moving the parametric source capacities with
// UpdateCapacities so every solve starts from the previous one. The parameters must not
// decrease. Points solved before an error are returned with it.
func (s *Solver) Sweep(params []float64) ([]SweepPoint, error) {
	if err := s.mutable(); err != nil {
		return nil, err
	}
	for i := 1; i < len(params); i++ {
		if params[i] < params[i-1] {
			return nil, fmt.Errorf("%w: %g follows %g", ErrNotIncreasing, params[i], params[i-1])
		}
	}

	points := make([]SweepPoint, 0, len(params))
	for _, p := range params {
		if err := s.UpdateCapacities(p); err != nil {
			return points, err
		}
		if err := s.Solve(); err != nil {
			return points, err
		}
		edges, nodes := s.MinCutSizes(s.numNodes)
		points = append(points, SweepPoint{Param: p, CutValue: s.MinCutValue(), SourceSide: edges + nodes})
		s.log.Debug().Float64("param", p).Float64("cut", points[len(points)-1].CutValue).Int("sourceSide", edges+nodes).Msg("Sweep step")
	}
	return points, nil
}
