package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/pseudoflow"
	"gopkg.in/yaml.v3"
)

// Schedule drives the parametric part of a run. Nodes 1..Edges form the edge range: their source
// arcs hold Constant through the sweep while every other source arc follows Params.
//
//	edges: 12
//	constant: 1.5
//	params: [0.5, 1, 2, 4]
//
// With a ratio block the source capacity iteration runs instead of a sweep:
//
//	edges: 12
//	ratio:
//	  lambda: 1
//	  total: 40
//	  precision: 1e-6
//	  max_iterations: 100
//
// A lambda block searches for the lambdas at which that iteration's selection changes, and takes
// precedence over both:
//
//	edges: 12
//	lambda:
//	  min: 0
//	  max: 1000
//	  delta: 1e-5
//	  max_solves: 200
type Schedule struct {
	Edges    int             `yaml:"edges"`
	Constant float64         `yaml:"constant"`
	Params   []float64       `yaml:"params"`
	Ratio    *RatioSchedule  `yaml:"ratio"`
	Lambda   *LambdaSchedule `yaml:"lambda"`
}

type RatioSchedule struct {
	Lambda        float64 `yaml:"lambda"`
	Total         float64 `yaml:"total"`
	Precision     float64 `yaml:"precision"`
	MaxIterations int     `yaml:"max_iterations"`
}

// LambdaSchedule mirrors pseudoflow.LambdaOptions; zero values take the solver's defaults.
type LambdaSchedule struct {
	Min           float64 `yaml:"min"`
	Max           float64 `yaml:"max"`
	Delta         float64 `yaml:"delta"`
	Tolerance     float64 `yaml:"tolerance"`
	Precision     float64 `yaml:"precision"`
	Total         float64 `yaml:"total"`
	MaxIterations int     `yaml:"max_iterations"`
	MaxSolves     int     `yaml:"max_solves"`
}

var errEmptySchedule = errors.New("schedule has no params, ratio or lambda block")

func LoadSchedule(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := ParseSchedule(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func ParseSchedule(r io.Reader) (*Schedule, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	sc := new(Schedule)
	if err := dec.Decode(sc); err != nil {
		return nil, err
	}
	if sc.Edges < 0 {
		return nil, fmt.Errorf("edges must not be negative, got %d", sc.Edges)
	}
	if len(sc.Params) == 0 && sc.Ratio == nil && sc.Lambda == nil {
		return nil, errEmptySchedule
	}
	return sc, nil
}

// Sweep rebuilds s for the schedule and solves at every parameter.
func (sc *Schedule) Sweep(s *pseudoflow.Solver) ([]pseudoflow.SweepPoint, error) {
	if len(sc.Params) == 0 {
		return nil, errEmptySchedule
	}
	if err := s.RebuildParametric(sc.Edges, sc.Params[0], sc.Constant); err != nil {
		return nil, err
	}
	return s.Sweep(sc.Params)
}

// Iterate rebuilds s for the ratio block and raises the edge range capacity until it stops paying.
func (sc *Schedule) Iterate(s *pseudoflow.Solver) (pseudoflow.RatioResult, error) {
	r := sc.Ratio
	if r == nil {
		return pseudoflow.RatioResult{}, errEmptySchedule
	}
	if err := s.RebuildParametric(sc.Edges, r.Lambda, sc.Constant); err != nil {
		return pseudoflow.RatioResult{}, err
	}
	return s.IterateSourceCapacity(sc.Edges, r.Lambda, sc.Constant, r.Total, r.Precision, r.MaxIterations)
}

// Search runs the lambda block over s. Constant is not used: every lambda rebuilds the edge range.
func (sc *Schedule) Search(s *pseudoflow.Solver) (pseudoflow.LambdaResult, error) {
	l := sc.Lambda
	if l == nil {
		return pseudoflow.LambdaResult{}, errEmptySchedule
	}
	return s.LambdaSearch(sc.Edges, pseudoflow.LambdaOptions{
		Min:           l.Min,
		Max:           l.Max,
		Delta:         l.Delta,
		Tolerance:     l.Tolerance,
		Precision:     l.Precision,
		Total:         l.Total,
		MaxIterations: l.MaxIterations,
		MaxSolves:     l.MaxSolves,
	})
}
