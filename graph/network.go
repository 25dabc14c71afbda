// Package graph holds the capacitated network consumed by the pseudoflow solver, its DIMACS
// reader and writer, and a residual-graph certificate built on gonum.
package graph

import (
	"fmt"
	"math"
)

// Edge is a directed arc between 1-based node ids.
type Edge struct {
	From     int
	To       int
	Capacity float64
}

// Network is a single-source single-sink capacitated network. Node ids run from 1 to NumNodes.
type Network struct {
	NumNodes int
	Source   int
	Sink     int
	Edges    []Edge
}

// Validate checks the network can be handed to a solver. Self loops, arcs into the source and
// arcs out of the sink are legal; the solver ignores them.
func (net *Network) Validate() error {
	if net.NumNodes < 2 {
		return fmt.Errorf("%w: have %d", ErrTooFewNodes, net.NumNodes)
	}
	if net.Source < 1 || net.Source > net.NumNodes {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrSourceOutOfRange, net.Source, net.NumNodes)
	}
	if net.Sink < 1 || net.Sink > net.NumNodes {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrSinkOutOfRange, net.Sink, net.NumNodes)
	}
	if net.Source == net.Sink {
		return fmt.Errorf("%w: %d", ErrSourceIsSink, net.Source)
	}
	for i, e := range net.Edges {
		switch {
		case e.From < 1 || e.From > net.NumNodes:
			return &EdgeError{Index: i, From: e.From, To: e.To, Capacity: e.Capacity, Reason: "tail out of range"}
		case e.To < 1 || e.To > net.NumNodes:
			return &EdgeError{Index: i, From: e.From, To: e.To, Capacity: e.Capacity, Reason: "head out of range"}
		case math.IsNaN(e.Capacity) || math.IsInf(e.Capacity, 0):
			return &EdgeError{Index: i, From: e.From, To: e.To, Capacity: e.Capacity, Reason: "capacity is not finite"}
		case e.Capacity < 0:
			return &EdgeError{Index: i, From: e.From, To: e.To, Capacity: e.Capacity, Reason: "negative capacity"}
		}
	}
	return nil
}

// Degree returns the number of arcs incident to each node, indexed by id-1. A self loop counts twice.
func (net *Network) Degree() []int {
	deg := make([]int, net.NumNodes)
	for _, e := range net.Edges {
		deg[e.From-1]++
		deg[e.To-1]++
	}
	return deg
}

// SourceCapacity is the total capacity leaving the source; an upper bound on any flow value.
func (net *Network) SourceCapacity() (total float64) {
	for _, e := range net.Edges {
		if e.From == net.Source && e.To != net.Source {
			total += e.Capacity
		}
	}
	return total
}
