package graph

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewNodes      = errors.New("graph: network needs at least two nodes")
	ErrSourceOutOfRange = errors.New("graph: source id out of range")
	ErrSinkOutOfRange   = errors.New("graph: sink id out of range")
	ErrSourceIsSink     = errors.New("graph: source and sink are the same node")
	ErrMissingProblem   = errors.New("graph: missing problem line")
	ErrDuplicateProblem = errors.New("graph: more than one problem line")
	ErrMissingSource    = errors.New("graph: no source designated")
	ErrMissingSink      = errors.New("graph: no sink designated")
	ErrArcCount         = errors.New("graph: arc count does not match problem line")
	ErrFlowCount        = errors.New("graph: flow count does not match arc count")
)

// ParseError reports a malformed line of a DIMACS file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("graph: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EdgeError reports an edge that cannot belong to the network.
type EdgeError struct {
	Index    int
	From, To int
	Capacity float64
	Reason   string
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("graph: edge %d (%d -> %d, capacity %g): %s", e.Index, e.From, e.To, e.Capacity, e.Reason)
}
