package pseudoflow

import (
	"errors"
	"fmt"
)

var (
	ErrNilNetwork       = errors.New("pseudoflow: nil network")
	ErrTooLarge         = errors.New("pseudoflow: network too large to index")
	ErrReleased         = errors.New("pseudoflow: solver has been released")
	ErrRecovered        = errors.New("pseudoflow: flow already recovered; reinitialize first")
	ErrMonotonicity     = errors.New("pseudoflow: capacity update against the parametric direction")
	ErrNegativeCapacity = errors.New("pseudoflow: capacity update would leave a negative capacity")
	ErrNotIncreasing    = fmt.Errorf("%w: sweep parameters must be non-decreasing", ErrMonotonicity)
)

// Terminal names the end of the network a parametric arc hangs off.
type Terminal uint8

const (
	Source Terminal = iota
	Sink
)

func (t Terminal) String() string {
	if t == Sink {
		return "sink"
	}
	return "source"
}

// MonotonicityError is returned when an update would shrink a source-adjacent capacity or grow a
// sink-adjacent one. The solver is left untouched.
type MonotonicityError struct {
	Terminal Terminal
	From     int
	To       int
	Old      float64
	New      float64
}

func (e *MonotonicityError) Error() string {
	verb := "decrease"
	if e.Terminal == Sink {
		verb = "increase"
	}
	return fmt.Sprintf("pseudoflow: %s arc (%d, %d) would %s from %g to %g", e.Terminal, e.From, e.To, verb, e.Old, e.New)
}

func (e *MonotonicityError) Unwrap() error { return ErrMonotonicity }
