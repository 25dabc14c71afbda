package pseudoflow

import "github.com/rs/zerolog"

// DefaultEpsilon is the tolerance under which an excess, flow or capacity change counts as zero.
const DefaultEpsilon = 1e-10

type Options struct {
	Epsilon float64

	// LifoBuckets pushes new roots at the head of their label bucket instead of the tail.
	LifoBuckets bool

	// CheckInvariants verifies labels, buckets, forest and arc bounds after every scheduler step,
	// panicking on a violation. Quadratic; for debugging only.
	CheckInvariants bool

	// Logger overrides the global zerolog logger.
	Logger *zerolog.Logger
}

func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
}
