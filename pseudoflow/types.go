package pseudoflow

import "github.com/rs/zerolog"

// none marks an absent node or arc index.
const none int32 = -1

// Direction says what a push from a child to its parent does to the flow on the connecting arc.
type Direction uint8

const (
	Backward Direction = iota // the child is the arc's head; pushing up cancels flow
	Forward                   // the child is the arc's tail; pushing up adds flow
)

func (d Direction) flip() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

type arc struct {
	from         int32
	to           int32
	flow         float64
	capacity     float64
	baseCapacity float64 // capacity as built, before any parametric assignment
	direction    Direction
}

type node struct {
	label  int
	excess float64

	parent      int32
	childList   int32
	nextSibling int32
	nextScan    int32
	arcToParent int32

	outOfTree []int32
	nextArc   int

	bucketNext int32
	inBucket   bool

	visited int
}

func (nd *node) reset() {
	nd.label = 0
	nd.excess = 0
	nd.parent = none
	nd.childList = none
	nd.nextSibling = none
	nd.nextScan = none
	nd.arcToParent = none
	nd.outOfTree = nd.outOfTree[:0]
	nd.nextArc = 0
	nd.bucketNext = none
	nd.inBucket = false
	nd.visited = 0
}

// Stats counts the work done by the solver since construction or the last ResetStats.
type Stats struct {
	Pushes   uint64
	Mergers  uint64
	Relabels uint64
	Gaps     uint64
	ArcScans uint64
}

func (st Stats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("pushes", st.Pushes).
		Uint64("mergers", st.Mergers).
		Uint64("relabels", st.Relabels).
		Uint64("gaps", st.Gaps).
		Uint64("arcScans", st.ArcScans)
}
