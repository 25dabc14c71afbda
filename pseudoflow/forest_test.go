package pseudoflow

import (
	"testing"

	"github.com/polinapolina/dense-subgraphs-with-similar-edges/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func children(s *Solver, id int) (ids []int) {
	for c := s.nodes[idx(id)].childList; c != none; c = s.nodes[c].nextSibling {
		ids = append(ids, int(c)+1)
	}
	return ids
}

func forestSolver(t *testing.T) *Solver {
	s, err := New(network(6, 1, 6,
		graph.Edge{From: 2, To: 3, Capacity: 1},
		graph.Edge{From: 4, To: 2, Capacity: 1},
		graph.Edge{From: 4, To: 5, Capacity: 1},
	), DefaultOptions())
	require.NoError(t, err)
	return s
}

func TestMergeReversesPath(t *testing.T) {
	s := forestSolver(t)
	s.addRelationship(idx(3), idx(2))
	s.nodes[idx(2)].arcToParent = 0
	s.addRelationship(idx(2), idx(4))
	s.nodes[idx(4)].arcToParent = 1

	s.merge(idx(5), idx(4), 2)

	assert.Equal(t, idx(5), s.nodes[idx(4)].parent)
	assert.Equal(t, idx(4), s.nodes[idx(2)].parent)
	assert.Equal(t, idx(2), s.nodes[idx(3)].parent)
	assert.Equal(t, none, s.nodes[idx(5)].parent)

	assert.Equal(t, int32(2), s.nodes[idx(4)].arcToParent)
	assert.Equal(t, int32(1), s.nodes[idx(2)].arcToParent)
	assert.Equal(t, int32(0), s.nodes[idx(3)].arcToParent)

	assert.Equal(t, Forward, s.arcs[2].direction)
	assert.Equal(t, Backward, s.arcs[1].direction)
	assert.Equal(t, Backward, s.arcs[0].direction)

	assert.Equal(t, []int{4}, children(s, 5))
	assert.Equal(t, []int{2}, children(s, 4))
	assert.Equal(t, []int{3}, children(s, 2))
	assert.Empty(t, children(s, 3))
	assert.Equal(t, uint64(1), s.Stats().Mergers)
}

func TestBreakRelationship(t *testing.T) {
	s := forestSolver(t)
	for _, c := range []int{2, 4, 5} {
		s.addRelationship(idx(3), idx(c))
	}
	require.Equal(t, []int{5, 4, 2}, children(s, 3))

	s.breakRelationship(idx(3), idx(4))
	assert.Equal(t, []int{5, 2}, children(s, 3))
	assert.Equal(t, none, s.nodes[idx(4)].parent)
	assert.Equal(t, none, s.nodes[idx(4)].nextSibling)

	s.breakRelationship(idx(3), idx(5))
	assert.Equal(t, []int{2}, children(s, 3))
	s.breakRelationship(idx(3), idx(2))
	assert.Empty(t, children(s, 3))
}

func TestLiftAll(t *testing.T) {
	s := forestSolver(t)
	s.addRelationship(idx(3), idx(2))
	s.addRelationship(idx(3), idx(4))
	s.addRelationship(idx(4), idx(5))
	for _, id := range []int{2, 3, 4, 5} {
		s.nodes[idx(id)].label = 2
	}
	s.labelCount[0] = 0
	s.labelCount[2] = 4

	s.liftAll(idx(3))

	for _, id := range []int{2, 3, 4, 5} {
		assert.Equal(t, 6, s.Label(id), "node %d", id)
	}
	assert.Zero(t, s.labelCount[2])
	// The tree itself is left in place.
	assert.Equal(t, []int{4, 2}, children(s, 3))
}
