package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamond() *Network {
	return &Network{
		NumNodes: 4, Source: 1, Sink: 4,
		Edges: []Edge{{1, 2, 3}, {1, 3, 2}, {2, 4, 2}, {3, 4, 3}, {2, 3, 1}},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, diamond().Validate())

	cases := []struct {
		name string
		edit func(n *Network)
		want error
	}{
		{"one node", func(n *Network) { n.NumNodes = 1 }, ErrTooFewNodes},
		{"source zero", func(n *Network) { n.Source = 0 }, ErrSourceOutOfRange},
		{"sink too big", func(n *Network) { n.Sink = 5 }, ErrSinkOutOfRange},
		{"same terminal", func(n *Network) { n.Sink = 1 }, ErrSourceIsSink},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := diamond()
			tc.edit(n)
			assert.ErrorIs(t, n.Validate(), tc.want)
		})
	}
}

func TestValidateEdges(t *testing.T) {
	for _, e := range []Edge{{0, 2, 1}, {1, 9, 1}, {1, 2, -1}, {1, 2, math.NaN()}, {1, 2, math.Inf(1)}} {
		n := diamond()
		n.Edges = append(n.Edges, e)
		var edgeErr *EdgeError
		require.True(t, errors.As(n.Validate(), &edgeErr), "edge %v", e)
		assert.Equal(t, 5, edgeErr.Index)
	}

	n := diamond()
	n.Edges = append(n.Edges, Edge{2, 2, 1}, Edge{4, 1, 1}, Edge{2, 1, 7})
	assert.NoError(t, n.Validate(), "loops and reversed terminal arcs are ignored, not rejected")
}

func TestDegreeAndSourceCapacity(t *testing.T) {
	n := diamond()
	assert.Equal(t, []int{2, 3, 3, 2}, n.Degree())
	assert.Equal(t, 5.0, n.SourceCapacity())
}
