package graph

import (
	"testing"

	"github.com/navijation/structures/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		g := New()

		assert.Equal(t, 0, g.VertexCount())
		assert.False(t, g.Label(0).Exists())
		assert.False(t, g.Weight(0, 1).Exists())
	})

	t.Run("vertices are index addressed", func(t *testing.T) {
		g := New()

		assert.Equal(t, 0, g.AddVertex("a"))
		assert.Equal(t, 1, g.AddVertex("b"))
		assert.Equal(t, 2, g.VertexCount())
		assert.Equal(t, "a", g.Label(0).Or(""))
		assert.Equal(t, "b", g.Label(1).Or(""))
	})

	t.Run("directed edges", func(t *testing.T) {
		g := New()
		a, b := g.AddVertex("a"), g.AddVertex("b")

		require.True(t, g.AddDirectedEdge(a, b, 1.5))

		assert.Equal(t, 1.5, g.Weight(a, b).Or(-1))
		assert.False(t, g.Weight(b, a).Exists())
	})

	t.Run("undirected edges connect both ways", func(t *testing.T) {
		g := New()
		a, b := g.AddVertex("a"), g.AddVertex("b")

		require.True(t, g.AddUndirectedEdge(a, b, 2.0))

		assert.Equal(t, 2.0, g.Weight(a, b).Or(-1))
		assert.Equal(t, 2.0, g.Weight(b, a).Or(-1))
	})

	t.Run("re-adding an edge updates the weight", func(t *testing.T) {
		g := New()
		a, b := g.AddVertex("a"), g.AddVertex("b")

		require.True(t, g.AddDirectedEdge(a, b, 1.0))
		require.True(t, g.AddDirectedEdge(a, b, 3.0))

		assert.Equal(t, 3.0, g.Weight(a, b).Or(-1))

		var edgeCount int
		for range g.EdgesFrom(a) {
			edgeCount++
		}
		assert.Equal(t, 1, edgeCount)
	})

	t.Run("missing endpoints are rejected", func(t *testing.T) {
		g := New()
		a := g.AddVertex("a")

		assert.False(t, g.AddDirectedEdge(a, 5, 1.0))
		assert.False(t, g.AddDirectedEdge(-1, a, 1.0))
		assert.False(t, g.AddUndirectedEdge(a, 5, 1.0))
	})

	t.Run("edges iterate in insertion order", func(t *testing.T) {
		g := New()
		a := g.AddVertex("a")
		b := g.AddVertex("b")
		c := g.AddVertex("c")

		require.True(t, g.AddDirectedEdge(a, c, 3.0))
		require.True(t, g.AddDirectedEdge(a, b, 1.0))

		to, weight, exists := util.Seq2At(g.EdgesFrom(a), 0)
		if assert.True(t, exists) {
			assert.Equal(t, c, to)
			assert.Equal(t, 3.0, weight)
		}

		to, weight, exists = util.Seq2At(g.EdgesFrom(a), 1)
		if assert.True(t, exists) {
			assert.Equal(t, b, to)
			assert.Equal(t, 1.0, weight)
		}

		_, _, exists = util.Seq2At(g.EdgesFrom(a), 2)
		assert.False(t, exists)
	})

	t.Run("clone is independent", func(t *testing.T) {
		g := New()
		a, b := g.AddVertex("a"), g.AddVertex("b")
		require.True(t, g.AddDirectedEdge(a, b, 1.0))

		clone := g.Clone()
		clone.AddVertex("c")
		require.True(t, clone.AddDirectedEdge(a, b, 9.0))

		assert.Equal(t, 2, g.VertexCount())
		assert.Equal(t, 3, clone.VertexCount())
		assert.Equal(t, 1.0, g.Weight(a, b).Or(-1))
		assert.Equal(t, 9.0, clone.Weight(a, b).Or(-1))
	})
}
