package graph

import (
	"iter"

	"github.com/navijation/structures/util"
)

// Graph is an adjacency-list weighted graph. Vertices are addressed by the
// dense index AddVertex hands out rather than by pointer identity, so the
// whole structure lives in two levels of slices. An undirected edge is
// stored as a directed edge in each direction.
type Graph struct {
	vertices []vertex
}

type vertex struct {
	label string
	edges []edge
}

type edge struct {
	to     int
	weight float64
}

func New() Graph {
	return Graph{}
}

// AddVertex appends a vertex and returns its index.
func (me *Graph) AddVertex(label string) int {
	me.vertices = append(me.vertices, vertex{label: label})
	return len(me.vertices) - 1
}

func (me *Graph) VertexCount() int {
	return len(me.vertices)
}

// Label returns the label of the vertex at index, or None out of bounds.
func (me *Graph) Label(index int) util.Optional[string] {
	if index < 0 || index >= len(me.vertices) {
		return util.None[string]()
	}
	return util.Some(me.vertices[index].label)
}

// AddDirectedEdge connects from -> to with the given weight, reporting
// whether both endpoints exist. Re-adding an existing edge updates its
// weight.
func (me *Graph) AddDirectedEdge(from, to int, weight float64) bool {
	if !me.hasVertex(from) || !me.hasVertex(to) {
		return false
	}

	for i, existing := range me.vertices[from].edges {
		if existing.to == to {
			me.vertices[from].edges[i].weight = weight
			return true
		}
	}

	me.vertices[from].edges = append(me.vertices[from].edges, edge{to: to, weight: weight})
	return true
}

// AddUndirectedEdge connects both directions with the same weight.
func (me *Graph) AddUndirectedEdge(a, b int, weight float64) bool {
	if !me.hasVertex(a) || !me.hasVertex(b) {
		return false
	}

	me.AddDirectedEdge(a, b, weight)
	me.AddDirectedEdge(b, a, weight)
	return true
}

// Weight returns the weight of the edge from -> to, or None when no such
// edge exists.
func (me *Graph) Weight(from, to int) util.Optional[float64] {
	if !me.hasVertex(from) {
		return util.None[float64]()
	}

	for _, existing := range me.vertices[from].edges {
		if existing.to == to {
			return util.Some(existing.weight)
		}
	}
	return util.None[float64]()
}

// EdgesFrom yields (neighbor index, weight) pairs in insertion order. An
// out-of-bounds index yields nothing.
func (me *Graph) EdgesFrom(from int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if !me.hasVertex(from) {
			return
		}
		for _, existing := range me.vertices[from].edges {
			if !yield(existing.to, existing.weight) {
				return
			}
		}
	}
}

// Clone returns a deep copy sharing no state with the original.
func (me *Graph) Clone() Graph {
	return Graph{
		vertices: util.CloneSliceFunc(me.vertices, func(v vertex) vertex {
			v.edges = util.CloneSlice(v.edges)
			return v
		}),
	}
}

func (me *Graph) hasVertex(index int) bool {
	return index >= 0 && index < len(me.vertices)
}
