// File: graph.go
// Role: Layered graph lifecycle, edge recording, and layer queries.
//
// Determinism:
//   - Vertices() is sorted; Neighbors() and NextLayer() keep discovery order.
//
// Concurrency:
//   - None. A Graph belongs to one resolution call.
package core

import "fmt"

// NewGraph creates a Graph whose vertices are the words of dict that are
// exactly length characters long. No edges are recorded and nothing is visited.
// A nil dict yields an empty graph.
//
// Complexity: O(|dict| log |dict|).
func NewGraph(dict *Dictionary, length int) *Graph {
	words := dict.WordsOfLength(length)
	g := &Graph{
		length:    length,
		vertices:  words,
		adjacency: make(map[string][]string, len(words)),
		distance:  make(map[string]int),
	}
	for _, w := range words {
		g.adjacency[w] = nil
	}

	return g
}

// Length returns the word length shared by every vertex.
func (g *Graph) Length() int { return g.length }

// HasVertex reports whether w is a vertex.
func (g *Graph) HasVertex(w string) bool {
	_, ok := g.adjacency[w]

	return ok
}

// Vertices returns a sorted copy of all vertices.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Connect records the edge from → to. Both endpoints must be vertices.
// Recording the same edge twice keeps both entries; callers that need
// distinct edges must not repeat them.
//
// Complexity: O(1) amortized.
func (g *Graph) Connect(from, to string) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edges++

	return nil
}

// Neighbors returns a copy of every edge recorded from w, in discovery order,
// regardless of layer. Unknown vertices have no neighbors.
func (g *Graph) Neighbors(w string) []string {
	nbs := g.adjacency[w]
	if len(nbs) == 0 {
		return nil
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out
}

// NextLayer returns the recorded neighbors of w that sit exactly one layer
// further from the start: distance(nb) == distance(w) + 1.
// An unvisited w has no next layer.
//
// Complexity: O(deg(w)).
func (g *Graph) NextLayer(w string) []string {
	d, ok := g.distance[w]
	if !ok {
		return nil
	}
	var out []string
	for _, nb := range g.adjacency[w] {
		if nd, seen := g.distance[nb]; seen && nd == d+1 {
			out = append(out, nb)
		}
	}

	return out
}

// SetDistance records w as visited at layer d.
func (g *Graph) SetDistance(w string, d int) error {
	if !g.HasVertex(w) {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, w)
	}
	if d < 0 {
		return fmt.Errorf("%w: %d for %q", ErrNegativeDistance, d, w)
	}
	g.distance[w] = d

	return nil
}

// Distance returns the layer of w and whether w has been visited.
func (g *Graph) Distance(w string) (int, bool) {
	d, ok := g.distance[w]

	return d, ok
}

// Visited reports whether w has a recorded distance.
func (g *Graph) Visited(w string) bool {
	_, ok := g.distance[w]

	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// VisitedCount returns the number of vertices with a recorded distance.
func (g *Graph) VisitedCount() int { return len(g.distance) }

// EdgeCount returns the number of recorded edges, including same-layer ones.
func (g *Graph) EdgeCount() int { return g.edges }
