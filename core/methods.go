package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex. Adding an existing ID is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]*Edge)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the live vertex for id.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// AddEdge connects from→to (and to→from when undirected), creating missing
// endpoints. Each vertex pair holds at most one edge: repeating AddEdge
// returns the existing edge's ID.
// Returns ErrEmptyVertexID or ErrLoopNotAllowed.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if e, ok := g.adjacency[from][to]; ok {
		return e.ID, nil
	}

	g.nextEdgeID++
	e := &Edge{
		ID:       fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		From:     from,
		To:       to,
		Directed: g.directed,
		seq:      g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.adjacency[from][to] = e
	if !e.Directed && from != to {
		g.adjacency[to][from] = e
	}

	return e.ID, nil
}

// HasEdge reports whether from→to is traversable.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Edge(from, to)
	return ok
}

// Edge returns the edge traversable from→to, if any.
// Complexity: O(1).
func (g *Graph) Edge(from, to string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]

	return e, ok
}

// Neighbors returns the edges leaving id in insertion order. Undirected
// edges are included from either endpoint.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the IDs reachable from id over one edge, sorted.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.From == id {
			ids = append(ids, e.To)
		} else {
			ids = append(ids, e.From)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges; an undirected edge counts once. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Directed reports the graph's edge mode.
func (g *Graph) Directed() bool {
	return g.directed
}
