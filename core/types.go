package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary caller data, e.g. the board anchor behind a
// vertex ID. It is owned by the graph; callers write it right after AddVertex.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge connects two vertices. Directed mirrors the graph's mode at insertion.
type Edge struct {
	ID       string
	From     string
	To       string
	Directed bool

	seq uint64 // insertion order
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the core in-memory graph data structure.
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacency[from][to] = edge; undirected edges are stored both ways.
	adjacency map[string]map[string]*Edge
}

// NewGraph creates an empty Graph. By default it is undirected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
