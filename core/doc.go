// Package core provides the small, thread-safe in-memory graph used to model
// board adjacency and the region graph of a generated world.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops are rejected
//   - One edge per ordered vertex pair; a second AddEdge returns the first edge's ID
//   - Per-vertex Metadata for callers that attach domain values
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() sorts IDs lexicographically; Edges() and Neighbors() return edges
//	in insertion order; NeighborIDs() sorts lexicographically. Traversals built
//	on top of these are reproducible run to run.
//
// Core Methods:
//
//	AddVertex(id string) error                        // O(1)
//	HasVertex(id string) bool                         // O(1)
//	AddEdge(from, to string) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                     // O(1)
//	Edge(from, to string) (*Edge, bool)               // O(1)
//	Neighbors(id string) ([]*Edge, error)             // O(d log d)
//	NeighborIDs(id string) ([]string, error)          // O(d log d)
//	Vertices() []string                               // O(V log V)
//	Edges() []*Edge                                   // O(E log E)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - from and to are the same vertex.
package core
