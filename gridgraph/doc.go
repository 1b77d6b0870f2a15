// Package gridgraph treats the cell grid covered by a board layout as a
// graph, enabling island analysis and a printable map.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - FromClusters rasterises clusters: each cell holds the number of
//     distinct clusters whose blocks cover it.
//   - ConnectedComponents finds the islands of cells with value ≥ LandThreshold.
//   - Render draws the layout, one character per cell; OwnedCells and Glyph
//     back the map legend.
//
// Why:
//
//   - Boards placed on the corner-overlap lattice must form a single island;
//     a second island means a board shares no cell with the rest.
//   - Inspection output wants a picture of which cluster owns what.
//
// Complexity:
//
//   - FromClusters:        O(B·rows·cols + W×H)
//   - ConnectedComponents: O(W×H), Memory: O(W×H)
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrDisconnected: the layout splits into several islands.
package gridgraph
