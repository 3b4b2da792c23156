// Package bfs provides breadth-first search over an integer-indexed graph,
// returning unweighted distances, parent links, discovering arcs and visit
// order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start.
//   - Arcs carry the edge id and the traversal direction, so a caller can
//     propagate edge-oriented data (for instance a 1-cochain) along the
//     spanning tree.
//   - Hooks: OnVisit (may abort with an error) and OnTreeArc.
//   - Arc filtering via WithFilterArc; MaxDepth limit (d>0) or none (d==0).
//
// Determinism
//
//	Arcs are followed in the order the Graph returns them, so the visit
//	sequence is reproducible for a fixed graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start vertex is out of range.
//   - ErrOptionViolation      for invalid options (e.g. negative MaxDepth).
//   - ErrBadArc               if the graph reports an arc to a missing vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
