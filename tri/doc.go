// Package tri implements semi-simplicial triangulations of dimension 2, 3
// and 4.
//
// What
//
//   - A Triangulation is a list of top-dimensional simplices. Facet f of a
//     simplex (the facet opposite vertex f) is either on the boundary or
//     glued to a facet of another (or the same) simplex by a permutation.
//   - Join(s, f, u, g) glues facet f of s to facet g[f] of u, sending vertex
//     i of s to vertex g[i] of u. The reverse side stores g⁻¹.
//   - InsertTriangulation appends a copy of another triangulation, giving
//     the disjoint union.
//   - The skeleton (vertices, edges, triangles, tetrahedra as Face values) is
//     built lazily on first use and discarded by every mutation.
//
// Face numbering
//
//   - Vertex j is {j}; facets are numbered by their opposite vertex; every
//     other face is numbered lexicographically by vertex set. In dimension 4
//     the edges are 01,02,03,04,12,13,14,23,24,34.
//   - A FaceEmbedding carries a vertex mapping p: face vertex i sits at
//     simplex vertex p[i]. Its images past the face dimension list the
//     remaining simplex vertices.
//
// Global properties
//
//   - EulerChar, CountComponents, CountBoundaryComponents, IsClosed,
//     IsValid and IsIdeal. Vertex and edge validity come from their links
//     (BuildLink), classified as spheres, balls or, for vertices, closed
//     ideal cusps.
//   - BoundaryMatrix(1) and BoundaryMatrix(2) give the cellular chain
//     maps ∂₁ and ∂₂ over the integers.
//
// Moves
//
//   - Subdivide (barycentric), IdealToFinite, DivideEdges (stellar when
//     every simplex meets the chosen edges at most once), CollapseEdge and
//     Simplify.
//   - In dimension 3 also ThreeTwo, TwoZero, ShellBoundary and CloseBook,
//     which Simplify combines with edge collapses.
//
// Text format
//
//	dim 3 size 1
//	glue 0 0 0 (1 2 3 0)
//
// Parse reads it; String writes it, listing every gluing once.
//
// Errors
//
//   - ErrBadDimension, ErrOutOfRange, ErrFacetGlued, ErrBadGluing,
//     ErrInconsistentLink, ErrSyntax and ErrTooLarge. Boolean queries
//     never fail.
package tri
