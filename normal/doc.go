// Package normal provides normal surfaces in 3-triangulations and normal
// hypersurfaces in 4-triangulations, in standard coordinates, and turns
// them into triangulations of their own.
//
// Coordinates
//
//   - Surface: 7 per tetrahedron. Index 7t+v is the triangle cutting off
//     vertex v; 7t+4+q is quadrilateral q, with q = 0, 1, 2 for 01|23,
//     02|13, 03|12 (see VertexSplit).
//   - Hypersurface: 15 per pentachoron. Index 15p+v is the tetrahedron
//     cutting off vertex v; 15p+5+e is the prism separating edge e from the
//     opposite triangle.
//
// Triangulate glues the pieces across every internal facet of the ambient
// triangulation and reports ErrMatchingEquations when the two sides of a
// facet disagree. Pieces on boundary facets leave boundary in the output.
package normal
