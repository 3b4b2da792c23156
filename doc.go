// Package s1fibre finds fibrations of triangulated manifolds over the
// circle and triangulates their fibres.
//
// 🚀 What is s1fibre?
//
//	A pure-Go toolkit for combinatorial topology in dimensions 2, 3 and 4:
//		• tri: semi-simplicial triangulations, skeleta, links and moves
//		• builder: spheres, balls, lens spaces, solid tori and F × S¹
//		• homology: exact integral H₁ and H¹ with marked generators
//		• normal: normal surfaces and hypersurfaces, triangulated
//		• dim1: 1-dimensional complexes (level sets and curve fibres)
//		• fibre: the bundle test and the search for a map to S¹
//
// Supporting packages: perm (permutations of at most five points), matrix
// (big-integer matrices, echelon and Smith forms), dsu (union-find) and bfs
// (breadth-first walks over the 1-skeleton).
//
// Quick example:
//
//	lst, _ := builder.LayeredSolidTorus()
//	m, _ := fibre.New(lst)
//	status, c, _ := m.FindBundle()   // fibre.Success
//	f, _ := m.TriangulateFibre(c)    // a meridian disc
//
// The examples/ directory holds a runnable walk through the named
// manifolds.
//
//	go get github.com/katalvlaran/s1fibre
package s1fibre
