// Package homology computes first homology and cohomology of triangulations
// over the integers, with explicit representatives.
//
// A MarkedGroup is ker M / img N for integer matrices M and N with M·N = 0.
// H1 uses (∂₁, ∂₂); H1Cohomology uses (∂₂ᵀ, ∂₁ᵀ), so its free
// representatives are integer 1-cocycles and its N() is the coboundary of
// 0-cochains. Rank, Torsion and FreeRep read the group off a Smith normal
// form computed with the matrix package.
package homology
