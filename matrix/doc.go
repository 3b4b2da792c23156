// Package matrix provides exact integer matrices for cellular homology.
//
// The matrix package provides:
//
//   - IntDense, a row-major matrix of math/big integers whose shape may have
//     zero rows or columns (empty chain groups are common in small complexes).
//   - ColumnEchelon, an integer column reduction that also returns the
//     transformation R and its inverse; the trailing columns of R form a
//     Z-basis of the kernel.
//   - SmithNormalForm, returning the diagonal form together with the left
//     unimodular factor, from which free and torsion generators are read.
//
// All arithmetic is exact. Errors are the sentinels in errors.go and are
// matched with errors.Is.
package matrix
