// Package perm provides the small permutations used to label simplex vertices.
//
// A gluing between two simplices, the position of a face inside a simplex and
// the inclusion of a link simplex are all recorded as a Perm acting on the
// vertex numbers 0..4. Smaller symmetric groups embed by fixing the tail.
//
// Complexity: every operation is O(1) (at most five points).
package perm
