// SPDX-License-Identifier: MIT

package tri

import "github.com/katalvlaran/s1fibre/bfs"

// NumVertices returns the number of vertices, making the 1-skeleton a bfs.Graph.
func (t *Triangulation) NumVertices() int { return t.CountVertices() }

// Arcs lists the edges at vertex v. An arc is Forward when it leaves v from
// the edge's vertex 0; a loop contributes one arc of each direction.
// The returned slice must not be modified.
//
// Complexity: O(1) once the skeleton is built.
func (t *Triangulation) Arcs(v int) []bfs.Arc {
	return t.skel().arcs[v]
}

var _ bfs.Graph = (*Triangulation)(nil)
