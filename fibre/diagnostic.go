// SPDX-License-Identifier: MIT

package fibre

import (
	"fmt"
	"strings"
)

// Diagnostic records the level set found in every vertex link.
//
// Per vertex, Vertices[v] holds:
//   - dimension 2: the number of link points on the level set;
//   - dimension 3: circles then intervals of the level set;
//   - dimension 4: the component count, then genus and boundary circles of
//     every component.
type Diagnostic struct {
	Dim      int
	Vertices [][]int
}

// Flat concatenates the per-vertex records.
func (d Diagnostic) Flat() []int {
	var out []int
	for _, rec := range d.Vertices {
		out = append(out, rec...)
	}

	return out
}

// String renders one "vtx i ..." item per vertex.
func (d Diagnostic) String() string {
	var sb strings.Builder
	for v, rec := range d.Vertices {
		if v > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "vtx %d ", v)
		switch {
		case len(rec) == 0:
			sb.WriteByte('-')
		case d.Dim == 2:
			fmt.Fprintf(&sb, "z%d", rec[0])
		case d.Dim == 3 && len(rec) >= 2:
			fmt.Fprintf(&sb, "c%di%d", rec[0], rec[1])
		default:
			fmt.Fprintf(&sb, "C%d", rec[0])
			for i := 1; i+1 < len(rec); i += 2 {
				fmt.Fprintf(&sb, ":g%db%d", rec[i], rec[i+1])
			}
		}
	}

	return sb.String()
}
