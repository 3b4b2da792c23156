// SPDX-License-Identifier: MIT

package fibre_test

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/builder"
	"github.com/katalvlaran/s1fibre/fibre"
)

// ExampleMapToS1_FindBundle fibres the one-tetrahedron solid torus over the
// circle; the fibre is a meridian disc.
func ExampleMapToS1_FindBundle() {
	lst, err := builder.LayeredSolidTorus()
	if err != nil {
		fmt.Println(err)
		return
	}
	m, err := fibre.New(lst)
	if err != nil {
		fmt.Println(err)
		return
	}
	status, c, err := m.FindBundle()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("status:", status)

	f, err := m.TriangulateFibre(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("fibre dimension:", f.Dim)
	fmt.Println("euler:", f.Triangulation.EulerChar(),
		"boundary components:", f.Triangulation.CountBoundaryComponents())

	// Output:
	// status: success
	// fibre dimension: 2
	// euler: 1 boundary components: 1
}
