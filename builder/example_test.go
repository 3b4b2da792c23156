package builder_test

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/builder"
)

// ExampleProductWithCircle builds the torus as Circle3 × S¹.
func ExampleProductWithCircle() {
	t, c, err := builder.ProductWithCircle(builder.Circle3())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("triangles:", t.Size())
	fmt.Println("vertices:", t.CountVertices(), "edges:", t.CountEdges())
	fmt.Println("euler:", t.EulerChar(), "closed:", t.IsClosed())
	fmt.Println("cochain length:", len(c))
	// Output:
	// triangles: 6
	// vertices: 3 edges: 9
	// euler: 0 closed: true
	// cochain length: 9
}
