package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/s1fibre/bfs"
)

// ExampleBFS walks a 4-cycle and prints the spanning-tree arcs, which is how
// vertex values are propagated along the 1-skeleton of a triangulation.
func ExampleBFS() {
	res, err := bfs.BFS(square, 0, bfs.WithOnTreeArc(func(v int, a bfs.Arc) {
		fmt.Printf("%d -e%d-> %d forward=%v\n", v, a.Edge, a.To, a.Forward)
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// 0 -e0-> 1 forward=true
	// 0 -e3-> 3 forward=false
	// 1 -e1-> 2 forward=true
	// [0 1 3 2]
}
