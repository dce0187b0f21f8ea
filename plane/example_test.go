// Package plane_test provides runnable, deterministic examples with
// stable // Output: blocks.
package plane_test

import (
	"fmt"

	"github.com/katalvlaran/tourset/plane"
)

// ExampleDistMatrix builds the distance matrix of a 3-4-5 right triangle.
func ExampleDistMatrix() {
	towns := []plane.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}
	dist := plane.DistMatrix(towns)
	fmt.Println(dist[0][1], dist[1][2], dist[2][0])
	// Output:
	// 3 5 4
}
