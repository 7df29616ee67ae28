package group_test

import (
	"fmt"

	"github.com/katalvlaran/piecewise/curve"
	"github.com/katalvlaran/piecewise/group"
)

// ExampleOne collapses a sawtooth onto three equal-width groups; the
// group values sum to the whole-domain integral.
func ExampleOne() {
	ps, _ := curve.FromPairs(curve.LinLin, []float64{2, 2, 4, 4, 6, 2, 8, 6})
	bounds, _ := group.NewBoundaries([]float64{2, 4, 6, 8})

	res, _ := group.One(ps, bounds, group.DefaultOptions())
	fmt.Println(res)
	// Output:
	// [6 6 8]
}
