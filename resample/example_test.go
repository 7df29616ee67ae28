package resample_test

import (
	"fmt"

	"github.com/katalvlaran/piecewise/curve"
	"github.com/katalvlaran/piecewise/resample"
)

// ExampleThin reduces an oversampled straight line to its endpoints.
func ExampleThin() {
	xs := make([]float64, 11)
	ys := make([]float64, 11)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = 3 * xs[i]
	}
	dense, _ := curve.FromSlices(curve.LinLin, xs, ys)

	sparse, _ := resample.Thin(dense, 1e-6)
	fmt.Printf("%d -> %d points\n", dense.Len(), sparse.Len())
	// Output:
	// 11 -> 2 points
}
