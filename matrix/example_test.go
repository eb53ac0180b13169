package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/kohonen/matrix"
)

// ExampleValidateDistanceMatrix checks a small metric before use.
func ExampleValidateDistanceMatrix() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})
	fmt.Println(matrix.ValidateDistanceMatrix(d, 0) == nil)

	_ = d.Set(0, 2, 5)
	fmt.Println(matrix.ValidateDistanceMatrix(d, 0))

	// Output:
	// true
	// ValidateDistanceMatrix: ValidateSymmetric: matrix: matrix is not symmetric within eps
}
