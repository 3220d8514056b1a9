package rolling_test

import (
	"fmt"

	"github.com/sartorproj/goregress/rolling"
)

func ExampleNew() {
	x := [][]float64{{1}, {2}, {3}, {4}, {4}, {4}, {5}, {6}}
	y := []float64{1.2, 1.9, 3.3, 3.8, 4.1, 4.3, 5.2, 5.8}

	fitter, err := rolling.New(y, x, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, w := range fitter.Results() {
		if !w.OK() {
			fmt.Printf("[%d,%d] failed\n", w.Start, w.End)
			continue
		}
		fmt.Printf("[%d,%d] slope=%.2f\n", w.Start, w.End, w.Model.Coefficients()[1])
	}
	// Output:
	// [0,2] slope=1.05
	// [1,3] slope=0.95
	// [2,4] slope=0.65
	// [3,5] failed
	// [4,6] slope=1.00
	// [5,7] slope=0.75
}
