package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -3 + 4i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 5.0
}

func ExampleClassify() {
	for _, f := range []float64{100, 250, 4000, 4000.5} {
		fmt.Println(f, spectrum.Classify(f))
	}
	// Output:
	// 100 bass
	// 250 mid
	// 4000 mid
	// 4000.5 treble
}
