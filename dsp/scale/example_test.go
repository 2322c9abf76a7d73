package scale_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/scale"
)

func ExampleNewLog() {
	time := scale.Must(scale.NewLog(0.0001, 8, 0.5, 1.0))

	fmt.Printf("%.4f %.4f %.4f\n", time.Map(0), time.Map(0.5), time.Map(1))
	fmt.Printf("%.2f\n", time.Invmap(1.0))

	// Output:
	// 0.0001 1.0000 8.0000
	// 0.50
}
