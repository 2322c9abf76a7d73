package oscbank_test

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/oscbank"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

func ExampleSelect() {
	f, err := oscbank.Select(cpu.Features{ForceGeneric: true}, cpu.SIMDNone)
	if err != nil {
		fmt.Println(err)
		return
	}

	bank := f.New(16)
	for i := 0; i < bank.Size(); i++ {
		bank.SetPartial(i, oscbank.Partial{
			Frequency: 220 * float64(i+1),
			Decay:     0.5,
			Gain:      1 / float64(i+1),
		})
	}
	bank.Start(48000)

	buf := make([]float64, 64)
	bank.Add(buf, 1)
	fmt.Println(f.Name(), bank.Lanes(), bank.IsTerminated())
	// Output: generic 1 false
}
