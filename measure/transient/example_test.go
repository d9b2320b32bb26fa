package transient_test

import (
	"fmt"

	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/measure/transient"
)

func ExampleEvaluator_EvaluateAll() {
	cfg := transient.DefaultConfig()
	e, err := transient.NewEvaluator(cfg)
	if err != nil {
		panic(err)
	}

	for _, row := range e.EvaluateAll(biquad.NewRegistry(cfg.SampleRate)) {
		fmt.Println(row.Name, row.AC.SidebandRMS > 0)
	}
	// Output:
	// DF2 true
	// GR true
	// SVF true
	// TDF2RC true
}

func ExampleSettlingTime() {
	dev := []float32{1, 0.5, 0.25, 0.0625, 0.01, 0}
	s := transient.SettlingTime(dev, 0.1, 1000)
	fmt.Println(s.Samples, s.Millis)
	// Output: 3 3
}
