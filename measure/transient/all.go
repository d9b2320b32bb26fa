package transient

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/signal"
)

// Row holds both metrics for one registry entry.
type Row struct {
	Kind biquad.Kind
	Name string
	DC   DCResult
	AC   ACResult
}

// EvaluateAll runs the DC and AC evaluations for every entry of reg, in
// registry order.
func (e *Evaluator) EvaluateAll(reg *biquad.Registry) []Row {
	entries := reg.Entries()
	rows := make([]Row, len(entries))
	for i, entry := range entries {
		rows[i] = e.evaluateEntry(entry)
	}
	return rows
}

func (e *Evaluator) evaluateEntry(entry biquad.Entry) Row {
	return Row{
		Kind: entry.Kind,
		Name: entry.Name,
		DC:   e.EvaluateDC(entry.Filter),
		AC:   e.EvaluateAC(entry.Filter),
	}
}

// EvaluateAllParallel is EvaluateAll with one goroutine and one Evaluator
// per entry. Each entry's topology is touched by a single goroutine only,
// so the result equals EvaluateAll on the same configuration.
func EvaluateAllParallel(cfg Config, reg *biquad.Registry) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries := reg.Entries()
	rows := make([]Row, len(entries))

	var wg sync.WaitGroup
	errChan := make(chan error, len(entries))

	for i := range entries {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			e, err := NewEvaluator(cfg)
			if err != nil {
				errChan <- fmt.Errorf("%s: %w", entries[idx].Name, err)
				return
			}
			rows[idx] = e.evaluateEntry(entries[idx])
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return nil, err
		}
	}

	return rows, nil
}

// SettlingAll runs the DC scenario for every entry and reports how long
// each deviation takes to fall to threshold.
func (e *Evaluator) SettlingAll(reg *biquad.Registry, threshold float64) ([]NamedSettling, error) {
	entries := reg.Entries()
	out := make([]NamedSettling, 0, len(entries))
	for _, entry := range entries {
		tr, err := e.Scenario(entry.Filter, signal.StimulusDC)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedSettling{
			Name:     entry.Name,
			Settling: SettlingTime(tr.Deviation, threshold, e.cfg.SampleRate),
		})
	}
	return out, nil
}

// NamedSettling labels a Settling with its topology name.
type NamedSettling struct {
	Name string
	Settling
}

// SteadyStateAll checks every entry of reg at the target parameters and
// the probe frequency.
func (e *Evaluator) SteadyStateAll(reg *biquad.Registry, length int) ([]ToneCheck, error) {
	entries := reg.Entries()
	out := make([]ToneCheck, 0, len(entries))
	for _, entry := range entries {
		c, err := SteadyState(entry, e.cfg.Target, e.cfg.ToneFreq, e.cfg.SampleRate, length)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		out = append(out, c)
	}
	return out, nil
}
