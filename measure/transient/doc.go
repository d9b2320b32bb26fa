// Package transient measures how second-order low-pass topologies react to
// an abrupt cutoff/Q change.
//
// Each evaluation runs two scenarios on the same topology instance:
//
//   - actual: reset, warm up at the initial parameters, then switch to the
//     target parameters for the measurement segment
//   - ideal: reset, run warm-up and measurement at the target parameters
//
// The deviation (actual − ideal) over the measurement segment is reduced to
// metrics:
//
//   - DC stimulus: deviation energy in dB, or -Inf when it does not exceed
//     the sentinel energy
//   - tone stimulus: population variance of the deviation, and the RMS of
//     the Hann-windowed actual output's half spectrum with the probe-tone
//     band masked out (sideband RMS)
//
// # Usage
//
//	ev, err := transient.NewEvaluator(transient.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	rows := ev.EvaluateAll(biquad.NewRegistry(48000))
//	report.WriteDCTable(os.Stdout, rows)
//
// An Evaluator owns its scratch buffers and FFT plan and is not safe for
// concurrent use; [EvaluateAllParallel] gives each goroutine its own.
package transient
