// Package biquad provides four second-order low-pass realizations that share
// one runtime contract and differ only in how they hold state:
//
//   - [DF2]: Direct Form II, two delay taps of the shared intermediate w[n].
//   - [GR]: coupled (Gold-Rader) resonator, a rotating two-state phasor.
//   - [SVF]: trapezoidal state-variable filter, two integrator states.
//   - [TDF2RC]: transposed Direct Form II, two partial-sum accumulators.
//
// Every [Topology] recomputes its coefficients from [Params] at the start of
// each Process call and applies them from the first sample of that call.
// Nothing is cached or smoothed between calls, so a parameter change is a
// hard switch; that switch is the phenomenon measure/transient quantifies.
//
// Filters run in single precision. [Coefficients] and [Response] give the
// exact float64 transfer function of each realization for verification.
package biquad
