package core

// Fixed harness configuration. These are the compile-time defaults; every
// consumer accepts overrides through its own config struct.
const (
	// SampleRate is the processing rate in Hz.
	SampleRate = 48000.0

	// MeasureLength is the measurement segment length (about 85 ms).
	MeasureLength = 4096

	// WarmupLength lets a topology settle before the parameter switch.
	WarmupLength = 16000

	// InitialCutoff and InitialQ are in effect during the warm-up.
	InitialCutoff = 80.0
	InitialQ      = 6.0

	// TargetCutoff and TargetQ take effect at the warm-up/measurement boundary.
	TargetCutoff = 120.0
	TargetQ      = 6.0

	// ProbeFrequency is the tone stimulus frequency in Hz.
	ProbeFrequency = 100.0

	// MaskLowBin and MaskHighBin bound (inclusive) the half-spectrum bins
	// removed around the probe tone. They approximate one ERB around
	// ProbeFrequency at MeasureLength/SampleRate and must be recomputed
	// for other block sizes or rates.
	MaskLowBin  = 6
	MaskHighBin = 12

	// SentinelEnergy is the deviation energy at or below which a DC run
	// is reported as ideal (-inf dB).
	SentinelEnergy = 1e-12
)
