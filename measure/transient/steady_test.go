package transient

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
)

func TestSteadyStateMatchesResponse(t *testing.T) {
	cfg := DefaultConfig()
	e := newEvaluator(t, cfg)
	reg := biquad.NewRegistry(cfg.SampleRate)

	checks, err := e.SteadyStateAll(reg, 48000)
	require.NoError(t, err)
	require.Len(t, checks, reg.Len())

	for _, c := range checks {
		assert.Equal(t, cfg.ToneFreq, c.Freq)
		assert.True(t, c.Within(0.01, 0.01),
			"%s: gain %.6f want %.6f, phase %.6f want %.6f", c.Name, c.Gain, c.WantGain, c.Phase, c.WantPhase)
		assert.InDelta(t, 20*math.Log10(c.WantGain), c.WantDB, 1e-9, c.Name)
	}
}

func TestSteadyStateTooShort(t *testing.T) {
	cfg := DefaultConfig()
	_, err := SteadyState(entry(t, biquad.KindSVF), cfg.Target, cfg.ToneFreq, cfg.SampleRate, 1000)
	assert.Error(t, err)
}

func TestToneCheckWithin(t *testing.T) {
	c := ToneCheck{GainErr: 0.005, PhaseErr: 0.02}
	assert.True(t, c.Within(0.01, 0.05))
	assert.False(t, c.Within(0.01, 0.01))
	assert.False(t, c.Within(0.001, 0.05))
}
