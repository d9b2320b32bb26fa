// Package export writes transient scenario traces as WAV files for
// listening and plotting.
package export

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/signal"
	"github.com/cwbudde/algo-transient/measure/transient"
)

const (
	// BitDepth of every exported file.
	BitDepth = 24

	// Peak is the normalised peak amplitude relative to full scale.
	Peak = 0.999

	wavFormatPCM = 1
)

// ErrEmptyTrace is returned when a trace has no measurement samples.
var ErrEmptyTrace = errors.New("export: empty trace")

// File describes one written WAV file.
type File struct {
	Path string
	// Scale is the gain applied before quantisation; divide decoded
	// samples by it to recover the original amplitude. 0 for silence.
	Scale float64
}

// Files lists the three files written for one trace.
type Files struct {
	Actual    File
	Ideal     File
	Deviation File
}

// WriteTrace writes <name>_actual.wav, <name>_ideal.wav and
// <name>_deviation.wav into dir as mono 24-bit PCM, each normalised to
// [Peak] independently. dir is created if missing.
func WriteTrace(dir, name string, tr transient.Trace, sampleRate int) (Files, error) {
	if len(tr.Actual) == 0 {
		return Files{}, ErrEmptyTrace
	}
	if sampleRate <= 0 {
		return Files{}, fmt.Errorf("export: sample rate must be > 0: %d", sampleRate)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Files{}, fmt.Errorf("export: %w", err)
	}

	var files Files
	for _, item := range []struct {
		suffix string
		data   []float32
		dst    *File
	}{
		{"actual", tr.Actual, &files.Actual},
		{"ideal", tr.Ideal, &files.Ideal},
		{"deviation", tr.Deviation, &files.Deviation},
	} {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.wav", name, item.suffix))
		scale, err := WriteMono(path, item.data, sampleRate)
		if err != nil {
			return Files{}, err
		}
		*item.dst = File{Path: path, Scale: scale}
	}

	return files, nil
}

// WriteMono normalises data and writes it to path as a mono 24-bit WAV.
// It returns the applied scale.
func WriteMono(path string, data []float32, sampleRate int) (scale float64, err error) {
	if len(data) == 0 {
		return 0, ErrEmptyTrace
	}

	norm, scale, err := signal.Normalize(core.Widen(nil, data), Peak)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("export: %w", closeErr)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, BitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           quantize(norm, BitDepth),
		SourceBitDepth: BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return 0, fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return 0, fmt.Errorf("export: close %s: %w", path, err)
	}

	return scale, nil
}

func quantize(x []float64, bits int) []int {
	full := float64(int(1)<<(bits-1) - 1)
	out := make([]int, len(x))
	for i, v := range x {
		out[i] = int(math.Round(math.Max(-1, math.Min(1, v)) * full))
	}
	return out
}
