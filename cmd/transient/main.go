// Command transient compares how second-order low-pass topologies react to
// an abrupt cutoff change.
//
// Usage:
//
//	transient [flags]
//
// It prints the DC-stimulus deviation table followed by the tone-stimulus
// variance and sideband table.
//
// Examples:
//
//	transient
//	transient -filters svf,df2 -steady
//	transient -measure 8192 -mask erb
//	transient -wav out/ -json
//	transient -window hann -periodic
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-transient/dsp/core"
	"github.com/cwbudde/algo-transient/dsp/filter/biquad"
	"github.com/cwbudde/algo-transient/dsp/signal"
	"github.com/cwbudde/algo-transient/dsp/spectrum"
	"github.com/cwbudde/algo-transient/dsp/window"
	"github.com/cwbudde/algo-transient/measure/transient"
	"github.com/cwbudde/algo-transient/measure/transient/export"
	"github.com/cwbudde/algo-transient/measure/transient/report"
)

// minWarmupDecays is the warm-up length, in 1/e decay times, below which a
// warning is logged.
const minWarmupDecays = 10

// Steady-state fits outside these tolerances are logged as warnings.
const (
	steadyGainTol  = 0.01
	steadyPhaseTol = 0.01 // radians
)

type options struct {
	cfg      transient.Config
	filters  string
	json     bool
	wavDir   string
	steady   bool
	settle   float64
	parallel bool
	verbose  bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := opts.cfg
	reg, err := biquad.Select(cfg.SampleRate, opts.filters)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		return fmt.Errorf("no filters selected")
	}

	logger.Debug("configuration",
		"rate", cfg.SampleRate, "warmup", cfg.Warmup, "measure", cfg.Measure,
		"initial", cfg.Initial.Cutoff, "target", cfg.Target.Cutoff, "q", cfg.Target.Q,
		"tone", cfg.ToneFreq, "mask", cfg.Mask.String(), "window", cfg.Window.String(),
		"filters", strings.Join(reg.Names(), ","))

	logger.Debug("analysis window", "window", cfg.Window.String(),
		"periodic", cfg.PeriodicWindow, "enbw", window.Info(cfg.Window).ENBW)
	if tau := cfg.DecaySamples(); float64(cfg.Warmup) < minWarmupDecays*tau {
		logger.Warn("warm-up may be too short for the filter to settle",
			"warmup", cfg.Warmup, "decay_samples", tau)
	}

	ev, err := transient.NewEvaluator(cfg)
	if err != nil {
		return err
	}

	var rows []transient.Row
	if opts.parallel {
		rows, err = transient.EvaluateAllParallel(cfg, reg)
		if err != nil {
			return err
		}
	} else {
		rows = ev.EvaluateAll(reg)
	}
	for _, r := range rows {
		logger.Debug("evaluated", "filter", r.Name,
			"dc_energy", r.DC.Energy, "variance", r.AC.Variance, "sideband_rms", r.AC.SidebandRMS)
	}

	var steady []transient.ToneCheck
	if opts.steady {
		steady, err = ev.SteadyStateAll(reg, int(cfg.SampleRate))
		if err != nil {
			return err
		}
		for _, c := range steady {
			if !c.Within(steadyGainTol, steadyPhaseTol) {
				logger.Warn("steady-state response deviates from transfer function",
					"filter", c.Name, "freq", c.Freq, "gain_err", c.GainErr, "phase_err", c.PhaseErr)
			}
		}
	}

	var settling []transient.NamedSettling
	if opts.settle > 0 {
		settling, err = ev.SettlingAll(reg, opts.settle)
		if err != nil {
			return err
		}
	}

	if opts.wavDir != "" {
		if err := exportTraces(logger, ev, reg, opts.wavDir); err != nil {
			return err
		}
	}

	if opts.json {
		return report.WriteJSON(stdout, report.NewSummary(cfg, rows, steady, settling))
	}

	if err := report.WriteDCTable(stdout, rows); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if err := report.WriteACTable(stdout, rows); err != nil {
		return err
	}
	if steady != nil {
		fmt.Fprintln(stdout)
		if err := report.WriteSteadyStateTable(stdout, steady); err != nil {
			return err
		}
	}
	if settling != nil {
		fmt.Fprintln(stdout)
		if err := report.WriteSettlingTable(stdout, settling); err != nil {
			return err
		}
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := transient.DefaultConfig()
	fs := flag.NewFlagSet("transient", flag.ContinueOnError)
	fs.SetOutput(stderr)

	warmup := fs.Int("warmup", def.Warmup, "warm-up length in samples")
	measure := fs.Int("measure", def.Measure, "measurement length in samples (power of two)")
	rate := fs.Float64("rate", def.SampleRate, "sample rate in Hz")
	initial := fs.Float64("initial-cutoff", float64(def.Initial.Cutoff), "cutoff during warm-up in Hz")
	target := fs.Float64("target-cutoff", float64(def.Target.Cutoff), "cutoff after the switch in Hz")
	q := fs.Float64("q", float64(def.Target.Q), "resonance for both parameter sets")
	tone := fs.Float64("tone", def.ToneFreq, "probe tone frequency in Hz")
	mask := fs.String("mask", def.Mask.String(), `masked bins as "lo:hi", or "erb" for one ERB around the tone`)
	win := fs.String("window", def.Window.String(), "analysis window for the sideband spectrum")
	periodic := fs.Bool("periodic", def.PeriodicWindow, "use the periodic window form instead of the symmetric one")
	seed := fs.Int64("seed", def.Seed, "seed for the noise stimulus exported with -wav")

	var o options
	fs.StringVar(&o.filters, "filters", "", "comma-separated topologies (default all: "+strings.Join(biquad.NewRegistry(core.SampleRate).Names(), ",")+")")
	fs.BoolVar(&o.json, "json", false, "write JSON instead of tables")
	fs.StringVar(&o.wavDir, "wav", "", "write actual/ideal/deviation WAV files into `dir`")
	fs.BoolVar(&o.steady, "steady", false, "also check steady-state tone response")
	fs.Float64Var(&o.settle, "settle", 0, "also report DC deviation settling to this threshold (0 disables)")
	fs.BoolVar(&o.parallel, "parallel", false, "evaluate topologies concurrently")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: transient [flags]\n\n")
		fmt.Fprintf(stderr, "Measures the transient response of low-pass topologies to a cutoff switch.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  transient -filters svf,df2\n")
		fmt.Fprintf(stderr, "  transient -measure 8192 -mask erb -steady\n")
		fmt.Fprintf(stderr, "  transient -wav out/ -json\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := def
	cfg.Warmup = *warmup
	cfg.Measure = *measure
	cfg.SampleRate = *rate
	cfg.Initial = biquad.Params{Cutoff: float32(*initial), Q: float32(*q)}
	cfg.Target = biquad.Params{Cutoff: float32(*target), Q: float32(*q)}
	cfg.ToneFreq = *tone
	cfg.PeriodicWindow = *periodic
	cfg.Seed = *seed

	wt, err := window.ParseType(*win)
	if err != nil {
		return options{}, err
	}
	cfg.Window = wt

	if strings.EqualFold(strings.TrimSpace(*mask), "erb") {
		cfg.Mask = cfg.ERBMask()
	} else {
		m, err := spectrum.ParseBinRange(*mask)
		if err != nil {
			return options{}, err
		}
		cfg.Mask = m
	}

	if err := cfg.Validate(); err != nil {
		return options{}, err
	}

	o.cfg = cfg
	return o, nil
}

func exportTraces(logger *slog.Logger, ev *transient.Evaluator, reg *biquad.Registry, dir string) error {
	rate := int(ev.Config().SampleRate)
	for _, entry := range reg.Entries() {
		for _, kind := range []signal.StimulusKind{signal.StimulusDC, signal.StimulusTone, signal.StimulusNoise} {
			tr, err := ev.Scenario(entry.Filter, kind)
			if err != nil {
				return err
			}

			name := strings.ToLower(entry.Name) + "_" + kind.String()
			files, err := export.WriteTrace(dir, name, tr, rate)
			if err != nil {
				return err
			}
			for _, f := range []export.File{files.Actual, files.Ideal, files.Deviation} {
				logger.Info("wrote", "path", f.Path, "scale", f.Scale)
			}
		}
	}
	return nil
}
