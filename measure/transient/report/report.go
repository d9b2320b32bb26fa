// Package report renders transient evaluation results as plain-text tables
// and JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-transient/measure/transient"
)

// WriteDCTable writes the DC-stimulus deviation energies, one line per row.
func WriteDCTable(w io.Writer, rows []transient.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Objective test results with DC stimulus (l2 norm dB)")
	fmt.Fprintln(tw, "(Lower values are better, -inf is ideal)")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Name, formatDB(r.DC))
	}
	return tw.Flush()
}

func formatDB(r transient.DCResult) string {
	if r.Ideal {
		return "-inf"
	}
	return fmt.Sprintf("%6.2f", r.DB)
}

// WriteACTable writes the tone-stimulus variance and sideband RMS.
func WriteACTable(w io.Writer, rows []transient.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Transient Signal Analysis (Perceptual Indicators)")
	fmt.Fprintln(tw, "Structure\tTransient Signal Variance\tSideband energy (RMS)")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.8f\t%.8f\n", r.Name, r.AC.Variance, r.AC.SidebandRMS)
	}
	return tw.Flush()
}

// WriteSteadyStateTable writes measured against analytic tone response.
func WriteSteadyStateTable(w io.Writer, checks []transient.ToneCheck) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Steady-state tone response")
	fmt.Fprintln(tw, "Structure\tFreq [Hz]\tGain\tExpected\tExpected [dB]\tGain err [%]\tPhase err [rad]")
	for _, c := range checks {
		fmt.Fprintf(tw, "%s\t%.1f\t%.6f\t%.6f\t%.2f\t%.4f\t%.6f\n",
			c.Name, c.Freq, c.Gain, c.WantGain, c.WantDB, 100*c.GainErr, c.PhaseErr)
	}
	return tw.Flush()
}

// WriteSettlingTable writes DC deviation settling figures.
func WriteSettlingTable(w io.Writer, rows []transient.NamedSettling) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Deviation settling (DC stimulus)")
	fmt.Fprintln(tw, "Structure\tPeak\tRMS\tCrest\tSamples\tTime [ms]\tT60 [ms]\tCenter [ms]")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.2f\t%d\t%.2f\t%.2f\t%.2f\n",
			r.Name, r.Peak, r.RMS, r.Crest, r.Samples, r.Millis, 1000*r.DecayTime, 1000*r.CenterTime)
	}
	return tw.Flush()
}

// Summary is the machine-readable form of a full run.
type Summary struct {
	SampleRate float64         `json:"sample_rate"`
	Warmup     int             `json:"warmup"`
	Measure    int             `json:"measure"`
	Initial    Params          `json:"initial"`
	Target     Params          `json:"target"`
	ToneFreq   float64         `json:"tone_hz"`
	Mask       [2]int          `json:"mask_bins"`
	Results    []Result        `json:"results"`
	Steady     []SteadyResult  `json:"steady_state,omitempty"`
	Settling   []SettlingEntry `json:"settling,omitempty"`
}

// Params mirrors biquad.Params with JSON tags.
type Params struct {
	Cutoff float64 `json:"cutoff_hz"`
	Q      float64 `json:"q"`
}

// Float is a metric value that encodes NaN and infinities as null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// Result is one topology's metrics. DCdB is null when the run is ideal
// since JSON has no infinity.
type Result struct {
	Name        string   `json:"name"`
	DCEnergy    Float    `json:"dc_energy"`
	DCdB        *float64 `json:"dc_db"`
	Variance    Float    `json:"ac_variance"`
	SidebandRMS Float    `json:"sideband_rms"`
}

// SteadyResult is one steady-state check.
type SteadyResult struct {
	Name     string  `json:"name"`
	Freq     float64 `json:"freq_hz"`
	Gain     Float   `json:"gain"`
	WantGain Float   `json:"want_gain"`
	WantDB   Float   `json:"want_db"`
	GainErr  Float   `json:"gain_err"`
	PhaseErr Float   `json:"phase_err"`
}

// SettlingEntry is one settling measurement.
type SettlingEntry struct {
	Name       string `json:"name"`
	Peak       Float  `json:"peak"`
	RMS        Float  `json:"rms"`
	Crest      Float  `json:"crest"`
	Samples    int    `json:"samples"`
	Millis     Float  `json:"ms"`
	DecayTime  Float  `json:"t60_s"`
	CenterTime Float  `json:"center_s"`
}

// NewSummary collects cfg and rows. Steady and Settling may be nil.
func NewSummary(cfg transient.Config, rows []transient.Row, steady []transient.ToneCheck, settling []transient.NamedSettling) Summary {
	s := Summary{
		SampleRate: cfg.SampleRate,
		Warmup:     cfg.Warmup,
		Measure:    cfg.Measure,
		Initial:    Params{Cutoff: float64(cfg.Initial.Cutoff), Q: float64(cfg.Initial.Q)},
		Target:     Params{Cutoff: float64(cfg.Target.Cutoff), Q: float64(cfg.Target.Q)},
		ToneFreq:   cfg.ToneFreq,
		Mask:       [2]int{cfg.Mask.Lo, cfg.Mask.Hi},
		Results:    make([]Result, len(rows)),
	}

	for i, r := range rows {
		res := Result{
			Name:        r.Name,
			DCEnergy:    Float(r.DC.Energy),
			Variance:    Float(r.AC.Variance),
			SidebandRMS: Float(r.AC.SidebandRMS),
		}
		if !r.DC.Ideal && !math.IsNaN(r.DC.DB) && !math.IsInf(r.DC.DB, 0) {
			db := r.DC.DB
			res.DCdB = &db
		}
		s.Results[i] = res
	}

	for _, c := range steady {
		s.Steady = append(s.Steady, SteadyResult{
			Name: c.Name, Freq: c.Freq, Gain: Float(c.Gain), WantGain: Float(c.WantGain),
			WantDB: Float(c.WantDB), GainErr: Float(c.GainErr), PhaseErr: Float(c.PhaseErr),
		})
	}
	for _, st := range settling {
		s.Settling = append(s.Settling, SettlingEntry{
			Name: st.Name, Peak: Float(st.Peak), RMS: Float(st.RMS), Crest: Float(st.Crest),
			Samples: st.Samples, Millis: Float(st.Millis),
			DecayTime: Float(st.DecayTime), CenterTime: Float(st.CenterTime),
		})
	}

	return s
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
