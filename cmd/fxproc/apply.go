package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fx/dsp/effectchain"
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/internal/wavio"
)

type applyOptions struct {
	input  string
	output string
	preset string
	skip   []string
	mono   bool

	mode   string
	dist   effects.DistortionParams
	eq     effects.EqualizerParams
	reverb effects.ReverbParams

	eqSliders   []float64
	eqDB        []float64
	reverbDials []float64
}

func newApplyCmd() *cobra.Command {
	opts := &applyOptions{
		dist:   effects.DefaultDistortionParams(),
		eq:     effects.FlatEqualizerParams(),
		reverb: effects.DefaultReverbParams(),
	}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run the effect chain over a WAV or MP3 file",
		Long: `Read a 16-bit PCM WAV or an MP3 file, run distortion → equalizer → reverb and
write the result. Flags that are set explicitly override preset values
and enable their stage. --eq-sliders, --eq-db and --reverb-dials take
treble,mid,bass or delay,decay,wetness triples in control units; single
band or reverb flags given alongside them win.

Examples:
  fxproc apply -i in.wav -o out.wav
  fxproc apply -i in.wav -o out.wav --threshold-db -12 --level 80 --gain-db 3
  fxproc apply -i in.wav -o out.wav --preset hall.json --skip distortion
  fxproc apply -i in.wav -o out.wav --eq-db 3,0,-6 --reverb-dials 0.3,0.6,0.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Input WAV or MP3 file")
	f.StringVarP(&opts.output, "output", "o", "", "Output WAV file")
	f.StringVar(&opts.preset, "preset", "", "JSON preset file")
	f.StringSliceVar(&opts.skip, "skip", nil, "Stages to bypass (distortion, equalizer, reverb)")
	f.BoolVar(&opts.mono, "mono", false, "Mix stereo input down to mono first")

	f.Float64Var(&opts.dist.ThresholdDB, "threshold-db", opts.dist.ThresholdDB, "Distortion threshold in dB [-50, 50]")
	f.Float64Var(&opts.dist.Level, "level", opts.dist.Level, "Distortion intensity [0, 100]")
	f.Float64Var(&opts.dist.GainDB, "gain-db", opts.dist.GainDB, "Distortion output gain in dB [-50, 50]")
	f.StringVar(&opts.mode, "mode", "soft", "Distortion mode (soft, hard)")

	f.Float64Var(&opts.eq.Treble, "treble", opts.eq.Treble, "Treble gain, linear (> 4 kHz)")
	f.Float64Var(&opts.eq.Mid, "mid", opts.eq.Mid, "Mid gain, linear (250 Hz - 4 kHz)")
	f.Float64Var(&opts.eq.Bass, "bass", opts.eq.Bass, "Bass gain, linear (< 250 Hz)")

	f.Float64SliceVar(&opts.eqSliders, "eq-sliders", nil, "Equalizer sliders treble,mid,bass in percent (100 = unity)")
	f.Float64SliceVar(&opts.eqDB, "eq-db", nil, "Equalizer boost/cut treble,mid,bass in dB")

	f.Float64Var(&opts.reverb.DelayMS, "delay-ms", opts.reverb.DelayMS, "Reverb base delay in ms [0, 5000]")
	f.Float64Var(&opts.reverb.Decay, "decay", opts.reverb.Decay, "Reverb decay [0, 1]")
	f.Float64Var(&opts.reverb.Wetness, "wetness", opts.reverb.Wetness, "Reverb wet share [0, 2]")
	f.Float64SliceVar(&opts.reverbDials, "reverb-dials", nil, "Reverb dials delay,decay,wetness in [0, 1]")

	cmd.MarkFlagsMutuallyExclusive("eq-sliders", "eq-db")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runApply(cmd *cobra.Command, opts *applyOptions) error {
	chain, err := buildChain(cmd, opts)
	if err != nil {
		return err
	}

	sig, err := wavio.ReadFile(opts.input)
	if err != nil {
		return err
	}

	if opts.mono {
		sig = sig.MixToMono()
	}

	logrus.WithFields(logrus.Fields{
		"function":    "runApply",
		"input":       opts.input,
		"stages":      chain.Stages(),
		"sample_rate": sig.SampleRate,
		"channels":    sig.Channels,
		"duration":    sig.Duration().String(),
	}).Info("Processing")

	out, err := chain.Process(sig)
	if err != nil {
		return err
	}

	if err := wavio.WriteFile(opts.output, out); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "runApply",
		"output":   opts.output,
		"frames":   out.Frames(),
	}).Info("Wrote output")

	return nil
}

// buildChain starts from the preset (or the default chain), applies the
// explicitly set effect flags and then the skip list.
func buildChain(cmd *cobra.Command, opts *applyOptions) (effectchain.Chain, error) {
	chain := effectchain.Default()

	if opts.preset != "" {
		raw, err := os.ReadFile(opts.preset)
		if err != nil {
			return effectchain.Chain{}, err
		}

		chain, err = effectchain.ParsePreset(raw)
		if err != nil {
			return effectchain.Chain{}, fmt.Errorf("%s: %w", opts.preset, err)
		}

		logrus.WithFields(logrus.Fields{
			"function": "buildChain",
			"preset":   opts.preset,
			"stages":   chain.Stages(),
		}).Debug("Loaded preset")
	}

	changed := cmd.Flags().Changed

	if changed("threshold-db") || changed("level") || changed("gain-db") || changed("mode") {
		mode, err := effects.ParseDistortionMode(opts.mode)
		if err != nil {
			return effectchain.Chain{}, err
		}

		d := effects.DefaultDistortionParams()
		if chain.Distortion != nil {
			d = *chain.Distortion
		}

		override(changed("threshold-db"), &d.ThresholdDB, opts.dist.ThresholdDB)
		override(changed("level"), &d.Level, opts.dist.Level)
		override(changed("gain-db"), &d.GainDB, opts.dist.GainDB)

		if changed("mode") {
			d.Mode = mode
		}

		chain.Distortion = &d
	}

	if changed("treble") || changed("mid") || changed("bass") || changed("eq-sliders") || changed("eq-db") {
		eq := effects.FlatEqualizerParams()
		if chain.Equalizer != nil {
			eq = *chain.Equalizer
		}

		switch {
		case changed("eq-sliders"):
			v, err := triple("eq-sliders", opts.eqSliders)
			if err != nil {
				return effectchain.Chain{}, err
			}

			eq = effects.EqualizerFromSliders(v[0], v[1], v[2])
		case changed("eq-db"):
			v, err := triple("eq-db", opts.eqDB)
			if err != nil {
				return effectchain.Chain{}, err
			}

			eq = effects.EqualizerFromDB(v[0], v[1], v[2])
		}

		override(changed("treble"), &eq.Treble, opts.eq.Treble)
		override(changed("mid"), &eq.Mid, opts.eq.Mid)
		override(changed("bass"), &eq.Bass, opts.eq.Bass)

		chain.Equalizer = &eq
	}

	if changed("delay-ms") || changed("decay") || changed("wetness") || changed("reverb-dials") {
		r := effects.DefaultReverbParams()
		if chain.Reverb != nil {
			r = *chain.Reverb
		}

		if changed("reverb-dials") {
			v, err := triple("reverb-dials", opts.reverbDials)
			if err != nil {
				return effectchain.Chain{}, err
			}

			r = effects.ReverbFromDials(v[0], v[1], v[2])
		}

		override(changed("delay-ms"), &r.DelayMS, opts.reverb.DelayMS)
		override(changed("decay"), &r.Decay, opts.reverb.Decay)
		override(changed("wetness"), &r.Wetness, opts.reverb.Wetness)

		chain.Reverb = &r
	}

	if err := chain.Skip(opts.skip...); err != nil {
		return effectchain.Chain{}, err
	}

	if err := chain.Validate(); err != nil {
		return effectchain.Chain{}, err
	}

	return chain, nil
}

// triple checks that a control flag carried exactly three values.
func triple(name string, v []float64) ([3]float64, error) {
	if len(v) != 3 {
		return [3]float64{}, fmt.Errorf("--%s: want 3 comma-separated values, got %d: %w", name, len(v), effects.ErrInvalidInput)
	}

	return [3]float64{v[0], v[1], v[2]}, nil
}

func override(set bool, dst *float64, v float64) {
	if set {
		*dst = v
	}
}
