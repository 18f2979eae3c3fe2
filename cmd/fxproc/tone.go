package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/signal"
	"github.com/cwbudde/algo-fx/internal/wavio"
)

type toneOptions struct {
	output    string
	freq      float64
	seconds   float64
	rate      int
	channels  int
	amplitude float64
	noise     bool
	seed      int64
}

func newToneCmd() *cobra.Command {
	opts := &toneOptions{}

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Write a test tone or white noise WAV file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTone(opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "Output WAV file")
	f.Float64Var(&opts.freq, "freq", 440, "Tone frequency in Hz")
	f.Float64Var(&opts.seconds, "seconds", 1, "Length in seconds")
	f.IntVar(&opts.rate, "rate", 44100, "Sample rate in Hz")
	f.IntVar(&opts.channels, "channels", 1, "Channel count (1 or 2)")
	f.Float64Var(&opts.amplitude, "amplitude", 0.5, "Amplitude relative to full scale [0, 1]")
	f.BoolVar(&opts.noise, "noise", false, "Generate white noise instead of a sine")
	f.Int64Var(&opts.seed, "seed", 1, "Noise seed")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runTone(opts *toneOptions) error {
	if opts.rate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %d", opts.rate)
	}

	if opts.channels != 1 && opts.channels != 2 {
		return fmt.Errorf("channels must be 1 or 2: %d", opts.channels)
	}

	g := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.rate), core.WithChannels(opts.channels)},
		signal.WithSeed(opts.seed),
	)

	var (
		sig *buffer.Signal
		err error
	)

	frames := g.Frames(opts.seconds)
	if opts.noise {
		sig, err = g.WhiteNoise(opts.amplitude, frames)
	} else {
		sig, err = g.Sine(opts.freq, opts.amplitude, frames)
	}

	if err != nil {
		return err
	}

	if err := wavio.WriteFile(opts.output, sig); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "runTone",
		"output":   opts.output,
		"noise":    opts.noise,
		"frames":   sig.Frames(),
	}).Info("Wrote tone")

	return nil
}
