package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/spectrum"
)

const equalizerName = "equalizer"

// EqualizerParams holds linear per-band gain multipliers. 0.5-1.5 is the
// typical range; any finite non-negative value is accepted.
type EqualizerParams struct {
	Treble float64 // f > 4 kHz
	Mid    float64 // 250 Hz <= f <= 4 kHz
	Bass   float64 // f < 250 Hz
}

// FlatEqualizerParams returns unity gain in all bands.
func FlatEqualizerParams() EqualizerParams {
	return EqualizerParams{Treble: 1, Mid: 1, Bass: 1}
}

// Name implements Effect.
func (p EqualizerParams) Name() string { return equalizerName }

// Validate rejects negative or non-finite gains.
func (p EqualizerParams) Validate() error {
	for _, g := range []struct {
		name string
		v    float64
	}{
		{"treble", p.Treble},
		{"mid", p.Mid},
		{"bass", p.Bass},
	} {
		if !core.IsFinite(g.v) || g.v < 0 {
			return &ParamError{Effect: equalizerName, Param: g.name, Value: g.v, Min: 0, Max: math.Inf(1)}
		}
	}

	return nil
}

// Apply implements Effect.
func (p EqualizerParams) Apply(sig *buffer.Signal) (*buffer.Signal, error) {
	return Equalize(sig, p)
}

// Gain returns the multiplier for a band.
func (p EqualizerParams) Gain(b spectrum.Band) float64 {
	switch b {
	case spectrum.BandBass:
		return p.Bass
	case spectrum.BandMid:
		return p.Mid
	default:
		return p.Treble
	}
}

// Flat reports whether all gains are exactly 1.
func (p EqualizerParams) Flat() bool {
	return p.Treble == 1 && p.Mid == 1 && p.Bass == 1
}

// Equalize scales every FFT bin of each channel by the gain of the band
// its frequency falls in and reconstructs the time signal. Band edges are
// hard, there is no crossfade between bands.
func Equalize(sig *buffer.Signal, p EqualizerParams) (*buffer.Signal, error) {
	if err := checkSignal(equalizerName, sig); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	tr, err := spectrum.NewTransform(sig.Frames())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", equalizerName, err)
	}

	gains := binGains(tr.Size(), float64(sig.SampleRate), p)

	chans := sig.Split()
	for ch, data := range chans {
		bins, err := tr.Forward(data)
		if err != nil {
			return nil, fmt.Errorf("%s: channel %d: %w", equalizerName, ch, err)
		}

		for k := range bins {
			bins[k] *= complex(gains[k], 0)
		}

		chans[ch], err = tr.Inverse(bins)
		if err != nil {
			return nil, fmt.Errorf("%s: channel %d: %w", equalizerName, ch, err)
		}
	}

	out, err := sig.Like(chans)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", equalizerName, err)
	}

	return out, nil
}

// binGains returns the per-bin multiplier for a size-point spectrum.
// Mirrored bins share their positive-frequency gain so the inverse stays real.
func binGains(size int, sampleRate float64, p EqualizerParams) []float64 {
	gains := make([]float64, size)
	for k := range gains {
		gains[k] = p.Gain(spectrum.Classify(spectrum.BinFrequency(k, size, sampleRate)))
	}

	return gains
}
