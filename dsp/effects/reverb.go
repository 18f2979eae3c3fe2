package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
	"github.com/cwbudde/algo-fx/dsp/delay"
	"github.com/cwbudde/algo-vecmath"
)

const (
	reverbName = "reverb"

	maxReverbDelayMS = 5000.0
	maxReverbDecay   = 1.0
	maxReverbWetness = 2.0

	defaultReverbDelayMS = 50.0
	defaultReverbDecay   = 0.5
	defaultReverbWetness = 0.5
)

// reverbTaps is the decaying echo cascade: each tap repeats the dry
// signal later and quieter than the one before.
var reverbTaps = []delay.Multiplier{
	{Time: 1.0, Gain: 0.8},
	{Time: 1.5, Gain: 0.6},
	{Time: 2.0, Gain: 0.4},
}

var scratch = buffer.NewPool()

// ReverbParams configures AddReverb.
type ReverbParams struct {
	DelayMS float64 // [0, 5000] base tap delay
	Decay   float64 // [0, 1] base tap attenuation
	Wetness float64 // [0, 2] wet share of the mix
}

// DefaultReverbParams returns 50 ms, decay 0.5, wetness 0.5.
func DefaultReverbParams() ReverbParams {
	return ReverbParams{
		DelayMS: defaultReverbDelayMS,
		Decay:   defaultReverbDecay,
		Wetness: defaultReverbWetness,
	}
}

// Name implements Effect.
func (p ReverbParams) Name() string { return reverbName }

// Validate checks the parameter ranges.
func (p ReverbParams) Validate() error {
	if err := checkRange(reverbName, "delay_ms", p.DelayMS, 0, maxReverbDelayMS); err != nil {
		return err
	}

	if err := checkRange(reverbName, "decay", p.Decay, 0, maxReverbDecay); err != nil {
		return err
	}

	return checkRange(reverbName, "wetness", p.Wetness, 0, maxReverbWetness)
}

// Apply implements Effect.
func (p ReverbParams) Apply(sig *buffer.Signal) (*buffer.Signal, error) {
	return AddReverb(sig, p)
}

// DelaySamples converts DelayMS to whole samples at sampleRate.
func (p ReverbParams) DelaySamples(sampleRate int) int {
	return int(math.Round(p.DelayMS / 1000 * float64(sampleRate)))
}

// Taps returns the echo taps at sampleRate.
func (p ReverbParams) Taps(sampleRate int) (delay.Taps, error) {
	return delay.FromPattern(p.DelaySamples(sampleRate), p.Decay, reverbTaps)
}

// AddReverb sums delayed, attenuated copies of each channel into a wet bus,
// matches the wet peak to the dry peak, mixes
// (1-wetness)*dry + wetness*wet and rescales the mix back to the dry peak.
//
// When the wet bus is silent (decay 0, delay 0, or every tap past the end
// of the buffer) the channel is returned unchanged for any wetness.
func AddReverb(sig *buffer.Signal, p ReverbParams) (*buffer.Signal, error) {
	if err := checkSignal(reverbName, sig); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	taps, err := p.Taps(sig.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", reverbName, ErrInvalidInput, err)
	}

	chans := sig.Split()
	for ch, dry := range chans {
		chans[ch] = reverbChannel(dry, taps, p.Wetness)
	}

	out, err := sig.Like(chans)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", reverbName, err)
	}

	return out, nil
}

func reverbChannel(dry []float64, taps delay.Taps, wetness float64) []float64 {
	out := make([]float64, len(dry))

	dryPeak := vecmath.MaxAbs(dry)
	if dryPeak == 0 {
		return out
	}

	buf := scratch.Get(len(dry))
	defer scratch.Put(buf)

	wet := buf.Data

	taps.Render(wet, dry)

	wetPeak := vecmath.MaxAbs(wet)
	if wetPeak == 0 {
		copy(out, dry)
		return out
	}

	vecmath.ScaleBlockInPlace(wet, dryPeak/wetPeak)

	for i, x := range dry {
		out[i] = (1-wetness)*x + wetness*wet[i]
	}

	// Final peak match. A mix that cancels to silence stays silent; the
	// quantizer saturates anything left outside full scale.
	mixPeak := vecmath.MaxAbs(out)
	if mixPeak > 0 && !core.NearlyEqual(mixPeak, dryPeak, 0) {
		vecmath.ScaleBlockInPlace(out, dryPeak/mixPeak)
	}

	return out
}
