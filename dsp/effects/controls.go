package effects

import "github.com/cwbudde/algo-fx/dsp/core"

// Conversions from the presentation-layer control conventions to the
// canonical parameter units. Kernels never see slider or dial values.

const (
	sliderUnity = 100.0

	dialDelayScaleMS = 100.0
	minDialDelayMS   = 1.0
	maxDialDelayMS   = 100.0
	minDialDecay     = 0.1
)

// EqualizerFromSliders maps percentage sliders (100 = unity) to gains.
func EqualizerFromSliders(treble, mid, bass float64) EqualizerParams {
	return EqualizerParams{
		Treble: treble / sliderUnity,
		Mid:    mid / sliderUnity,
		Bass:   bass / sliderUnity,
	}
}

// EqualizerFromDB maps per-band dB boosts/cuts to linear gains.
func EqualizerFromDB(trebleDB, midDB, bassDB float64) EqualizerParams {
	return EqualizerParams{
		Treble: core.DBToLinear(trebleDB),
		Mid:    core.DBToLinear(midDB),
		Bass:   core.DBToLinear(bassDB),
	}
}

// ReverbFromDials maps normalized [0, 1] dials to reverb parameters.
// The delay dial spans 1-100 ms, decay is floored at 0.1 and wetness is
// capped at 1.
func ReverbFromDials(delay, decay, wetness float64) ReverbParams {
	return ReverbParams{
		DelayMS: core.Clamp(delay*dialDelayScaleMS, minDialDelayMS, maxDialDelayMS),
		Decay:   core.Clamp(decay, minDialDecay, maxReverbDecay),
		Wetness: core.Clamp(wetness, 0, 1),
	}
}
