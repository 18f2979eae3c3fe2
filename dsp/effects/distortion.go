package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
)

const (
	distortionName = "distortion"

	minDistortionDB    = -50.0
	maxDistortionDB    = 50.0
	minDistortionLevel = 0.0
	maxDistortionLevel = 100.0

	defaultDistortionThresholdDB = 0.0
	defaultDistortionLevel       = 50.0
	defaultDistortionGainDB      = 0.0
)

// DistortionMode selects the clipping curve.
type DistortionMode int

const (
	// DistortionSoftClip bends magnitudes above the threshold along
	// threshold + (1-threshold)*(1-exp(-L*excess)).
	DistortionSoftClip DistortionMode = iota
	// DistortionHardClip clips at ±threshold and restores full-scale peak.
	DistortionHardClip
)

// String returns the mode name.
func (m DistortionMode) String() string {
	switch m {
	case DistortionSoftClip:
		return "soft"
	case DistortionHardClip:
		return "hard"
	default:
		return fmt.Sprintf("DistortionMode(%d)", int(m))
	}
}

// ParseDistortionMode maps "soft" or "hard" to a mode.
func ParseDistortionMode(s string) (DistortionMode, error) {
	switch s {
	case "", "soft":
		return DistortionSoftClip, nil
	case "hard":
		return DistortionHardClip, nil
	default:
		return 0, fmt.Errorf("%s: %w: unknown mode %q", distortionName, ErrInvalidInput, s)
	}
}

// DistortionParams configures ApplyDistortion.
type DistortionParams struct {
	ThresholdDB float64 // [-50, 50]; linear threshold is clipped to [0, 1]
	Level       float64 // [0, 100] curve intensity
	GainDB      float64 // [-50, 50] output gain
	Mode        DistortionMode
}

// DefaultDistortionParams returns threshold 0 dB, level 50, gain 0 dB.
func DefaultDistortionParams() DistortionParams {
	return DistortionParams{
		ThresholdDB: defaultDistortionThresholdDB,
		Level:       defaultDistortionLevel,
		GainDB:      defaultDistortionGainDB,
	}
}

// Name implements Effect.
func (p DistortionParams) Name() string { return distortionName }

// Validate checks the parameter ranges.
func (p DistortionParams) Validate() error {
	if err := checkRange(distortionName, "threshold_db", p.ThresholdDB, minDistortionDB, maxDistortionDB); err != nil {
		return err
	}

	if err := checkRange(distortionName, "level", p.Level, minDistortionLevel, maxDistortionLevel); err != nil {
		return err
	}

	if err := checkRange(distortionName, "gain_db", p.GainDB, minDistortionDB, maxDistortionDB); err != nil {
		return err
	}

	if p.Mode != DistortionSoftClip && p.Mode != DistortionHardClip {
		return fmt.Errorf("%s: %w: mode is invalid: %d", distortionName, ErrInvalidInput, p.Mode)
	}

	return nil
}

// Apply implements Effect.
func (p DistortionParams) Apply(sig *buffer.Signal) (*buffer.Signal, error) {
	return ApplyDistortion(sig, p)
}

// Threshold returns the linear clipping threshold in [0, 1].
func (p DistortionParams) Threshold() float64 {
	return core.Clamp(core.DBToLinear(p.ThresholdDB), 0, 1)
}

// SoftClip applies the soft-knee curve to one normalized sample. Samples
// at or below threshold pass unchanged. With intensity 0 every sample
// above threshold is pinned to ±threshold.
func SoftClip(x, threshold, intensity float64) float64 {
	ax := math.Abs(x)
	if ax <= threshold {
		return x
	}

	excess := ax - threshold
	curve := threshold + (1-threshold)*(1-math.Exp(-intensity*excess))

	return math.Copysign(curve, x)
}

// ApplyDistortion clips every sample above the threshold, applies the
// output gain and hard-limits the result to full scale.
func ApplyDistortion(sig *buffer.Signal, p DistortionParams) (*buffer.Signal, error) {
	if err := checkSignal(distortionName, sig); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	threshold := p.Threshold()
	intensity := p.Level / 100
	gain := core.DBToLinear(p.GainDB)

	chans := sig.Split()

	switch p.Mode {
	case DistortionHardClip:
		hardClipNormalize(chans, threshold)
	default:
		for _, data := range chans {
			for i, x := range data {
				data[i] = SoftClip(x, threshold, intensity)
			}
		}
	}

	for _, data := range chans {
		for i, x := range data {
			data[i] = core.Clamp(x*gain, -1, 1)
		}
	}

	out, err := sig.Like(chans)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", distortionName, err)
	}

	return out, nil
}

// hardClipNormalize clips to ±threshold and rescales so the loudest
// sample across all channels reaches full scale.
func hardClipNormalize(chans [][]float64, threshold float64) {
	peak := 0.0

	for _, data := range chans {
		for i, x := range data {
			x = core.Clamp(x, -threshold, threshold)
			data[i] = x

			if a := math.Abs(x); a > peak {
				peak = a
			}
		}
	}

	if peak == 0 {
		return
	}

	for _, data := range chans {
		for i := range data {
			data[i] /= peak
		}
	}
}
