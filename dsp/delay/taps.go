// Package delay renders offline multi-tap delay lines over whole buffers.
package delay

import (
	"fmt"
	"math"
)

// Tap is one delayed, attenuated copy of a signal.
type Tap struct {
	Delay int // samples
	Gain  float64
}

// Multiplier scales a base delay and gain into a Tap.
type Multiplier struct {
	Time float64
	Gain float64
}

// Taps is an ordered set of taps summed into one bus.
type Taps []Tap

// FromPattern expands a base delay in samples and a base gain through a
// multiplier pattern. Tap delays are rounded to whole samples.
func FromPattern(baseDelay int, baseGain float64, pattern []Multiplier) (Taps, error) {
	if baseDelay < 0 {
		return nil, fmt.Errorf("delay base must be >= 0: %d", baseDelay)
	}

	taps := make(Taps, len(pattern))
	for i, m := range pattern {
		if m.Time < 0 || math.IsNaN(m.Time) || math.IsInf(m.Time, 0) {
			return nil, fmt.Errorf("delay tap %d time multiplier must be >= 0 and finite: %v", i, m.Time)
		}

		taps[i] = Tap{
			Delay: int(math.Round(float64(baseDelay) * m.Time)),
			Gain:  baseGain * m.Gain,
		}
	}

	return taps, nil
}

// Render adds src shifted right by t.Delay and scaled by t.Gain into dst.
// The head is implicitly zero-filled and anything shifted past len(dst)
// is discarded. Zero-delay and zero-gain taps contribute nothing.
func (t Tap) Render(dst, src []float64) {
	if t.Delay <= 0 || t.Gain == 0 || t.Delay >= len(dst) {
		return
	}

	n := len(dst) - t.Delay
	if n > len(src) {
		n = len(src)
	}

	out := dst[t.Delay : t.Delay+n]
	for i, x := range src[:n] {
		out[i] += x * t.Gain
	}
}

// Render accumulates every tap of src into dst.
func (ts Taps) Render(dst, src []float64) {
	for _, t := range ts {
		t.Render(dst, src)
	}
}
