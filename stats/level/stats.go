// Package level computes peak, RMS and clipping statistics of PCM signals.
package level

import (
	"math"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
)

// clipLevel is the normalized magnitude of the largest positive PCM16 sample.
const clipLevel = float64(core.PCM16Max) / core.PCM16Scale

// Stats holds level statistics of one channel. Amplitudes are normalized
// to full scale 1.0.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMSDB         float64
	Peak          float64 // max |x|
	PeakDB        float64
	CrestFactor   float64 // peak / RMS (linear)
	CrestFactorDB float64
	ZeroCrossings int
	Clipped       int // samples at or beyond full scale
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMSDB:         math.Inf(-1),
			PeakDB:        math.Inf(-1),
			CrestFactorDB: math.Inf(-1),
		}
	}

	var (
		sum           float64
		sumSq         float64
		peak          float64
		zeroCrossings int
		clipped       int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		a := math.Abs(x)
		if a > peak {
			peak = a
		}

		if a >= clipLevel {
			clipped++
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)

	var crest, crestdB float64
	if rms != 0 {
		crest = peak / rms
		crestdB = core.LinearToDB(crest)
	}

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		RMSDB:         core.LinearToDB(rms),
		Peak:          peak,
		PeakDB:        core.LinearToDB(peak),
		CrestFactor:   crest,
		CrestFactorDB: crestdB,
		ZeroCrossings: zeroCrossings,
		Clipped:       clipped,
	}
}

// ForSignal returns the statistics of every channel of sig, or nil for an
// invalid signal.
func ForSignal(sig *buffer.Signal) []Stats {
	if sig.Validate() != nil {
		return nil
	}

	chans := sig.Split()

	out := make([]Stats, len(chans))
	for ch, data := range chans {
		out[ch] = Calculate(data)
	}

	return out
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		a := math.Abs(x)
		if a > peak {
			peak = a
		}
	}

	return peak
}

// CrestFactor returns the crest factor (peak / RMS) of the signal.
// Returns 0 if RMS is zero.
func CrestFactor(signal []float64) float64 {
	r := RMS(signal)
	if r == 0 {
		return 0
	}

	return Peak(signal) / r
}
