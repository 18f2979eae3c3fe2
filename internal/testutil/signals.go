// Package testutil holds deterministic fixtures and tolerance assertions
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SinePCM generates a sine wave quantized to 16-bit PCM. amplitude is
// relative to full scale.
func SinePCM(freqHz, sampleRate, amplitude float64, length int) []int16 {
	return Quantize(DeterministicSine(freqHz, sampleRate, amplitude, length))
}

// NoisePCM generates seeded white noise quantized to 16-bit PCM.
func NoisePCM(seed int64, amplitude float64, length int) []int16 {
	return Quantize(DeterministicNoise(seed, amplitude, length))
}

// Quantize rounds normalized samples to saturated 16-bit PCM.
func Quantize(x []float64) []int16 {
	out := make([]int16, len(x))
	for i, v := range x {
		s := math.Round(v * 32768)
		s = math.Max(-32768, math.Min(32767, s))
		out[i] = int16(s)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
