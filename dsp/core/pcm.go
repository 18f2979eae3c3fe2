package core

import (
	"errors"
	"fmt"
	"math"
)

const (
	// PCM16Scale maps signed 16-bit samples to [-1, 1).
	PCM16Scale = 32768.0

	PCM16Min = math.MinInt16
	PCM16Max = math.MaxInt16
)

// ErrNumericOverflow is returned when a processed value cannot be
// represented as a 16-bit PCM sample.
var ErrNumericOverflow = errors.New("numeric overflow")

// PCM16ToFloat converts one PCM sample to the normalized float domain.
func PCM16ToFloat(s int16) float64 {
	return float64(s) / PCM16Scale
}

// FloatToPCM16 rounds a normalized sample to the nearest PCM value and
// saturates at the 16-bit limits. Non-finite input yields ErrNumericOverflow.
func FloatToPCM16(x float64) (int16, error) {
	if !IsFinite(x) {
		return 0, fmt.Errorf("%w: sample %v", ErrNumericOverflow, x)
	}

	return saturate(math.Round(x * PCM16Scale)), nil
}

// DecodePCM16 writes normalized copies of src into dst.
// dst must be at least as long as src.
func DecodePCM16(dst []float64, src []int16) {
	for i, s := range src {
		dst[i] = float64(s) / PCM16Scale
	}
}

// EncodePCM16 quantizes normalized samples from src into dst.
// It stops at the first non-finite value and reports its index.
func EncodePCM16(dst []int16, src []float64) error {
	for i, x := range src {
		s, err := FloatToPCM16(x)
		if err != nil {
			return fmt.Errorf("index %d: %w", i, err)
		}

		dst[i] = s
	}

	return nil
}

func saturate(v float64) int16 {
	if v > PCM16Max {
		return PCM16Max
	}

	if v < PCM16Min {
		return PCM16Min
	}

	return int16(v)
}
