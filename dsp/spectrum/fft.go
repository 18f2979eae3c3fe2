package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptyInput is returned when a transform is requested for zero samples.
var ErrEmptyInput = errors.New("spectrum: empty input")

// Transform performs forward and inverse N-point DFTs of real signals of
// one length. Bin k sits at k*sampleRate/N; lengths that are not powers of
// two are handled by the FFT plan itself.
type Transform struct {
	length int
	plan   *algofft.Plan[complex128]

	timeBuf []complex128
}

// NewTransform creates a transform for signals of length n.
func NewTransform(n int) (*Transform, error) {
	if n <= 0 {
		return nil, ErrEmptyInput
	}

	t := &Transform{
		length:  n,
		timeBuf: make([]complex128, n),
	}

	// The one-point DFT is the identity.
	if n == 1 {
		return t, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	t.plan = plan

	return t, nil
}

// Len returns the real signal length the transform was built for.
func (t *Transform) Len() int {
	return t.length
}

// Size returns the number of bins, which equals Len().
func (t *Transform) Size() int {
	return t.length
}

// Forward returns the full complex spectrum of x. len(x) must equal Len().
func (t *Transform) Forward(x []float64) ([]complex128, error) {
	if len(x) != t.length {
		return nil, fmt.Errorf("spectrum: forward input length %d, want %d", len(x), t.length)
	}

	for i, v := range x {
		t.timeBuf[i] = complex(v, 0)
	}

	bins := make([]complex128, t.length)

	if t.plan == nil {
		copy(bins, t.timeBuf)
		return bins, nil
	}

	err := t.plan.Forward(bins, t.timeBuf)
	if err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return bins, nil
}

// Inverse reconstructs Len() real samples from a full spectrum. The
// imaginary residue of the inverse transform is discarded.
func (t *Transform) Inverse(bins []complex128) ([]float64, error) {
	if len(bins) != t.length {
		return nil, fmt.Errorf("spectrum: inverse input length %d, want %d", len(bins), t.length)
	}

	if t.plan == nil {
		copy(t.timeBuf, bins)
	} else if err := t.plan.Inverse(t.timeBuf, bins); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, t.length)
	for i := range out {
		out[i] = real(t.timeBuf[i])
	}

	return out, nil
}
