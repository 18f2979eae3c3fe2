package effects

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
)

var (
	// ErrInvalidInput is returned for malformed signals and rejected parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNumericOverflow is returned when a processed sample cannot be
	// quantized back to 16-bit PCM.
	ErrNumericOverflow = core.ErrNumericOverflow
)

// ParamError describes a parameter outside its accepted range.
type ParamError struct {
	Effect string
	Param  string
	Value  float64
	Min    float64
	Max    float64
}

func (e *ParamError) Error() string {
	if math.IsInf(e.Max, 1) {
		return fmt.Sprintf("%s: %s must be finite and >= %g: %v", e.Effect, e.Param, e.Min, e.Value)
	}

	return fmt.Sprintf("%s: %s must be finite and in [%g, %g]: %v", e.Effect, e.Param, e.Min, e.Max, e.Value)
}

// Unwrap makes ParamError match ErrInvalidInput.
func (e *ParamError) Unwrap() error {
	return ErrInvalidInput
}

func checkRange(effect, param string, v, min, max float64) error {
	if !core.InRange(v, min, max) {
		return &ParamError{Effect: effect, Param: param, Value: v, Min: min, Max: max}
	}

	return nil
}

func checkSignal(effect string, sig *buffer.Signal) error {
	err := sig.Validate()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", effect, ErrInvalidInput, err)
	}

	return nil
}
