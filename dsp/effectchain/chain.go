package effectchain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/effects"
)

// Stage names, in processing order.
const (
	StageDistortion = "distortion"
	StageEqualizer  = "equalizer"
	StageReverb     = "reverb"
)

// ErrUnknownStage is returned when a preset or skip list names a stage the
// chain does not have.
var ErrUnknownStage = errors.New("unknown stage")

// Chain runs Distortion, Equalizer and Reverb in that fixed order. A nil
// stage is bypassed.
type Chain struct {
	Distortion *effects.DistortionParams
	Equalizer  *effects.EqualizerParams
	Reverb     *effects.ReverbParams
}

// Default returns a chain with every stage enabled at its default settings.
func Default() Chain {
	d := effects.DefaultDistortionParams()
	eq := effects.FlatEqualizerParams()
	r := effects.DefaultReverbParams()

	return Chain{Distortion: &d, Equalizer: &eq, Reverb: &r}
}

// Stages lists the enabled stage names in processing order.
func (c Chain) Stages() []string {
	pipeline := c.pipeline()

	names := make([]string, len(pipeline))
	for i, fx := range pipeline {
		names[i] = fx.Name()
	}

	return names
}

// Skip bypasses the named stages.
func (c *Chain) Skip(names ...string) error {
	for _, name := range names {
		switch name {
		case StageDistortion:
			c.Distortion = nil
		case StageEqualizer:
			c.Equalizer = nil
		case StageReverb:
			c.Reverb = nil
		default:
			return fmt.Errorf("effectchain: %w: %q", ErrUnknownStage, name)
		}
	}

	return nil
}

// Validate checks the parameters of every enabled stage.
func (c Chain) Validate() error {
	for _, fx := range c.pipeline() {
		if err := fx.Validate(); err != nil {
			return fmt.Errorf("effectchain: %s: %w", fx.Name(), err)
		}
	}

	return nil
}

// Process runs the enabled stages over sig and returns a new signal. All
// stage parameters are checked before any audio is processed. With every
// stage bypassed the result is a copy of sig.
func (c Chain) Process(sig *buffer.Signal) (*buffer.Signal, error) {
	if err := sig.Validate(); err != nil {
		return nil, fmt.Errorf("effectchain: %w: %w", effects.ErrInvalidInput, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := sig.Copy()

	for _, fx := range c.pipeline() {
		next, err := fx.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("effectchain: %s: %w", fx.Name(), err)
		}

		out = next
	}

	return out, nil
}

func (c Chain) pipeline() []effects.Effect {
	pipeline := make([]effects.Effect, 0, 3)

	if c.Distortion != nil {
		pipeline = append(pipeline, *c.Distortion)
	}

	if c.Equalizer != nil {
		pipeline = append(pipeline, *c.Equalizer)
	}

	if c.Reverb != nil {
		pipeline = append(pipeline, *c.Reverb)
	}

	return pipeline
}
