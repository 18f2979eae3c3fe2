package effects

import "github.com/cwbudde/algo-fx/dsp/buffer"

// Effect is a stateless whole-buffer transform.
type Effect interface {
	Name() string
	Validate() error
	Apply(sig *buffer.Signal) (*buffer.Signal, error)
}

var (
	_ Effect = DistortionParams{}
	_ Effect = EqualizerParams{}
	_ Effect = ReverbParams{}
)
