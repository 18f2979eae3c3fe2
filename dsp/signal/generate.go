package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/core"
)

// Generator creates deterministic PCM test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Frames converts a duration in seconds to a whole frame count.
func (g *Generator) Frames(seconds float64) int {
	if !core.IsFinite(seconds) || seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * float64(g.cfg.SampleRate)))
}

// Sine generates a sine tone, identical on every channel.
func (g *Generator) Sine(freqHz, amplitude float64, frames int) (*buffer.Signal, error) {
	if err := checkArgs("sine", amplitude, frames); err != nil {
		return nil, err
	}
	if !core.IsFinite(freqHz) || freqHz < 0 {
		return nil, fmt.Errorf("sine frequency must be finite and >= 0: %f", freqHz)
	}

	step := 2 * math.Pi * freqHz / float64(g.cfg.SampleRate)
	return g.render("sine", frames, func(i, _ int) float64 {
		return amplitude * math.Sin(step*float64(i))
	})
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
// Channels receive independent draws from the same seeded source.
func (g *Generator) WhiteNoise(amplitude float64, frames int) (*buffer.Signal, error) {
	if err := checkArgs("noise", amplitude, frames); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(g.seed))
	return g.render("noise", frames, func(_, _ int) float64 {
		return (rng.Float64()*2 - 1) * amplitude
	})
}

// Impulse generates a single impulse of the given amplitude at frame pos.
func (g *Generator) Impulse(amplitude float64, frames, pos int) (*buffer.Signal, error) {
	if err := checkArgs("impulse", amplitude, frames); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= frames {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}

	return g.render("impulse", frames, func(i, _ int) float64 {
		if i == pos {
			return amplitude
		}
		return 0
	})
}

// render fills frames x channels interleaved samples from sample(frame, channel).
func (g *Generator) render(kind string, frames int, sample func(i, ch int) float64) (*buffer.Signal, error) {
	x := make([]float64, frames*g.cfg.Channels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < g.cfg.Channels; ch++ {
			x[i*g.cfg.Channels+ch] = sample(i, ch)
		}
	}

	samples := make([]int16, len(x))
	if err := core.EncodePCM16(samples, x); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return buffer.New(samples, g.cfg.SampleRate, g.cfg.Channels)
}

func checkArgs(kind string, amplitude float64, frames int) error {
	if frames <= 0 {
		return fmt.Errorf("%s frames must be > 0: %d", kind, frames)
	}
	if !core.InRange(amplitude, 0, 1) {
		return fmt.Errorf("%s amplitude must be in [0, 1]: %f", kind, amplitude)
	}
	return nil
}
