package buffer

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// ErrInvalidSignal reports a malformed Signal.
var ErrInvalidSignal = errors.New("invalid signal")

// Signal is an interleaved 16-bit PCM buffer.
type Signal struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// New wraps samples without copying and validates the layout.
func New(samples []int16, sampleRate, channels int) (*Signal, error) {
	s := &Signal{Samples: samples, SampleRate: sampleRate, Channels: channels}

	err := s.Validate()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Silence returns a zero-valued signal with the given frame count.
func Silence(frames, sampleRate, channels int) (*Signal, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("%w: frame count must be > 0: %d", ErrInvalidSignal, frames)
	}

	return New(make([]int16, frames*channels), sampleRate, channels)
}

// Validate checks that the signal is non-empty, has a positive sample rate,
// is mono or stereo and holds whole frames.
func (s *Signal) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil signal", ErrInvalidSignal)
	}

	if len(s.Samples) == 0 {
		return fmt.Errorf("%w: empty sample buffer", ErrInvalidSignal)
	}

	if s.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %d", ErrInvalidSignal, s.SampleRate)
	}

	if s.Channels != 1 && s.Channels != 2 {
		return fmt.Errorf("%w: channel count must be 1 or 2: %d", ErrInvalidSignal, s.Channels)
	}

	if len(s.Samples)%s.Channels != 0 {
		return fmt.Errorf("%w: %d samples do not form whole %d-channel frames",
			ErrInvalidSignal, len(s.Samples), s.Channels)
	}

	return nil
}

// Frames returns the number of sample frames.
func (s *Signal) Frames() int {
	if s.Channels <= 0 {
		return 0
	}

	return len(s.Samples) / s.Channels
}

// Duration returns the playback length.
func (s *Signal) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}

	return time.Duration(s.Frames()) * time.Second / time.Duration(s.SampleRate)
}

// Copy returns a deep copy of the signal.
func (s *Signal) Copy() *Signal {
	samples := make([]int16, len(s.Samples))
	copy(samples, s.Samples)

	return &Signal{Samples: samples, SampleRate: s.SampleRate, Channels: s.Channels}
}

// Channel returns a normalized copy of one channel in [-1, 1).
// It returns nil for an out-of-range channel index.
func (s *Signal) Channel(ch int) []float64 {
	if ch < 0 || ch >= s.Channels {
		return nil
	}

	frames := s.Frames()
	out := make([]float64, frames)

	for i := range frames {
		out[i] = core.PCM16ToFloat(s.Samples[i*s.Channels+ch])
	}

	return out
}

// Split returns normalized copies of every channel.
func (s *Signal) Split() [][]float64 {
	if s.Channels == 1 {
		out := make([]float64, len(s.Samples))
		core.DecodePCM16(out, s.Samples)

		return [][]float64{out}
	}

	chans := make([][]float64, s.Channels)
	for ch := range chans {
		chans[ch] = s.Channel(ch)
	}

	return chans
}

// Like quantizes normalized channel data into a new Signal with the same
// sample rate and layout as s. Every channel must have s.Frames() samples.
func (s *Signal) Like(chans [][]float64) (*Signal, error) {
	if len(chans) != s.Channels {
		return nil, fmt.Errorf("%w: got %d channels, want %d", ErrInvalidSignal, len(chans), s.Channels)
	}

	frames := s.Frames()
	for ch, data := range chans {
		if len(data) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d frames, want %d",
				ErrInvalidSignal, ch, len(data), frames)
		}
	}

	out := &Signal{
		Samples:    make([]int16, len(s.Samples)),
		SampleRate: s.SampleRate,
		Channels:   s.Channels,
	}

	if s.Channels == 1 {
		err := core.EncodePCM16(out.Samples, chans[0])
		if err != nil {
			return nil, err
		}

		return out, nil
	}

	for ch, data := range chans {
		for i, x := range data {
			v, err := core.FloatToPCM16(x)
			if err != nil {
				return nil, fmt.Errorf("channel %d index %d: %w", ch, i, err)
			}

			out.Samples[i*s.Channels+ch] = v
		}
	}

	return out, nil
}

// MixToMono averages the channels of a stereo signal. Mono input is copied.
func (s *Signal) MixToMono() *Signal {
	if s.Channels <= 1 {
		return s.Copy()
	}

	frames := s.Frames()
	mono := make([]int16, frames)

	for i := range frames {
		sum := 0
		for ch := range s.Channels {
			sum += int(s.Samples[i*s.Channels+ch])
		}
		mono[i] = int16(sum / s.Channels)
	}

	return &Signal{Samples: mono, SampleRate: s.SampleRate, Channels: 1}
}

// SameLayout reports whether a and b have identical length, sample rate
// and channel count.
func SameLayout(a, b *Signal) bool {
	return len(a.Samples) == len(b.Samples) &&
		a.SampleRate == b.SampleRate &&
		a.Channels == b.Channels
}
