package effectchain

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/dsp/effects"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

func TestDefaultChainStages(t *testing.T) {
	t.Parallel()

	got := Default().Stages()
	want := []string{StageDistortion, StageEqualizer, StageReverb}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Stages() = %v, want %v", got, want)
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("default chain invalid: %v", err)
	}
}

func TestChainSkip(t *testing.T) {
	t.Parallel()

	c := Default()
	if err := c.Skip(StageEqualizer); err != nil {
		t.Fatal(err)
	}

	if got := c.Stages(); !reflect.DeepEqual(got, []string{StageDistortion, StageReverb}) {
		t.Fatalf("Stages() after skip = %v", got)
	}

	err := c.Skip("flanger")
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("Skip(flanger) error = %v, want ErrUnknownStage", err)
	}
}

func TestChainSilenceThroughDefaults(t *testing.T) {
	t.Parallel()

	sig, err := buffer.Silence(44100, 44100, 1)
	if err != nil {
		t.Fatal(err)
	}

	c := Chain{
		Distortion: &effects.DistortionParams{ThresholdDB: 0, Level: 50, GainDB: 0},
		Equalizer:  &effects.EqualizerParams{Treble: 1, Mid: 1, Bass: 1},
		Reverb:     &effects.ReverbParams{DelayMS: 50, Decay: 0.5, Wetness: 0.5},
	}

	out, err := c.Process(sig)
	if err != nil {
		t.Fatal(err)
	}

	if out.Frames() != 44100 || out.SampleRate != 44100 || out.Channels != 1 {
		t.Fatalf("layout changed: %d frames @ %d Hz x%d", out.Frames(), out.SampleRate, out.Channels)
	}

	testutil.RequireSilent(t, out.Samples)
}

func TestChainMatchesSequentialApplication(t *testing.T) {
	t.Parallel()

	samples := testutil.SinePCM(440, 8000, 0.8, 4000)
	sig, err := buffer.New(samples, 8000, 1)
	if err != nil {
		t.Fatal(err)
	}

	c := Default()
	c.Distortion.ThresholdDB = -6
	c.Equalizer.Bass = 1.2

	got, err := c.Process(sig)
	if err != nil {
		t.Fatal(err)
	}

	want, err := effects.ApplyDistortion(sig, *c.Distortion)
	if err != nil {
		t.Fatal(err)
	}

	want, err = effects.Equalize(want, *c.Equalizer)
	if err != nil {
		t.Fatal(err)
	}

	want, err = effects.AddReverb(want, *c.Reverb)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequirePCMNearlyEqual(t, got.Samples, want.Samples, 0)
	testutil.RequirePCMNearlyEqual(t, sig.Samples, samples, 0)
}

func TestChainAllBypassedCopies(t *testing.T) {
	t.Parallel()

	sig, err := buffer.New([]int16{1, -2, 3, -4}, 44100, 2)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Chain{}.Process(sig)
	if err != nil {
		t.Fatal(err)
	}

	if out == sig || &out.Samples[0] == &sig.Samples[0] {
		t.Fatal("bypassed chain must return a copy")
	}

	if !reflect.DeepEqual(out.Samples, sig.Samples) {
		t.Fatalf("samples = %v, want %v", out.Samples, sig.Samples)
	}
}

func TestChainErrors(t *testing.T) {
	t.Parallel()

	sig, err := buffer.New([]int16{1, 2, 3}, 44100, 1)
	if err != nil {
		t.Fatal(err)
	}

	c := Default()
	c.Reverb.Wetness = 3

	_, err = c.Process(sig)
	if !errors.Is(err, effects.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}

	if !strings.Contains(err.Error(), "reverb") {
		t.Fatalf("error %q should name the failing stage", err)
	}

	_, err = Default().Process(&buffer.Signal{SampleRate: 44100, Channels: 1})
	if !errors.Is(err, effects.ErrInvalidInput) {
		t.Fatalf("empty signal error = %v, want ErrInvalidInput", err)
	}
}
