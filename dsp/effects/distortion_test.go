package effects

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/buffer"
	"github.com/cwbudde/algo-fx/internal/testutil"
)

// halfScaleDB is the threshold whose linear value is 0.5.
var halfScaleDB = 20 * math.Log10(0.5)

func mustSignal(t *testing.T, samples []int16, sampleRate, channels int) *buffer.Signal {
	t.Helper()

	sig, err := buffer.New(samples, sampleRate, channels)
	if err != nil {
		t.Fatalf("buffer.New() error = %v", err)
	}

	return sig
}

func TestDistortionValidation(t *testing.T) {
	sig := mustSignal(t, []int16{0, 1000, -1000}, 44100, 1)

	cases := []struct {
		name  string
		p     DistortionParams
		param string
	}{
		{name: "threshold high", p: DistortionParams{ThresholdDB: 51, Level: 50}, param: "threshold_db"},
		{name: "threshold low", p: DistortionParams{ThresholdDB: -50.5, Level: 50}, param: "threshold_db"},
		{name: "threshold nan", p: DistortionParams{ThresholdDB: math.NaN(), Level: 50}, param: "threshold_db"},
		{name: "level negative", p: DistortionParams{Level: -1}, param: "level"},
		{name: "level high", p: DistortionParams{Level: 101}, param: "level"},
		{name: "gain inf", p: DistortionParams{Level: 50, GainDB: math.Inf(1)}, param: "gain_db"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ApplyDistortion(sig, tc.p)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want ErrInvalidInput", err)
			}

			var pe *ParamError
			if !errors.As(err, &pe) || pe.Param != tc.param {
				t.Fatalf("error = %v, want ParamError for %s", err, tc.param)
			}
		})
	}

	if _, err := ApplyDistortion(sig, DistortionParams{Level: 50, Mode: DistortionMode(9)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("invalid mode error = %v", err)
	}

	if _, err := ApplyDistortion(&buffer.Signal{SampleRate: 44100, Channels: 1}, DefaultDistortionParams()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty signal error = %v", err)
	}
}

func TestDistortionNoOp(t *testing.T) {
	samples := testutil.NoisePCM(7, 1, 4096)
	samples = append(samples, -32768, 32767, 0, 1, -1)
	sig := mustSignal(t, samples, 44100, 1)

	out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: 50, Level: 0, GainDB: 0})
	if err != nil {
		t.Fatalf("ApplyDistortion() error = %v", err)
	}

	testutil.RequirePCMNearlyEqual(t, out.Samples, samples, 0)
}

func TestDistortionPreservesLayoutAndInput(t *testing.T) {
	samples := testutil.NoisePCM(3, 0.9, 2000)
	orig := append([]int16(nil), samples...)
	sig := mustSignal(t, samples, 22050, 2)

	out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: -12, Level: 80, GainDB: 6})
	if err != nil {
		t.Fatalf("ApplyDistortion() error = %v", err)
	}

	if !buffer.SameLayout(sig, out) {
		t.Fatalf("layout changed: in=%d/%d/%d out=%d/%d/%d",
			len(sig.Samples), sig.SampleRate, sig.Channels, len(out.Samples), out.SampleRate, out.Channels)
	}

	testutil.RequirePCMNearlyEqual(t, sig.Samples, orig, 0)
}

func TestDistortionBoundedAcrossParameterGrid(t *testing.T) {
	sig := mustSignal(t, testutil.NoisePCM(11, 1, 1024), 44100, 1)

	for _, th := range []float64{-50, -20, 0, 50} {
		for _, lvl := range []float64{0, 50, 100} {
			for _, g := range []float64{-50, 0, 50} {
				for _, mode := range []DistortionMode{DistortionSoftClip, DistortionHardClip} {
					out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: th, Level: lvl, GainDB: g, Mode: mode})
					if err != nil {
						t.Fatalf("th=%v lvl=%v g=%v mode=%v: %v", th, lvl, g, mode, err)
					}

					if len(out.Samples) != len(sig.Samples) {
						t.Fatalf("length changed: %d", len(out.Samples))
					}
				}
			}
		}
	}
}

func TestDistortionGainSaturates(t *testing.T) {
	sig := mustSignal(t, []int16{20000, -20000, 0}, 44100, 1)

	out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: 50, Level: 0, GainDB: 50})
	if err != nil {
		t.Fatal(err)
	}

	want := []int16{32767, -32768, 0}
	testutil.RequirePCMNearlyEqual(t, out.Samples, want, 0)
}

func TestSoftClipCurve(t *testing.T) {
	want := 0.5 + 0.5*(1-math.Exp(-0.5*0.4))

	if got := SoftClip(0.9, 0.5, 0.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("SoftClip(0.9) = %v, want %v", got, want)
	}

	if got := SoftClip(-0.9, 0.5, 0.5); math.Abs(got+want) > 1e-12 {
		t.Fatalf("SoftClip(-0.9) = %v, want %v", got, -want)
	}

	if got := SoftClip(0.3, 0.5, 0.5); got != 0.3 {
		t.Fatalf("SoftClip below threshold = %v, want 0.3", got)
	}

	if got := SoftClip(0.5, 0.5, 1); got != 0.5 {
		t.Fatalf("SoftClip at threshold = %v, want 0.5", got)
	}

	// The curve approaches full scale and, once the exponential underflows,
	// reaches it. It never goes past it.
	for _, x := range []float64{1, 10, 1000, math.MaxFloat64} {
		if got := SoftClip(x, 0.2, 1); got > 1 || got <= 0.2 {
			t.Fatalf("SoftClip(%v) = %v out of (0.2, 1]", x, got)
		}
	}

	if got := SoftClip(1000, 0.2, 1); got != 1 {
		t.Fatalf("SoftClip(1000) = %v, want 1", got)
	}

	for _, level := range []float64{0.01, 0.5, 1, 10, 100} {
		prev := 0.2
		for x := 0.2; x <= 50; x += 0.05 {
			got := SoftClip(x, 0.2, level)
			if got > 1 || got < prev {
				t.Fatalf("SoftClip(%v, level=%v) = %v after %v", x, level, got, prev)
			}
			prev = got
		}
	}
}

func TestDistortionLevelZeroPinsToThreshold(t *testing.T) {
	sig := mustSignal(t, []int16{30000, -30000, 20000, 1000, -1000}, 44100, 1)

	out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: halfScaleDB, Level: 0, GainDB: 0})
	if err != nil {
		t.Fatal(err)
	}

	want := []int16{16384, -16384, 16384, 1000, -1000}
	testutil.RequirePCMNearlyEqual(t, out.Samples, want, 0)
}

func TestDistortionHardClipMode(t *testing.T) {
	sig := mustSignal(t, []int16{8192, 24576, -29491}, 44100, 1)

	out, err := ApplyDistortion(sig, DistortionParams{ThresholdDB: halfScaleDB, Mode: DistortionHardClip})
	if err != nil {
		t.Fatal(err)
	}

	want := []int16{16384, 32767, -32768}
	testutil.RequirePCMNearlyEqual(t, out.Samples, want, 1)
}

func TestParseDistortionMode(t *testing.T) {
	for s, want := range map[string]DistortionMode{"": DistortionSoftClip, "soft": DistortionSoftClip, "hard": DistortionHardClip} {
		got, err := ParseDistortionMode(s)
		if err != nil || got != want {
			t.Fatalf("ParseDistortionMode(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParseDistortionMode("fuzz"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown mode error = %v", err)
	}

	if DistortionHardClip.String() != "hard" || DistortionMode(5).String() != "DistortionMode(5)" {
		t.Fatal("unexpected mode names")
	}
}
