package effects

import (
	"math"
	"testing"
)

func TestEqualizerFromSliders(t *testing.T) {
	got := EqualizerFromSliders(150, 100, 50)
	if got != (EqualizerParams{Treble: 1.5, Mid: 1, Bass: 0.5}) {
		t.Fatalf("EqualizerFromSliders() = %+v", got)
	}

	if !EqualizerFromSliders(100, 100, 100).Flat() {
		t.Fatal("100% sliders should be flat")
	}
}

func TestEqualizerFromDB(t *testing.T) {
	got := EqualizerFromDB(0, 20, -20)
	if got.Treble != 1 || math.Abs(got.Mid-10) > 1e-12 || math.Abs(got.Bass-0.1) > 1e-12 {
		t.Fatalf("EqualizerFromDB() = %+v", got)
	}
}

func TestReverbFromDials(t *testing.T) {
	tests := []struct {
		delay, decay, wetness float64
		want                  ReverbParams
	}{
		{delay: 0.5, decay: 0.5, wetness: 0.5, want: ReverbParams{DelayMS: 50, Decay: 0.5, Wetness: 0.5}},
		{delay: 0, decay: 0, wetness: 0, want: ReverbParams{DelayMS: 1, Decay: 0.1, Wetness: 0}},
		{delay: 2, decay: 2, wetness: 2, want: ReverbParams{DelayMS: 100, Decay: 1, Wetness: 1}},
	}

	for _, tc := range tests {
		got := ReverbFromDials(tc.delay, tc.decay, tc.wetness)
		if got != tc.want {
			t.Fatalf("ReverbFromDials(%v, %v, %v) = %+v, want %+v", tc.delay, tc.decay, tc.wetness, got, tc.want)
		}

		if err := got.Validate(); err != nil {
			t.Fatalf("dial params invalid: %v", err)
		}
	}
}
