package effectchain

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-fx/dsp/effects"
)

func TestParsePreset(t *testing.T) {
	t.Parallel()

	raw := []byte(`{
		"distortion": {"threshold_db": -6, "level": 20, "gain_db": 3, "mode": "hard"},
		"equalizer":  {"bass": 1.5},
		"reverb":     {"delay_ms": 80, "bypassed": true}
	}`)

	c, err := ParsePreset(raw)
	if err != nil {
		t.Fatalf("ParsePreset() error = %v", err)
	}

	wantDist := effects.DistortionParams{ThresholdDB: -6, Level: 20, GainDB: 3, Mode: effects.DistortionHardClip}
	if c.Distortion == nil || *c.Distortion != wantDist {
		t.Fatalf("distortion = %+v, want %+v", c.Distortion, wantDist)
	}

	wantEQ := effects.EqualizerParams{Treble: 1, Mid: 1, Bass: 1.5}
	if c.Equalizer == nil || *c.Equalizer != wantEQ {
		t.Fatalf("equalizer = %+v, want %+v", c.Equalizer, wantEQ)
	}

	if c.Reverb != nil {
		t.Fatalf("reverb should be bypassed, got %+v", c.Reverb)
	}

	if got := c.Stages(); !reflect.DeepEqual(got, []string{StageDistortion, StageEqualizer}) {
		t.Fatalf("Stages() = %v", got)
	}
}

func TestParsePresetDefaults(t *testing.T) {
	t.Parallel()

	c, err := ParsePreset([]byte(`{"distortion": {}, "equalizer": {}, "reverb": {}}`))
	if err != nil {
		t.Fatal(err)
	}

	def := Default()
	if *c.Distortion != *def.Distortion || *c.Equalizer != *def.Equalizer || *c.Reverb != *def.Reverb {
		t.Fatalf("empty stage objects should take defaults: %+v", c)
	}

	empty, err := ParsePreset([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}

	if len(empty.Stages()) != 0 {
		t.Fatalf("empty preset stages = %v", empty.Stages())
	}
}

func TestParsePresetErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "not json", raw: `{`, want: ErrInvalidPreset},
		{name: "array document", raw: `[]`, want: ErrInvalidPreset},
		{name: "stage not object", raw: `{"reverb": 5}`, want: ErrInvalidPreset},
		{name: "null stage", raw: `{"reverb": null}`, want: ErrInvalidPreset},
		{name: "unknown stage", raw: `{"chorus": {}}`, want: ErrUnknownStage},
		{name: "unknown mode", raw: `{"distortion": {"mode": "fuzz"}}`, want: effects.ErrInvalidInput},
		{name: "out of range", raw: `{"reverb": {"wetness": 4}}`, want: effects.ErrInvalidInput},
		{name: "negative gain", raw: `{"equalizer": {"mid": -1}}`, want: effects.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParsePreset([]byte(tt.raw))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParsePreset(%s) error = %v, want %v", tt.raw, err, tt.want)
			}
		})
	}
}
