package effectchain

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/effects"
)

// ErrInvalidPreset is returned for preset documents that cannot be parsed.
var ErrInvalidPreset = errors.New("invalid preset")

// ParsePreset builds a Chain from a JSON document of the form
//
//	{
//	  "distortion": {"threshold_db": -6, "level": 50, "gain_db": 0, "mode": "soft"},
//	  "equalizer":  {"treble": 1, "mid": 1, "bass": 1.5},
//	  "reverb":     {"delay_ms": 50, "decay": 0.5, "wetness": 0.5, "bypassed": true}
//	}
//
// Stages missing from the document or flagged bypassed are disabled.
// Missing parameters take their defaults. The parsed chain is validated.
func ParsePreset(raw []byte) (Chain, error) {
	var doc map[string]json.RawMessage

	err := json.Unmarshal(raw, &doc)
	if err != nil {
		return Chain{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	var c Chain

	for stage, body := range doc {
		var fields map[string]any

		err := json.Unmarshal(body, &fields)
		if err != nil || fields == nil {
			return Chain{}, fmt.Errorf("%w: stage %q must be an object", ErrInvalidPreset, stage)
		}

		p := parseStageParams(stage, fields)

		err = c.configure(p)
		if err != nil {
			return Chain{}, err
		}
	}

	err = c.Validate()
	if err != nil {
		return Chain{}, err
	}

	return c, nil
}

func (c *Chain) configure(p Params) error {
	switch p.Stage {
	case StageDistortion:
		d := effects.DefaultDistortionParams()

		mode, err := effects.ParseDistortionMode(p.GetStr("mode", ""))
		if err != nil {
			return fmt.Errorf("effectchain: %w", err)
		}

		d.ThresholdDB = p.GetNum("threshold_db", d.ThresholdDB)
		d.Level = p.GetNum("level", d.Level)
		d.GainDB = p.GetNum("gain_db", d.GainDB)
		d.Mode = mode

		c.Distortion = enabled(p, d)
	case StageEqualizer:
		eq := effects.FlatEqualizerParams()
		eq.Treble = p.GetNum("treble", eq.Treble)
		eq.Mid = p.GetNum("mid", eq.Mid)
		eq.Bass = p.GetNum("bass", eq.Bass)

		c.Equalizer = enabled(p, eq)
	case StageReverb:
		r := effects.DefaultReverbParams()
		r.DelayMS = p.GetNum("delay_ms", r.DelayMS)
		r.Decay = p.GetNum("decay", r.Decay)
		r.Wetness = p.GetNum("wetness", r.Wetness)

		c.Reverb = enabled(p, r)
	default:
		return fmt.Errorf("effectchain: %w: %q", ErrUnknownStage, p.Stage)
	}

	return nil
}

func enabled[T any](p Params, v T) *T {
	if p.Bypassed {
		return nil
	}

	return &v
}
