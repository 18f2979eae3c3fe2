package effectchain

import "math"

// Params holds the parsed parameters for a single chain stage.
type Params struct {
	Stage    string
	Bypassed bool
	Num      map[string]float64
	Str      map[string]string
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetStr extracts a string parameter, returning def if missing.
func (p Params) GetStr(key, def string) string {
	v, ok := p.Str[key]
	if !ok {
		return def
	}

	return v
}

// parseStageParams extracts numeric and string parameters from a raw JSON
// object. The bypassed flag is pulled out; other booleans become 0 or 1.
func parseStageParams(stage string, raw map[string]any) Params {
	p := Params{
		Stage: stage,
		Num:   map[string]float64{},
		Str:   map[string]string{},
	}

	for k, v := range raw {
		switch t := v.(type) {
		case float64:
			p.Num[k] = t
		case string:
			p.Str[k] = t
		case bool:
			if k == "bypassed" {
				p.Bypassed = t
				continue
			}

			if t {
				p.Num[k] = 1
			} else {
				p.Num[k] = 0
			}
		}
	}

	return p
}
