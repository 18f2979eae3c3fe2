// Package effectchain composes the offline effects into a fixed
// Distortion, Equalizer, Reverb chain with per-stage bypass and JSON presets.
package effectchain
