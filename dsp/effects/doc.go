// Package effects provides the offline audio effect kernels applied to a
// whole buffer.Signal in one pass:
//   - Distortion: threshold soft-knee (or hard) clipping with output gain.
//   - Equalizer: three-band FFT gain split at 250 Hz and 4 kHz.
//   - Reverb: three-tap decaying echo with wet/dry mix and peak matching.
//
// Kernels are stateless and never modify the input Signal. Parameters are
// validated before any work is done, and the result is a new Signal with
// the input's layout. Failures wrap ErrInvalidInput or ErrNumericOverflow.
//
// Parameters use one canonical convention each (dB for distortion levels,
// linear multipliers for equalizer gains, milliseconds for delay). The
// helpers in controls.go convert the alternative slider and dial
// conventions at the presentation boundary.
package effects
