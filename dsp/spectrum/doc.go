// Package spectrum wraps the algo-fft backend for whole-buffer spectral
// processing: exact N-point forward/inverse transforms of real signals, folded
// bin frequencies, the three-band split used by the equalizer and
// SIMD-backed magnitude extraction.
package spectrum
