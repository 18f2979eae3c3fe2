// Package core holds the numeric primitives shared by the effect kernels:
// clamping, dB conversion and the 16-bit PCM quantizer.
package core
