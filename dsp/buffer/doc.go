// Package buffer defines Signal, the in-memory 16-bit PCM buffer passed
// between the file collaborators and the effect kernels, plus a scratch
// pool for the float64 working memory the kernels need.
//
// Samples are stored interleaved. Kernels read per-channel normalized
// copies via Split and build their result with Like, so the input Signal
// is never written to.
package buffer
