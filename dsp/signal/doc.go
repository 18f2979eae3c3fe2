// Package signal generates deterministic 16-bit PCM tones, noise and
// impulses for tests and the command-line tools.
package signal
