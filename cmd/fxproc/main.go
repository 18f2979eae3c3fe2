// Command fxproc applies the distortion, equalizer and reverb effects to
// 16-bit PCM WAV files.
//
// Usage:
//
//	fxproc apply -i in.wav -o out.wav [effect flags]
//	fxproc info file.wav
//	fxproc tone -o tone.wav --freq 440 --seconds 1
//
// Examples:
//
//	fxproc apply -i guitar.wav -o crunch.wav --threshold-db -12 --level 80
//	fxproc apply -i vocals.wav -o wet.wav --preset room.json --skip distortion
//	fxproc tone -o noise.wav --noise --amplitude 0.25
package main

import "os"

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
