package spectrum

import "fmt"

const (
	// BassCutoffHz is the lower edge of the mid band.
	BassCutoffHz = 250.0
	// TrebleCutoffHz is the upper edge of the mid band.
	TrebleCutoffHz = 4000.0
)

// Band identifies one of the three equalizer regions.
type Band int

const (
	BandBass Band = iota
	BandMid
	BandTreble
)

// String returns the band name.
func (b Band) String() string {
	switch b {
	case BandBass:
		return "bass"
	case BandMid:
		return "mid"
	case BandTreble:
		return "treble"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Classify maps a frequency to its band. Edges are hard: f < 250 Hz is
// bass, 250 Hz <= f <= 4000 Hz is mid and f > 4000 Hz is treble.
func Classify(freqHz float64) Band {
	switch {
	case freqHz < BassCutoffHz:
		return BandBass
	case freqHz <= TrebleCutoffHz:
		return BandMid
	default:
		return BandTreble
	}
}

// BinFrequency returns the center frequency of bin k of a size-point
// spectrum of a real signal. Bins above size/2 mirror the negative
// frequencies, so k and size-k report the same frequency.
func BinFrequency(k, size int, sampleRate float64) float64 {
	if size <= 0 {
		return 0
	}

	if k > size/2 {
		k = size - k
	}

	return float64(k) * sampleRate / float64(size)
}

// BandEnergy sums |X[k]|^2 per band over the positive half of a full
// spectrum. The result is indexed by Band.
func BandEnergy(bins []complex128, sampleRate float64) [3]float64 {
	var energy [3]float64

	size := len(bins)
	if size == 0 {
		return energy
	}

	pow := Power(bins[:size/2+1])
	for k, p := range pow {
		energy[Classify(BinFrequency(k, size, sampleRate))] += p
	}

	return energy
}

// PeakFrequency returns the frequency of the strongest bin in the positive
// half of a full spectrum, or 0 for an empty one.
func PeakFrequency(bins []complex128, sampleRate float64) float64 {
	size := len(bins)
	if size == 0 {
		return 0
	}

	peak := 0
	mag := Magnitude(bins[:size/2+1])
	for k, m := range mag {
		if m > mag[peak] {
			peak = k
		}
	}

	return BinFrequency(peak, size, sampleRate)
}
