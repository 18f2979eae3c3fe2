package wavio

import (
	"encoding/binary"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fx/dsp/buffer"
)

const (
	// go-mp3 always decodes to interleaved 16-bit little-endian stereo.
	mp3Channels   = 2
	mp3FrameBytes = mp3Channels * 2
)

// isMP3 reports whether path names an MP3 file by extension.
func isMP3(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".mp3")
}

// ReadMP3 decodes an MP3 stream into a stereo signal at the stream's
// sample rate. Mono streams come back with both channels equal.
func ReadMP3(r io.Reader) (*buffer.Signal, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: mp3: %v", ErrUnsupportedFormat, err)
	}

	raw, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	sig, err := buffer.New(decodeS16LE(raw), d.SampleRate(), mp3Channels)
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "ReadMP3",
		"sample_rate": sig.SampleRate,
		"frames":      sig.Frames(),
	}).Debug("Decoded mp3 stream")

	return sig, nil
}

// decodeS16LE converts little-endian 16-bit stereo bytes to samples. A
// trailing partial frame is dropped.
func decodeS16LE(raw []byte) []int16 {
	n := len(raw) / mp3FrameBytes * mp3Channels

	samples := make([]int16, n)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}

	return samples
}

func statMP3(path string, r io.Reader) (Info, error) {
	sig, err := ReadMP3(r)
	if err != nil {
		return Info{}, fmt.Errorf("%s: %w", path, err)
	}

	return Info{
		Duration:   sig.Duration(),
		Channels:   sig.Channels,
		BitDepth:   bitDepth,
		SampleRate: sig.SampleRate,
		Frames:     sig.Frames(),
	}, nil
}
