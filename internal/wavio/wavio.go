// Package wavio reads and writes 16-bit PCM WAV files as buffer.Signal
// values. MP3 files are readable but not writable.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-fx/dsp/buffer"
)

const (
	pcmFormat = 1
	bitDepth  = 16
)

// ErrUnsupportedFormat is returned for input that is neither mono or
// stereo 16-bit PCM WAV nor decodable MP3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Info describes a WAV file without its sample data.
type Info struct {
	Duration   time.Duration
	Channels   int
	BitDepth   int
	SampleRate int
	Frames     int
}

// Read decodes a 16-bit PCM WAV stream.
func Read(r io.ReadSeeker) (*buffer.Signal, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrUnsupportedFormat)
	}

	if d.WavAudioFormat != pcmFormat {
		return nil, fmt.Errorf("%w: audio format %d, want PCM", ErrUnsupportedFormat, d.WavAudioFormat)
	}

	if d.BitDepth != bitDepth {
		return nil, fmt.Errorf("%w: %d-bit samples, want 16-bit", ErrUnsupportedFormat, d.BitDepth)
	}

	if d.NumChans != 1 && d.NumChans != 2 {
		return nil, fmt.Errorf("%w: %d channels, want mono or stereo", ErrUnsupportedFormat, d.NumChans)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	sig, err := buffer.New(samples, int(d.SampleRate), int(d.NumChans))
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Read",
		"sample_rate": sig.SampleRate,
		"channels":    sig.Channels,
		"frames":      sig.Frames(),
	}).Debug("Decoded wav stream")

	return sig, nil
}

// ReadFile decodes the WAV or, for a .mp3 extension, MP3 file at path.
func ReadFile(path string) (*buffer.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sig *buffer.Signal
	if isMP3(path) {
		sig, err = ReadMP3(f)
	} else {
		sig, err = Read(f)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sig, nil
}

// Write encodes sig as 16-bit PCM WAV.
func Write(w io.WriteSeeker, sig *buffer.Signal) error {
	if err := sig.Validate(); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	data := make([]int, len(sig.Samples))
	for i, v := range sig.Samples {
		data[i] = int(v)
	}

	enc := wav.NewEncoder(w, sig.SampleRate, bitDepth, sig.Channels, pcmFormat)

	err := enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: sig.Channels,
			SampleRate:  sig.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "Write",
		"sample_rate": sig.SampleRate,
		"channels":    sig.Channels,
		"frames":      sig.Frames(),
	}).Debug("Encoded wav stream")

	return nil
}

// WriteFile creates or truncates path and writes sig to it.
func WriteFile(path string, sig *buffer.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	werr := Write(f, sig)
	cerr := f.Close()

	if werr != nil {
		return fmt.Errorf("%s: %w", path, werr)
	}

	return cerr
}

// Stat reports the layout and length of any PCM WAV file, including bit
// depths Read does not accept. MP3 files are fully decoded to measure them.
func Stat(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	if isMP3(path) {
		return statMP3(path, f)
	}

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Info{}, fmt.Errorf("%s: %w: not a RIFF/WAVE file", path, ErrUnsupportedFormat)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return Info{}, fmt.Errorf("%s: decode wav: %w", path, err)
	}

	info := Info{
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
		SampleRate: int(d.SampleRate),
	}

	if info.Channels > 0 {
		info.Frames = len(buf.Data) / info.Channels
	}

	if info.SampleRate > 0 {
		info.Duration = time.Duration(info.Frames) * time.Second / time.Duration(info.SampleRate)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Stat",
		"path":     path,
		"frames":   info.Frames,
	}).Debug("Read wav header")

	return info, nil
}
