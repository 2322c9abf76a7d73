package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// WriteWAV encodes planar channels as PCM with the given bit depth (16 or
// 24). Samples are clamped to [-1, 1].
func WriteWAV(w io.WriteSeeker, channels [][]float64, sampleRate, bitDepth int) error {
	if len(channels) == 0 {
		return errors.New("engine: no channels to write")
	}
	if bitDepth != 16 && bitDepth != 24 {
		return fmt.Errorf("engine: unsupported bit depth %d", bitDepth)
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return errors.New("engine: channel lengths differ")
		}
	}

	interleaved := make([]float32, frames*len(channels))
	for i := 0; i < frames; i++ {
		for c, ch := range channels {
			interleaved[i*len(channels)+c] = float32(core.Clamp(ch[i], -1, 1))
		}
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, len(channels), 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: len(channels),
		},
		Data:           interleaved,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// ReadWAV decodes a PCM file into planar channels scaled to [-1, 1] and
// returns them with the file's sample rate.
func ReadWAV(r io.ReadSeeker) ([][]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("engine: invalid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, errors.New("engine: wav file has no channels")
	}

	scale := 32768.0
	if buf.SourceBitDepth > 1 {
		scale = float64(int(1) << (buf.SourceBitDepth - 1))
	}
	nch := buf.Format.NumChannels
	channels := make([][]float64, nch)
	frames := len(buf.Data) / nch
	for c := range channels {
		channels[c] = make([]float64, frames)
	}
	for i := 0; i < frames*nch; i++ {
		channels[i%nch][i/nch] = float64(buf.Data[i]) / scale
	}
	return channels, buf.Format.SampleRate, nil
}
