package testutil

import (
	"fmt"
	"os"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"
)

// WriteWAV writes interleaved float samples as 16-bit PCM.
func WriteWAV(path string, interleaved []float32, sampleRate, channels int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           interleaved,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// ReadWAV returns interleaved samples scaled to [-1, 1] with the file's
// sample rate and channel count.
func ReadWAV(path string) ([]float64, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, 0, fmt.Errorf("invalid wav file: %s", path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	scale := 32768.0
	if buf.SourceBitDepth > 1 {
		scale = float64(int(1) << (buf.SourceBitDepth - 1))
	}
	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float64(v) / scale
	}
	return out, buf.Format.SampleRate, buf.Format.NumChannels, nil
}
