package engine

import (
	"fmt"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Render runs e offline for seconds and returns one buffer per output
// channel. input, if not nil, feeds the engine's input channels and is
// read as silence past its end. The sample rate and block size come from
// opts.
func Render(e Engine, score Score, seconds float64, input [][]float64, opts ...core.ProcessorOption) ([][]float64, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if seconds < 0 {
		return nil, fmt.Errorf("engine: negative render length %v", seconds)
	}
	if err := e.Setup(cfg.SampleRate); err != nil {
		return nil, err
	}
	e.Reset()
	e.Startup()

	nIn, nOut := e.Channels()
	total := int(seconds * cfg.SampleRate)
	block := cfg.BlockSize

	out := make([][]float64, nOut)
	for c := range out {
		out[c] = make([]float64, total)
	}

	inBuf := makeChannels(nIn, block)
	outBuf := makeChannels(nOut, block)
	inView := make([][]float64, nIn)
	outView := make([][]float64, nOut)

	seq := newSequencer(score, cfg.SampleRate)
	q := e.Queue()

	for pos := 0; pos < total; pos += block {
		n := min(block, total-pos)

		for c := range inView {
			inView[c] = inBuf[c][:n]
			core.Zero(inView[c])
			if c < len(input) && pos < len(input[c]) {
				copy(inView[c], input[c][pos:])
			}
		}
		for c := range outView {
			outView[c] = outBuf[c][:n]
		}

		seq.fill(q, int64(pos), n)
		e.SetParameters(score.Tempo)
		e.Process(n, inView, outView)

		for c := range out {
			copy(out[c][pos:pos+n], outView[c])
		}
	}
	return out, nil
}

func makeChannels(channels, frames int) [][]float64 {
	bufs := make([][]float64, channels)
	for c := range bufs {
		bufs[c] = make([]float64, frames)
	}
	return bufs
}
