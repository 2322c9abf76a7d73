package engine

import (
	"github.com/gopxl/beep"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Streamer adapts an engine to beep.Streamer. It renders one block at a
// time and never ends on its own; wrap it with beep.Take for a fixed
// length. Mono engines are duplicated to both sides; engines with more
// than two outputs contribute their first two.
type Streamer struct {
	eng   Engine
	seq   *sequencer
	tempo float64
	input beep.Streamer
	err   error

	pos    int64
	frames [][2]float64
	in     [][]float64
	out    [][]float64
	avail  int
	read   int
}

// NewStreamer sets up e at sampleRate and schedules score. input may be
// nil; otherwise its frames feed the engine's first two inputs.
func NewStreamer(e Engine, sampleRate beep.SampleRate, score Score, input beep.Streamer, blockSize int) (*Streamer, error) {
	if blockSize <= 0 {
		blockSize = core.DefaultProcessorConfig().BlockSize
	}
	if err := e.Setup(float64(sampleRate)); err != nil {
		return nil, err
	}
	e.Reset()
	e.Startup()

	nIn, nOut := e.Channels()
	return &Streamer{
		eng:    e,
		seq:    newSequencer(score, float64(sampleRate)),
		tempo:  score.Tempo,
		input:  input,
		frames: make([][2]float64, blockSize),
		in:     makeChannels(nIn, blockSize),
		out:    makeChannels(nOut, blockSize),
	}, nil
}

// Stream implements beep.Streamer.
func (s *Streamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if s.read >= s.avail {
			s.render()
		}
		for ; n < len(samples) && s.read < s.avail; n++ {
			samples[n] = s.frame(s.read)
			s.read++
		}
	}
	return n, true
}

// Err returns the first error of the input streamer.
func (s *Streamer) Err() error { return s.err }

func (s *Streamer) frame(i int) [2]float64 {
	switch len(s.out) {
	case 0:
		return [2]float64{}
	case 1:
		return [2]float64{s.out[0][i], s.out[0][i]}
	default:
		return [2]float64{s.out[0][i], s.out[1][i]}
	}
}

func (s *Streamer) render() {
	block := len(s.frames)
	for c := range s.in {
		core.Zero(s.in[c])
	}
	if s.input != nil && len(s.in) > 0 {
		s.readInput(block)
	}

	s.seq.fill(s.eng.Queue(), s.pos, block)
	s.eng.SetParameters(s.tempo)
	s.eng.Process(block, s.in, s.out)

	s.pos += int64(block)
	s.avail = block
	s.read = 0
}

func (s *Streamer) readInput(block int) {
	got := 0
	for got < block {
		n, ok := s.input.Stream(s.frames[got:block])
		got += n
		if !ok {
			if err := s.input.Err(); err != nil && s.err == nil {
				s.err = err
			}
			s.input = nil
			break
		}
	}
	for i := 0; i < got; i++ {
		s.in[0][i] = s.frames[i][0]
		if len(s.in) > 1 {
			s.in[1][i] = s.frames[i][1]
		}
	}
}
