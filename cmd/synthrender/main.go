// Command synthrender renders a note list through one of the bundled
// engines and writes the result as a WAV file.
//
// Usage:
//
//	synthrender [flags]
//
// Examples:
//
//	synthrender -engine overtone -notes 60:0:1,64:0.5:1 -o chord.wav
//	synthrender -engine trapezoid -set cutoff=800 -set resonance=0.7 -o bass.wav
//	synthrender -engine sevendelay -input dry.wav -set tempoSync=1 -tempo 90 -o wet.wav
//	synthrender -engine overtone -simd avx2
//	synthrender -list
//	synthrender -engine latticeverb -params
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/oscbank"
	"github.com/cwbudde/algo-synth/engine"
	"github.com/cwbudde/algo-synth/engine/catalog"
	"github.com/cwbudde/algo-synth/engine/overtone"
	"github.com/cwbudde/algo-synth/internal/cpu"
)

type config struct {
	engine     string
	output     string
	input      string
	notes      string
	seconds    float64
	sampleRate int
	blockSize  int
	bits       int
	tempo      float64
	voices     int
	simd       string
	generic    bool
	normalize  float64
	normalized bool
	sets       assignments
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("synthrender: ")

	var cfg config
	flag.StringVar(&cfg.engine, "engine", catalog.Overtone, "engine name (see -list)")
	flag.StringVar(&cfg.output, "o", "out.wav", "output WAV file")
	flag.StringVar(&cfg.input, "input", "", "input WAV file for effect engines")
	flag.StringVar(&cfg.notes, "notes", "60:0:1", "comma separated pitch:start:duration[:velocity] notes")
	flag.Float64Var(&cfg.seconds, "seconds", 2, "render length in seconds")
	flag.IntVar(&cfg.sampleRate, "rate", 48000, "sample rate in Hz (an input file overrides it)")
	flag.IntVar(&cfg.blockSize, "block", 1024, "processing block size")
	flag.IntVar(&cfg.bits, "bits", 16, "output bit depth (16 or 24)")
	flag.Float64Var(&cfg.tempo, "tempo", engine.DefaultTempo, "host tempo in BPM, 0 for none")
	flag.IntVar(&cfg.voices, "voices", overtone.DefaultVoices, "polyphony of the overtone engine")
	flag.StringVar(&cfg.simd, "simd", "", "minimum SIMD level of the oscillator bank (sse2, avx, avx2, avx512, neon)")
	flag.BoolVar(&cfg.generic, "generic", false, "force the generic oscillator bank kernel")
	flag.Float64Var(&cfg.normalize, "normalize", 0, "scale the result to this peak level, 0 to disable")
	flag.BoolVar(&cfg.normalized, "normalized", false, "read -set values as normalized [0, 1]")
	flag.Var(&cfg.sets, "set", "parameter override name=value, repeatable")
	list := flag.Bool("list", false, "list engines and oscillator bank kernels")
	params := flag.Bool("params", false, "list the parameters of -engine")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: synthrender [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders notes through a synth or effect engine into a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	reg, err := registry(cfg)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case *list:
		printList(reg)
	case *params:
		if err := printParams(reg, cfg.engine); err != nil {
			log.Fatal(err)
		}
	default:
		if err := run(reg, cfg); err != nil {
			log.Fatal(err)
		}
	}
}

func registry(cfg config) (*engine.Registry, error) {
	floor, err := cpu.ParseLevel(cfg.simd)
	if err != nil {
		return nil, err
	}
	opts := []overtone.Option{overtone.WithVoices(cfg.voices), overtone.WithSIMDFloor(floor)}
	if cfg.generic {
		f := cpu.DetectFeatures()
		f.ForceGeneric = true
		opts = append(opts, overtone.WithFeatures(f))
	}
	return catalog.New(opts...), nil
}

func run(reg *engine.Registry, cfg config) error {
	e, err := reg.New(cfg.engine)
	if err != nil {
		return err
	}
	if err := cfg.sets.apply(e.Params(), cfg.normalized); err != nil {
		return err
	}

	notes, err := parseNotes(cfg.notes)
	if err != nil {
		return err
	}

	sampleRate := cfg.sampleRate
	var input [][]float64
	if cfg.input != "" {
		input, sampleRate, err = readInput(cfg.input)
		if err != nil {
			return err
		}
		input = fitChannels(input, e)
	}

	out, err := engine.Render(e, engine.Score{Tempo: cfg.tempo, Notes: notes}, cfg.seconds, input,
		core.WithSampleRate(float64(sampleRate)), core.WithBlockSize(cfg.blockSize))
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return fmt.Errorf("engine %q has no outputs", cfg.engine)
	}

	peak := engine.Peak(out)
	if cfg.normalize > 0 && peak > 0 {
		for _, ch := range out {
			engine.ApplyGain(ch, cfg.normalize/peak)
		}
	}

	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := engine.WriteWAV(f, out, sampleRate, cfg.bits); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("%s: %d channels, %d frames at %d Hz, peak %.3f", cfg.output, len(out), len(out[0]), sampleRate, peak)
	if ot, ok := e.(*overtone.Engine); ok {
		log.Printf("oscillator bank kernel %s", ot.Kernel())
	}
	return nil
}

func readInput(path string) ([][]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return engine.ReadWAV(f)
}

// fitChannels repeats the last input channel until the engine's inputs
// are covered.
func fitChannels(input [][]float64, e engine.Engine) [][]float64 {
	want, _ := e.Channels()
	for len(input) > 0 && len(input) < want {
		input = append(input, input[len(input)-1])
	}
	return input
}

func printList(reg *engine.Registry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Engine\tInputs\tOutputs\tParameters\n")
	fmt.Fprintf(tw, "------\t------\t-------\t----------\n")
	for _, name := range reg.Names() {
		e, err := reg.New(name)
		if err != nil {
			fmt.Fprintf(tw, "%s\t-\t-\t%v\n", name, err)
			continue
		}
		in, out := e.Channels()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", name, in, out, len(e.Params().Infos()))
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Println("Oscillator bank kernels:")
	for _, k := range oscbank.Kernels() {
		fmt.Printf("  %s\n", k)
	}
	fmt.Printf("Detected CPU: %v\n", cpu.BestLevel(cpu.DetectFeatures()))
}

func printParams(reg *engine.Registry, name string) error {
	e, err := reg.New(name)
	if err != nil {
		return err
	}
	set := e.Params()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Index\tName\tUnit\tDefault\tMin\tMax\n")
	fmt.Fprintf(tw, "-----\t----\t----\t-------\t---\t---\n")
	for i := 0; i < set.Len(); i++ {
		v := set.Value(i)
		if v == nil {
			continue
		}
		info, sc := v.Info(), v.Scale()
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.6g\t%.6g\t%.6g\n",
			i, info.Name, info.Unit, sc.Map(v.DefaultNormalized()), sc.Min(), sc.Max())
	}
	return tw.Flush()
}
