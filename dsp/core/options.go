package core

// ProcessorConfig holds the settings shared by every engine instance.
type ProcessorConfig struct {
	SampleRate float64
	// BlockSize is the largest frame count passed to Process. Scratch
	// buffers are sized from it in Setup.
	BlockSize int
	// SmoothingTime is the parameter smoothing time in seconds.
	SmoothingTime float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the defaults used when no option is given.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:    48000,
		BlockSize:     1024,
		SmoothingTime: 0.04,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the maximum block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithSmoothingTime sets the parameter smoothing time in seconds. Zero
// disables smoothing.
func WithSmoothingTime(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds >= 0 {
			cfg.SmoothingTime = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
