package smooth

// Block interpolates linearly across one processing block. Its position is
// the shared Config buffer index, so every Block smoother of an engine
// moves in lock-step without per-smoother counters.
type Block struct {
	cfg    *Config
	start  float64
	target float64
}

// Init binds the smoother to cfg and rests it at initial.
func (s *Block) Init(cfg *Config, initial float64) {
	s.cfg = cfg
	s.start = initial
	s.target = initial
}

// Push is called once at block start. The ramp begins at the previous
// target.
func (s *Block) Push(target float64) {
	s.start = s.target
	s.target = target
}

// Value returns the interpolated value at the current buffer index.
func (s *Block) Value() float64 {
	size := s.cfg.bufferSize
	idx := s.cfg.bufferIndex + 1
	if idx >= size {
		return s.target
	}
	return s.start + (s.target-s.start)*float64(idx)/float64(size)
}

// Settle ends the ramp at the target. Called after the last frame of a
// block, it keeps a block processed without a Push at the target.
func (s *Block) Settle() {
	s.start = s.target
}

// Reset jumps to value.
func (s *Block) Reset(value float64) {
	s.start = value
	s.target = value
}
