package smooth

// Linear ramps to its target in Config.Steps() samples and then holds the
// target exactly.
type Linear struct {
	cfg       *Config
	value     float64
	target    float64
	step      float64
	remaining int
}

// NewLinear returns a Linear smoother resting at initial.
func NewLinear(cfg *Config, initial float64) *Linear {
	s := &Linear{}
	s.Init(cfg, initial)
	return s
}

// Init binds the smoother to cfg and rests it at initial. Used for
// smoothers stored by value.
func (s *Linear) Init(cfg *Config, initial float64) {
	s.cfg = cfg
	s.Reset(initial)
}

// Reset jumps to value without ramping.
func (s *Linear) Reset(value float64) {
	s.value = value
	s.target = value
	s.step = 0
	s.remaining = 0
}

// Push starts a ramp from the current value to target.
func (s *Linear) Push(target float64) {
	s.target = target

	steps := 0
	if s.cfg != nil {
		steps = s.cfg.steps
	}
	if steps <= 0 {
		s.value = target
		s.remaining = 0
		return
	}

	s.step = (target - s.value) / float64(steps)
	s.remaining = steps
}

// Process advances one sample and returns the new value.
func (s *Linear) Process() float64 {
	if s.remaining > 0 {
		s.remaining--
		if s.remaining == 0 {
			s.value = s.target
		} else {
			s.value += s.step
		}
	}
	return s.value
}

func (s *Linear) Value() float64  { return s.value }
func (s *Linear) Target() float64 { return s.target }

// Ramping reports whether the target has not been reached yet.
func (s *Linear) Ramping() bool { return s.remaining > 0 }
