package smooth

// Exp approaches its target by a fixed fraction of the remaining distance
// per sample. It never lands exactly on the target.
type Exp struct {
	cfg    *Config
	value  float64
	target float64
}

// NewExp returns an Exp smoother resting at initial.
func NewExp(cfg *Config, initial float64) *Exp {
	s := &Exp{}
	s.Init(cfg, initial)
	return s
}

// Init binds the smoother to cfg and rests it at initial.
func (s *Exp) Init(cfg *Config, initial float64) {
	s.cfg = cfg
	s.Reset(initial)
}

// Reset jumps to value.
func (s *Exp) Reset(value float64) {
	s.value = value
	s.target = value
}

// Push sets a new target.
func (s *Exp) Push(target float64) {
	s.target = target
}

// Process advances one sample and returns the new value.
func (s *Exp) Process() float64 {
	kp := 1.0
	if s.cfg != nil {
		kp = s.cfg.kp
	}
	s.value += kp * (s.target - s.value)
	return s.value
}

func (s *Exp) Value() float64  { return s.value }
func (s *Exp) Target() float64 { return s.target }
