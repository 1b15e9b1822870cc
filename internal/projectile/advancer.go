package projectile

// Advancer is one time-stepping scheme. Advance must not modify s.
type Advancer interface {
	Name() string
	Init(cfg Config) (State, error)
	Advance(cfg Config, s State) (State, error)
	TracksAcceleration() bool
}

func nextTime(cfg Config, s State) (int, float64) {
	n := s.Step + 1
	return n, float64(n) * cfg.Dt
}
