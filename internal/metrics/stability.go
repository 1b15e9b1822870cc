package metrics

import (
	"github.com/san-kum/trajsim/internal/projectile"
)

// Stability is the fraction of observed states whose speed stayed below
// threshold. A projectile under drag never speeds up past its launch or
// terminal speed, so violations point at a diverging scheme.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(st projectile.State) {
	s.samples++
	if st.Speed() > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
