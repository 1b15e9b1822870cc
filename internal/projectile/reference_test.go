package projectile

import (
	"math"
	"testing"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/integrators"
)

// fixedStep hides StepAdaptive so the reference takes one step per dt.
type fixedStep struct{ dynamo.Integrator }

func advanceN(t *testing.T, adv Advancer, cfg Config, n int) State {
	t.Helper()
	s, err := adv.Init(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		if s, err = adv.Advance(cfg, s); err != nil {
			t.Fatalf("step %d: %v", i+1, err)
		}
	}
	return s
}

func TestReference_AdaptiveSubsteps(t *testing.T) {
	fine := ballConfig()
	fine.Dt = 0.001
	want := advanceN(t, NewReference("rk4", integrators.NewRK4()), fine, 1000)

	coarse := ballConfig()
	coarse.Dt = 0.1

	adaptive := NewReference("rk45", integrators.NewRK45())
	adaptive.Tolerance = 1e-11
	got := advanceN(t, adaptive, coarse, 10)
	fixed := advanceN(t, NewReference("rk45", fixedStep{integrators.NewRK45()}), coarse, 10)

	if math.Abs(got.T-want.T) > 1e-12 {
		t.Fatalf("time mismatch: %g vs %g", got.T, want.T)
	}

	errAdaptive := math.Hypot(got.Pos.X-want.Pos.X, got.Pos.Y-want.Pos.Y)
	errFixed := math.Hypot(fixed.Pos.X-want.Pos.X, fixed.Pos.Y-want.Pos.Y)
	if errAdaptive > 1e-6 {
		t.Errorf("adaptive position error %e, want < 1e-6", errAdaptive)
	}
	if errAdaptive > errFixed+1e-12 {
		t.Errorf("sub-stepping made things worse: adaptive %e, fixed %e", errAdaptive, errFixed)
	}
}

func TestReference_ODEEulerIsFirstOrder(t *testing.T) {
	cfg := ballConfig()
	adv := NewReference("ode-euler", integrators.NewEuler())

	s, err := adv.Init(cfg)
	if err != nil {
		t.Fatal(err)
	}
	next, err := adv.Advance(cfg, s)
	if err != nil {
		t.Fatal(err)
	}

	if want := s.Pos.X + s.Vel.X*cfg.Dt; math.Abs(next.Pos.X-want) > 1e-12 {
		t.Errorf("x = %.12f, want %.12f", next.Pos.X, want)
	}
	if want := s.Vel.Y + s.Acc.Y*cfg.Dt; math.Abs(next.Vel.Y-want) > 1e-12 {
		t.Errorf("vy = %.12f, want %.12f", next.Vel.Y, want)
	}
}
