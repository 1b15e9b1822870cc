package projectile

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/physics"
)

// Reference applies a general-purpose integrator to the full drag ODE. An
// adaptive integrator sub-steps each dt until its error estimate is within
// Tolerance; recorded states stay on the fixed dt grid.
type Reference struct {
	name      string
	integ     dynamo.Integrator
	Tolerance float64
}

// refMinSubstep bounds sub-step refinement as a fraction of dt.
const refMinSubstep = 1e-6

func NewReference(name string, integ dynamo.Integrator) *Reference {
	return &Reference{name: name, integ: integ, Tolerance: 1e-9}
}

func (r *Reference) Name() string { return r.name }

func (r *Reference) TracksAcceleration() bool { return true }

func (r *Reference) Init(cfg Config) (State, error) {
	return Initialize(cfg, true)
}

func (r *Reference) Advance(cfg Config, s State) (State, error) {
	dyn := physics.NewDragProjectile(cfg.Mass, cfg.Density, cfg.DragCoefficient, cfg.Area, cfg.Gravity)
	n, t := nextTime(cfg, s)

	x, err := r.step(dyn, dynamo.State{s.Pos.X, s.Pos.Y, s.Vel.X, s.Vel.Y}, s.T, cfg.Dt)
	if err == nil {
		err = dynamo.CheckState(dyn, x)
	}
	if err != nil {
		return s, &SimulationError{Step: n, Time: t, State: s, Wrapped: err}
	}

	ax, ay := dyn.Acceleration(x[2], x[3])
	return State{
		Step:  n,
		T:     t,
		Pos:   Vec2{X: x[0], Y: x[1]},
		Vel:   Vec2{X: x[2], Y: x[3]},
		Acc:   Vec2{X: ax, Y: ay},
		Angle: math.Atan2(x[3], x[2]),
	}, nil
}

func (r *Reference) step(dyn dynamo.System, x dynamo.State, t, dt float64) (dynamo.State, error) {
	adaptive, ok := r.integ.(dynamo.AdaptiveIntegrator)
	if !ok {
		return r.integ.Step(dyn, x, t, dt), nil
	}

	end := t + dt
	h := dt
	for remaining := dt; remaining > 0; remaining = end - t {
		if h > remaining {
			h = remaining
		}
		next, hNext, err := adaptive.StepAdaptive(dyn, x, t, h, r.Tolerance)
		if err != nil {
			return x, err
		}
		// a proposal below 90% of h means the error estimate rejected the step
		if hNext < 0.9*h && h > refMinSubstep*dt {
			h = math.Max(hNext, refMinSubstep*dt)
			continue
		}
		x, t = next, t+h
		h = hNext
		if remaining-h <= refMinSubstep*dt && h < remaining {
			h = remaining
		}
	}
	return x, nil
}
