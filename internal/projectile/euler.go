package projectile

import "math"

// Euler advances velocity with the previous step's acceleration, then
// re-evaluates drag at the new velocity and moves the position with a
// second-order update using the new acceleration.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) TracksAcceleration() bool { return true }

func (e *Euler) Init(cfg Config) (State, error) {
	return Initialize(cfg, true)
}

func (e *Euler) Advance(cfg Config, s State) (State, error) {
	dt := cfg.Dt
	n, t := nextTime(cfg, s)

	vel := Vec2{
		X: s.Vel.X + s.Acc.X*dt,
		Y: s.Vel.Y + s.Acc.Y*dt,
	}
	acc := dragAcceleration(cfg, vel)

	dt2 := dt * dt
	pos := Vec2{
		X: s.Pos.X + vel.X*dt + 0.5*acc.X*dt2,
		Y: s.Pos.Y + vel.Y*dt + 0.5*acc.Y*dt2,
	}

	return State{
		Step:  n,
		T:     t,
		Pos:   pos,
		Vel:   vel,
		Acc:   acc,
		Angle: math.Atan2(vel.Y, vel.X),
	}, nil
}
