package projectile

import "math"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// State is the kinematic snapshot at step Step, time T = Step·Dt.
// Acc is only meaningful for advancers that track acceleration.
type State struct {
	Step  int
	T     float64
	Pos   Vec2
	Vel   Vec2
	Acc   Vec2
	Angle float64
}

func (s State) Speed() float64 {
	return s.Vel.Norm()
}

// AngleDeg is the flight-path angle in degrees.
func (s State) AngleDeg() float64 {
	return s.Angle * 180 / math.Pi
}

func (s State) IsFinite() bool {
	return s.Pos.finite() && s.Vel.finite() && s.Acc.finite() && !math.IsNaN(s.Angle) && !math.IsInf(s.Angle, 0)
}

// Initialize builds the state at t=0: at the origin, moving at cfg.Speed
// along cfg.Angle. withAccel also fills the drag-plus-gravity acceleration.
func Initialize(cfg Config, withAccel bool) (State, error) {
	if err := cfg.Validate(); err != nil {
		return State{}, err
	}

	s := State{
		Vel: Vec2{
			X: cfg.Speed * math.Cos(cfg.Angle),
			Y: cfg.Speed * math.Sin(cfg.Angle),
		},
		Angle: cfg.Angle,
	}
	if withAccel {
		s.Acc = dragAcceleration(cfg, s.Vel)
	}
	return s, nil
}

// dragAcceleration decomposes the drag magnitude ½ρCdA|v|²/m along the
// flight-path angle, with the vertical part opposing vy, and adds gravity.
func dragAcceleration(cfg Config, vel Vec2) Vec2 {
	speed := vel.Norm()
	phi := math.Atan2(vel.Y, vel.X)
	drag := cfg.DragFactor() * speed * speed / cfg.Mass

	return Vec2{
		X: -drag * math.Cos(phi),
		Y: -cfg.Gravity - math.Copysign(drag*math.Sin(phi), vel.Y),
	}
}
