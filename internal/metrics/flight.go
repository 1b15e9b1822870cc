package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/projectile"
)

// Range is the horizontal position of the last observed state.
type Range struct {
	name string
	x    float64
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (r *Range) Name() string { return r.name }

func (r *Range) Observe(s projectile.State) { r.x = s.Pos.X }

func (r *Range) Value() float64 { return r.x }

func (r *Range) Reset() { r.x = 0 }

type FlightTime struct {
	name string
	t    float64
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (f *FlightTime) Name() string { return f.name }

func (f *FlightTime) Observe(s projectile.State) { f.t = s.T }

func (f *FlightTime) Value() float64 { return f.t }

func (f *FlightTime) Reset() { f.t = 0 }

type MaxHeight struct {
	name string
	max  float64
}

func NewMaxHeight() *MaxHeight {
	return &MaxHeight{name: "max_height"}
}

func (m *MaxHeight) Name() string { return m.name }

func (m *MaxHeight) Observe(s projectile.State) {
	m.max = math.Max(m.max, s.Pos.Y)
}

func (m *MaxHeight) Value() float64 { return m.max }

func (m *MaxHeight) Reset() { m.max = 0 }

// ApexTime is the time of the first step whose vertical velocity turned
// from positive to negative. It reads -1 until an apex is seen.
type ApexTime struct {
	name   string
	prevVY float64
	seen   bool
	apex   float64
	found  bool
}

func NewApexTime() *ApexTime {
	return &ApexTime{name: "apex_time", apex: -1}
}

func (a *ApexTime) Name() string { return a.name }

func (a *ApexTime) Observe(s projectile.State) {
	if !a.found && a.seen && a.prevVY > 0 && s.Vel.Y < 0 {
		a.apex = s.T
		a.found = true
	}
	a.prevVY = s.Vel.Y
	a.seen = true
}

func (a *ApexTime) Value() float64 { return a.apex }

func (a *ApexTime) Reset() {
	a.prevVY = 0
	a.seen = false
	a.apex = -1
	a.found = false
}

type ImpactSpeed struct {
	name  string
	speed float64
}

func NewImpactSpeed() *ImpactSpeed {
	return &ImpactSpeed{name: "impact_speed"}
}

func (i *ImpactSpeed) Name() string { return i.name }

func (i *ImpactSpeed) Observe(s projectile.State) { i.speed = s.Speed() }

func (i *ImpactSpeed) Value() float64 { return i.speed }

func (i *ImpactSpeed) Reset() { i.speed = 0 }
