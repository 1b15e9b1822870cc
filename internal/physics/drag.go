package physics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// DragProjectile: m·a = -½·ρ·Cd·A·|v|·v - m·g·ŷ.
type DragProjectile struct {
	Mass            float64
	Density         float64
	DragCoefficient float64
	Area            float64
	Gravity         float64
}

func NewDragProjectile(mass, density, cd, area, gravity float64) *DragProjectile {
	return &DragProjectile{
		Mass:            mass,
		Density:         density,
		DragCoefficient: cd,
		Area:            area,
		Gravity:         gravity,
	}
}

func (p *DragProjectile) StateDim() int {
	return 4
}

// DragFactor is ½·ρ·Cd·A, the drag force per unit speed squared.
func (p *DragProjectile) DragFactor() float64 {
	return 0.5 * p.Density * p.DragCoefficient * p.Area
}

// Acceleration returns the net acceleration for velocity (vx, vy).
func (p *DragProjectile) Acceleration(vx, vy float64) (ax, ay float64) {
	speed := math.Hypot(vx, vy)
	c := p.DragFactor() / p.Mass
	ax = -c * speed * vx
	ay = -p.Gravity - c*speed*vy
	return ax, ay
}

func (p *DragProjectile) Derive(x dynamo.State, t float64) dynamo.State {
	ax, ay := p.Acceleration(x[2], x[3])
	return dynamo.State{x[2], x[3], ax, ay}
}

// Energy is kinetic plus gravitational potential energy relative to y = 0.
func (p *DragProjectile) Energy(x dynamo.State) float64 {
	v2 := x[2]*x[2] + x[3]*x[3]
	return 0.5*p.Mass*v2 + p.Mass*p.Gravity*x[1]
}

// TerminalSpeed is the falling speed at which drag balances gravity.
// It is +Inf for a drag-free projectile.
func (p *DragProjectile) TerminalSpeed() float64 {
	k := p.DragFactor()
	if k == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(p.Mass * p.Gravity / k)
}
