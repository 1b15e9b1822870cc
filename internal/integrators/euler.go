package integrators

import "github.com/san-kum/trajsim/internal/dynamo"

// Euler is the plain forward Euler scheme, x' = x + dt·f(x, t).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, t, dt float64) dynamo.State {
	return x.Add(dyn.Derive(x, t).Scale(dt))
}
