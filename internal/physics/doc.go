// Package physics provides the continuous-time model of a point projectile
// under constant gravity and quadratic aerodynamic drag.
//
// [DragProjectile] implements [dynamo.System] over the state [x, y, vx, vy]
// and [dynamo.Hamiltonian] for mechanical energy, so any integrator from
// the integrators package can produce a reference trajectory:
//
//	dyn := physics.NewDragProjectile(1, 1.225, 0.5, 0.05, 9.8)
//	x := dynamo.State{0, 0, 21.21, 21.21}
//	x = integrators.NewRK4().Step(dyn, x, 0, 0.005)
package physics
