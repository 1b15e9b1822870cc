// Package dynamo provides the generic ODE primitives used for reference
// integration of projectile motion.
//
// The package defines:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, t))
//   - [Integrator]: fixed-step numerical integrator
//   - [AdaptiveIntegrator]: integrator that also proposes the next step size
//
// # Example
//
//	dyn := physics.NewDragProjectile(1, 1.225, 0.5, 0.05, 9.8)
//	integ := integrators.NewRK4()
//	x := dynamo.State{0, 0, 21.2, 21.2}
//	x = integ.Step(dyn, x, 0, 0.005)
//
// Integrators keep scratch buffers and are NOT safe for concurrent use.
// Create one per run.
package dynamo
