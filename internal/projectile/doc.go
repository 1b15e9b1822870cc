// Package projectile simulates the planar flight of a point projectile under
// constant gravity and quadratic drag by discrete time-stepping.
//
// A run is a pure function of its [Config]: an [Advancer] builds the initial
// [State], the [Simulator] advances it one fixed step at a time until the
// [TerminationPolicy] reports ground contact or the step cap, and every state
// is appended to a [Trace]. Three advancers are provided:
//
//   - [Euler]: acceleration held constant over each step
//   - [Analytic]: per-axis closed-form velocity assuming the flight angle of
//     the previous step stays constant across the step
//   - [Reference]: a general-purpose integrator (RK4, RK45) applied to the
//     drag ODE, used as the accuracy yardstick for the other two
//
// # Errors
//
// Invalid parameters fail with [*ConfigError] before the run starts. The
// analytic scheme reports undefined closed-form updates as
// [*SingularityError] instead of producing NaN. Hitting the step cap
// returns the trace together with a [*RunawayError]; the trace is kept but
// marked incomplete.
//
// # Example
//
//	cfg := projectile.Config{Mass: 1, Speed: 30, Angle: math.Pi / 4,
//		Density: 1.225, DragCoefficient: 0.5, Area: 0.05, Dt: 0.005, Gravity: 9.8}
//	trace, err := projectile.New(projectile.NewEuler()).Run(ctx, cfg)
//
// A Simulator holds no per-run state, but advancers may keep scratch
// buffers; give each concurrent run its own advancer.
package projectile
