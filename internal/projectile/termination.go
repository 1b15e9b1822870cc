package projectile

// TerminationPolicy stops a run at the first state below ground or once
// MaxSteps steps have been taken. The crossing state is kept as is; no
// interpolation to the exact impact point is done.
type TerminationPolicy struct {
	MaxSteps int
}

func NewTerminationPolicy(maxSteps int) TerminationPolicy {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return TerminationPolicy{MaxSteps: maxSteps}
}

// Done reports whether the run ends at s, and whether it ended by reaching
// the ground.
func (p TerminationPolicy) Done(s State) (done, grounded bool) {
	if s.Pos.Y < 0 {
		return true, true
	}
	return s.Step >= p.MaxSteps, false
}
