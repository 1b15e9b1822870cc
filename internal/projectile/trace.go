package projectile

// Trace is the recorded history of one run: one entry per step in every
// column, index-aligned. It is written only by the run that owns it and is
// read-only once frozen.
type Trace struct {
	Scheme          string
	Dt              float64
	HasAcceleration bool
	Complete        bool
	Metrics         map[string]float64

	T     []float64
	X     []float64
	Y     []float64
	VX    []float64
	VY    []float64
	Speed []float64
	Angle []float64
	AX    []float64
	AY    []float64

	frozen bool
}

func NewTrace(scheme string, dt float64, hasAccel bool, capacity int) *Trace {
	return &Trace{
		Scheme:          scheme,
		Dt:              dt,
		HasAcceleration: hasAccel,
		Metrics:         make(map[string]float64),
		T:               make([]float64, 0, capacity),
		X:               make([]float64, 0, capacity),
		Y:               make([]float64, 0, capacity),
		VX:              make([]float64, 0, capacity),
		VY:              make([]float64, 0, capacity),
		Speed:           make([]float64, 0, capacity),
		Angle:           make([]float64, 0, capacity),
		AX:              make([]float64, 0, capacity),
		AY:              make([]float64, 0, capacity),
	}
}

func (tr *Trace) Record(s State) error {
	if tr.frozen {
		return ErrTraceFrozen
	}
	tr.T = append(tr.T, s.T)
	tr.X = append(tr.X, s.Pos.X)
	tr.Y = append(tr.Y, s.Pos.Y)
	tr.VX = append(tr.VX, s.Vel.X)
	tr.VY = append(tr.VY, s.Vel.Y)
	tr.Speed = append(tr.Speed, s.Speed())
	tr.Angle = append(tr.Angle, s.Angle)
	tr.AX = append(tr.AX, s.Acc.X)
	tr.AY = append(tr.AY, s.Acc.Y)
	return nil
}

func (tr *Trace) Freeze() { tr.frozen = true }

func (tr *Trace) Frozen() bool { return tr.frozen }

func (tr *Trace) Len() int { return len(tr.T) }

func (tr *Trace) At(i int) State {
	return State{
		Step:  i,
		T:     tr.T[i],
		Pos:   Vec2{X: tr.X[i], Y: tr.Y[i]},
		Vel:   Vec2{X: tr.VX[i], Y: tr.VY[i]},
		Acc:   Vec2{X: tr.AX[i], Y: tr.AY[i]},
		Angle: tr.Angle[i],
	}
}

// Final returns the last recorded state; ok is false for an empty trace.
func (tr *Trace) Final() (s State, ok bool) {
	if tr.Len() == 0 {
		return State{}, false
	}
	return tr.At(tr.Len() - 1), true
}

// Range is the horizontal displacement of the last recorded state.
func (tr *Trace) Range() float64 {
	if tr.Len() == 0 {
		return 0
	}
	return tr.X[tr.Len()-1]
}

// ApexIndex is the first index whose vertical velocity turned from
// positive to negative, or -1 if the trace never peaks.
func (tr *Trace) ApexIndex() int {
	for i := 1; i < len(tr.VY); i++ {
		if tr.VY[i-1] > 0 && tr.VY[i] < 0 {
			return i
		}
	}
	return -1
}

// AngleDeg returns the flight-path angle column in degrees.
func (tr *Trace) AngleDeg() []float64 {
	out := make([]float64, len(tr.Angle))
	for i, a := range tr.Angle {
		out[i] = State{Angle: a}.AngleDeg()
	}
	return out
}

func (tr *Trace) Points() []Vec2 {
	pts := make([]Vec2, tr.Len())
	for i := range pts {
		pts[i] = Vec2{X: tr.X[i], Y: tr.Y[i]}
	}
	return pts
}
