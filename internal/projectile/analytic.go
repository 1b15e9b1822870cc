package projectile

import "math"

// Regime selects the closed-form vertical solution from the sign of the
// previous vertical velocity.
type Regime int

const (
	AtPeak Regime = iota
	Ascending
	Descending
)

func (r Regime) String() string {
	switch r {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "at-peak"
	}
}

func ClassifyRegime(vy float64) Regime {
	switch {
	case vy > 0:
		return Ascending
	case vy < 0:
		return Descending
	default:
		return AtPeak
	}
}

// angleEpsilon: sin or cos of the flight angle below this counts as zero.
const angleEpsilon = 1e-12

// Analytic integrates m·dv/dt = -k·v² (+ gravity on y) exactly over one step
// per axis, holding the previous flight angle fixed so that each axis sees a
// constant drag constant:
//
//	x: 1/vx' = 1/vx + ρ·A·Cd/(2·m·cos θ)·Δt
//	y: k = ρ·A·Cd/(2·sin|θ|), then tan form rising, tanh form falling
//
// Positions use the first-order update x' = x + v'·Δt.
type Analytic struct{}

func NewAnalytic() *Analytic {
	return &Analytic{}
}

func (a *Analytic) Name() string { return "analytic" }

func (a *Analytic) TracksAcceleration() bool { return false }

func (a *Analytic) Init(cfg Config) (State, error) {
	return Initialize(cfg, false)
}

func (a *Analytic) Advance(cfg Config, s State) (State, error) {
	dt := cfg.Dt
	n, t := nextTime(cfg, s)

	vx, err := a.horizontal(cfg, s)
	if err != nil {
		return s, err
	}
	vy, err := a.vertical(cfg, s)
	if err != nil {
		return s, err
	}

	return State{
		Step: n,
		T:    t,
		Pos: Vec2{
			X: s.Pos.X + vx*dt,
			Y: s.Pos.Y + vy*dt,
		},
		Vel:   Vec2{X: vx, Y: vy},
		Angle: flightAngle(vx, vy),
	}, nil
}

func (a *Analytic) horizontal(cfg Config, s State) (float64, error) {
	c := 2 * cfg.DragFactor()
	vx := s.Vel.X
	if c == 0 {
		return vx, nil
	}

	singular := func(reason string) (float64, error) {
		n, t := nextTime(cfg, s)
		return 0, &SingularityError{Step: n, Time: t, Axis: "x", Regime: ClassifyRegime(s.Vel.Y), Reason: reason}
	}

	cos := math.Cos(s.Angle)
	if math.Abs(cos) < angleEpsilon {
		return singular("vertical flight, cos(theta) = 0")
	}
	if vx == 0 {
		return singular("zero horizontal velocity")
	}

	inv := 1/vx + c/(2*cfg.Mass*cos)*cfg.Dt
	if inv == 0 || math.IsInf(inv, 0) || math.IsNaN(inv) {
		return singular("reciprocal velocity is not invertible")
	}
	return 1 / inv, nil
}

func (a *Analytic) vertical(cfg Config, s State) (float64, error) {
	c := 2 * cfg.DragFactor()
	m, g, dt := cfg.Mass, cfg.Gravity, cfg.Dt
	vy0 := s.Vel.Y
	regime := ClassifyRegime(vy0)

	singular := func(reason string) (float64, error) {
		n, t := nextTime(cfg, s)
		return 0, &SingularityError{Step: n, Time: t, Axis: "y", Regime: regime, Reason: reason}
	}

	if c == 0 {
		return vy0 - g*dt, nil
	}

	sin := math.Sin(math.Abs(s.Angle))
	if sin < angleEpsilon {
		if s.Step == 0 {
			return singular("horizontal launch, vertical drag constant undefined")
		}
		regime = AtPeak
	}

	var vy float64
	switch regime {
	case AtPeak:
		vy = vy0 - g*dt

	case Ascending:
		k := c / (2 * sin)
		rootGMK := math.Sqrt(g * m * k)
		arg := -rootGMK * ((dt / m) - math.Atan(k*vy0/rootGMK)/rootGMK)
		if arg <= -math.Pi/2 {
			// near-horizontal step across the apex: k is too large for the
			// tan form, treat the step as at-peak
			vy = vy0 - g*dt
			break
		}
		vy = math.Tan(arg) * rootGMK / k

	case Descending:
		k := c / (2 * sin)
		rootGMK := math.Sqrt(g * m * k)
		z := vy0 * math.Sqrt(k) / math.Sqrt(g*m)
		if math.Abs(z) >= 1 {
			return singular("fall speed at or beyond terminal velocity, arctanh undefined")
		}
		vy = math.Tanh(rootGMK*(math.Atanh(z)/rootGMK-dt/m)) * math.Sqrt(g*m) / math.Sqrt(k)
	}

	if math.IsNaN(vy) || math.IsInf(vy, 0) {
		return singular("non-finite vertical velocity")
	}
	return vy, nil
}

// flightAngle is the single-argument arctangent of vy/vx. It does not
// recover the quadrant when vx < 0.
func flightAngle(vx, vy float64) float64 {
	if vx == 0 {
		if vy == 0 {
			return 0
		}
		return math.Copysign(math.Pi/2, vy)
	}
	return math.Atan(vy / vx)
}
