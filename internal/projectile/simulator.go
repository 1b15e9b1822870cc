package projectile

import (
	"context"
	"math"
)

// Observer receives every recorded state as the run progresses.
type Observer interface {
	OnStep(s State)
}

type ObserverFunc func(s State)

func (f ObserverFunc) OnStep(s State) { f(s) }

type Metric interface {
	Name() string
	Observe(s State)
	Value() float64
	Reset()
}

type Simulator struct {
	adv       Advancer
	metrics   []Metric
	observers []Observer
}

func New(adv Advancer) *Simulator {
	return &Simulator{
		adv:       adv,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Advancer() Advancer { return s.adv }

// Run simulates cfg until ground contact or the step cap. The returned trace
// is frozen. On a singularity or cancellation the partial trace is returned
// with the error; on hitting the cap it is returned with a *RunawayError.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Trace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	policy := NewTerminationPolicy(cfg.Steps())

	state, err := s.adv.Init(cfg)
	if err != nil {
		return nil, err
	}

	trace := NewTrace(s.adv.Name(), cfg.Dt, s.adv.TracksAcceleration(), estimateSteps(cfg, policy))
	defer s.finish(trace)

	for _, m := range s.metrics {
		m.Reset()
	}
	s.record(trace, state)

	for i := 0; i < policy.MaxSteps; i++ {
		select {
		case <-ctx.Done():
			return trace, ctx.Err()
		default:
		}

		next, err := s.adv.Advance(cfg, state)
		if err != nil {
			return trace, err
		}
		if !next.IsFinite() {
			return trace, &SimulationError{Step: next.Step, Time: next.T, State: state, Wrapped: ErrUnstable}
		}

		s.record(trace, next)
		state = next

		if done, grounded := policy.Done(state); done {
			if grounded {
				trace.Complete = true
				return trace, nil
			}
			break
		}
	}

	return trace, &RunawayError{Steps: state.Step, Final: state}
}

func (s *Simulator) record(trace *Trace, st State) {
	// a fresh trace is never frozen mid-run
	_ = trace.Record(st)
	for _, m := range s.metrics {
		m.Observe(st)
	}
	for _, obs := range s.observers {
		obs.OnStep(st)
	}
}

func (s *Simulator) finish(trace *Trace) {
	for _, m := range s.metrics {
		trace.Metrics[m.Name()] = m.Value()
	}
	trace.Freeze()
}

// estimateSteps sizes the trace for the drag-free flight time.
func estimateSteps(cfg Config, policy TerminationPolicy) int {
	flight := 2 * cfg.Speed * math.Abs(math.Sin(cfg.Angle)) / cfg.Gravity
	steps := flight/cfg.Dt + 2
	if steps > float64(policy.MaxSteps+1) {
		return policy.MaxSteps + 1
	}
	if steps < 16 {
		return 16
	}
	return int(steps)
}
