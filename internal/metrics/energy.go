package metrics

import (
	"math"

	"github.com/san-kum/trajsim/internal/dynamo"
	"github.com/san-kum/trajsim/internal/projectile"
)

// EnergyLoss is the fraction of the launch mechanical energy dissipated by
// drag at the last observed state.
type EnergyLoss struct {
	name          string
	dyn           dynamo.Hamiltonian
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss(dyn dynamo.Hamiltonian) *EnergyLoss {
	return &EnergyLoss{
		name: "energy_loss",
		dyn:  dyn,
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(s projectile.State) {
	energy := e.dyn.Energy(dynamo.State{s.Pos.X, s.Pos.Y, s.Vel.X, s.Vel.Y})
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.samples == 0 || e.initialEnergy == 0 {
		return 0
	}
	return (e.initialEnergy - e.currentEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}
