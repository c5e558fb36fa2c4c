package sim

import (
	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/series"
)

// StepContext is what a Physiology step sees for one month.
type StepContext struct {
	Month   series.Month
	Index   int // month offset from the run's first month
	Climate series.ClimateMonth
	Dataset *config.Dataset
	State   *Vectors
}

// Physiology advances the state vectors through one month of growth.
// Implementations mutate sc.State in place.
type Physiology interface {
	Step(sc *StepContext) error
}

// PhysiologyFunc adapts a function to the Physiology interface.
type PhysiologyFunc func(sc *StepContext) error

// Step calls f(sc).
func (f PhysiologyFunc) Step(sc *StepContext) error { return f(sc) }

// Carry is the no-growth physiology: biomass, stocking and soil water stay as
// they are apart from management.
type Carry struct{}

// Step does nothing.
func (Carry) Step(*StepContext) error { return nil }
