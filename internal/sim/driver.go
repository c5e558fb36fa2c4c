package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/management"
	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/state"
)

// Vectors is the state precision every driver run uses. Layer indices are
// int32.
type Vectors = state.Vectors[float64, int32]

// Trajectory is the output series of a driver run.
type Trajectory = series.Trajectory[float64]

// Driver builds runs over one dataset.
type Driver struct {
	dataset    *config.Dataset
	physiology Physiology
	schedule   management.Schedule
	ids        RunIDGenerator
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithPhysiology sets the monthly growth step. Default: Carry.
func WithPhysiology(p Physiology) DriverOption {
	return func(d *Driver) { d.physiology = p }
}

// WithIDs sets the run id generator. Default: UUIDv7Generator.
func WithIDs(g RunIDGenerator) DriverOption {
	return func(d *Driver) { d.ids = g }
}

// WithoutManagement ignores the dataset's management log.
func WithoutManagement() DriverOption {
	return func(d *Driver) { d.schedule = management.Unmanaged() }
}

// NewDriver creates a driver over dataset.
func NewDriver(dataset *config.Dataset, opts ...DriverOption) *Driver {
	d := &Driver{
		dataset:    dataset,
		physiology: Carry{},
		schedule:   dataset.Management,
		ids:        UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run is one simulation run in progress.
type Run struct {
	ID         string
	Dataset    *config.Dataset
	State      *Vectors
	Trajectory *Trajectory

	physiology Physiology
	schedule   management.Schedule
}

// Start allocates the state and trajectory for a new run and loads initial
// conditions. No month has been simulated yet.
func (d *Driver) Start() (*Run, error) {
	ds := d.dataset
	n := ds.Species().Len()

	tr, err := series.NewTrajectory[float64](ds.From, ds.To, n)
	if err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	r := &Run{
		ID:         d.ids.Generate(),
		Dataset:    ds,
		State:      state.New[float64, int32](n, ds.Site),
		Trajectory: tr,
		physiology: d.physiology,
		schedule:   d.schedule,
	}
	r.loadInitial()
	return r, nil
}

// Run starts a run and simulates every month from the dataset's From to To.
func (d *Driver) Run(ctx context.Context) (*Run, error) {
	r, err := d.Start()
	if err != nil {
		return nil, err
	}
	slog.Info("run starting",
		"run", r.ID,
		"species", r.State.Len(),
		"from", r.Dataset.From.String(),
		"to", r.Dataset.To.String(),
	)
	if err := r.Advance(ctx, r.Dataset.Months()); err != nil {
		return r, err
	}
	slog.Info("run finished", "run", r.ID, "months", r.Trajectory.Len())
	return r, nil
}

// loadInitial copies initial conditions into the state vectors.
func (r *Run) loadInitial() {
	ic := r.Dataset.Initial
	st := &r.State.Stand
	for i := 0; i < r.State.Len(); i++ {
		st.StemsN[i] = ic.Stems()[i]
		st.BiomStem[i] = ic.StemBiomass()[i]
		st.BiomFoliage[i] = ic.FoliageBiomass()[i]
		st.BiomRoot[i] = ic.RootBiomass()[i]
		if st.StemsN[i] > 0 {
			st.BiomTree[i] = st.BiomStem[i] * 1000 / st.StemsN[i]
		}
	}
	r.State.TotalAvailableSoilWater = r.Dataset.Site.ASW.Initial
}

// Month returns the calendar month the next Step will simulate.
func (r *Run) Month() series.Month {
	return r.Trajectory.MonthAt(r.Trajectory.Len())
}

// Advance simulates the next months months, checking ctx between months.
func (r *Run) Advance(ctx context.Context, months int) error {
	for k := 0; k < months; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step simulates one month.
func (r *Run) Step() error {
	m := r.Month()
	t, ok := r.Dataset.Climate.MonthIndex(m)
	if !ok {
		return climateExhausted(m)
	}

	if r.Trajectory.NeedsGrowth() {
		r.Trajectory.GrowByDecade()
		slog.Debug("trajectory grown", "run", r.ID, "capacity", r.Trajectory.Capacity())
	}

	r.setAges(m)
	r.applyManagement()

	sc := &StepContext{
		Month:   m,
		Index:   r.Trajectory.Len(),
		Climate: r.Dataset.Climate.Forcing(t),
		Dataset: r.Dataset,
		State:   r.State,
	}
	if err := r.physiology.Step(sc); err != nil {
		return fmt.Errorf("physiology %s: %w", m, err)
	}

	r.record()
	slog.Debug("month simulated", "run", r.ID, "month", m.String())
	return nil
}

func (r *Run) setAges(m series.Month) {
	st := &r.State.Stand
	for i := 0; i < r.State.Len(); i++ {
		st.Age[i] = r.Dataset.Initial.AgeAt(i, m)
		st.AgeM[i] = st.Age[i] - 1.0/12
	}
}

// applyManagement thins every species with an event due at its current age.
// Trees removed take StemFraction, RootFraction and FoliageFraction of the
// mean per-tree pools with them. Events that would raise stocking are skipped.
func (r *Run) applyManagement() {
	st := &r.State.Stand
	mort := &r.State.Mortality
	for i := 0; i < r.State.Len(); i++ {
		mort.Thinning[i] = 0
		if st.Age[i] < 0 {
			continue
		}
		for _, e := range management.Due(r.schedule, i, st.Age[i]) {
			ev := r.schedule.Event(i, e)
			if st.StemsN[i] <= ev.Stems {
				continue
			}
			removed := (st.StemsN[i] - ev.Stems) / st.StemsN[i]
			st.BiomFoliage[i] -= st.BiomFoliage[i] * removed * ev.FoliageFraction
			st.BiomRoot[i] -= st.BiomRoot[i] * removed * ev.RootFraction
			st.BiomStem[i] -= st.BiomStem[i] * removed * ev.StemFraction
			mort.Thinning[i] += st.StemsN[i] - ev.Stems
			st.StemsN[i] = ev.Stems
			if st.StemsN[i] > 0 {
				st.BiomTree[i] = st.BiomStem[i] * 1000 / st.StemsN[i]
			}
			slog.Debug("thinning applied",
				"run", r.ID,
				"species", r.Dataset.Species().Name(i),
				"age", st.Age[i],
				"stems", ev.Stems,
			)
		}
	}
}

// record writes the state for the current month into the trajectory.
func (r *Run) record() {
	tr := r.Trajectory
	t := tr.Advance()
	v := r.State

	var et, interception float64
	for i := 0; i < v.Len(); i++ {
		f := tr.Species(i)
		f.Set(series.Age, t, v.Stand.Age[i])
		f.Set(series.StemsN, t, v.Stand.StemsN[i])
		f.Set(series.BiomStem, t, v.Stand.BiomStem[i])
		f.Set(series.BiomFoliage, t, v.Stand.BiomFoliage[i])
		f.Set(series.BiomRoot, t, v.Stand.BiomRoot[i])
		f.Set(series.BasalArea, t, v.Stand.BasalArea[i])
		f.Set(series.DBH, t, v.Stand.DBH[i])
		f.Set(series.Height, t, v.Stand.Height[i])
		f.Set(series.LAI, t, v.Stand.LAI[i])
		f.Set(series.Volume, t, v.Stand.Volume[i])
		f.Set(series.GPP, t, v.Growth.GPP[i])
		f.Set(series.NPP, t, v.Growth.NPP[i])
		f.Set(series.FSW, t, v.Modifiers.SoilWater[i])
		f.Set(series.MortThinn, t, v.Mortality.Thinning[i])
		et += v.Water.Transpiration[i]
		interception += v.Water.PrcpInterception[i]
	}

	stand := tr.Stand()
	stand.Set(series.AvailableSoilWater, t, v.TotalAvailableSoilWater)
	stand.Set(series.Evapotranspiration, t, et)
	stand.Set(series.PrcpInterception, t, interception)
}
