package series

import (
	"github.com/roach88/threepg/internal/arrays"
)

// Stand-level trajectory column indices.
const (
	AvailableSoilWater = iota
	Evapotranspiration
	PrcpInterception
	ConductSoil
	Irrigation
	standWidth
)

var standColumns = [standWidth]string{
	AvailableSoilWater: "available_soil_water",
	Evapotranspiration: "evapotranspiration",
	PrcpInterception:   "prcp_interception",
	ConductSoil:        "conduct_soil",
	Irrigation:         "irrigation",
}

// Per-species trajectory column indices.
const (
	Age = iota
	StemsN
	BiomStem
	BiomFoliage
	BiomRoot
	BasalArea
	DBH
	Height
	LAI
	Volume
	GPP
	NPP
	FSW
	MortThinn
	speciesWidth
)

var speciesColumns = [speciesWidth]string{
	Age:         "age",
	StemsN:      "stems_n",
	BiomStem:    "biom_stem",
	BiomFoliage: "biom_foliage",
	BiomRoot:    "biom_root",
	BasalArea:   "basal_area",
	DBH:         "dbh",
	Height:      "height",
	LAI:         "lai",
	Volume:      "volume",
	GPP:         "gpp",
	NPP:         "npp",
	FSW:         "f_sw",
	MortThinn:   "mort_thinn",
}

// StandColumns returns the stand-level column names in index order.
func StandColumns() []string { return append([]string(nil), standColumns[:]...) }

// SpeciesColumns returns the per-species column names in index order.
func SpeciesColumns() []string { return append([]string(nil), speciesColumns[:]...) }

// Trajectory holds the monthly outputs of one simulation run: a stand-level
// frame plus one frame per species, all sharing capacity and n_m.
type Trajectory[F arrays.Float] struct {
	From Month
	To   Month

	stand   *Frame[F]
	species []*Frame[F]
}

// NewTrajectory allocates a trajectory covering from..to inclusive for
// nSpecies species. It fails with a RangeError when to is before from.
//
// Capacity starts at arrays.DefaultCapacity and is extended by whole decade
// blocks until it covers the requested months.
func NewTrajectory[F arrays.Float](from, to Month, nSpecies int) (*Trajectory[F], error) {
	if to.Before(from) {
		return nil, &RangeError{From: from, To: to}
	}
	months := from.MonthsUntil(to) + 1
	capacity := arrays.DefaultCapacity + arrays.Decades(months)*arrays.MonthsPerDecade

	tr := &Trajectory[F]{
		From:  from,
		To:    to,
		stand: NewFrame[F](capacity, standColumns[:]...),
	}
	tr.GrowSpecies(nSpecies)
	return tr, nil
}

// NewOpenTrajectory allocates a trajectory with no planned end at the default
// capacity. The driver grows it by decade as the horizon extends.
func NewOpenTrajectory[F arrays.Float](from Month, nSpecies int) *Trajectory[F] {
	tr := &Trajectory[F]{
		From:  from,
		stand: NewFrame[F](arrays.DefaultCapacity, standColumns[:]...),
	}
	tr.GrowSpecies(nSpecies)
	return tr
}

// Months returns the number of months between From and To inclusive, or
// zero for an open trajectory.
func (tr *Trajectory[F]) Months() int {
	if tr.To.IsZero() {
		return 0
	}
	return tr.From.MonthsUntil(tr.To) + 1
}

// Capacity returns the number of months allocated.
func (tr *Trajectory[F]) Capacity() int { return tr.stand.Capacity() }

// Len returns the number of populated months (n_m).
func (tr *Trajectory[F]) Len() int { return tr.stand.Len() }

// SpeciesCount returns the number of per-species frames.
func (tr *Trajectory[F]) SpeciesCount() int { return len(tr.species) }

// Stand returns the stand-level frame.
func (tr *Trajectory[F]) Stand() *Frame[F] { return tr.stand }

// Species returns the frame for species i.
func (tr *Trajectory[F]) Species(i int) *Frame[F] { return tr.species[i] }

// NeedsGrowth reports whether the next month would fall past capacity.
func (tr *Trajectory[F]) NeedsGrowth() bool { return tr.stand.NeedsGrowth() }

// GrowByDecade grows the stand frame and every species frame by one decade.
func (tr *Trajectory[F]) GrowByDecade() {
	tr.stand.GrowByDecade()
	for _, f := range tr.species {
		f.GrowByDecade()
	}
}

// Advance marks the next month populated in every frame and returns its offset.
func (tr *Trajectory[F]) Advance() int {
	t := tr.stand.Advance()
	for _, f := range tr.species {
		f.Advance()
	}
	return t
}

// MonthAt returns the calendar month of offset t.
func (tr *Trajectory[F]) MonthAt(t int) Month {
	return tr.From.AddMonths(t)
}

// GrowSpecies adds empty species frames up to n at the current capacity and
// populated length. New species read zero for months already recorded.
func (tr *Trajectory[F]) GrowSpecies(n int) {
	for len(tr.species) < n {
		f := NewFrame[F](tr.stand.Capacity(), speciesColumns[:]...)
		f.n = tr.stand.Len()
		tr.species = append(tr.species, f)
	}
}
