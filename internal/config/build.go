package config

import (
	"fmt"

	"github.com/roach88/threepg/internal/management"
	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/site"
	"github.com/roach88/threepg/internal/species"
	"github.com/roach88/threepg/internal/stand"
)

// Dataset is everything a simulation run is built from.
type Dataset struct {
	Name string
	Hash string
	From series.Month
	To   series.Month

	Site       *site.Site
	Roster     *species.Roster
	Initial    *stand.InitialConditions
	Management *management.Store
	Climate    *series.Climate[float64]
}

// Species returns a read-only view of the dataset's species registry.
func (d *Dataset) Species() species.View {
	return d.Roster.Registry()
}

// Months returns the number of months from From to To inclusive.
func (d *Dataset) Months() int {
	return d.From.MonthsUntil(d.To) + 1
}

// Build assembles a Dataset from a loaded run file.
func Build(f *File) (*Dataset, error) {
	from, err := series.ParseMonth(f.From)
	if err != nil {
		return nil, fmt.Errorf("build dataset: from: %w", err)
	}
	to, err := series.ParseMonth(f.To)
	if err != nil {
		return nil, fmt.Errorf("build dataset: to: %w", err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("build dataset: %w", &series.RangeError{From: from, To: to})
	}

	hash, err := f.Hash()
	if err != nil {
		return nil, err
	}

	d := &Dataset{
		Name:       f.Name,
		Hash:       hash,
		From:       from,
		To:         to,
		Roster:     species.NewRoster(nil),
		Initial:    &stand.InitialConditions{},
		Management: &management.Store{},
	}

	var asw site.SoilWater
	if f.Site.ASW != nil {
		asw = site.SoilWater{Initial: f.Site.ASW.Initial, Min: f.Site.ASW.Min, Max: f.Site.ASW.Max}
	}
	d.Site, err = site.New(f.Site.Latitude, f.Site.Altitude, f.Site.SoilClass, asw)
	if err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}

	d.Roster.Attach(d.Initial)
	d.Roster.Attach(d.Management)
	if err := d.Roster.Allocate(f.SpeciesNames()); err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}

	for i, sp := range f.Species {
		planted, err := series.ParseMonth(sp.Planted)
		if err != nil {
			return nil, fmt.Errorf("build dataset: species %q planted: %w", sp.Name, err)
		}
		d.Initial.Set(i, stand.Species{
			Planted:         planted,
			FertilityRating: sp.Fertility,
			Stems:           sp.Stems,
			StemBiomass:     sp.Biomass.Stem,
			FoliageBiomass:  sp.Biomass.Foliage,
			RootBiomass:     sp.Biomass.Root,
			SoilClass:       sp.SoilClass,
		})
		for _, th := range sp.Management {
			d.Management.Add(i, management.Event{
				Age:             th.Age,
				Stems:           th.Stems,
				StemFraction:    th.Stem,
				RootFraction:    th.Root,
				FoliageFraction: th.Foliage,
			})
		}
	}

	if d.Climate, err = buildClimate(f.Climate, from); err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}
	return d, nil
}

// buildClimate loads the forcing series. A missing climate section yields an
// empty series starting at the run's first month.
func buildClimate(cf *ClimateFile, from series.Month) (*series.Climate[float64], error) {
	if cf == nil {
		return series.NewClimate[float64](from), nil
	}
	start, err := series.ParseMonth(cf.Start)
	if err != nil {
		return nil, fmt.Errorf("climate start: %w", err)
	}
	c := series.NewClimate[float64](start)
	for _, m := range cf.Months {
		if c.NeedsGrowth() {
			c.GrowByDecade()
		}
		c.AppendMonth(series.ClimateMonth{
			TmpMin:    m.TmpMin,
			TmpMax:    m.TmpMax,
			TmpAve:    m.TmpAve,
			Prcp:      m.Prcp,
			Srad:      m.Srad,
			FrostDays: m.FrostDays,
			CO2:       m.CO2,
			D13CAtm:   m.D13CAtm,
			VPD:       m.VPD,
		})
	}
	return c, nil
}
