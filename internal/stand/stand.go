// Package stand holds the per-species initial conditions of a stand.
package stand

import (
	"time"

	"github.com/roach88/threepg/internal/arrays"
	"github.com/roach88/threepg/internal/series"
)

// Species is the initial state of one species in the stand.
type Species struct {
	Planted         series.Month
	FertilityRating float64
	Stems           float64 // stems per hectare
	StemBiomass     float64 // tDM/ha
	FoliageBiomass  float64 // tDM/ha
	RootBiomass     float64 // tDM/ha
	SoilClass       int32   // 0 uses the site's soil class
}

// InitialConditions stores Species as parallel columns indexed by species.
// It grows only through GrowSpecies, normally called by a species.Roster.
type InitialConditions struct {
	plantingYear   []int
	plantingMonth  []time.Month
	fertility      []float64
	stems          []float64
	stemBiomass    []float64
	foliageBiomass []float64
	rootBiomass    []float64
	soilClass      []int32
}

// Len returns the number of species held.
func (ic *InitialConditions) Len() int {
	return len(ic.plantingYear)
}

// GrowSpecies extends every column to n species.
func (ic *InitialConditions) GrowSpecies(n int) {
	if n <= ic.Len() {
		return
	}
	ic.plantingYear = arrays.Resize(ic.plantingYear, n)
	ic.plantingMonth = arrays.Resize(ic.plantingMonth, n)
	ic.fertility = arrays.Resize(ic.fertility, n)
	ic.stems = arrays.Resize(ic.stems, n)
	ic.stemBiomass = arrays.Resize(ic.stemBiomass, n)
	ic.foliageBiomass = arrays.Resize(ic.foliageBiomass, n)
	ic.rootBiomass = arrays.Resize(ic.rootBiomass, n)
	ic.soilClass = arrays.Resize(ic.soilClass, n)
}

// Set stores the initial state of species i.
func (ic *InitialConditions) Set(i int, sp Species) {
	ic.plantingYear[i] = sp.Planted.Year
	ic.plantingMonth[i] = sp.Planted.Month
	ic.fertility[i] = sp.FertilityRating
	ic.stems[i] = sp.Stems
	ic.stemBiomass[i] = sp.StemBiomass
	ic.foliageBiomass[i] = sp.FoliageBiomass
	ic.rootBiomass[i] = sp.RootBiomass
	ic.soilClass[i] = sp.SoilClass
}

// At returns the initial state of species i.
func (ic *InitialConditions) At(i int) Species {
	return Species{
		Planted:         ic.Planted(i),
		FertilityRating: ic.fertility[i],
		Stems:           ic.stems[i],
		StemBiomass:     ic.stemBiomass[i],
		FoliageBiomass:  ic.foliageBiomass[i],
		RootBiomass:     ic.rootBiomass[i],
		SoilClass:       ic.soilClass[i],
	}
}

// PlantingYear returns the planting year column.
func (ic *InitialConditions) PlantingYear() []int { return ic.plantingYear }

// PlantingMonth returns the planting month column.
func (ic *InitialConditions) PlantingMonth() []time.Month { return ic.plantingMonth }

// FertilityRating returns the fertility rating column.
func (ic *InitialConditions) FertilityRating() []float64 { return ic.fertility }

// Stems returns the initial stocking column, in stems per hectare.
func (ic *InitialConditions) Stems() []float64 { return ic.stems }

// StemBiomass returns the initial stem biomass column.
func (ic *InitialConditions) StemBiomass() []float64 { return ic.stemBiomass }

// FoliageBiomass returns the initial foliage biomass column.
func (ic *InitialConditions) FoliageBiomass() []float64 { return ic.foliageBiomass }

// RootBiomass returns the initial root biomass column.
func (ic *InitialConditions) RootBiomass() []float64 { return ic.rootBiomass }

// SoilClass returns the per-species soil class override column.
func (ic *InitialConditions) SoilClass() []int32 { return ic.soilClass }

// Planted returns the planting month of species i.
func (ic *InitialConditions) Planted(i int) series.Month {
	return series.Month{Year: ic.plantingYear[i], Month: ic.plantingMonth[i]}
}

// AgeAt returns the age of species i in years at the start of month m.
// Months before planting give a negative age.
func (ic *InitialConditions) AgeAt(i int, m series.Month) float64 {
	return float64(ic.Planted(i).MonthsUntil(m)) / 12
}
