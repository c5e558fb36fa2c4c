package stand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/species"
)

func pinus() Species {
	return Species{
		Planted:         series.Month{Year: 2010, Month: time.June},
		FertilityRating: 0.6,
		Stems:           1200,
		StemBiomass:     10,
		FoliageBiomass:  3,
		RootBiomass:     4,
	}
}

func TestInitialConditions_GrowWithRoster(t *testing.T) {
	roster := species.NewRoster(nil)
	ic := &InitialConditions{}
	roster.Attach(ic)

	require.NoError(t, roster.Allocate([]string{"Pinus"}))
	ic.Set(0, pinus())

	require.NoError(t, roster.Allocate([]string{"Eucalyptus", "Acacia"}))

	assert.Equal(t, roster.Len(), ic.Len())
	for _, n := range []int{
		len(ic.PlantingYear()), len(ic.PlantingMonth()), len(ic.FertilityRating()),
		len(ic.Stems()), len(ic.StemBiomass()), len(ic.FoliageBiomass()),
		len(ic.RootBiomass()), len(ic.SoilClass()),
	} {
		assert.Equal(t, 3, n, "every column must match n_sp")
	}
	assert.Equal(t, pinus(), ic.At(0), "existing species must be preserved")
	assert.Equal(t, Species{}, ic.At(2), "new species start zeroed")
}

func TestInitialConditions_RejectedBatchLeavesColumns(t *testing.T) {
	reg, err := species.NewRegistry("Pinus")
	require.NoError(t, err)
	roster := species.NewRoster(reg)
	ic := &InitialConditions{}
	roster.Attach(ic)
	ic.Set(0, pinus())

	err = roster.Allocate([]string{"Pinus"})
	require.Error(t, err)
	assert.Equal(t, 1, ic.Len())
	assert.Equal(t, pinus(), ic.At(0))
}

func TestInitialConditions_GrowSpeciesNeverShrinks(t *testing.T) {
	ic := &InitialConditions{}
	ic.GrowSpecies(3)
	ic.GrowSpecies(1)
	assert.Equal(t, 3, ic.Len())
}

func TestInitialConditions_AgeAt(t *testing.T) {
	ic := &InitialConditions{}
	ic.GrowSpecies(1)
	ic.Set(0, pinus())

	assert.Equal(t, series.Month{Year: 2010, Month: time.June}, ic.Planted(0))
	assert.InDelta(t, 5.0, ic.AgeAt(0, series.Month{Year: 2015, Month: time.June}), 1e-12)
	assert.InDelta(t, 5.5, ic.AgeAt(0, series.Month{Year: 2015, Month: time.December}), 1e-12)
	assert.Less(t, ic.AgeAt(0, series.Month{Year: 2010, Month: time.January}), 0.0)
}
