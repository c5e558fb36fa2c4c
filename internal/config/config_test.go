package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/threepg/internal/management"
	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/species"
)

var twoSpeciesPath = filepath.Join("..", "..", "testdata", "runs", "two_species.yaml")

const minimalRun = `
from: "2015-01"
to: "2015-12"
site:
  latitude: -35
species:
  - name: Pinus
    planted: "2010-06"
    fertility: 0.5
    stems: 1000
    biomass: {stem: 10, foliage: 3, root: 4}
`

func writeRun(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_TwoSpecies(t *testing.T) {
	f, err := Load(twoSpeciesPath)
	require.NoError(t, err)

	assert.Equal(t, "two-species", f.Name)
	assert.Equal(t, []string{"Pinus", "Eucalyptus"}, f.SpeciesNames())
	require.NotNil(t, f.Climate)
	assert.Len(t, f.Climate.Months, 12)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read run file")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte(minimalRun + "speciess: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		run  string
	}{
		{"bad month", `
from: "2015-13"
to: "2015-12"
site: {latitude: 0}
`},
		{"latitude out of range", `
from: "2015-01"
to: "2015-12"
site: {latitude: 120}
`},
		{"fertility above one", `
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
species:
  - {name: Pinus, planted: "2010-01", fertility: 1.5, stems: 10, biomass: {stem: 1, foliage: 1, root: 1}}
`},
		{"negative stems", `
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
species:
  - {name: Pinus, planted: "2010-01", fertility: 0.5, stems: -1, biomass: {stem: 1, foliage: 1, root: 1}}
`},
		{"empty name", `
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
species:
  - {name: "", planted: "2010-01", fertility: 0.5, stems: 1, biomass: {stem: 1, foliage: 1, root: 1}}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.run))
			require.Error(t, err)
			var se *SchemaError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestParse_RequiredFieldsMissingFromDocument(t *testing.T) {
	tests := []struct {
		name    string
		species string
	}{
		{"no stems", `{name: Pinus, planted: "2010-01", fertility: 0.5, biomass: {stem: 1, foliage: 1, root: 1}}`},
		{"no fertility", `{name: Pinus, planted: "2010-01", stems: 10, biomass: {stem: 1, foliage: 1, root: 1}}`},
		{"no biomass", `{name: Pinus, planted: "2010-01", fertility: 0.5, stems: 10}`},
		{"no root biomass", `{name: Pinus, planted: "2010-01", fertility: 0.5, stems: 10, biomass: {stem: 1, foliage: 1}}`},
		{"thinning without age", `{name: Pinus, planted: "2010-01", fertility: 0.5, stems: 10, biomass: {stem: 1, foliage: 1, root: 1}, management: [{stems: 5, stem: 1, root: 1, foliage: 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := "from: \"2015-01\"\nto: \"2015-12\"\nsite: {latitude: 0}\nspecies:\n  - " + tt.species + "\n"
			_, err := Parse([]byte(run))
			require.Error(t, err)
			var se *SchemaError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestParse_ExplicitZeroStillValid(t *testing.T) {
	_, err := Parse([]byte(`
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
species:
  - {name: Pinus, planted: "2010-01", fertility: 0, stems: 0, biomass: {stem: 0, foliage: 0, root: 0}}
`))
	require.NoError(t, err)
}

func TestLoad_SchemaErrorCarriesPath(t *testing.T) {
	path := writeRun(t, `
from: "2015-01"
to: "2015-12"
site: {latitude: 200}
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func speciesRun(names ...string) string {
	run := `
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
species:
`
	for _, n := range names {
		run += `  - {name: "` + n + `", planted: "2010-01", fertility: 0.5, stems: 1, biomass: {stem: 1, foliage: 1, root: 1}}
`
	}
	return run
}

func TestParse_NormalizesNames(t *testing.T) {
	f, err := Parse([]byte(speciesRun(" Fagus E\u0301 ")))
	require.NoError(t, err)
	assert.Equal(t, "Fagus \u00c9", f.Species[0].Name)
}

func TestBuild_TwoSpecies(t *testing.T) {
	f, err := Load(twoSpeciesPath)
	require.NoError(t, err)

	d, err := Build(f)
	require.NoError(t, err)

	assert.Equal(t, 2, d.Species().Len())
	assert.Equal(t, 2, d.Initial.Len())
	assert.Equal(t, []int{0, 2}, d.Management.Counts())
	assert.Equal(t, 12, d.Months())
	assert.Equal(t, 12, d.Climate.Len())
	assert.Equal(t, series.Month{Year: 2015, Month: time.December}, d.Climate.End())
	assert.Equal(t, series.Month{Year: 2012, Month: time.January}, d.Initial.Planted(1))
	assert.Equal(t, management.Event{Age: 3.75, Stems: 600, StemFraction: 0.9, RootFraction: 1, FoliageFraction: 1}, d.Management.Event(1, 1))
	assert.Equal(t, int32(2), d.Site.SoilClass)
	assert.Len(t, d.Hash, 64)
}

func TestBuild_SpeciesViewKeepsStoresInStep(t *testing.T) {
	f, err := Load(twoSpeciesPath)
	require.NoError(t, err)
	d, err := Build(f)
	require.NoError(t, err)

	_, canAllocate := d.Species().(interface{ AllocateSpecies([]string) error })
	assert.False(t, canAllocate)

	require.NoError(t, d.Roster.Allocate([]string{"Acacia"}))
	assert.Equal(t, 3, d.Species().Len())
	assert.Equal(t, 3, d.Initial.Len())
	assert.Equal(t, 3, d.Management.SpeciesCount())
	assert.Equal(t, 0, d.Management.AllocateManagement(2))
}

func TestBuild_DuplicateSpecies(t *testing.T) {
	f, err := Parse([]byte(minimalRun + `
  - name: Pinus
    planted: "2011-01"
    fertility: 0.5
    stems: 800
    biomass: {stem: 1, foliage: 1, root: 1}
`))
	require.NoError(t, err)

	_, err = Build(f)
	require.Error(t, err)
	assert.True(t, species.IsDuplicateSpecies(err))
}

func TestBuild_NormalizedNamesCollide(t *testing.T) {
	f, err := Parse([]byte(speciesRun("Abies \u00e9", "Abies e\u0301")))
	require.NoError(t, err)

	_, err = Build(f)
	assert.True(t, species.IsDuplicateSpecies(err))
}

func TestBuild_NoSpecies(t *testing.T) {
	f, err := Parse([]byte(`
from: "2015-01"
to: "2015-12"
site: {latitude: 0}
`))
	require.NoError(t, err)

	_, err = Build(f)
	require.Error(t, err)
	assert.True(t, species.IsInvalidArgument(err))
}

func TestBuild_InvalidRange(t *testing.T) {
	f, err := Parse([]byte(`
from: "2015-06"
to: "2015-05"
site: {latitude: 0}
`))
	require.NoError(t, err)

	_, err = Build(f)
	require.Error(t, err)
	assert.True(t, series.IsInvalidRange(err))
}

func TestBuild_NoClimate(t *testing.T) {
	f, err := Parse([]byte(minimalRun))
	require.NoError(t, err)

	d, err := Build(f)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Climate.Len())
	assert.Equal(t, d.From, d.Climate.Start)
}

func TestHash_StableAndContentSensitive(t *testing.T) {
	a, err := Parse([]byte(minimalRun))
	require.NoError(t, err)
	b, err := Parse([]byte(minimalRun))
	require.NoError(t, err)

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	b.Species[0].Stems = 999
	hc, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)
}
