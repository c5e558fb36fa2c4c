// Package testutil builds datasets and deterministic helpers for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/roach88/threepg/internal/config"
)

// Options describes a synthetic run file.
type Options struct {
	Species []string // default: Pinus
	From    string   // default: 2015-01
	To      string   // default: From + Months - 1 when Months is set, else 2015-12
	Months  int      // climate months to generate; default: 12

	// Thinnings are added to species index 0 in order.
	Thinnings []config.ThinningFile
}

// File returns a valid run file for opts. Every species is planted in
// 2010-01 with 1000 stems/ha and 10/3/4 tDM/ha stem/foliage/root biomass.
func File(opts Options) *config.File {
	if len(opts.Species) == 0 {
		opts.Species = []string{"Pinus"}
	}
	if opts.From == "" {
		opts.From = "2015-01"
	}
	if opts.Months == 0 {
		opts.Months = 12
	}

	f := &config.File{
		Name: "synthetic",
		From: opts.From,
		To:   opts.To,
		Site: config.SiteFile{
			Latitude:  -35,
			SoilClass: 2,
			ASW:       &config.SoilWaterFile{Initial: 100, Max: 200},
		},
		Climate: &config.ClimateFile{Start: opts.From},
	}
	for _, name := range opts.Species {
		f.Species = append(f.Species, config.SpeciesFile{
			Name:      name,
			Planted:   "2010-01",
			Fertility: 0.5,
			Stems:     1000,
			Biomass:   config.BiomassFile{Stem: 10, Foliage: 3, Root: 4},
		})
	}
	f.Species[0].Management = append(f.Species[0].Management, opts.Thinnings...)

	for m := 0; m < opts.Months; m++ {
		f.Climate.Months = append(f.Climate.Months, config.ClimateMonthFile{
			TmpMin: 5, TmpMax: 20, TmpAve: 12.5,
			Prcp: float64(50 + m%12), Srad: 15, CO2: 400, D13CAtm: -8, VPD: 1,
		})
	}
	if f.To == "" {
		var y, mo int
		fmt.Sscanf(opts.From, "%d-%d", &y, &mo)
		last := y*12 + mo - 1 + opts.Months - 1
		f.To = fmt.Sprintf("%04d-%02d", last/12, last%12+1)
	}
	return f
}

// Dataset validates and builds the run file for opts, failing the test on error.
func Dataset(t *testing.T, opts Options) *config.Dataset {
	t.Helper()
	f := File(opts)
	if err := config.Validate(f); err != nil {
		t.Fatalf("config.Validate() failed: %v", err)
	}
	d, err := config.Build(f)
	if err != nil {
		t.Fatalf("config.Build() failed: %v", err)
	}
	return d
}
