package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/sim"
	"github.com/roach88/threepg/internal/testutil"
)

// createTestStore creates a new store in a temporary directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// growingStems adds one tDM/ha of stem biomass per month and sets the soil
// water to the month offset so stored values are distinguishable.
var growingStems = sim.PhysiologyFunc(func(sc *sim.StepContext) error {
	for i := 0; i < sc.State.Len(); i++ {
		sc.State.Stand.BiomStem[i] += 1
		sc.State.Growth.NPP[i] = float64(i + 1)
	}
	sc.State.TotalAvailableSoilWater = float64(sc.Index)
	return nil
})

// createTestRun runs the driver over a synthetic dataset with the given id.
func createTestRun(t *testing.T, id string, opts testutil.Options) *sim.Run {
	t.Helper()
	d := testutil.Dataset(t, opts)
	r, err := sim.NewDriver(d,
		sim.WithIDs(sim.NewFixedGenerator(id)),
		sim.WithPhysiology(growingStems),
	).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return r
}

// createPartialRun runs d until its climate runs out and returns the run.
func createPartialRun(t *testing.T, d *config.Dataset) *sim.Run {
	t.Helper()
	r, err := sim.NewDriver(d, sim.WithIDs(sim.NewFixedGenerator("run-partial"))).Run(context.Background())
	if !errors.Is(err, sim.ErrClimateExhausted) {
		t.Fatalf("Run() error = %v, expected ErrClimateExhausted", err)
	}
	return r
}
