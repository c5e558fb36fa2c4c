package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/testutil"
)

func TestRunEnsemble_IndependentRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := testutil.Dataset(t, testutil.Options{Species: []string{"Pinus", "Eucalyptus"}})
	members := make([]Member, 8)
	for i := range members {
		members[i] = Member{Dataset: d, Physiology: stemGrowth(float64(i))}
	}

	runs, err := RunEnsemble(context.Background(), members, 3, WithIDs(testutil.NewSequentialIDs()))
	require.NoError(t, err)
	require.Len(t, runs, len(members))

	ids := make(map[string]bool)
	for i, r := range runs {
		require.NotNil(t, r)
		ids[r.ID] = true
		assert.Equal(t, 12, r.Trajectory.Len())
		assert.InDelta(t, 10+12*float64(i), r.Trajectory.Species(1).At(series.BiomStem, 11), 1e-9, "member %d", i)
	}
	assert.Len(t, ids, len(members), "every run gets its own id")
	assert.NotSame(t, runs[0].State, runs[1].State)
}

func TestRunEnsemble_SpeciesMismatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := testutil.Dataset(t, testutil.Options{Species: []string{"Pinus", "Eucalyptus"}})
	b := testutil.Dataset(t, testutil.Options{Species: []string{"Eucalyptus", "Pinus"}})

	_, err := RunEnsemble(context.Background(), []Member{{Dataset: a}, {Dataset: b}}, 0)
	assert.ErrorIs(t, err, ErrSpeciesMismatch)
}

func TestRunEnsemble_FailureCancelsOthers(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := testutil.Dataset(t, testutil.Options{})
	boom := errors.New("diverged")
	members := []Member{
		{Dataset: d},
		{Dataset: d, Physiology: PhysiologyFunc(func(*StepContext) error { return boom })},
		{Dataset: d},
	}

	runs, err := RunEnsemble(context.Background(), members, 1)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "member 1")
	assert.Nil(t, runs)
}

func TestRunEnsemble_Empty(t *testing.T) {
	runs, err := RunEnsemble(context.Background(), nil, 0)
	assert.NoError(t, err)
	assert.Nil(t, runs)
}
