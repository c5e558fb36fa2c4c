package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/threepg/internal/testutil"
)

func TestWriteRun_InsertsEveryMonth(t *testing.T) {
	s := createTestStore(t)
	r := createTestRun(t, "run-1", testutil.Options{Species: []string{"Pinus", "Eucalyptus"}})

	inserted, err := s.WriteRun(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, inserted)

	var stand, species, names int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM stand_months WHERE run_id = ?", "run-1").Scan(&stand))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM species_months WHERE run_id = ?", "run-1").Scan(&species))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM run_species WHERE run_id = ?", "run-1").Scan(&names))
	assert.Equal(t, 12, stand)
	assert.Equal(t, 24, species)
	assert.Equal(t, 2, names)

	var month string
	require.NoError(t, s.db.QueryRow(
		"SELECT month FROM stand_months WHERE run_id = ? AND t = 11", "run-1",
	).Scan(&month))
	assert.Equal(t, "2015-12", month)
}

func TestWriteRun_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	r := createTestRun(t, "run-1", testutil.Options{})

	inserted, err := s.WriteRun(ctx, r)
	require.NoError(t, err)
	require.True(t, inserted)

	// Second write of the same id is ignored, even with different contents.
	other := createTestRun(t, "run-1", testutil.Options{Months: 24})
	inserted, err = s.WriteRun(ctx, other)
	require.NoError(t, err)
	assert.False(t, inserted)

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM stand_months WHERE run_id = ?", "run-1").Scan(&count))
	assert.Equal(t, 12, count)
}

func TestWriteRun_PartialRun(t *testing.T) {
	s := createTestStore(t)
	d := testutil.Dataset(t, testutil.Options{To: "2016-06"})
	r := createPartialRun(t, d)

	inserted, err := s.WriteRun(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, inserted)

	var months int
	var to string
	require.NoError(t, s.db.QueryRow("SELECT months, to_month FROM runs WHERE id = ?", r.ID).Scan(&months, &to))
	assert.Equal(t, 12, months)
	assert.Equal(t, "2016-06", to)
}

func TestWriteRun_CancelledContext(t *testing.T) {
	s := createTestStore(t)
	r := createTestRun(t, "run-1", testutil.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.WriteRun(ctx, r)
	require.Error(t, err)

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&count))
	assert.Zero(t, count)
}

func TestInsertSQL(t *testing.T) {
	got := insertSQL("t", []string{"a"}, []string{"b", "c"})
	assert.Equal(t, "INSERT INTO t (a, b, c) VALUES (?, ?, ?)", got)
}
