package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialIDs(t *testing.T) {
	g := NewSequentialIDs()
	assert.Equal(t, "run-0001", g.Generate())
	assert.Equal(t, "run-0002", g.Generate())

	g.Reset()
	assert.Equal(t, "run-0001", g.Generate())
}

func TestSequentialIDs_ThreadSafe(t *testing.T) {
	g := NewSequentialIDs()
	var wg sync.WaitGroup
	ids := make(chan string, 200)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				ids <- g.Generate()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %s generated twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, 200)
}

func TestFile_Defaults(t *testing.T) {
	f := File(Options{})
	assert.Equal(t, "2015-01", f.From)
	assert.Equal(t, "2015-12", f.To)
	assert.Len(t, f.Climate.Months, 12)
	assert.Equal(t, []string{"Pinus"}, f.SpeciesNames())
}

func TestFile_ToFollowsMonths(t *testing.T) {
	f := File(Options{From: "2015-06", Months: 200})
	assert.Equal(t, "2032-01", f.To)
}

func TestDataset(t *testing.T) {
	d := Dataset(t, Options{Species: []string{"Pinus", "Eucalyptus"}, Months: 24})
	require.Equal(t, 2, d.Species().Len())
	assert.Equal(t, 24, d.Months())
	assert.Equal(t, 24, d.Climate.Len())
}
