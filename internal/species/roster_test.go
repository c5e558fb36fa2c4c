package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// column is a minimal per-species store used to observe roster growth.
type column struct {
	values []float64
	calls  []int
}

func (c *column) GrowSpecies(n int) {
	c.calls = append(c.calls, n)
	grown := make([]float64, n)
	copy(grown, c.values)
	c.values = grown
}

func TestRoster_AttachGrowsToCurrentCount(t *testing.T) {
	reg, err := NewRegistry("Pinus", "Eucalyptus")
	require.NoError(t, err)
	roster := NewRoster(reg)

	col := &column{}
	roster.Attach(col)

	assert.Len(t, col.values, 2)
}

func TestRoster_AllocateGrowsEveryDependent(t *testing.T) {
	roster := NewRoster(nil)
	a, b := &column{}, &column{}
	roster.Attach(a)
	roster.Attach(b)

	require.NoError(t, roster.Allocate([]string{"Pinus"}))
	a.values[0] = 1.5

	require.NoError(t, roster.Allocate([]string{"Eucalyptus", "Acacia"}))

	assert.Equal(t, 3, roster.Len())
	assert.Equal(t, []float64{1.5, 0, 0}, a.values)
	assert.Len(t, b.values, 3)
	assert.Equal(t, []int{0, 1, 3}, b.calls)
}

func TestRoster_FailedAllocateMutatesNothing(t *testing.T) {
	reg, err := NewRegistry("Pinus")
	require.NoError(t, err)
	roster := NewRoster(reg)
	col := &column{}
	roster.Attach(col)

	err = roster.Allocate([]string{"Acacia", "Pinus"})
	require.Error(t, err)
	assert.True(t, IsDuplicateSpecies(err))

	assert.Equal(t, 1, roster.Len())
	assert.Len(t, col.values, 1)
	assert.Equal(t, []int{1}, col.calls, "dependent must not be touched by a rejected batch")

	err = roster.Allocate(nil)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, []int{1}, col.calls)
}

func TestRoster_RegistryViewFollowsAllocate(t *testing.T) {
	roster := NewRoster(nil)
	view := roster.Registry()
	require.NoError(t, roster.Allocate([]string{"Pinus"}))
	assert.Equal(t, []string{"Pinus"}, view.Names())
	assert.Equal(t, 1, view.Len())
}

func TestRoster_RegistryViewCannotAllocate(t *testing.T) {
	roster := NewRoster(nil)
	col := &column{}
	roster.Attach(col)
	require.NoError(t, roster.Allocate([]string{"Pinus"}))

	view := roster.Registry()
	_, isRegistry := view.(*Registry)
	assert.False(t, isRegistry, "view must not expose the mutable registry")
	_, canAllocate := view.(interface{ AllocateSpecies([]string) error })
	assert.False(t, canAllocate)

	require.NoError(t, roster.Allocate([]string{"Eucalyptus"}))
	assert.Equal(t, roster.Len(), len(col.values))
}

func TestRoster_SourceRegistryIsCopied(t *testing.T) {
	reg, err := NewRegistry("Pinus")
	require.NoError(t, err)
	roster := NewRoster(reg)
	col := &column{}
	roster.Attach(col)

	require.NoError(t, reg.AllocateSpecies([]string{"Eucalyptus"}))

	assert.Equal(t, 1, roster.Len())
	assert.Len(t, col.values, 1)
	assert.Equal(t, []string{"Pinus"}, roster.Registry().Names())
}

func TestRoster_ViewMatchesRegistry(t *testing.T) {
	reg, err := NewRegistry("Pinus", "Eucalyptus")
	require.NoError(t, err)
	roster := NewRoster(reg)

	assert.True(t, roster.Registry().Matches(reg))
	assert.True(t, reg.Matches(roster.Registry()))
	assert.True(t, roster.Registry().Matches(roster.Registry()))
	assert.False(t, roster.Registry().Matches(NewRoster(nil).Registry()))
	assert.False(t, roster.Registry().Matches(nil))
}
