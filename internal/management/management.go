package management

import (
	"github.com/roach88/threepg/internal/arrays"
)

// Event is one age-triggered thinning for a species.
type Event struct {
	// Age is the stand age in years at which the thinning applies.
	Age float64

	// Stems is the stocking left after thinning, in stems per hectare.
	Stems float64

	// StemFraction, RootFraction and FoliageFraction scale the per-tree
	// biomass removed with each thinned tree, relative to an average tree.
	StemFraction    float64
	RootFraction    float64
	FoliageFraction float64
}

// Schedule is read access to a management log.
type Schedule interface {
	SpeciesCount() int
	Count(sp int) int
	Event(sp, i int) Event
}

// Unmanaged returns the schedule with no events for any species. The value
// is zero-sized and stateless, so every caller shares the same empty log.
func Unmanaged() Schedule { return unmanaged{} }

type unmanaged struct{}

func (unmanaged) SpeciesCount() int    { return 0 }
func (unmanaged) Count(int) int        { return 0 }
func (unmanaged) Event(int, int) Event { panic("management: unmanaged schedule has no events") }

// Store is the per-species management log.
type Store struct {
	count   []int
	age     [][]float64
	stems   [][]float64
	stem    [][]float64
	root    [][]float64
	foliage [][]float64
}

// SpeciesCount returns the number of species with a (possibly empty) log.
func (s *Store) SpeciesCount() int {
	return len(s.count)
}

// Count returns n_man for species sp.
func (s *Store) Count(sp int) int {
	return s.count[sp]
}

// Counts returns a copy of n_man for every species.
func (s *Store) Counts() []int {
	out := make([]int, len(s.count))
	copy(out, s.count)
	return out
}

// GrowSpecies adds empty logs up to n species. Existing logs are untouched.
func (s *Store) GrowSpecies(n int) {
	if n <= len(s.count) {
		return
	}
	s.count = arrays.Resize(s.count, n)
	s.age = arrays.Resize(s.age, n)
	s.stems = arrays.Resize(s.stems, n)
	s.stem = arrays.Resize(s.stem, n)
	s.root = arrays.Resize(s.root, n)
	s.foliage = arrays.Resize(s.foliage, n)
}

// AllocateManagement adds one zeroed event to species sp and returns its
// index. Only sp's arrays are reallocated.
func (s *Store) AllocateManagement(sp int) int {
	n := s.count[sp] + 1
	if n == 1 {
		s.age[sp] = make([]float64, 1)
		s.stems[sp] = make([]float64, 1)
		s.stem[sp] = make([]float64, 1)
		s.root[sp] = make([]float64, 1)
		s.foliage[sp] = make([]float64, 1)
	} else {
		s.age[sp] = arrays.Resize(s.age[sp], n)
		s.stems[sp] = arrays.Resize(s.stems[sp], n)
		s.stem[sp] = arrays.Resize(s.stem[sp], n)
		s.root[sp] = arrays.Resize(s.root[sp], n)
		s.foliage[sp] = arrays.Resize(s.foliage[sp], n)
	}
	s.count[sp] = n
	return n - 1
}

// Add allocates an event for sp, stores ev in it and returns its index.
func (s *Store) Add(sp int, ev Event) int {
	i := s.AllocateManagement(sp)
	s.SetEvent(sp, i, ev)
	return i
}

// SetEvent stores ev as event i of species sp.
func (s *Store) SetEvent(sp, i int, ev Event) {
	s.age[sp][i] = ev.Age
	s.stems[sp][i] = ev.Stems
	s.stem[sp][i] = ev.StemFraction
	s.root[sp][i] = ev.RootFraction
	s.foliage[sp][i] = ev.FoliageFraction
}

// Event returns event i of species sp.
func (s *Store) Event(sp, i int) Event {
	return Event{
		Age:             s.age[sp][i],
		Stems:           s.stems[sp][i],
		StemFraction:    s.stem[sp][i],
		RootFraction:    s.root[sp][i],
		FoliageFraction: s.foliage[sp][i],
	}
}

// Ages returns the event age array of species sp.
func (s *Store) Ages(sp int) []float64 { return s.age[sp] }

// ResidualStems returns the post-thinning stocking array of species sp.
func (s *Store) ResidualStems(sp int) []float64 { return s.stems[sp] }

// StemFractions returns the stem thinning code array of species sp.
func (s *Store) StemFractions(sp int) []float64 { return s.stem[sp] }

// RootFractions returns the root thinning code array of species sp.
func (s *Store) RootFractions(sp int) []float64 { return s.root[sp] }

// FoliageFractions returns the foliage thinning code array of species sp.
func (s *Store) FoliageFractions(sp int) []float64 { return s.foliage[sp] }

// InOrder reports whether species sp's events have non-decreasing ages.
func InOrder(s Schedule, sp int) bool {
	if sp >= s.SpeciesCount() {
		return true
	}
	for i := 1; i < s.Count(sp); i++ {
		if s.Event(sp, i).Age < s.Event(sp, i-1).Age {
			return false
		}
	}
	return true
}

// Due returns the indices of species sp's events that fall in the month
// whose age is age: events with an age within half a month of it. Species
// beyond the schedule's range have no events.
func Due(s Schedule, sp int, age float64) []int {
	if sp >= s.SpeciesCount() {
		return nil
	}
	const halfMonth = 1.0 / 24
	var due []int
	for i := 0; i < s.Count(sp); i++ {
		a := s.Event(sp, i).Age
		if a >= age-halfMonth && a < age+halfMonth {
			due = append(due, i)
		}
	}
	return due
}
