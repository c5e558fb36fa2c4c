// Package arrays holds the resize primitive shared by every growable store in
// threepg, plus the numeric type constraints the generic stores are built on.
package arrays

const (
	// MonthsPerDecade is the fixed block by which time-indexed storage grows.
	MonthsPerDecade = 120

	// DefaultCapacity is the initial timestep capacity when no size is given.
	DefaultCapacity = MonthsPerDecade
)

// Float is the precision a simulation run is carried out in.
type Float interface {
	~float32 | ~float64
}

// Index is the integer type used for categorical per-species fields.
type Index interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Resize returns a slice of length n holding the first min(len(s), n)
// elements of s followed by zero values.
//
// Growing always allocates, so slices handed out before the resize keep
// pointing at the old data and are never written through by accident.
// Shrinking returns a truncated copy.
func Resize[T any](s []T, n int) []T {
	if n < 0 {
		panic("arrays: negative length")
	}
	out := make([]T, n)
	copy(out, s)
	return out
}

// Decades returns the number of decade blocks needed so that
// DefaultCapacity + blocks*MonthsPerDecade covers months.
func Decades(months int) int {
	if months <= DefaultCapacity {
		return 0
	}
	extra := months - DefaultCapacity
	return (extra + MonthsPerDecade - 1) / MonthsPerDecade
}
