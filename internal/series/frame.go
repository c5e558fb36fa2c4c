package series

import (
	"fmt"

	"github.com/roach88/threepg/internal/arrays"
)

// Frame is a structure-of-arrays of named numeric columns that share one
// capacity and one populated length.
//
// Column c occupies buf[c*capacity : (c+1)*capacity].
type Frame[F arrays.Float] struct {
	names    []string
	buf      []F
	capacity int
	n        int
}

// NewFrame allocates a frame with the given column names at capacity months.
// A capacity below one uses arrays.DefaultCapacity.
func NewFrame[F arrays.Float](capacity int, names ...string) *Frame[F] {
	if capacity < 1 {
		capacity = arrays.DefaultCapacity
	}
	cols := make([]string, len(names))
	copy(cols, names)
	return &Frame[F]{
		names:    cols,
		buf:      make([]F, len(cols)*capacity),
		capacity: capacity,
	}
}

// Capacity returns the number of months allocated per column.
func (f *Frame[F]) Capacity() int { return f.capacity }

// Len returns the number of populated months (n_m).
func (f *Frame[F]) Len() int { return f.n }

// Width returns the number of columns.
func (f *Frame[F]) Width() int { return len(f.names) }

// Names returns a copy of the column names in column order.
func (f *Frame[F]) Names() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// ColumnIndex returns the index of the named column.
func (f *Frame[F]) ColumnIndex(name string) (int, bool) {
	for i, n := range f.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Column returns the storage of column c, of length Capacity.
// The slice is invalidated by GrowByDecade.
func (f *Frame[F]) Column(c int) []F {
	start := c * f.capacity
	return f.buf[start : start+f.capacity : start+f.capacity]
}

// Populated returns the populated prefix of column c, of length Len.
func (f *Frame[F]) Populated(c int) []F {
	return f.Column(c)[:f.n]
}

// At returns the value of column c at month offset t.
func (f *Frame[F]) At(c, t int) F {
	return f.buf[f.offset(c, t)]
}

// Set stores v in column c at month offset t.
func (f *Frame[F]) Set(c, t int, v F) {
	f.buf[f.offset(c, t)] = v
}

func (f *Frame[F]) offset(c, t int) int {
	if t < 0 || t >= f.capacity {
		panic(fmt.Sprintf("series: month offset %d outside capacity %d", t, f.capacity))
	}
	return c*f.capacity + t
}

// Advance marks one more month as populated and returns its offset.
// The caller must have grown the frame first when NeedsGrowth is true.
func (f *Frame[F]) Advance() int {
	if f.n >= f.capacity {
		panic(fmt.Sprintf("series: advance past capacity %d without GrowByDecade", f.capacity))
	}
	f.n++
	return f.n - 1
}

// NeedsGrowth reports whether the next month would fall past capacity.
func (f *Frame[F]) NeedsGrowth() bool {
	return f.n >= f.capacity
}

// GrowByDecade adds arrays.MonthsPerDecade months to every column.
// Existing values are preserved and the new months are zero.
func (f *Frame[F]) GrowByDecade() {
	f.resize(f.capacity + arrays.MonthsPerDecade)
}

// resize moves every column into one new buffer of the given capacity.
func (f *Frame[F]) resize(capacity int) {
	buf := arrays.Resize[F](nil, len(f.names)*capacity)
	for c := range f.names {
		copy(buf[c*capacity:c*capacity+f.capacity], f.Column(c))
	}
	f.buf = buf
	f.capacity = capacity
}
