// Package series implements the growable, month-indexed column stores used
// for climate forcing and stand trajectories.
//
// Every series is a Frame: a fixed set of named columns sharing one capacity
// and one populated length (n_m). Frames grow in decade blocks of 120 months
// and only when the caller asks. The driver loop checks NeedsGrowth before
// writing the next month and calls GrowByDecade; the frame itself does no
// bounds checking beyond what Go does for any slice.
//
// Growth reallocates one backing buffer for all columns at once, so columns
// can never end up with different lengths. Slices returned by Column before a
// growth refer to the old buffer and must be fetched again.
package series
