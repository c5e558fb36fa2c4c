// Package management stores the thinning and management events configured
// for each species.
//
// The log is jagged: species i has its own event count and its own five
// attribute arrays (age, residual stems, stem/root/foliage thinning
// fractions). Appending to one species never reallocates another's arrays.
//
// Events are kept in the order they were added. The store does not sort by
// age; InOrder reports whether a species' log is chronological so callers
// that depend on ordering can check it.
//
// Unmanaged returns the stateless "no management configured" schedule.
package management
