// Package species implements the species registry every species-indexed
// store in threepg is sized from.
//
// A Registry is an ordered, append-only list of unique species names. The
// index of a species is fixed once assigned; registries never shrink or
// reorder.
//
// Stores that keep one value per species (initial conditions, management
// logs, per-species trajectories) do not extend the registry. They implement
// GrowsWithSpeciesCount and are attached to a Roster, which validates a
// batch of names first and only then grows the registry and every attached
// store together. A rejected batch leaves everything unchanged.
//
// Nothing in this package is safe for concurrent mutation. One simulation
// run owns its roster.
package species
