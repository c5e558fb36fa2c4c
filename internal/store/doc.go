// Package store provides SQLite-backed storage for finished simulation runs.
//
// A stored run is written once, in a single transaction, and never updated:
//   - runs: one row per run (id, dataset name, run-file hash, first month)
//   - run_species: the species registry of the run, in index order
//   - stand_months: stand-level trajectory, one row per month offset
//   - species_months: per-species trajectory, one row per species and month
//
// Writing the same run id twice is a no-op. Every read orders by a
// deterministic key (run id, species index, month offset).
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Trajectory column names come from the series package; schema.sql must
// declare a column for each of them.
package store
