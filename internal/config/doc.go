// Package config loads a run file and builds the dataset a simulation run
// starts from.
//
// A run file is YAML. Decoding is strict: unknown fields are rejected so
// typos fail loudly. The decoded file is then checked against an embedded
// CUE schema (schema.cue) for formats and ranges, species names are put in
// Unicode NFC form, and Build assembles the species roster with its
// initial-condition and management stores, the site, and the climate series.
//
// Errors from species allocation and trajectory ranges are returned
// unchanged (wrapped), so species.IsDuplicateSpecies and
// series.IsInvalidRange work on Build's result.
package config
