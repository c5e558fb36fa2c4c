package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/roach88/threepg/internal/series"
	"github.com/roach88/threepg/internal/sim"
)

// WriteRun stores a run and its populated trajectory in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: writing a run id that is
// already stored leaves the stored rows untouched and reports inserted=false.
//
// Only the populated months are written, so a run that stopped early (for
// example on ErrClimateExhausted) is stored up to its last recorded month.
func (s *Store) WriteRun(ctx context.Context, r *sim.Run) (inserted bool, err error) {
	tr := r.Trajectory
	names := r.Dataset.Species().Names()
	if tr.SpeciesCount() != len(names) {
		return false, fmt.Errorf("write run %s: trajectory has %d species, registry %d",
			r.ID, tr.SpeciesCount(), len(names))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("write run: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, name, config_hash, from_month, to_month, months)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.Dataset.Name,
		r.Dataset.Hash,
		tr.From.String(),
		tr.To.String(),
		tr.Len(),
	)
	if err != nil {
		return false, fmt.Errorf("write run %s: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write run %s: %w", r.ID, err)
	}
	if n == 0 {
		return false, nil
	}

	for i, name := range names {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_species (run_id, idx, name) VALUES (?, ?, ?)`,
			r.ID, i, name,
		); err != nil {
			return false, fmt.Errorf("write run %s: species %q: %w", r.ID, name, err)
		}
	}

	if err := writeStand(ctx, tx, r.ID, tr); err != nil {
		return false, fmt.Errorf("write run %s: %w", r.ID, err)
	}
	for sp := 0; sp < tr.SpeciesCount(); sp++ {
		if err := writeSpecies(ctx, tx, r.ID, sp, tr.Species(sp)); err != nil {
			return false, fmt.Errorf("write run %s: species %d: %w", r.ID, sp, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("write run %s: commit: %w", r.ID, err)
	}
	return true, nil
}

func writeStand(ctx context.Context, tx *sql.Tx, runID string, tr *sim.Trajectory) error {
	cols := series.StandColumns()
	stmt, err := tx.PrepareContext(ctx, insertSQL("stand_months", []string{"run_id", "t", "month"}, cols))
	if err != nil {
		return fmt.Errorf("prepare stand insert: %w", err)
	}
	defer stmt.Close()

	frame := tr.Stand()
	for t := 0; t < frame.Len(); t++ {
		args := make([]any, 0, 3+len(cols))
		args = append(args, runID, t, tr.MonthAt(t).String())
		for c := range cols {
			args = append(args, frame.At(c, t))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert stand month %d: %w", t, err)
		}
	}
	return nil
}

func writeSpecies(ctx context.Context, tx *sql.Tx, runID string, sp int, frame *series.Frame[float64]) error {
	cols := series.SpeciesColumns()
	stmt, err := tx.PrepareContext(ctx, insertSQL("species_months", []string{"run_id", "species_idx", "t"}, cols))
	if err != nil {
		return fmt.Errorf("prepare species insert: %w", err)
	}
	defer stmt.Close()

	for t := 0; t < frame.Len(); t++ {
		args := make([]any, 0, 3+len(cols))
		args = append(args, runID, sp, t)
		for c := range cols {
			args = append(args, frame.At(c, t))
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert month %d: %w", t, err)
		}
	}
	return nil
}

// insertSQL builds an INSERT over key columns followed by value columns.
// Column names come from the series package, never from input.
func insertSQL(table string, keys, cols []string) string {
	all := append(append([]string(nil), keys...), cols...)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(all)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(all, ", "), marks)
}
