package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/threepg/internal/series"
)

// ErrRunNotFound is returned by ReadRun when no run has the given id.
var ErrRunNotFound = errors.New("run not found")

// RunSummary describes a stored run without its trajectory.
type RunSummary struct {
	ID         string
	Name       string
	ConfigHash string
	From       series.Month
	To         series.Month
	Months     int
	Species    int
}

// StoredRun is a run read back from the store.
type StoredRun struct {
	RunSummary
	SpeciesNames []string
	Trajectory   *series.Trajectory[float64]
}

// ListRuns returns a summary of every stored run ordered by id.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	return s.listRuns(ctx, "", nil)
}

// FindRunsByHash returns the runs built from the run file with the given
// hash, ordered by id.
func (s *Store) FindRunsByHash(ctx context.Context, hash string) ([]RunSummary, error) {
	return s.listRuns(ctx, "WHERE r.config_hash = ?", []any{hash})
}

func (s *Store) listRuns(ctx context.Context, where string, args []any) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.name, r.config_hash, r.from_month, r.to_month, r.months,
		       (SELECT COUNT(*) FROM run_species rs WHERE rs.run_id = r.id)
		FROM runs r
		`+where+`
		ORDER BY r.id ASC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (RunSummary, error) {
	var (
		sum      RunSummary
		from, to string
	)
	if err := row.Scan(&sum.ID, &sum.Name, &sum.ConfigHash, &from, &to, &sum.Months, &sum.Species); err != nil {
		return RunSummary{}, err
	}
	var err error
	if sum.From, err = series.ParseMonth(from); err != nil {
		return RunSummary{}, fmt.Errorf("run %s: from_month: %w", sum.ID, err)
	}
	if sum.To, err = series.ParseMonth(to); err != nil {
		return RunSummary{}, fmt.Errorf("run %s: to_month: %w", sum.ID, err)
	}
	return sum, nil
}

// ReadRun loads a stored run and rebuilds its trajectory.
// Returns ErrRunNotFound (wrapped) when the id is unknown.
func (s *Store) ReadRun(ctx context.Context, id string) (*StoredRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT r.id, r.name, r.config_hash, r.from_month, r.to_month, r.months,
		       (SELECT COUNT(*) FROM run_species rs WHERE rs.run_id = r.id)
		FROM runs r
		WHERE r.id = ?
	`, id)
	sum, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %s: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	names, err := s.readSpeciesNames(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	tr, err := series.NewTrajectory[float64](sum.From, sum.To, len(names))
	if err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}
	for i := 0; i < sum.Months; i++ {
		if tr.NeedsGrowth() {
			tr.GrowByDecade()
		}
		tr.Advance()
	}

	if err := s.readStand(ctx, id, tr); err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}
	if err := s.readSpecies(ctx, id, tr); err != nil {
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	return &StoredRun{RunSummary: sum, SpeciesNames: names, Trajectory: tr}, nil
}

func (s *Store) readSpeciesNames(ctx context.Context, id string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM run_species
		WHERE run_id = ?
		ORDER BY idx ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query species: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan species: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate species: %w", err)
	}
	return names, nil
}

func (s *Store) readStand(ctx context.Context, id string, tr *series.Trajectory[float64]) error {
	cols := series.StandColumns()
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT t, %s FROM stand_months
		WHERE run_id = ?
		ORDER BY t ASC
	`, strings.Join(cols, ", ")), id)
	if err != nil {
		return fmt.Errorf("query stand months: %w", err)
	}
	defer rows.Close()

	frame := tr.Stand()
	for rows.Next() {
		t, vals, err := scanMonth(rows, len(cols))
		if err != nil {
			return fmt.Errorf("scan stand month: %w", err)
		}
		if t < 0 || t >= frame.Len() {
			return fmt.Errorf("stand month %d outside stored length %d", t, frame.Len())
		}
		for c, v := range vals {
			frame.Set(c, t, v)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate stand months: %w", err)
	}
	return nil
}

func (s *Store) readSpecies(ctx context.Context, id string, tr *series.Trajectory[float64]) error {
	cols := series.SpeciesColumns()
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT species_idx, t, %s FROM species_months
		WHERE run_id = ?
		ORDER BY species_idx ASC, t ASC
	`, strings.Join(cols, ", ")), id)
	if err != nil {
		return fmt.Errorf("query species months: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sp int
		vals := make([]float64, len(cols))
		dest := make([]any, 0, 2+len(cols))
		var t int
		dest = append(dest, &sp, &t)
		for i := range vals {
			dest = append(dest, &vals[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan species month: %w", err)
		}
		if sp < 0 || sp >= tr.SpeciesCount() {
			return fmt.Errorf("species index %d outside registry of %d", sp, tr.SpeciesCount())
		}
		frame := tr.Species(sp)
		if t < 0 || t >= frame.Len() {
			return fmt.Errorf("species %d month %d outside stored length %d", sp, t, frame.Len())
		}
		for c, v := range vals {
			frame.Set(c, t, v)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate species months: %w", err)
	}
	return nil
}

func scanMonth(rows *sql.Rows, width int) (int, []float64, error) {
	var t int
	vals := make([]float64, width)
	dest := make([]any, 0, 1+width)
	dest = append(dest, &t)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	if err := rows.Scan(dest...); err != nil {
		return 0, nil, err
	}
	return t, vals, nil
}
