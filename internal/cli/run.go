package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/sim"
	"github.com/roach88/threepg/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Database string
	Ensemble int
	Parallel int

	// IDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDs sim.RunIDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <run.yaml>",
		Short: "Run a run file and store the trajectory",
		Long: `Run a run file month by month and store the resulting trajectory.

The database is created if it doesn't exist. With --ensemble n, n
replicate runs of the same dataset are simulated concurrently and each is
stored under its own run id. Replicates share the dataset and the built-in
physiology, so their trajectories are identical; use them to exercise
concurrent runs and storage, not to sample variation.

Example:
  threepg run --db ./runs.db ./stand.yaml
  threepg run --db ./runs.db --ensemble 8 --parallel 4 ./stand.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Ensemble, "ensemble", 1, "number of replicate runs to simulate")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", 0, "maximum concurrent runs (0 = unlimited)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runSimulation(opts *RunOptions, path string, cmd *cobra.Command) error {
	configureLogging(opts.RootOptions, cmd.ErrOrStderr())
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Ensemble < 1 {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric,
			fmt.Errorf("--ensemble must be at least 1, got %d", opts.Ensemble))
	}

	d, err := LoadDataset(path)
	if err != nil {
		code := loadErrorCode(err)
		if code == ErrCodeNotFound {
			return formatter.Fail(ExitCommandError, code, err)
		}
		return formatter.Fail(ExitFailure, code, err)
	}
	slog.Info("dataset loaded", "path", path, "species", d.Species().Len(), "months", d.Months())

	slog.Info("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	// Use command's context if available (for testing), otherwise create one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ids := opts.IDs
	if ids == nil {
		ids = sim.UUIDv7Generator{}
	}

	runs, err := simulate(ctx, d, opts.Ensemble, opts.Parallel, ids)
	if err != nil {
		return formatter.Fail(ExitFailure, ErrCodeSimulation, err)
	}

	result := RunResult{Database: opts.Database, Runs: []RunOutcome{}}
	names := d.Species().Names()
	for _, r := range runs {
		inserted, err := st.WriteRun(ctx, r)
		if err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err)
		}
		slog.Info("run stored", "run", r.ID, "months", r.Trajectory.Len(), "inserted", inserted)
		result.Runs = append(result.Runs, RunOutcome{
			ID:       r.ID,
			Months:   r.Trajectory.Len(),
			Inserted: inserted,
			Final:    finalState(names, r.Trajectory),
		})
	}

	return formatter.Success(result)
}

// simulate runs d once, or as n concurrent replicate runs.
func simulate(ctx context.Context, d *config.Dataset, n, parallel int, ids sim.RunIDGenerator) ([]*sim.Run, error) {
	if n == 1 {
		r, err := sim.NewDriver(d, sim.WithIDs(ids)).Run(ctx)
		if err != nil {
			return nil, err
		}
		return []*sim.Run{r}, nil
	}

	members := make([]sim.Member, n)
	for i := range members {
		members[i] = sim.Member{Dataset: d}
	}
	return sim.RunEnsemble(ctx, members, parallel, sim.WithIDs(ids))
}
