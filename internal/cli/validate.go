package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <run.yaml>",
		Short: "Validate a run file without running it",
		Long: `Validate a run file against the run schema and build its dataset.

Checks the YAML against the embedded CUE schema, registers the species
(rejecting duplicates) and loads management and climate, then prints a
summary of what a run would use.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	configureLogging(opts, cmd.ErrOrStderr())
	formatter := newFormatter(opts, cmd)

	d, err := LoadDataset(path)
	if err != nil {
		code := loadErrorCode(err)
		if code == ErrCodeNotFound {
			return formatter.Fail(ExitCommandError, code, err)
		}
		return formatter.Fail(ExitFailure, code, err)
	}

	slog.Debug("dataset built", "path", path, "species", d.Species().Len(), "hash", d.Hash)
	return formatter.Success(summarizeDataset(d))
}
