package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/testutil"
)

// twoSpeciesRun is the shared example run file.
var twoSpeciesRun = filepath.Join("..", "..", "testdata", "runs", "two_species.yaml")

// writeRunFile writes f as YAML into a temporary directory and returns its path.
func writeRunFile(t *testing.T, f *config.File) string {
	t.Helper()
	data, err := yaml.Marshal(f)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// syntheticRun writes the testutil run file for opts.
func syntheticRun(t *testing.T, opts testutil.Options) string {
	t.Helper()
	return writeRunFile(t, testutil.File(opts))
}
