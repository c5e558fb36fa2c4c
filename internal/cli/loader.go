package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/roach88/threepg/internal/config"
	"github.com/roach88/threepg/internal/store"
)

// Error codes for CLI output.
const (
	ErrCodeGeneric    = "E000"
	ErrCodeNotFound   = "E001" // run file or stored run does not exist
	ErrCodeParse      = "E002" // run file is not valid YAML for the run schema
	ErrCodeSchema     = "E003" // run file violates the CUE schema
	ErrCodeDataset    = "E004" // run file is well formed but cannot be built
	ErrCodeSimulation = "E005"
	ErrCodeStore      = "E006"
)

// LoadError represents an error that occurred while loading a run file.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadDataset reads, validates and builds the run file at path.
// Every failure is a *LoadError carrying the matching error code.
func LoadDataset(path string) (*config.Dataset, error) {
	f, err := config.Load(path)
	if err != nil {
		var se *config.SchemaError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("run file not found: %s", path), Err: err}
		case errors.As(err, &se):
			return nil, &LoadError{Code: ErrCodeSchema, Message: se.Error(), Err: err}
		default:
			return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Err: err}
		}
	}

	d, err := config.Build(f)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDataset, Message: err.Error(), Err: err}
	}
	return d, nil
}

// loadErrorCode returns the CLI error code for err.
func loadErrorCode(err error) string {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrCodeGeneric
}

// openExisting opens the store at path without creating a new database.
func openExisting(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("database not found: %s", path), Err: err}
		}
		return nil, &LoadError{Code: ErrCodeStore, Message: err.Error(), Err: err}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeStore, Message: err.Error(), Err: err}
	}
	return st, nil
}
