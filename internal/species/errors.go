package species

import (
	"errors"
	"fmt"
)

// Error reports a rejected species allocation.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Name is the offending species name for DUPLICATE_SPECIES.
	Name string
}

// ErrorCode categorizes species allocation errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates an empty species batch.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeDuplicateSpecies indicates a name already present or repeated in the batch.
	ErrCodeDuplicateSpecies ErrorCode = "DUPLICATE_SPECIES"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (species=%q)", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if err is an empty-batch allocation error.
func IsInvalidArgument(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidArgument
	}
	return false
}

// IsDuplicateSpecies returns true if err is a name collision error.
func IsDuplicateSpecies(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeDuplicateSpecies
	}
	return false
}

func newEmptyBatchError() *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: "species batch is empty",
	}
}

func newDuplicateError(name string) *Error {
	return &Error{
		Code:    ErrCodeDuplicateSpecies,
		Message: "species name already registered",
		Name:    name,
	}
}
