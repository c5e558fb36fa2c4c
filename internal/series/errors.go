package series

import (
	"errors"
	"fmt"
)

// ErrCodeInvalidRange identifies a trajectory whose end precedes its start.
const ErrCodeInvalidRange = "INVALID_RANGE"

// RangeError reports an invalid trajectory date range.
type RangeError struct {
	From Month
	To   Month
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: end month %s is before start month %s", ErrCodeInvalidRange, e.To, e.From)
}

// IsInvalidRange returns true if err is a RangeError.
func IsInvalidRange(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
