package sim

import (
	"errors"
	"fmt"

	"github.com/roach88/threepg/internal/series"
)

// ErrClimateExhausted is returned when a run reaches a month with no forcing.
var ErrClimateExhausted = errors.New("climate series exhausted")

// ErrSpeciesMismatch is returned when ensemble members disagree on species.
var ErrSpeciesMismatch = errors.New("ensemble members have different species")

func climateExhausted(m series.Month) error {
	return fmt.Errorf("month %s: %w", m, ErrClimateExhausted)
}
