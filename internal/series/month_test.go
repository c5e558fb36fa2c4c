package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2015-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2015, Month: time.March}, m)
	assert.Equal(t, "2015-03", m.String())

	_, err = ParseMonth("2015-13")
	assert.Error(t, err)
	_, err = ParseMonth("March 2015")
	assert.Error(t, err)
}

func TestMonth_AddMonths(t *testing.T) {
	m := Month{Year: 2015, Month: time.November}

	assert.Equal(t, Month{Year: 2016, Month: time.January}, m.AddMonths(2))
	assert.Equal(t, Month{Year: 2015, Month: time.January}, m.AddMonths(-10))
	assert.Equal(t, Month{Year: 2014, Month: time.December}, m.AddMonths(-11))
	assert.Equal(t, m, m.AddMonths(0))
}

func TestMonth_MonthsUntil(t *testing.T) {
	from := Month{Year: 2015, Month: time.January}

	assert.Equal(t, 11, from.MonthsUntil(Month{Year: 2015, Month: time.December}))
	assert.Equal(t, 0, from.MonthsUntil(from))
	assert.Equal(t, -1, from.MonthsUntil(Month{Year: 2014, Month: time.December}))
	assert.True(t, Month{Year: 2014, Month: time.December}.Before(from))
	assert.False(t, from.Before(from))
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2020, time.July, 19, 13, 0, 0, 0, time.UTC))
	assert.Equal(t, Month{Year: 2020, Month: time.July}, m)
	assert.Equal(t, time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), m.Time())
}
