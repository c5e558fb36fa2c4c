package series

import (
	"fmt"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Time returns midnight UTC on the first day of the month.
func (m Month) Time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// ordinal counts months since year 0.
func (m Month) ordinal() int {
	return m.Year*12 + int(m.Month) - 1
}

// AddMonths returns the month k months after m (k may be negative).
func (m Month) AddMonths(k int) Month {
	o := m.ordinal() + k
	y, mo := o/12, o%12
	if mo < 0 {
		y--
		mo += 12
	}
	return Month{Year: y, Month: time.Month(mo + 1)}
}

// MonthsUntil returns the signed number of months from m to to.
func (m Month) MonthsUntil(to Month) int {
	return to.ordinal() - m.ordinal()
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	return m.ordinal() < o.ordinal()
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}
