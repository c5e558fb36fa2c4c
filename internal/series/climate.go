package series

import (
	"github.com/roach88/threepg/internal/arrays"
)

// Climate column indices.
const (
	TmpMin = iota
	TmpMax
	TmpAve
	Prcp
	Srad
	FrostDays
	CO2
	D13CAtm
	VPD
	climateWidth
)

var climateColumns = [climateWidth]string{
	TmpMin:    "tmp_min",
	TmpMax:    "tmp_max",
	TmpAve:    "tmp_ave",
	Prcp:      "prcp",
	Srad:      "srad",
	FrostDays: "frost_days",
	CO2:       "co2",
	D13CAtm:   "d13catm",
	VPD:       "vpd",
}

// ClimateMonth is one month of site forcing.
type ClimateMonth struct {
	// TmpMin is kept for input fidelity. Nothing in threepg reads it.
	TmpMin    float64
	TmpMax    float64
	TmpAve    float64
	Prcp      float64
	Srad      float64
	FrostDays float64
	CO2       float64
	D13CAtm   float64
	VPD       float64
}

// Climate is the site-wide monthly forcing series starting at Start.
type Climate[F arrays.Float] struct {
	*Frame[F]
	Start Month
}

// NewClimate allocates a forcing series at arrays.DefaultCapacity.
func NewClimate[F arrays.Float](start Month) *Climate[F] {
	return &Climate[F]{
		Frame: NewFrame[F](arrays.DefaultCapacity, climateColumns[:]...),
		Start: start,
	}
}

// AppendMonth writes m at the next month offset. The caller grows the series
// first when NeedsGrowth reports true.
func (c *Climate[F]) AppendMonth(m ClimateMonth) int {
	t := c.Advance()
	c.Set(TmpMin, t, F(m.TmpMin))
	c.Set(TmpMax, t, F(m.TmpMax))
	c.Set(TmpAve, t, F(m.TmpAve))
	c.Set(Prcp, t, F(m.Prcp))
	c.Set(Srad, t, F(m.Srad))
	c.Set(FrostDays, t, F(m.FrostDays))
	c.Set(CO2, t, F(m.CO2))
	c.Set(D13CAtm, t, F(m.D13CAtm))
	c.Set(VPD, t, F(m.VPD))
	return t
}

// Forcing returns the forcing stored at offset t.
func (c *Climate[F]) Forcing(t int) ClimateMonth {
	return ClimateMonth{
		TmpMin:    float64(c.At(TmpMin, t)),
		TmpMax:    float64(c.At(TmpMax, t)),
		TmpAve:    float64(c.At(TmpAve, t)),
		Prcp:      float64(c.At(Prcp, t)),
		Srad:      float64(c.At(Srad, t)),
		FrostDays: float64(c.At(FrostDays, t)),
		CO2:       float64(c.At(CO2, t)),
		D13CAtm:   float64(c.At(D13CAtm, t)),
		VPD:       float64(c.At(VPD, t)),
	}
}

// MonthIndex returns the offset of m from Start and whether it is populated.
func (c *Climate[F]) MonthIndex(m Month) (int, bool) {
	t := c.Start.MonthsUntil(m)
	return t, t >= 0 && t < c.Len()
}

// End returns the last populated month, or the zero Month when empty.
func (c *Climate[F]) End() Month {
	if c.Len() == 0 {
		return Month{}
	}
	return c.Start.AddMonths(c.Len() - 1)
}
