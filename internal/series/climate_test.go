package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimate_AppendAndRead(t *testing.T) {
	start := Month{Year: 2015, Month: time.January}
	c := NewClimate[float64](start)

	want := ClimateMonth{TmpMin: 2, TmpMax: 18, TmpAve: 10, Prcp: 80, Srad: 12, FrostDays: 3, CO2: 400, D13CAtm: -8, VPD: 0.9}
	tm := c.AppendMonth(want)

	assert.Equal(t, 0, tm)
	assert.Equal(t, want, c.Forcing(0))
	assert.Equal(t, start, c.End())
}

func TestClimate_MonthIndex(t *testing.T) {
	c := NewClimate[float32](Month{Year: 2015, Month: time.January})
	for i := 0; i < 14; i++ {
		c.AppendMonth(ClimateMonth{TmpAve: float64(i)})
	}

	tm, ok := c.MonthIndex(Month{Year: 2016, Month: time.February})
	assert.True(t, ok)
	assert.Equal(t, 13, tm)
	assert.Equal(t, float32(13), c.At(TmpAve, tm))

	_, ok = c.MonthIndex(Month{Year: 2016, Month: time.March})
	assert.False(t, ok)
	_, ok = c.MonthIndex(Month{Year: 2014, Month: time.December})
	assert.False(t, ok)
}

func TestClimate_GrowsAcrossDecades(t *testing.T) {
	c := NewClimate[float64](Month{Year: 2000, Month: time.January})
	for i := 0; i < 300; i++ {
		if c.NeedsGrowth() {
			c.GrowByDecade()
		}
		c.AppendMonth(ClimateMonth{Prcp: float64(i)})
	}

	require.Equal(t, 300, c.Len())
	assert.Equal(t, 360, c.Capacity())
	assert.Equal(t, float64(0), c.At(Prcp, 0))
	assert.Equal(t, float64(299), c.At(Prcp, 299))
	assert.Equal(t, Month{Year: 2024, Month: time.December}, c.End())
}

func TestClimate_EmptyEnd(t *testing.T) {
	c := NewClimate[float64](Month{Year: 2000, Month: time.January})
	assert.True(t, c.End().IsZero())
}
