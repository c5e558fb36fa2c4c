// Package site describes the stand's location and soil, and derives the
// monthly astronomy tables the simulation state needs from its latitude.
package site

import (
	"fmt"
	"math"
)

// midMonthDay is the day of year used for each calendar month.
var midMonthDay = [12]float64{17, 47, 75, 105, 135, 162, 198, 228, 258, 288, 318, 344}

// SoilWater bounds the stand's available soil water, in mm.
type SoilWater struct {
	Initial float64
	Min     float64
	Max     float64
}

// Site is a stand location. It implements state.Astronomy.
type Site struct {
	Latitude  float64 // degrees, south negative
	Altitude  float64 // m
	SoilClass int32
	ASW       SoilWater

	dayLength   [12]float64
	solarZenith [12]float64
}

// New validates the location and precomputes the monthly tables.
func New(latitude, altitude float64, soilClass int32, asw SoilWater) (*Site, error) {
	if latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("site: latitude %v outside [-90, 90]", latitude)
	}
	if asw.Max < asw.Min {
		return nil, fmt.Errorf("site: max available soil water %v below min %v", asw.Max, asw.Min)
	}
	s := &Site{
		Latitude:  latitude,
		Altitude:  altitude,
		SoilClass: soilClass,
		ASW:       asw,
	}
	for m := 0; m < 12; m++ {
		s.dayLength[m] = dayLength(latitude, midMonthDay[m])
		s.solarZenith[m] = adjustedZenith(latitude, midMonthDay[m])
	}
	return s, nil
}

// DayLength returns the mean day length in seconds for January..December.
func (s *Site) DayLength() [12]float64 { return s.dayLength }

// SolarZenithAngle returns the adjusted solar zenith angle in degrees for
// January..December.
func (s *Site) SolarZenithAngle() [12]float64 { return s.solarZenith }

// declination returns the solar declination on day of year doy, as its sine.
func sinDeclination(doy float64) float64 {
	return 0.4 * math.Sin(0.0172*(doy-80))
}

// dayLength returns the day length in seconds at latitude on day of year doy.
func dayLength(latitude, doy float64) float64 {
	sLat := math.Sin(math.Pi * latitude / 180)
	cLat := math.Cos(math.Pi * latitude / 180)
	sDec := sinDeclination(doy)
	cDec := math.Sqrt(1 - sDec*sDec)

	// Polar day and night.
	if cLat*cDec < 1e-12 {
		if sLat*sDec > 0 {
			return 86400
		}
		return 0
	}
	cosH0 := -sDec * sLat / (cLat * cDec)
	switch {
	case cosH0 > 1:
		return 0
	case cosH0 < -1:
		return 86400
	}
	return 86400 * math.Acos(cosH0) / math.Pi
}

// adjustedZenith approximates the mean daytime solar zenith angle, in
// degrees, as 30 plus half the noon zenith angle.
func adjustedZenith(latitude, doy float64) float64 {
	dec := math.Asin(sinDeclination(doy)) * 180 / math.Pi
	noon := math.Abs(latitude - dec)
	if noon > 90 {
		noon = 90
	}
	return 30 + 0.5*noon
}
