package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerJulianYear is the length of the Julian year in days.
const DaysPerJulianYear = 365.25

// JulianDay computes the Julian Day number for a calendar date and a
// fractional hour in Universal Time, using the Gregorian calendar rules.
func JulianDay(year, month, day int, utHours float64) float64 {
	y, m := float64(year), float64(month)
	if month <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + float64(day) + b - 1524.5
	return jd + utHours/24
}

// JulianDayTime computes the Julian Day for a time.Time. The time is
// converted to UTC first.
func JulianDayTime(t time.Time) float64 {
	u := t.UTC()
	hours := float64(u.Hour()) + float64(u.Minute())/60 + float64(u.Second())/3600 +
		float64(u.Nanosecond())/3.6e12
	return JulianDay(u.Year(), int(u.Month()), u.Day(), hours)
}

// GMST returns the Greenwich Mean Sidereal Time for a Julian Day, expressed
// as an angle in [0, 360).
func GMST(jd float64) float64 {
	d := jd - J2000
	t := d / 36525
	gmst := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000
	return Normalize(gmst)
}

// LocalSiderealTime returns the local sidereal time angle for a Julian Day
// at the given geographic longitude (east positive).
func LocalSiderealTime(jd, geoLon float64) float64 {
	return Normalize(GMST(jd) + geoLon)
}
