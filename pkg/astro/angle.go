// Package astro provides the low-level astronomical arithmetic the rest of
// the library builds on: circular angle math, Julian Day conversion, sidereal
// time, and ayanamsa offsets between the tropical and sidereal zodiacs.
//
// All angles are in degrees. Longitudes are normalized to [0, 360).
package astro

import (
	"fmt"
	"math"
)

// Normalize wraps an angle in degrees to the range [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngularDistance returns the shortest separation between two longitudes,
// in [0, 180].
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ForwardDistance returns the distance traveled moving forward through the
// zodiac from longitude a to longitude b, in [0, 360).
func ForwardDistance(a, b float64) float64 {
	return Normalize(b - a)
}

// DMS holds an angle broken into degrees, arcminutes and arcseconds.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64
}

// ToDMS splits a decimal angle into degree, minute and second components.
// The sign is carried on the Degrees field.
func ToDMS(deg float64) DMS {
	neg := deg < 0
	d := math.Abs(deg)

	whole := math.Floor(d)
	frac := (d - whole) * 60
	minutes := math.Floor(frac)
	seconds := (frac - minutes) * 60

	out := DMS{
		Degrees: int(whole),
		Minutes: int(minutes),
		Seconds: seconds,
	}
	if neg {
		out.Degrees = -out.Degrees
	}
	return out
}

// String formats the angle as D°M'S", e.g. 23°51'0.0".
func (d DMS) String() string {
	return fmt.Sprintf("%d°%d'%.1f\"", d.Degrees, d.Minutes, d.Seconds)
}

// Decimal converts the components back to a decimal angle.
func (d DMS) Decimal() float64 {
	abs := math.Abs(float64(d.Degrees)) + float64(d.Minutes)/60 + d.Seconds/3600
	if d.Degrees < 0 {
		return -abs
	}
	return abs
}
