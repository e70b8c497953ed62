// Package ephemeris defines the position provider abstraction. Providers
// return tropical longitudes; conversion to the sidereal zodiac happens in
// the chart layer so one provider serves every ayanamsa.
package ephemeris

import (
	"context"

	"github.com/navagraha/jyotish/pkg/catalog"
)

// RawPosition is a provider-reported tropical position.
type RawPosition struct {
	Longitude  float64 // tropical, degrees
	Latitude   float64 // ecliptic latitude, degrees
	Speed      float64 // degrees per day; negative when retrograde
	Retrograde bool
}

// Provider supplies tropical positions for a moment in time.
type Provider interface {
	// Positions returns the tropical position of every chart body at a
	// Julian Day.
	Positions(ctx context.Context, jd float64) (map[catalog.Body]RawPosition, error)

	// Ascendant returns the tropical ascendant longitude for a Julian Day
	// and geographic location.
	Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error)
}
