// Package position derives zodiacal placements from sidereal longitudes and
// computes divisional (varga) placements from them.
package position

import (
	"fmt"

	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/catalog"
)

// Position is a body's derived placement in the sidereal zodiac.
type Position struct {
	Body          catalog.Body      `json:"body"`
	Longitude     float64           `json:"longitude"` // sidereal, [0, 360)
	Sign          catalog.Sign      `json:"sign"`
	DegreesInSign float64           `json:"degrees_in_sign"` // [0, 30)
	Retrograde    bool              `json:"retrograde"`
	Nakshatra     catalog.Nakshatra `json:"nakshatra"`
	Pada          int               `json:"pada"`
	Latitude      float64           `json:"latitude,omitempty"` // ecliptic latitude, degrees
	Speed         float64           `json:"speed,omitempty"`    // daily motion, degrees per day
}

// Derive computes the full placement for a body at a sidereal longitude.
func Derive(body catalog.Body, lon float64, retrograde bool) Position {
	lon = astro.Normalize(lon)
	sign := catalog.SignOf(lon)
	nak, pada := catalog.NakshatraOf(lon)
	return Position{
		Body:          body,
		Longitude:     lon,
		Sign:          sign,
		DegreesInSign: lon - float64(sign)*catalog.SignSpan,
		Retrograde:    retrograde,
		Nakshatra:     nak,
		Pada:          pada,
	}
}

// String formats the placement as "Mars 5.00° Cancer (R)".
func (p Position) String() string {
	s := fmt.Sprintf("%s %.2f° %s", p.Body, p.DegreesInSign, p.Sign)
	if p.Retrograde {
		s += " (R)"
	}
	return s
}
