package catalog

import (
	"strings"

	"github.com/navagraha/jyotish/pkg/errors"
)

// Nakshatra is one of the twenty-seven lunar mansions, zero-indexed from
// Ashwini.
type Nakshatra int

// NakshatraCount is the number of lunar mansions.
const NakshatraCount = 27

// NakshatraSpan is the arc of one nakshatra in degrees (13°20').
const NakshatraSpan = 360.0 / NakshatraCount

// PadaSpan is the arc of one quarter of a nakshatra (3°20').
const PadaSpan = NakshatraSpan / 4

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Moola", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// vimshottariCycle is the sequence of dasha lords, repeated three times to
// cover all twenty-seven mansions.
var vimshottariCycle = [9]Body{
	Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury,
}

// String returns the nakshatra's name.
func (n Nakshatra) String() string {
	if n < 0 || n >= NakshatraCount {
		return "Unknown"
	}
	return nakshatraNames[n]
}

// Valid reports whether n is one of the twenty-seven mansions.
func (n Nakshatra) Valid() bool {
	return n >= 0 && n < NakshatraCount
}

// MarshalText encodes the nakshatra as its name.
func (n Nakshatra) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid nakshatra index: %d", int(n))
	}
	return []byte(n.String()), nil
}

// UnmarshalText decodes a nakshatra from its name, case-insensitively.
func (n *Nakshatra) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, candidate := range nakshatraNames {
		if strings.ToLower(candidate) == name {
			*n = Nakshatra(i)
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown nakshatra: %q", string(text))
}

// Lord returns the nakshatra's Vimshottari dasha lord.
func (n Nakshatra) Lord() Body {
	return vimshottariCycle[int(n)%9]
}

// NakshatraOf returns the mansion containing a zodiacal longitude and the
// pada (quarter, 1 through 4) within it.
func NakshatraOf(lon float64) (Nakshatra, int) {
	for lon < 0 {
		lon += 360
	}
	for lon >= 360 {
		lon -= 360
	}
	// A single quarter-index quotient keeps the mansion and pada consistent.
	// The epsilon absorbs float residue so exact 3°20' multiples land in the
	// upper quarter rather than a hair below the boundary.
	q := int(lon/PadaSpan + 1e-9)
	if q >= 4*NakshatraCount {
		q = 0
	}
	return Nakshatra(q / 4), q%4 + 1
}
