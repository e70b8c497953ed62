// Package catalog defines the fixed zodiac vocabulary: the twelve signs,
// the nine bodies used in sidereal charts, the twenty-seven nakshatras, and
// the static tables that relate them (ownership, exaltation, friendship,
// element and quality groupings).
//
// The tables in this package are reference data. Nothing here depends on a
// particular chart; the position, dignity and aspect packages consume these
// tables to classify computed longitudes.
package catalog

import (
	"strings"

	"github.com/navagraha/jyotish/pkg/errors"
)

// Sign is one of the twelve zodiac signs, zero-indexed from Aries.
type Sign int

// The twelve signs in zodiacal order.
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

// SignSpan is the arc of one sign in degrees.
const SignSpan = 30.0

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign's English name.
func (s Sign) String() string {
	if s < 0 || s >= SignCount {
		return "Unknown"
	}
	return signNames[s]
}

// Valid reports whether s is one of the twelve signs.
func (s Sign) Valid() bool {
	return s >= 0 && s < SignCount
}

// MarshalText encodes the sign as its name, so JSON carries "Aries" rather
// than an index.
func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidSign, "invalid sign index: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a sign from its name.
func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Element is one of the four classical elements.
type Element string

// The four elements.
const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// Quality is a sign's modality.
type Quality string

// The three qualities.
const (
	Cardinal Quality = "Cardinal"
	Fixed    Quality = "Fixed"
	Mutable  Quality = "Mutable"
)

// Element returns the sign's element. Signs cycle Fire, Earth, Air, Water.
func (s Sign) Element() Element {
	switch s % 4 {
	case 0:
		return Fire
	case 1:
		return Earth
	case 2:
		return Air
	default:
		return Water
	}
}

// Quality returns the sign's modality. Signs cycle Cardinal, Fixed, Mutable.
func (s Sign) Quality() Quality {
	switch s % 3 {
	case 0:
		return Cardinal
	case 1:
		return Fixed
	default:
		return Mutable
	}
}

// Odd reports whether the sign is odd-numbered in the traditional 1-based
// counting (Aries, Gemini, Leo, ...). These are the masculine signs.
func (s Sign) Odd() bool {
	return s%2 == 0
}

// Offset returns the sign n places forward, wrapping around the zodiac.
func (s Sign) Offset(n int) Sign {
	return Sign(((int(s)+n)%SignCount + SignCount) % SignCount)
}

// Opposite returns the sign directly across the zodiac.
func (s Sign) Opposite() Sign {
	return s.Offset(SignCount / 2)
}

var signSanskrit = [SignCount]string{
	"Mesha", "Vrishabha", "Mithuna", "Karkat", "Simha", "Kanya",
	"Tula", "Vrischik", "Dhanu", "Makar", "Kumbha", "Meen",
}

// Sanskrit returns the sign's traditional Sanskrit name.
func (s Sign) Sanskrit() string {
	if !s.Valid() {
		return "Unknown"
	}
	return signSanskrit[s]
}

// SignOf returns the sign containing a zodiacal longitude.
func SignOf(lon float64) Sign {
	for lon < 0 {
		lon += 360
	}
	return Sign(int(lon/SignSpan) % SignCount)
}

// ParseSign resolves a sign from its name, case-insensitively.
func ParseSign(name string) (Sign, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range signNames {
		if strings.ToLower(s) == n {
			return Sign(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidSign, "unknown sign: %q", name)
}

// Ruler returns the planet ruling the sign.
func (s Sign) Ruler() Body {
	return signRulers[s]
}

// ExaltedBody returns the planet exalted in the sign, and whether one exists.
func (s Sign) ExaltedBody() (Body, bool) {
	b, ok := signExaltations[s]
	return b, ok
}

// FriendlyBodies returns the planets welcome in the sign.
func (s Sign) FriendlyBodies() []Body {
	return append([]Body(nil), signFriends[s]...)
}

// EnemyBodies returns the planets hostile to the sign.
func (s Sign) EnemyBodies() []Body {
	return append([]Body(nil), signEnemies[s]...)
}

var signRulers = [SignCount]Body{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// signExaltations maps each sign to the planet exalted within it. Leo and
// Aquarius host no exaltation.
var signExaltations = map[Sign]Body{
	Aries:       Sun,
	Taurus:      Moon,
	Gemini:      Rahu,
	Cancer:      Jupiter,
	Virgo:       Mercury,
	Libra:       Saturn,
	Scorpio:     Ketu,
	Sagittarius: Ketu,
	Capricorn:   Mars,
	Pisces:      Venus,
}

var signFriends = [SignCount][]Body{
	Aries:       {Sun, Moon, Mars, Jupiter},
	Taurus:      {Mercury, Venus, Saturn},
	Gemini:      {Sun, Mercury, Venus},
	Cancer:      {Sun, Moon, Mars, Jupiter},
	Leo:         {Sun, Moon, Mars, Jupiter},
	Virgo:       {Sun, Mercury, Venus},
	Libra:       {Mercury, Venus, Saturn},
	Scorpio:     {Sun, Moon, Mars, Jupiter},
	Sagittarius: {Sun, Moon, Mars, Jupiter},
	Capricorn:   {Mercury, Venus, Saturn},
	Aquarius:    {Mercury, Venus, Saturn},
	Pisces:      {Sun, Moon, Mars, Jupiter},
}

var signEnemies = [SignCount][]Body{
	Aries:       {Mercury, Venus, Saturn},
	Taurus:      {Sun, Moon, Mars},
	Gemini:      {Moon, Mars, Jupiter},
	Cancer:      {Mercury, Venus, Saturn},
	Leo:         {Mercury, Venus, Saturn},
	Virgo:       {Moon, Mars, Jupiter},
	Libra:       {Sun, Moon, Mars},
	Scorpio:     {Mercury, Venus, Saturn},
	Sagittarius: {Mercury, Venus, Saturn},
	Capricorn:   {Sun, Moon, Mars},
	Aquarius:    {Sun, Moon, Mars},
	Pisces:      {Mercury, Venus, Saturn},
}
