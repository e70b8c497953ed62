// Package panchanga computes the five limbs of the Hindu calendar for a
// moment: tithi, vara, nakshatra, yoga and karana. All elements derive from
// the sidereal longitudes of the Sun and Moon plus the civil weekday.
package panchanga

import (
	"time"

	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/catalog"
)

// TithiSpan is the lunar elongation covered by one tithi, in degrees.
const TithiSpan = 12.0

// KaranaSpan is the elongation covered by one karana (half a tithi).
const KaranaSpan = 6.0

// YogaSpan is the luminary sum covered by one yoga (13°20').
const YogaSpan = 360.0 / 27

// Paksha is the lunar fortnight.
type Paksha string

// The two fortnights: waxing and waning.
const (
	Shukla  Paksha = "Shukla"
	Krishna Paksha = "Krishna"
)

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
}

// Tithi is one of the thirty lunar days.
type Tithi struct {
	Number int    `json:"number"` // 1 through 30
	Name   string `json:"name"`
	Paksha Paksha `json:"paksha"`
}

// TithiAt computes the tithi from the sidereal longitudes of the Sun and
// Moon. The thirtieth tithi of the waning fortnight is Amavasya.
func TithiAt(sunLon, moonLon float64) Tithi {
	elong := astro.ForwardDistance(sunLon, moonLon)
	idx := int(elong / TithiSpan) // 0..29
	if idx > 29 {
		idx = 29
	}

	t := Tithi{Number: idx + 1}
	if idx < 15 {
		t.Paksha = Shukla
		t.Name = tithiNames[idx]
	} else {
		t.Paksha = Krishna
		if idx == 29 {
			t.Name = "Amavasya"
		} else {
			t.Name = tithiNames[idx-15]
		}
	}
	return t
}

var varaNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

var varaLords = [7]catalog.Body{
	catalog.Sun, catalog.Moon, catalog.Mars, catalog.Mercury,
	catalog.Jupiter, catalog.Venus, catalog.Saturn,
}

// Vara is a weekday and its planetary lord.
type Vara struct {
	Name string       `json:"name"`
	Lord catalog.Body `json:"lord"`
}

// VaraAt returns the vara for a civil date.
func VaraAt(t time.Time) Vara {
	wd := int(t.Weekday())
	return Vara{Name: varaNames[wd], Lord: varaLords[wd]}
}

var yogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shoola", "Ganda", "Vriddhi",
	"Dhruva", "Vyaghata", "Harshana", "Vajra", "Siddhi", "Vyatipata",
	"Variyana", "Parigha", "Shiva", "Siddha", "Sadhya", "Shubha",
	"Shukla", "Brahma", "Indra", "Vaidhriti",
}

// Yoga is one of the twenty-seven luminary-sum divisions.
type Yoga struct {
	Number int    `json:"number"` // 1 through 27
	Name   string `json:"name"`
}

// YogaAt computes the yoga from the sidereal longitudes of the Sun and Moon.
func YogaAt(sunLon, moonLon float64) Yoga {
	sum := astro.Normalize(sunLon + moonLon)
	idx := int(sum / YogaSpan)
	if idx > 26 {
		idx = 26
	}
	return Yoga{Number: idx + 1, Name: yogaNames[idx]}
}

var movableKaranas = [7]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Gara", "Vanija", "Vishti",
}

// Karana is one of the sixty half-tithi divisions.
type Karana struct {
	Number int    `json:"number"` // 1 through 60
	Name   string `json:"name"`
}

// KaranaAt computes the karana from the sidereal longitudes of the Sun and
// Moon. The first half-tithi and the last three carry fixed names; the
// remaining fifty-six cycle through the seven movable karanas.
func KaranaAt(sunLon, moonLon float64) Karana {
	elong := astro.ForwardDistance(sunLon, moonLon)
	idx := int(elong / KaranaSpan) // 0..59
	if idx > 59 {
		idx = 59
	}

	k := Karana{Number: idx + 1}
	switch idx {
	case 0:
		k.Name = "Kimstughna"
	case 57:
		k.Name = "Shakuni"
	case 58:
		k.Name = "Chatushpada"
	case 59:
		k.Name = "Naga"
	default:
		k.Name = movableKaranas[(idx-1)%7]
	}
	return k
}

// Panchanga bundles the five limbs for one moment.
type Panchanga struct {
	Tithi     Tithi             `json:"tithi"`
	Vara      Vara              `json:"vara"`
	Nakshatra catalog.Nakshatra `json:"nakshatra"`
	Pada      int               `json:"pada"`
	Yoga      Yoga              `json:"yoga"`
	Karana    Karana            `json:"karana"`
}

// At computes the full panchanga from a civil timestamp and the sidereal
// longitudes of the Sun and Moon. The nakshatra is the Moon's mansion.
func At(t time.Time, sunLon, moonLon float64) Panchanga {
	nak, pada := catalog.NakshatraOf(moonLon)
	return Panchanga{
		Tithi:     TithiAt(sunLon, moonLon),
		Vara:      VaraAt(t),
		Nakshatra: nak,
		Pada:      pada,
		Yoga:      YogaAt(sunLon, moonLon),
		Karana:    KaranaAt(sunLon, moonLon),
	}
}
