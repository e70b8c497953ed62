// Package bhava computes the twelve houses of a chart using the equal house
// system and classifies each house by its traditional nature.
package bhava

import (
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/errors"
)

// HouseCount is the number of houses.
const HouseCount = 12

// HouseSpan is the arc of one equal house in degrees.
const HouseSpan = 30.0

// SandhiOrb is the distance from a cusp, in degrees, within which a point is
// considered to sit on a house junction.
const SandhiOrb = 2.0

// House is one of the twelve equal houses.
type House struct {
	Number    int            `json:"number"` // 1 through 12
	Cusp      float64        `json:"cusp"`   // start of the house, sidereal degrees
	Sign      catalog.Sign   `json:"sign"`   // sign on the cusp
	Lord      catalog.Body   `json:"lord"`   // ruler of the cusp sign
	Natures   []string       `json:"natures"`
	Occupants []catalog.Body `json:"occupants,omitempty"`
}

// Wheel is the full set of twelve houses anchored on an ascendant.
type Wheel struct {
	Ascendant float64           `json:"ascendant"`
	Houses    [HouseCount]House `json:"houses"`
}

// Build constructs the equal house wheel from a sidereal ascendant. Each
// house starts exactly at the ascendant degree plus a multiple of thirty;
// other house systems would change only the cusp computation here.
func Build(ascendant float64) Wheel {
	asc := astro.Normalize(ascendant)
	w := Wheel{Ascendant: asc}
	for i := 0; i < HouseCount; i++ {
		cusp := astro.Normalize(asc + float64(i)*HouseSpan)
		sign := catalog.SignOf(cusp)
		h := House{
			Number: i + 1,
			Cusp:   cusp,
			Sign:   sign,
			Lord:   sign.Ruler(),
		}
		h.Natures = h.natures()
		w.Houses[i] = h
	}
	return w
}

// House returns the house with the given number, 1 through 12.
func (w Wheel) House(number int) (House, error) {
	if err := errors.ValidateHouse(number); err != nil {
		return House{}, err
	}
	return w.Houses[number-1], nil
}

// HouseOf returns the number of the house containing a longitude.
func (w Wheel) HouseOf(lon float64) int {
	offset := astro.ForwardDistance(w.Ascendant, lon)
	return int(offset/HouseSpan) + 1
}

// Span returns the start and end longitudes of the house.
func (h House) Span() (from, to float64) {
	return h.Cusp, astro.Normalize(h.Cusp + HouseSpan)
}

// Midpoint returns the middle of the house arc.
func (h House) Midpoint() float64 {
	return astro.Normalize(h.Cusp + HouseSpan/2)
}

// InSandhi reports whether a longitude lies within the sandhi orb of either
// boundary of the house.
func (h House) InSandhi(lon float64) bool {
	from, to := h.Span()
	return astro.AngularDistance(lon, from) <= SandhiOrb ||
		astro.AngularDistance(lon, to) <= SandhiOrb
}

// Kendra reports whether the house is angular (1, 4, 7, 10).
func (h House) Kendra() bool {
	switch h.Number {
	case 1, 4, 7, 10:
		return true
	}
	return false
}

// Trikona reports whether the house is trinal (1, 5, 9).
func (h House) Trikona() bool {
	switch h.Number {
	case 1, 5, 9:
		return true
	}
	return false
}

// Upachaya reports whether the house is a growth house (3, 6, 10, 11).
func (h House) Upachaya() bool {
	switch h.Number {
	case 3, 6, 10, 11:
		return true
	}
	return false
}

// Dusthana reports whether the house is a difficult house (6, 8, 12).
func (h House) Dusthana() bool {
	switch h.Number {
	case 6, 8, 12:
		return true
	}
	return false
}

// Maraka reports whether the house is a maraka house (2, 7).
func (h House) Maraka() bool {
	return h.Number == 2 || h.Number == 7
}

// natures lists every classification the house carries.
func (h House) natures() []string {
	var n []string
	if h.Kendra() {
		n = append(n, "Kendra")
	}
	if h.Trikona() {
		n = append(n, "Trikona")
	}
	if h.Upachaya() {
		n = append(n, "Upachaya")
	}
	if h.Dusthana() {
		n = append(n, "Dusthana")
	}
	if h.Maraka() {
		n = append(n, "Maraka")
	}
	return n
}

var houseSanskrit = [HouseCount]string{
	"Tanu Bhava", "Dhana Bhava", "Sahaja Bhava", "Sukha Bhava",
	"Putra Bhava", "Ari Bhava", "Kalatra Bhava", "Ayu Bhava",
	"Bhagya Bhava", "Karma Bhava", "Labha Bhava", "Vyaya Bhava",
}

var houseSignifications = [HouseCount][]string{
	{"Self", "Personality", "Physical body", "Health", "Appearance", "Character"},
	{"Wealth", "Money", "Possessions", "Family", "Speech", "Food"},
	{"Siblings", "Courage", "Efforts", "Short journeys", "Communication", "Skills"},
	{"Mother", "Home", "Property", "Land", "Vehicles", "Happiness"},
	{"Children", "Creativity", "Intelligence", "Education", "Romance", "Speculation"},
	{"Enemies", "Diseases", "Debts", "Service", "Employees", "Obstacles"},
	{"Spouse", "Marriage", "Business partnerships", "Public life", "Travel", "Trade"},
	{"Longevity", "Death", "Occult", "Mysteries", "Transformation", "Inheritance"},
	{"Fortune", "Religion", "Philosophy", "Higher learning", "Father", "Teacher"},
	{"Career", "Profession", "Status", "Reputation", "Government", "Authority"},
	{"Gains", "Income", "Friends", "Elder siblings", "Hopes", "Wishes"},
	{"Losses", "Expenses", "Foreign lands", "Spirituality", "Liberation", "Hospitals"},
}

// Sanskrit returns the house's traditional Sanskrit name.
func (h House) Sanskrit() string {
	if h.Number < 1 || h.Number > HouseCount {
		return "Unknown"
	}
	return houseSanskrit[h.Number-1]
}

// Significations lists the life areas the house governs.
func (h House) Significations() []string {
	if h.Number < 1 || h.Number > HouseCount {
		return nil
	}
	return append([]string(nil), houseSignifications[h.Number-1]...)
}
