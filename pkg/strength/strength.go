// Package strength scores the twelve houses of a chart by weighing the
// house's nature, the condition of its lord, its occupants, the aspects it
// receives and the sign on its cusp.
package strength

import (
	"sort"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/bhava"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/dignity"
	"github.com/navagraha/jyotish/pkg/errors"
	"github.com/navagraha/jyotish/pkg/position"
)

// Factor weights. They sum to one.
const (
	weightBase     = 0.2
	weightLord     = 0.3
	weightOccupant = 0.25
	weightAspect   = 0.15
	weightSign     = 0.1
)

// Strength categories.
const (
	VeryStrong = "Very Strong"
	Strong     = "Strong"
	Moderate   = "Moderate"
	Weak       = "Weak"
	VeryWeak   = "Very Weak"
)

// Factors holds the individual scores feeding a house's total strength.
type Factors struct {
	Base     float64 `json:"base"`
	Lord     float64 `json:"lord"`
	Occupant float64 `json:"occupant"`
	Aspect   float64 `json:"aspect"`
	Sign     float64 `json:"sign"`
}

// Report is the scored strength of one house.
type Report struct {
	House        int      `json:"house"`
	Total        float64  `json:"total"`
	Category     string   `json:"category"`
	Factors      Factors  `json:"factors"`
	Contributors []string `json:"contributors,omitempty"`
}

// Analysis scores houses against a fixed wheel and set of positions.
type Analysis struct {
	wheel     bhava.Wheel
	positions []position.Position
	byBody    map[catalog.Body]position.Position
	mode      aspect.Mode
}

// New builds an Analysis over a house wheel and body positions.
func New(wheel bhava.Wheel, positions []position.Position, mode aspect.Mode) *Analysis {
	byBody := make(map[catalog.Body]position.Position, len(positions))
	for _, p := range positions {
		byBody[p.Body] = p
	}
	return &Analysis{wheel: wheel, positions: positions, byBody: byBody, mode: mode}
}

// HouseOf returns the house a body occupies, or 0 when the body is absent.
func (a *Analysis) HouseOf(body catalog.Body) int {
	p, ok := a.byBody[body]
	if !ok {
		return 0
	}
	return a.wheel.HouseOf(p.Longitude)
}

// Occupants returns the bodies placed in a house.
func (a *Analysis) Occupants(house int) []catalog.Body {
	var out []catalog.Body
	for _, p := range a.positions {
		if a.wheel.HouseOf(p.Longitude) == house {
			out = append(out, p.Body)
		}
	}
	return out
}

// HouseStrength scores a single house.
func (a *Analysis) HouseStrength(house int) (Report, error) {
	h, err := a.wheel.House(house)
	if err != nil {
		return Report{}, err
	}

	f := Factors{
		Base:     baseStrength(h),
		Lord:     a.lordStrength(h),
		Occupant: a.occupantStrength(house),
		Aspect:   a.aspectStrength(h),
		Sign:     signStrength(h.Sign),
	}

	total := f.Base*weightBase + f.Lord*weightLord + f.Occupant*weightOccupant +
		f.Aspect*weightAspect + f.Sign*weightSign

	return Report{
		House:        house,
		Total:        total,
		Category:     categorize(total),
		Factors:      f,
		Contributors: contributors(f),
	}, nil
}

// AllHouses scores every house, ordered 1 through 12.
func (a *Analysis) AllHouses() ([]Report, error) {
	out := make([]Report, 0, bhava.HouseCount)
	for i := 1; i <= bhava.HouseCount; i++ {
		r, err := a.HouseStrength(i)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Ranked holds a house and its total strength.
type Ranked struct {
	House int     `json:"house"`
	Total float64 `json:"total"`
}

// Strongest returns the n strongest houses in descending order.
func (a *Analysis) Strongest(n int) ([]Ranked, error) {
	return a.ranked(n, true)
}

// Weakest returns the n weakest houses in ascending order.
func (a *Analysis) Weakest(n int) ([]Ranked, error) {
	return a.ranked(n, false)
}

func (a *Analysis) ranked(n int, descending bool) ([]Ranked, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "rank count must not be negative, got %d", n)
	}
	reports, err := a.AllHouses()
	if err != nil {
		return nil, err
	}
	out := make([]Ranked, 0, len(reports))
	for _, r := range reports {
		out = append(out, Ranked{House: r.House, Total: r.Total})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Total > out[j].Total
		}
		return out[i].Total < out[j].Total
	})
	if n < len(out) {
		out = out[:n]
	}
	return out, nil
}

func baseStrength(h bhava.House) float64 {
	switch {
	case h.Kendra() && h.Trikona():
		return 1.0
	case h.Kendra() || h.Trikona():
		return 0.8
	case h.Upachaya():
		return 0.6
	case h.Dusthana():
		return 0.2
	}
	return 0.5
}

func (a *Analysis) lordStrength(h bhava.House) float64 {
	lord, ok := a.byBody[h.Lord]
	if !ok {
		return 0
	}

	s := 0.5
	switch dignity.Resolve(lord.Body, lord.Sign, lord.DegreesInSign) {
	case dignity.ExaltedExact, dignity.Exalted:
		s += 0.4
	case dignity.OwnSign, dignity.Moolatrikona:
		s += 0.3
	case dignity.Debilitated, dignity.DebilitatedExact:
		s -= 0.3
	}

	placed, err := a.wheel.House(a.wheel.HouseOf(lord.Longitude))
	if err == nil {
		if placed.Kendra() || placed.Trikona() {
			s += 0.2
		} else if placed.Dusthana() {
			s -= 0.2
		}
	}

	if lord.Retrograde {
		s -= 0.1
	}
	return clamp01(s)
}

func (a *Analysis) occupantStrength(house int) float64 {
	occupants := a.Occupants(house)
	if len(occupants) == 0 {
		return 0.3
	}

	var total float64
	for _, b := range occupants {
		p := a.byBody[b]
		s := 0.5
		switch dignity.Resolve(p.Body, p.Sign, p.DegreesInSign) {
		case dignity.ExaltedExact, dignity.Exalted:
			s += 0.4
		case dignity.OwnSign, dignity.Moolatrikona:
			s += 0.3
		case dignity.Debilitated, dignity.DebilitatedExact:
			s -= 0.3
		}
		if p.Body.Nature() == catalog.Benefic {
			s += 0.1
		} else {
			s -= 0.05
		}
		if p.Retrograde {
			s -= 0.1
		}
		total += clamp01(s)
	}
	return total / float64(len(occupants))
}

// aspectStrength averages the strengths of aspects landing in the house,
// weighting benefic contacts up and malefic contacts down.
func (a *Analysis) aspectStrength(h bhava.House) float64 {
	// The probe carries an invalid body so it never matches a source.
	probe := position.Derive(catalog.Body(-1), h.Midpoint(), false)

	var total float64
	var count int
	for _, p := range a.positions {
		best := 0.0
		for _, asp := range aspectsOnto(p, probe, a.mode) {
			if asp.Strength > best {
				best = asp.Strength
			}
		}
		if best == 0 {
			continue
		}
		if p.Body.Nature() == catalog.Benefic {
			best *= 1.2
		} else {
			best *= 0.8
		}
		total += best
		count++
	}
	if count == 0 {
		return 0.3
	}
	s := total / float64(count)
	if s > 1 {
		s = 1
	}
	return s
}

// aspectsOnto evaluates a body's aspects onto an arbitrary probe point.
func aspectsOnto(src, probe position.Position, mode aspect.Mode) []aspect.Aspect {
	return aspect.Between(src, probe, mode)
}

func signStrength(s catalog.Sign) float64 {
	var element float64
	switch s.Element() {
	case catalog.Fire:
		element = 0.7
	case catalog.Earth, catalog.Water:
		element = 0.6
	default:
		element = 0.5
	}

	var quality float64
	switch s.Quality() {
	case catalog.Cardinal:
		quality = 0.7
	case catalog.Fixed:
		quality = 0.8
	default:
		quality = 0.5
	}

	return (element + quality) / 2
}

func categorize(total float64) string {
	switch {
	case total >= 0.8:
		return VeryStrong
	case total >= 0.6:
		return Strong
	case total >= 0.4:
		return Moderate
	case total >= 0.2:
		return Weak
	}
	return VeryWeak
}

// contributors names the factors pulling the score up or down.
func contributors(f Factors) []string {
	var out []string
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"base", f.Base},
		{"lord", f.Lord},
		{"occupant", f.Occupant},
		{"aspect", f.Aspect},
		{"sign", f.Sign},
	} {
		if entry.value >= 0.7 {
			out = append(out, "strong "+entry.name)
		} else if entry.value <= 0.3 {
			out = append(out, "weak "+entry.name)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
