package aspect

import (
	"math"

	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/errors"
	"github.com/navagraha/jyotish/pkg/position"
)

// Mode selects the aspect computation granularity.
type Mode string

// Aspect computation modes.
const (
	ModeRasi   Mode = "rasi"
	ModeDegree Mode = "degree"
)

// ParseMode resolves a mode from its name.
func ParseMode(name string) (Mode, error) {
	switch Mode(name) {
	case ModeRasi, ModeDegree:
		return Mode(name), nil
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown aspect mode: %q (want rasi or degree)", name)
}

// Orb grading categories.
const (
	OrbExact    = "exact"
	OrbClose    = "close"
	OrbWide     = "wide"
	OrbVeryWide = "very_wide"
)

// MaxOrb is the widest separation, in degrees, still counted as an aspect
// in degree mode.
const MaxOrb = 8.0

// Aspect is a single directed aspect from one body to another.
type Aspect struct {
	Source   catalog.Body `json:"source"`
	Target   catalog.Body `json:"target"`
	Angle    float64      `json:"angle"`              // casting angle used
	Orb      float64      `json:"orb,omitempty"`      // degree mode only
	Category string       `json:"category,omitempty"` // degree mode only
	Strength float64      `json:"strength"`           // 0.25 through 1.0
	Effect   string       `json:"effect"`
}

// gradeOrb buckets a separation. Boundaries are inclusive on the lower
// category, so an orb of exactly 3.0 is close, not wide.
func gradeOrb(orb float64) (category string, strength float64, ok bool) {
	switch {
	case orb <= 1.0:
		return OrbExact, 1.0, true
	case orb <= 3.0:
		return OrbClose, 0.75, true
	case orb <= 5.0:
		return OrbWide, 0.5, true
	case orb <= MaxOrb:
		return OrbVeryWide, 0.25, true
	}
	return "", 0, false
}

// Between computes the aspects cast by source onto target in the given mode.
// A body casts no aspect on itself.
func Between(source, target position.Position, mode Mode) []Aspect {
	if source.Body == target.Body {
		return nil
	}

	var out []Aspect
	for _, angle := range EffectiveAngles(source.Body, source.Sign, source.Retrograde) {
		switch mode {
		case ModeDegree:
			orb := astro.AngularDistance(astro.Normalize(source.Longitude+angle), target.Longitude)
			category, strength, ok := gradeOrb(orb)
			if !ok {
				continue
			}
			out = append(out, Aspect{
				Source:   source.Body,
				Target:   target.Body,
				Angle:    angle,
				Orb:      orb,
				Category: category,
				Strength: strength,
				Effect:   degreeEffect(source, target, strength),
			})
		default: // rasi
			aspected := source.Sign.Offset(int(angle) / 30)
			if aspected != target.Sign {
				continue
			}
			out = append(out, Aspect{
				Source:   source.Body,
				Target:   target.Body,
				Angle:    angle,
				Strength: 1.0,
				Effect:   rasiEffect(source, target),
			})
		}
	}
	return out
}

// All computes every aspect among the given positions.
func All(positions []position.Position, mode Mode) []Aspect {
	var out []Aspect
	for _, src := range positions {
		for _, dst := range positions {
			out = append(out, Between(src, dst, mode)...)
		}
	}
	return out
}

// Contact summarizes every aspect one body casts on another. In degree mode
// a single pair can qualify under more than one casting angle; all of them
// are kept, their strengths summed, and the strongest reported as primary.
type Contact struct {
	Source        catalog.Body `json:"source"`
	Target        catalog.Body `json:"target"`
	Primary       Aspect       `json:"primary"`
	Aspects       []Aspect     `json:"aspects"`
	TotalStrength float64      `json:"total_strength"`
}

// Contacts groups the directed aspects among the positions by source and
// target pair. Pairs with no aspect are omitted.
func Contacts(positions []position.Position, mode Mode) []Contact {
	byPair := make(map[[2]catalog.Body]*Contact)
	var order [][2]catalog.Body
	for _, a := range All(positions, mode) {
		key := [2]catalog.Body{a.Source, a.Target}
		c, ok := byPair[key]
		if !ok {
			c = &Contact{Source: a.Source, Target: a.Target, Primary: a}
			byPair[key] = c
			order = append(order, key)
		}
		c.Aspects = append(c.Aspects, a)
		c.TotalStrength += a.Strength
		if a.Strength > c.Primary.Strength {
			c.Primary = a
		}
	}

	out := make([]Contact, 0, len(order))
	for _, key := range order {
		out = append(out, *byPair[key])
	}
	return out
}

// Mutual holds a pair of bodies that aspect each other.
type Mutual struct {
	A        catalog.Body `json:"a"`
	B        catalog.Body `json:"b"`
	Forward  []Aspect     `json:"forward"`
	Backward []Aspect     `json:"backward"`
}

// MutualAspects finds every pair of bodies aspecting each other.
func MutualAspects(positions []position.Position, mode Mode) []Mutual {
	byPair := make(map[[2]catalog.Body][]Aspect)
	for _, a := range All(positions, mode) {
		byPair[[2]catalog.Body{a.Source, a.Target}] = append(byPair[[2]catalog.Body{a.Source, a.Target}], a)
	}

	var out []Mutual
	for pair, fwd := range byPair {
		if pair[0] >= pair[1] {
			continue
		}
		back, ok := byPair[[2]catalog.Body{pair[1], pair[0]}]
		if !ok {
			continue
		}
		out = append(out, Mutual{A: pair[0], B: pair[1], Forward: fwd, Backward: back})
	}
	return out
}

// Conjunction labels.
const (
	ConjVeryClose = "Very Close"
	ConjClose     = "Close"
	ConjModerate  = "Moderate"
	ConjWide      = "Wide"
)

// Conjunction is a pair of bodies occupying the same longitude region.
type Conjunction struct {
	A          catalog.Body `json:"a"`
	B          catalog.Body `json:"b"`
	Separation float64      `json:"separation"`
	Closeness  string       `json:"closeness"`
}

// Conjunctions finds body pairs within the default conjunction orb.
func Conjunctions(positions []position.Position) []Conjunction {
	return ConjunctionsWithin(positions, MaxOrb)
}

// ConjunctionsWithin finds body pairs separated by no more than orb degrees.
func ConjunctionsWithin(positions []position.Position, orb float64) []Conjunction {
	var out []Conjunction
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			sep := astro.AngularDistance(positions[i].Longitude, positions[j].Longitude)
			if sep > orb {
				continue
			}
			out = append(out, Conjunction{
				A:          positions[i].Body,
				B:          positions[j].Body,
				Separation: sep,
				Closeness:  conjCloseness(sep),
			})
		}
	}
	return out
}

func conjCloseness(sep float64) string {
	switch {
	case sep <= 1.0:
		return ConjVeryClose
	case sep <= 3.0:
		return ConjClose
	case sep <= 5.0:
		return ConjModerate
	}
	return ConjWide
}

// Matrix is a source-by-target table of aspect strengths. Cells with no
// aspect hold zero; multiple contacts keep the strongest.
type Matrix map[catalog.Body]map[catalog.Body]float64

// BuildMatrix assembles the aspect strength matrix for a set of positions.
func BuildMatrix(positions []position.Position, mode Mode) Matrix {
	m := make(Matrix, len(positions))
	for _, p := range positions {
		m[p.Body] = make(map[catalog.Body]float64, len(positions))
	}
	for _, a := range All(positions, mode) {
		if row, ok := m[a.Source]; ok {
			row[a.Target] = math.Max(row[a.Target], a.Strength)
		}
	}
	return m
}

// HouseMatrix is a body-by-house table of aspect strengths onto house
// midpoints. Keys are house numbers 1 through 12.
type HouseMatrix map[catalog.Body]map[int]float64

// BuildHouseMatrix computes the strength with which each body aspects each
// house. A house is treated as a point target at its midpoint, fifteen
// degrees past the cusp.
func BuildHouseMatrix(positions []position.Position, cusps [12]float64, mode Mode) HouseMatrix {
	m := make(HouseMatrix, len(positions))
	for _, src := range positions {
		row := make(map[int]float64, len(cusps))
		for i, cusp := range cusps {
			// The probe body is never a real one, so Between
			// does not discard it as a self aspect.
			probe := position.Derive(catalog.Body(-1), cusp+15, false)
			for _, a := range Between(src, probe, mode) {
				row[i+1] = math.Max(row[i+1], a.Strength)
			}
		}
		m[src.Body] = row
	}
	return m
}
