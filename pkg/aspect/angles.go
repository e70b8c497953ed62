// Package aspect implements the sidereal aspect (drishti) engine: which
// bodies aspect which, at what angles, how tightly, and with what judged
// effect.
//
// Two computation modes are supported. Rasi mode works at whole-sign
// granularity: an aspect lands on every body in the aspected sign. Degree
// mode measures the exact separation and grades the contact by orb.
package aspect

import (
	"github.com/navagraha/jyotish/pkg/catalog"
)

// baseAngles lists each body's special aspect angles in degrees. All bodies
// carry the full aspect at 180 except the nodes, whose trinal angles replace
// it.
var baseAngles = [catalog.BodyCount][]float64{
	catalog.Sun:     {180},
	catalog.Moon:    {180},
	catalog.Mars:    {90, 180, 210},
	catalog.Mercury: {180},
	catalog.Jupiter: {120, 180, 240},
	catalog.Venus:   {180},
	catalog.Saturn:  {60, 180, 270},
	catalog.Rahu:    {120, 240},
	catalog.Ketu:    {120, 240},
}

// retrogradeSwaps mirrors the forward special aspects of Mars and Saturn
// when retrograde. The opposition is unaffected.
var retrogradeSwaps = map[catalog.Body]map[float64]float64{
	catalog.Mars: {
		90:  270,
		210: 150,
	},
	catalog.Saturn: {
		60:  300,
		270: 90,
	},
}

// EffectiveAngles returns the aspect angles a body casts from a sign,
// accounting for retrograde motion and, for the nodes, the parity of the
// occupied sign.
func EffectiveAngles(body catalog.Body, sign catalog.Sign, retrograde bool) []float64 {
	base := baseAngles[body]
	out := make([]float64, 0, len(base)+1)

	swaps := retrogradeSwaps[body]
	for _, a := range base {
		if retrograde && swaps != nil {
			if swapped, ok := swaps[a]; ok {
				a = swapped
			}
		}
		out = append(out, a)
	}

	// Nodes gain an extra angle whose placement depends on the occupied
	// sign: odd-indexed signs add a sextile forward, even-indexed signs a
	// semi-sextile backward.
	if body.Node() {
		if int(sign)%2 == 1 {
			out = append(out, 30)
		} else {
			out = append(out, 330)
		}
	}

	return out
}
