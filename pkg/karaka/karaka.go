// Package karaka assigns the eight chara karakas (variable significators)
// to the bodies of a chart by ranking their advancement within their signs.
package karaka

import (
	"sort"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/position"
)

// Karaka is one of the eight variable significators.
type Karaka string

// The eight karakas, assigned from highest to lowest degrees.
const (
	AtmaKaraka    Karaka = "AK"  // soul
	AmatyaKaraka  Karaka = "AmK" // career
	BhratriKaraka Karaka = "BK"  // siblings
	MatriKaraka   Karaka = "MK"  // mother
	PitruKaraka   Karaka = "PiK" // father
	PutraKaraka   Karaka = "PK"  // children
	GnatiKaraka   Karaka = "GK"  // obstacles
	DaraKaraka    Karaka = "DK"  // spouse
)

// Order lists the karakas from highest-ranking body to lowest.
var Order = [8]Karaka{
	AtmaKaraka, AmatyaKaraka, BhratriKaraka, MatriKaraka,
	PitruKaraka, PutraKaraka, GnatiKaraka, DaraKaraka,
}

var fullNames = map[Karaka]string{
	AtmaKaraka:    "Atma Karaka",
	AmatyaKaraka:  "Amatya Karaka",
	BhratriKaraka: "Bhratri Karaka",
	MatriKaraka:   "Matri Karaka",
	PitruKaraka:   "Pitru Karaka",
	PutraKaraka:   "Putra Karaka",
	GnatiKaraka:   "Gnati Karaka",
	DaraKaraka:    "Dara Karaka",
}

// FullName returns the karaka's unabbreviated name.
func (k Karaka) FullName() string {
	return fullNames[k]
}

// Assignment pairs a body with its karaka and the ranking degrees used.
type Assignment struct {
	Body    catalog.Body `json:"body"`
	Karaka  Karaka       `json:"karaka"`
	Degrees float64      `json:"degrees"`
}

// Travel records a body's motion within its current sign, for the advanced
// ranking method: the degree at which it entered the sign and the furthest
// forward point reached before any retrograde motion.
type Travel struct {
	Entry      float64
	MaxForward float64
}

// Standard ranks bodies by degrees in sign. Ketu is excluded and Rahu is
// ranked by its distance from the end of its sign.
func Standard(positions []position.Position) []Assignment {
	return assign(positions, nil)
}

// Advanced ranks bodies by total degrees traveled within their current
// sign, accounting for retrograde loops where travel data is available.
// Bodies without travel data fall back to the standard measure.
func Advanced(positions []position.Position, travel map[catalog.Body]Travel) []Assignment {
	return assign(positions, travel)
}

func assign(positions []position.Position, travel map[catalog.Body]Travel) []Assignment {
	ranked := make([]Assignment, 0, len(positions))
	for _, p := range positions {
		if p.Body == catalog.Ketu {
			continue
		}

		deg := p.DegreesInSign
		switch {
		case p.Body == catalog.Rahu:
			deg = catalog.SignSpan - p.DegreesInSign
		case travel != nil:
			if tr, ok := travel[p.Body]; ok {
				if tr.MaxForward > p.DegreesInSign {
					// The body retrograded past its furthest point.
					deg = (tr.MaxForward - tr.Entry) + (tr.MaxForward - p.DegreesInSign)
				} else {
					deg = p.DegreesInSign - tr.Entry
				}
			}
		}
		ranked = append(ranked, Assignment{Body: p.Body, Degrees: deg})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Degrees > ranked[j].Degrees
	})

	if len(ranked) > len(Order) {
		ranked = ranked[:len(Order)]
	}
	for i := range ranked {
		ranked[i].Karaka = Order[i]
	}
	return ranked
}
