package strength

import (
	"fmt"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/bhava"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/position"
)

// Yoga is a detected planetary combination involving a house.
type Yoga struct {
	Kind        string         `json:"kind"`
	Description string         `json:"description"`
	Bodies      []catalog.Body `json:"bodies,omitempty"`
	Houses      []int          `json:"houses,omitempty"`
	Strength    float64        `json:"strength,omitempty"`
}

// Yoga kinds.
const (
	YogaKendraTrikona = "kendra_trikona"
	YogaParivartana   = "parivartana"
	YogaConjunction   = "conjunction"
)

// Yogas detects the combinations involving a house: its lord bridging the
// angular and trinal house classes, an exchange between two house lords,
// and conjunctions among its occupants.
func (a *Analysis) Yogas(house int) ([]Yoga, error) {
	h, err := a.wheel.House(house)
	if err != nil {
		return nil, err
	}

	var out []Yoga

	// Lord placed so that house and placement straddle kendra and trikona.
	if lordPos, ok := a.byBody[h.Lord]; ok {
		placedNum := a.wheel.HouseOf(lordPos.Longitude)
		if placed, err := a.wheel.House(placedNum); err == nil {
			if (h.Kendra() && placed.Trikona()) || (h.Trikona() && placed.Kendra()) {
				out = append(out, Yoga{
					Kind:        YogaKendraTrikona,
					Description: fmt.Sprintf("%s links house %d to house %d", h.Lord, house, placedNum),
					Bodies:      []catalog.Body{h.Lord},
					Houses:      []int{house, placedNum},
				})
			}
		}
	}

	// Parivartana: the lords of two houses sit in each other's house.
	if other, otherLord, ok := a.exchangePartner(h); ok {
		out = append(out, Yoga{
			Kind:        YogaParivartana,
			Description: fmt.Sprintf("%s and %s exchange houses %d and %d", h.Lord, otherLord, house, other),
			Bodies:      []catalog.Body{h.Lord, otherLord},
			Houses:      []int{house, other},
		})
	}

	// Conjunctions among the occupants of this house.
	occupants := a.Occupants(house)
	if len(occupants) >= 2 {
		var positions []position.Position
		for _, b := range occupants {
			positions = append(positions, a.byBody[b])
		}
		for _, c := range aspect.Conjunctions(positions) {
			out = append(out, Yoga{
				Kind:        YogaConjunction,
				Description: fmt.Sprintf("%s-%s conjunction (%s)", c.A, c.B, c.Closeness),
				Bodies:      []catalog.Body{c.A, c.B},
				Houses:      []int{house},
				Strength:    1 - c.Separation/aspect.MaxOrb,
			})
		}
	}

	return out, nil
}

// exchangePartner finds the house whose lord sits in h while h's own lord
// sits in it.
func (a *Analysis) exchangePartner(h bhava.House) (int, catalog.Body, bool) {
	lordPos, ok := a.byBody[h.Lord]
	if !ok {
		return 0, 0, false
	}
	otherNum := a.wheel.HouseOf(lordPos.Longitude)
	if otherNum == h.Number {
		return 0, 0, false
	}
	other, err := a.wheel.House(otherNum)
	if err != nil {
		return 0, 0, false
	}
	otherLordPos, ok := a.byBody[other.Lord]
	if !ok || other.Lord == h.Lord {
		return 0, 0, false
	}
	if a.wheel.HouseOf(otherLordPos.Longitude) != h.Number {
		return 0, 0, false
	}
	return otherNum, other.Lord, true
}
