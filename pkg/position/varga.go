package position

import (
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/errors"
)

// Varga identifies a divisional chart.
type Varga string

// Supported divisional charts.
const (
	D1  Varga = "D1"  // rasi
	D2  Varga = "D2"  // hora
	D3  Varga = "D3"  // drekkana
	D9  Varga = "D9"  // navamsa
	D10 Varga = "D10" // dasamsa
	D12 Varga = "D12" // dwadasamsa
)

// Vargas returns the supported divisional charts in ascending division order.
func Vargas() []Varga {
	return []Varga{D1, D2, D3, D9, D10, D12}
}

// VargaSign returns the sign a placement maps to in the given divisional
// chart.
func (p Position) VargaSign(v Varga) (catalog.Sign, error) {
	switch v {
	case D1:
		return p.Sign, nil
	case D2:
		return p.hora(), nil
	case D3:
		return p.drekkana(), nil
	case D9:
		return p.navamsa(), nil
	case D10:
		return p.dasamsa(), nil
	case D12:
		return p.dwadasamsa(), nil
	default:
		return 0, errors.New(errors.ErrCodeUnsupported, "unsupported divisional chart: %q", v)
	}
}

// hora assigns the first half of odd signs to the Moon's hora (Cancer) and
// the second to the Sun's (Leo); even signs reverse the order.
func (p Position) hora() catalog.Sign {
	odd := p.Sign.Odd()
	if p.DegreesInSign < 15 {
		if odd {
			return catalog.Cancer
		}
		return catalog.Leo
	}
	if odd {
		return catalog.Leo
	}
	return catalog.Cancer
}

// drekkana splits each sign into thirds mapped onto the three signs of the
// sign's element, in zodiacal order.
func (p Position) drekkana() catalog.Sign {
	third := int(p.DegreesInSign / 10)
	if third > 2 {
		third = 2
	}
	return drekkanaTriads[p.Sign.Element()][third]
}

var drekkanaTriads = map[catalog.Element][3]catalog.Sign{
	catalog.Fire:  {catalog.Aries, catalog.Leo, catalog.Sagittarius},
	catalog.Earth: {catalog.Taurus, catalog.Virgo, catalog.Capricorn},
	catalog.Air:   {catalog.Gemini, catalog.Libra, catalog.Aquarius},
	catalog.Water: {catalog.Cancer, catalog.Scorpio, catalog.Pisces},
}

// navamsa divides a sign into nine parts counted from the element's cardinal
// sign: Aries for fire, Capricorn for earth, Libra for air, Cancer for water.
func (p Position) navamsa() catalog.Sign {
	var start catalog.Sign
	switch p.Sign.Element() {
	case catalog.Fire:
		start = catalog.Aries
	case catalog.Earth:
		start = catalog.Capricorn
	case catalog.Air:
		start = catalog.Libra
	case catalog.Water:
		start = catalog.Cancer
	}
	part := int(p.DegreesInSign / (catalog.SignSpan / 9))
	return start.Offset(part)
}

// dasamsa divides a sign into ten parts, counted from the sign itself for
// odd signs and from the ninth sign for even signs.
func (p Position) dasamsa() catalog.Sign {
	part := int(p.DegreesInSign / 3)
	start := p.Sign
	if !p.Sign.Odd() {
		start = p.Sign.Offset(8)
	}
	return start.Offset(part)
}

// dwadasamsa divides a sign into twelve parts counted from the sign itself.
func (p Position) dwadasamsa() catalog.Sign {
	part := int(p.DegreesInSign / 2.5)
	return p.Sign.Offset(part)
}
