// Package dignity resolves a body's standing at a zodiacal position: exalted,
// debilitated, in its own or moolatrikona sign, or placed with a friend,
// neutral or enemy.
package dignity

import (
	"math"

	"github.com/navagraha/jyotish/pkg/catalog"
)

// Dignity is a body's standing at a position.
type Dignity string

// Dignity values in descending order of strength.
const (
	ExaltedExact     Dignity = "Exalted (exact)"
	Exalted          Dignity = "Exalted"
	Moolatrikona     Dignity = "Moolatrikona"
	OwnSign          Dignity = "Own Sign"
	FriendSign       Dignity = "Friend Sign"
	NeutralSign      Dignity = "Neutral Sign"
	EnemySign        Dignity = "Enemy Sign"
	Debilitated      Dignity = "Debilitated"
	DebilitatedExact Dignity = "Debilitated (exact)"
)

// exactOrb is the degree window around the exaltation or debilitation point
// that upgrades the dignity to its exact form.
const exactOrb = 1.0

// Strong reports whether the dignity is one of the strong placements.
func (d Dignity) Strong() bool {
	switch d {
	case ExaltedExact, Exalted, Moolatrikona, OwnSign:
		return true
	}
	return false
}

// Resolve determines the dignity of a body at a sign and degree within that
// sign. The checks run in priority order: exaltation and debilitation by
// sign, each refined to the exact form within one degree of the exact point,
// then moolatrikona by degree range, then ownership, then the body's natural
// relationship with the sign's ruler. Exaltation is checked before ownership,
// so a sign that is both (Mercury in Virgo) resolves as exalted.
func Resolve(body catalog.Body, sign catalog.Sign, degreesInSign float64) Dignity {
	if exSign, exDeg := body.ExaltationSign(); exSign == sign {
		if math.Abs(degreesInSign-exDeg) <= exactOrb {
			return ExaltedExact
		}
		return Exalted
	}
	if debSign, debDeg := body.DebilitationSign(); debSign == sign {
		if math.Abs(degreesInSign-debDeg) <= exactOrb {
			return DebilitatedExact
		}
		return Debilitated
	}

	if mtSign, from, to := body.Moolatrikona(); mtSign == sign &&
		degreesInSign >= from && degreesInSign <= to {
		return Moolatrikona
	}

	for _, own := range body.OwnSigns() {
		if own == sign {
			return OwnSign
		}
	}

	switch body.NaturalRelation(sign.Ruler()) {
	case catalog.Friend:
		return FriendSign
	case catalog.NeutralTo:
		return NeutralSign
	case catalog.Enemy:
		return EnemySign
	default:
		return NeutralSign
	}
}
