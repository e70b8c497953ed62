package aspect

import (
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/dignity"
	"github.com/navagraha/jyotish/pkg/position"
)

// Effect labels in descending order of favor.
const (
	EffectVeryAuspicious        = "Very Auspicious"
	EffectAuspicious            = "Auspicious"
	EffectMildlyAuspicious      = "Mildly Auspicious"
	EffectNeutral               = "Neutral"
	EffectMildlyInauspicious    = "Mildly Inauspicious"
	EffectInauspicious          = "Inauspicious"
	EffectVeryInauspicious      = "Very Inauspicious"
	EffectExtremelyInauspicious = "Extremely Inauspicious"
)

// judge maps the aspecting body's nature and its dignity at the aspected
// position to an effect. The dignity is evaluated as if the aspecting body
// itself occupied the aspected point.
func judge(nature catalog.Nature, d dignity.Dignity) string {
	switch nature {
	case catalog.Benefic:
		switch d {
		case dignity.ExaltedExact, dignity.Exalted, dignity.OwnSign, dignity.Moolatrikona:
			return EffectVeryAuspicious
		case dignity.FriendSign:
			return EffectAuspicious
		case dignity.NeutralSign:
			return EffectMildlyAuspicious
		case dignity.EnemySign, dignity.Debilitated, dignity.DebilitatedExact:
			return EffectNeutral
		}
	case catalog.Malefic:
		switch d {
		case dignity.ExaltedExact, dignity.Exalted, dignity.OwnSign, dignity.Moolatrikona:
			return EffectNeutral
		case dignity.FriendSign:
			return EffectMildlyInauspicious
		case dignity.NeutralSign:
			return EffectInauspicious
		case dignity.EnemySign:
			return EffectVeryInauspicious
		case dignity.Debilitated, dignity.DebilitatedExact:
			return EffectExtremelyInauspicious
		}
	}
	return EffectNeutral
}

// rasiEffect judges a whole-sign aspect. The aspecting body's dignity is
// evaluated at the middle of the aspected sign.
func rasiEffect(source, target position.Position) string {
	d := dignity.Resolve(source.Body, target.Sign, catalog.SignSpan/2)
	return judge(source.Body.Nature(), d)
}

// degreeEffect judges a degree-mode aspect and prefixes the label with the
// contact's weight.
func degreeEffect(source, target position.Position, strength float64) string {
	d := dignity.Resolve(source.Body, target.Sign, target.DegreesInSign)
	effect := judge(source.Body.Nature(), d)

	switch {
	case strength >= 0.75:
		return "Strong " + effect
	case strength >= 0.5:
		return "Moderate " + effect
	default:
		return "Weak " + effect
	}
}
