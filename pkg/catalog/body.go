package catalog

import (
	"strings"

	"github.com/navagraha/jyotish/pkg/errors"
)

// Body is one of the nine bodies used in sidereal charts: the seven classical
// planets plus the lunar nodes Rahu and Ketu.
type Body int

// The nine bodies in traditional order.
const (
	Sun Body = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// BodyCount is the number of chart bodies.
const BodyCount = 9

var bodyNames = [BodyCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// String returns the body's English name.
func (b Body) String() string {
	if b < 0 || b >= BodyCount {
		return "Unknown"
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the nine chart bodies.
func (b Body) Valid() bool {
	return b >= 0 && b < BodyCount
}

// MarshalText encodes the body as its name, so JSON carries "Sun" rather
// than an index.
func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidBody, "invalid body index: %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a body from its name.
func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Node reports whether the body is a lunar node.
func (b Body) Node() bool {
	return b == Rahu || b == Ketu
}

// Bodies returns all nine bodies in traditional order.
func Bodies() []Body {
	out := make([]Body, BodyCount)
	for i := range out {
		out[i] = Body(i)
	}
	return out
}

// ParseBody resolves a body from its name, case-insensitively.
func ParseBody(name string) (Body, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, b := range bodyNames {
		if strings.ToLower(b) == n {
			return Body(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidBody, "unknown body: %q", name)
}

// Nature is a body's inherent benefic or malefic inclination.
type Nature string

// Body natures.
const (
	Benefic Nature = "Benefic"
	Malefic Nature = "Malefic"
	Neutral Nature = "Neutral"
)

// Nature returns the body's natural inclination. Jupiter, Venus and the Moon
// are benefic; Mercury is neutral; the rest are malefic.
func (b Body) Nature() Nature {
	switch b {
	case Jupiter, Venus, Moon:
		return Benefic
	case Mercury:
		return Neutral
	default:
		return Malefic
	}
}

// OwnSigns returns the signs the body rules. The nodes own no sign.
func (b Body) OwnSigns() []Sign {
	return append([]Sign(nil), ownSigns[b]...)
}

// ExaltationSign returns the sign and exact degree within it where the body
// is exalted.
func (b Body) ExaltationSign() (Sign, float64) {
	e := exaltations[b]
	return e.sign, e.degree
}

// DebilitationSign returns the sign and exact degree within it where the
// body is debilitated. Debilitation is always opposite exaltation.
func (b Body) DebilitationSign() (Sign, float64) {
	e := exaltations[b]
	return e.sign.Offset(6), e.degree
}

// Moolatrikona returns the body's moolatrikona sign and the degree range
// [from, to) within it.
func (b Body) Moolatrikona() (Sign, float64, float64) {
	m := moolatrikonas[b]
	return m.sign, m.from, m.to
}

type exaltation struct {
	sign   Sign
	degree float64
}

var exaltations = [BodyCount]exaltation{
	Sun:     {Aries, 10},
	Moon:    {Taurus, 3},
	Mars:    {Capricorn, 28},
	Mercury: {Virgo, 15},
	Jupiter: {Cancer, 5},
	Venus:   {Pisces, 27},
	Saturn:  {Libra, 20},
	Rahu:    {Gemini, 15},
	Ketu:    {Sagittarius, 15},
}

var ownSigns = [BodyCount][]Sign{
	Sun:     {Leo},
	Moon:    {Cancer},
	Mars:    {Aries, Scorpio},
	Mercury: {Gemini, Virgo},
	Jupiter: {Sagittarius, Pisces},
	Venus:   {Taurus, Libra},
	Saturn:  {Capricorn, Aquarius},
	Rahu:    nil,
	Ketu:    nil,
}

type moolatrikona struct {
	sign     Sign
	from, to float64
}

var moolatrikonas = [BodyCount]moolatrikona{
	Sun:     {Leo, 0, 20},
	Moon:    {Taurus, 4, 30},
	Mars:    {Aries, 0, 12},
	Mercury: {Virgo, 16, 20},
	Jupiter: {Sagittarius, 0, 10},
	Venus:   {Libra, 0, 15},
	Saturn:  {Aquarius, 0, 20},
	Rahu:    {Gemini, 0, 30},
	Ketu:    {Sagittarius, 0, 30},
}

// Relation classifies how one body regards another.
type Relation string

// Natural relationship values. Unknown covers the node-to-node pairs for
// which tradition records no relationship.
const (
	Friend        Relation = "Friend"
	NeutralTo     Relation = "Neutral"
	Enemy         Relation = "Enemy"
	UnknownRelate Relation = "Unknown"
)

type friendship struct {
	friends  []Body
	neutrals []Body
}

// naturalFriendships is directional: the relationship of the keyed body
// toward others. Everything not listed as friend or neutral is an enemy,
// except node-to-node pairs which are unknown.
var naturalFriendships = [BodyCount]friendship{
	Sun:     {friends: []Body{Moon, Mars, Jupiter}, neutrals: []Body{Mercury}},
	Moon:    {friends: []Body{Sun, Mercury}, neutrals: []Body{Mars, Jupiter, Venus, Saturn}},
	Mars:    {friends: []Body{Sun, Moon, Jupiter}, neutrals: []Body{Venus, Saturn}},
	Mercury: {friends: []Body{Sun, Venus}, neutrals: []Body{Mars, Jupiter, Saturn}},
	Jupiter: {friends: []Body{Sun, Moon, Mars}, neutrals: []Body{Saturn}},
	Venus:   {friends: []Body{Mercury, Saturn}, neutrals: []Body{Mars, Jupiter}},
	Saturn:  {friends: []Body{Mercury, Venus}, neutrals: []Body{Jupiter}},
	Rahu:    {friends: []Body{Mercury, Venus, Saturn}},
	Ketu:    {friends: []Body{Mars, Venus, Saturn}},
}

// NaturalRelation returns how body b naturally regards other. The relation
// is directional and need not be mutual. Node-to-node pairs are Unknown.
func (b Body) NaturalRelation(other Body) Relation {
	if b == other {
		return UnknownRelate
	}
	if b.Node() && other.Node() {
		return UnknownRelate
	}
	f := naturalFriendships[b]
	for _, fr := range f.friends {
		if fr == other {
			return Friend
		}
	}
	for _, n := range f.neutrals {
		if n == other {
			return NeutralTo
		}
	}
	return Enemy
}
