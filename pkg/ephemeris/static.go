package ephemeris

import (
	"context"

	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/errors"
)

// Static is a Provider backed by a fixed table of positions. It serves
// charts built from externally computed longitudes and is the provider used
// throughout the test suite.
type Static struct {
	Bodies map[catalog.Body]RawPosition

	// Asc optionally pins the ascendant. When nil, the ascendant is
	// approximated from local sidereal time.
	Asc *float64
}

// NewStatic builds a Static provider from a position table.
func NewStatic(bodies map[catalog.Body]RawPosition) *Static {
	return &Static{Bodies: bodies}
}

// WithAscendant pins the tropical ascendant to a fixed longitude.
func (s *Static) WithAscendant(lon float64) *Static {
	l := astro.Normalize(lon)
	s.Asc = &l
	return s
}

// Positions implements Provider.
func (s *Static) Positions(ctx context.Context, jd float64) (map[catalog.Body]RawPosition, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEphemeris, err, "position lookup canceled")
	}
	if len(s.Bodies) == 0 {
		return nil, errors.New(errors.ErrCodeEphemeris, "static provider holds no positions")
	}
	out := make(map[catalog.Body]RawPosition, len(s.Bodies))
	for b, p := range s.Bodies {
		out[b] = p
	}
	return out, nil
}

// Ascendant implements Provider. Without a pinned value it falls back to a
// latitude-corrected local sidereal time estimate.
func (s *Static) Ascendant(ctx context.Context, jd, latitude, longitude float64) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.Wrap(errors.ErrCodeEphemeris, err, "ascendant lookup canceled")
	}
	if s.Asc != nil {
		return *s.Asc, nil
	}
	return ApproximateAscendant(jd, latitude, longitude), nil
}

// ApproximateAscendant estimates the tropical ascendant from local sidereal
// time with a coarse latitude correction. It is a fallback for providers
// with no horizon model.
func ApproximateAscendant(jd, latitude, longitude float64) float64 {
	lst := astro.LocalSiderealTime(jd, longitude)
	return astro.Normalize(lst + 0.5*latitude)
}
