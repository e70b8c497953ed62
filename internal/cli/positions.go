package cli

import (
	"encoding/json"
	"os"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/ephemeris"
	"github.com/navagraha/jyotish/pkg/errors"
)

// positionsFile is the on-disk shape of a --positions file: tropical
// longitudes per body plus an optional tropical ascendant.
type positionsFile struct {
	Ascendant *float64 `json:"ascendant,omitempty"`

	Bodies map[string]struct {
		Longitude  float64 `json:"longitude"`
		Latitude   float64 `json:"latitude,omitempty"`
		Speed      float64 `json:"speed,omitempty"`
		Retrograde bool    `json:"retrograde,omitempty"`
	} `json:"bodies"`
}

// loadPositions reads a positions file into a static ephemeris provider.
func loadPositions(path string) (*ephemeris.Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "positions file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read positions file %s", path)
	}

	var file positionsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse positions file %s", path)
	}
	if len(file.Bodies) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "positions file %s lists no bodies", path)
	}

	bodies := make(map[catalog.Body]ephemeris.RawPosition, len(file.Bodies))
	for name, raw := range file.Bodies {
		body, err := catalog.ParseBody(name)
		if err != nil {
			return nil, err
		}
		bodies[body] = ephemeris.RawPosition{
			Longitude:  raw.Longitude,
			Latitude:   raw.Latitude,
			Speed:      raw.Speed,
			Retrograde: raw.Retrograde,
		}
	}

	provider := ephemeris.NewStatic(bodies)
	if file.Ascendant != nil {
		provider = provider.WithAscendant(*file.Ascendant)
	}
	return provider, nil
}
