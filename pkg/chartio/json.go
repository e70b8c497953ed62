package chartio

import (
	"encoding/json"
	"io"

	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/errors"
)

// WriteJSON serializes a computed chart as indented JSON.
func WriteJSON(w io.Writer, result *chart.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding chart")
	}
	return nil
}

// ReadJSON deserializes a chart previously written by WriteJSON.
func ReadJSON(r io.Reader) (*chart.Result, error) {
	var result chart.Result
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decoding chart")
	}
	return &result, nil
}
