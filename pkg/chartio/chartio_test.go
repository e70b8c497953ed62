package chartio

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/navagraha/jyotish/pkg/cache"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/ephemeris"
	"github.com/navagraha/jyotish/pkg/errors"
)

const sampleJHD = `6
15
1990
0.375000000000000
5.147333
77.210000
28.610000
0.000000
5.500000
0.000000
0
105
New Delhi
India
1
1013.250000
20.000000
2`

func TestReadJHD(t *testing.T) {
	rec, err := ReadJHD(strings.NewReader(sampleJHD))
	if err != nil {
		t.Fatalf("ReadJHD: %v", err)
	}

	o := rec.Options
	if o.Year != 1990 || o.Month != 6 || o.Day != 15 {
		t.Errorf("date = %d-%d-%d, want 1990-6-15", o.Year, o.Month, o.Day)
	}
	// 0.375 of a day is 09:00 UT; with a +5.5h zone that is 14:30 civil.
	if o.Hour != 14 || o.Minute != 30 {
		t.Errorf("time = %d:%d, want 14:30", o.Hour, o.Minute)
	}
	if o.UTCOffset != 5.5 {
		t.Errorf("utc offset = %g, want 5.5", o.UTCOffset)
	}
	if o.Latitude != 28.61 || o.Longitude != 77.21 {
		t.Errorf("place = %g,%g, want 28.61,77.21", o.Latitude, o.Longitude)
	}
	if rec.Place != "New Delhi" || rec.Country != "India" {
		t.Errorf("place names = %q/%q", rec.Place, rec.Country)
	}
}

func TestReadJHDTruncated(t *testing.T) {
	_, err := ReadJHD(strings.NewReader("6\n15\n1990"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestReadJHDBadField(t *testing.T) {
	bad := strings.Replace(sampleJHD, "1990", "ninety", 1)
	_, err := ReadJHD(strings.NewReader(bad))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}

func TestJHDRoundTrip(t *testing.T) {
	rec := &JHDRecord{
		Options: chart.Options{
			Year: 1985, Month: 11, Day: 3,
			Hour: 6, Minute: 45,
			UTCOffset: -8,
			Latitude:  37.77, Longitude: -122.42,
		},
		Place:   "San Francisco",
		Country: "USA",
	}

	var buf bytes.Buffer
	if err := WriteJHD(&buf, rec); err != nil {
		t.Fatalf("WriteJHD: %v", err)
	}

	back, err := ReadJHD(&buf)
	if err != nil {
		t.Fatalf("ReadJHD: %v", err)
	}

	o := back.Options
	if o.Year != 1985 || o.Month != 11 || o.Day != 3 {
		t.Errorf("date = %d-%d-%d, want 1985-11-3", o.Year, o.Month, o.Day)
	}
	if o.Hour != 6 || o.Minute != 45 {
		t.Errorf("time = %d:%d, want 6:45", o.Hour, o.Minute)
	}
	if o.UTCOffset != -8 {
		t.Errorf("utc offset = %g, want -8", o.UTCOffset)
	}
	if back.Place != "San Francisco" {
		t.Errorf("place = %q", back.Place)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	provider := ephemeris.NewStatic(map[catalog.Body]ephemeris.RawPosition{
		catalog.Sun:     {Longitude: 84.2},
		catalog.Moon:    {Longitude: 310.7},
		catalog.Mars:    {Longitude: 352.1},
		catalog.Mercury: {Longitude: 95.6},
		catalog.Jupiter: {Longitude: 121.3},
		catalog.Venus:   {Longitude: 45.8},
		catalog.Saturn:  {Longitude: 292.4},
		catalog.Rahu:    {Longitude: 315.9},
		catalog.Ketu:    {Longitude: 135.9},
	}).WithAscendant(210.5)

	runner := chart.NewRunner(provider, cache.NewNullCache(), nil, nil)
	result, err := runner.Execute(context.Background(), chart.Options{
		Year: 1990, Month: 6, Day: 15, Hour: 14, Minute: 30,
		UTCOffset: 5.5, Latitude: 28.61, Longitude: 77.21,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, result); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if back.ID != result.ID {
		t.Errorf("ID = %q, want %q", back.ID, result.ID)
	}
	if len(back.Positions) != len(result.Positions) {
		t.Errorf("positions = %d, want %d", len(back.Positions), len(result.Positions))
	}
	if back.Ascendant != result.Ascendant {
		t.Errorf("ascendant = %g, want %g", back.Ascendant, result.Ascendant)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected invalid format error, got %v", err)
	}
}
