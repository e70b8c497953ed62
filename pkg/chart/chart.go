// Package chart provides the core computation pipeline for sidereal birth
// charts.
//
// This package implements the complete positions → houses → analysis
// pipeline used by the CLI and the API. By centralizing this logic, both
// entry points share identical behavior and caching.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Positions: Fetch tropical positions from the ephemeris provider and
//     convert them to the sidereal zodiac
//  2. Houses: Build the equal house wheel from the ascendant
//  3. Analysis: Aspects, conjunctions, house strengths, karakas and the
//     panchanga
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := chart.NewRunner(provider, cache, nil, logger)
//	opts := chart.Options{
//	    Year: 1990, Month: 6, Day: 15,
//	    Hour: 14, Minute: 30,
//	    Latitude: 28.61, Longitude: 77.21,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Positions)
package chart

import (
	"time"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/errors"
)

// Defaults applied by ValidateAndSetDefaults.
const (
	// DefaultAyanamsa is the sidereal zero point used when none is given.
	DefaultAyanamsa = astro.AyanamsaLahiri

	// DefaultMode is the aspect computation mode used when none is given.
	DefaultMode = aspect.ModeRasi
)

// Options contains all configuration for a chart computation.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Birth moment, civil time
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second,omitempty"`

	// UTCOffset is the civil timezone offset in hours, east positive.
	UTCOffset float64 `json:"utc_offset"`

	// Birth place
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Ayanamsa selects the sidereal zero point.
	Ayanamsa astro.AyanamsaSystem `json:"ayanamsa,omitempty"`

	// Mode selects rasi or degree aspect computation.
	Mode aspect.Mode `json:"mode,omitempty"`

	// ConjunctionOrb is the widest separation, in degrees, counted as a
	// conjunction. Zero means the default orb.
	ConjunctionOrb float64 `json:"conjunction_orb,omitempty"`

	// Refresh bypasses the cache for this run.
	Refresh bool `json:"refresh,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Year == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "year is required")
	}
	if o.Month < 1 || o.Month > 12 {
		return errors.New(errors.ErrCodeInvalidInput, "month must be between 1 and 12, got %d", o.Month)
	}
	if o.Day < 1 || o.Day > 31 {
		return errors.New(errors.ErrCodeInvalidInput, "day must be between 1 and 31, got %d", o.Day)
	}
	if o.Hour < 0 || o.Hour > 23 {
		return errors.New(errors.ErrCodeInvalidInput, "hour must be between 0 and 23, got %d", o.Hour)
	}
	if o.Minute < 0 || o.Minute > 59 {
		return errors.New(errors.ErrCodeInvalidInput, "minute must be between 0 and 59, got %d", o.Minute)
	}
	if o.Second < 0 || o.Second > 59 {
		return errors.New(errors.ErrCodeInvalidInput, "second must be between 0 and 59, got %d", o.Second)
	}
	if o.UTCOffset < -14 || o.UTCOffset > 14 {
		return errors.New(errors.ErrCodeInvalidInput, "utc_offset must be between -14 and 14, got %g", o.UTCOffset)
	}
	if err := errors.ValidateLatitude(o.Latitude); err != nil {
		return err
	}
	if err := errors.ValidateLongitude(o.Longitude); err != nil {
		return err
	}

	if o.Ayanamsa == "" {
		o.Ayanamsa = DefaultAyanamsa
	}
	if !o.Ayanamsa.Valid() {
		return errors.New(errors.ErrCodeInvalidAyanamsa, "unknown ayanamsa system: %q", o.Ayanamsa)
	}

	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Mode != aspect.ModeRasi && o.Mode != aspect.ModeDegree {
		return errors.New(errors.ErrCodeInvalidMode, "unknown aspect mode: %q", o.Mode)
	}

	if o.ConjunctionOrb < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "conjunction_orb must not be negative, got %g", o.ConjunctionOrb)
	}
	if o.ConjunctionOrb == 0 {
		o.ConjunctionOrb = aspect.MaxOrb
	}

	o.validated = true
	return nil
}

// JulianDay returns the Julian Day of the birth moment in Universal Time.
func (o *Options) JulianDay() float64 {
	ut := float64(o.Hour) + float64(o.Minute)/60 + float64(o.Second)/3600 - o.UTCOffset
	return astro.JulianDay(o.Year, o.Month, o.Day, ut)
}

// CivilTime returns the birth moment as a time.Time in its civil zone.
func (o *Options) CivilTime() time.Time {
	zone := time.FixedZone("", int(o.UTCOffset*3600))
	return time.Date(o.Year, time.Month(o.Month), o.Day, o.Hour, o.Minute, o.Second, 0, zone)
}
