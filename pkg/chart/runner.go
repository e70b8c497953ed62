package chart

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/bhava"
	"github.com/navagraha/jyotish/pkg/cache"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/ephemeris"
	"github.com/navagraha/jyotish/pkg/errors"
	"github.com/navagraha/jyotish/pkg/karaka"
	"github.com/navagraha/jyotish/pkg/panchanga"
	"github.com/navagraha/jyotish/pkg/position"
	"github.com/navagraha/jyotish/pkg/strength"
)

// Runner encapsulates chart computation with caching.
//
// The Runner is stateless except for the provider, cache and logger - it
// doesn't store results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Provider ephemeris.Provider
	Cache    cache.Cache
	Keyer    cache.Keyer
	Logger   *log.Logger
}

// NewRunner creates a runner with the given provider, cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(provider ephemeris.Provider, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Provider: provider,
		Cache:    c,
		Keyer:    keyer,
		Logger:   logger,
	}
}

// Execute runs the complete positions → houses → analysis pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	// Refresh only controls cache bypass; keep it out of the key so a
	// refreshed run overwrites the stale entry.
	keyOpts := opts
	keyOpts.Refresh = false
	cacheKey := r.Keyer.ChartKey(keyOpts)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached Result
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.CacheInfo.Hit = true
				return &cached, nil
			}
			// Corrupt entry, recompute.
		}
	}

	result := &Result{
		ID:     uuid.NewString(),
		System: opts.Ayanamsa,
		Mode:   opts.Mode,
	}

	// Stage 1: Positions
	posStart := time.Now()
	jd := opts.JulianDay()
	result.JulianDay = jd
	result.Ayanamsa = astro.Ayanamsa(opts.Ayanamsa, jd)

	positions, missing, asc, estimated, err := r.Positions(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Positions = positions
	result.Missing = missing
	result.AscendantEstimated = estimated
	result.Incomplete = len(missing) > 0 || estimated
	result.Ascendant = asc
	result.Stats.PositionTime = time.Since(posStart)

	r.Logger.Info("computed positions",
		"bodies", len(positions),
		"ascendant", asc,
		"duration", result.Stats.PositionTime)

	// Stage 2+3: Houses and analysis
	analysisStart := time.Now()
	result.Wheel = bhava.Build(asc)
	for _, p := range positions {
		h := result.Wheel.HouseOf(p.Longitude)
		result.Wheel.Houses[h-1].Occupants = append(result.Wheel.Houses[h-1].Occupants, p.Body)
	}
	result.Placements = buildPlacements(positions, result.Wheel)

	result.Aspects = aspect.All(positions, opts.Mode)
	result.Conjunctions = aspect.ConjunctionsWithin(positions, opts.ConjunctionOrb)

	analysis := strength.New(result.Wheel, positions, opts.Mode)
	if reports, err := analysis.AllHouses(); err == nil {
		result.Strengths = reports
	}

	result.Karakas = karaka.Standard(positions)

	if sun, okSun := result.PositionOf(catalog.Sun); okSun {
		if moon, okMoon := result.PositionOf(catalog.Moon); okMoon {
			p := panchanga.At(opts.CivilTime(), sun.Longitude, moon.Longitude)
			result.Panchanga = &p
		}
	}
	result.Stats.AnalysisTime = time.Since(analysisStart)

	r.Logger.Info("analyzed chart",
		"aspects", len(result.Aspects),
		"conjunctions", len(result.Conjunctions),
		"incomplete", result.Incomplete,
		"duration", result.Stats.AnalysisTime)

	if data, err := json.Marshal(result); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLChart)
	}

	return result, nil
}

// Positions fetches tropical positions, converts them to the sidereal
// zodiac, and reports any chart bodies the provider omitted. The returned
// ascendant is sidereal; when the provider cannot supply one, a local
// sidereal time approximation stands in and estimated reports it.
func (r *Runner) Positions(ctx context.Context, opts Options) ([]position.Position, []catalog.Body, float64, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, 0, false, err
	}

	jd := opts.JulianDay()
	positions, missing, err := r.siderealPositions(ctx, opts, jd)
	if err != nil {
		return nil, nil, 0, false, err
	}

	estimated := false
	tropicalAsc, err := r.Provider.Ascendant(ctx, jd, opts.Latitude, opts.Longitude)
	if err != nil {
		// A missing ascendant degrades the chart instead of aborting it:
		// fall back to the local sidereal time estimate and flag the result.
		tropicalAsc = ephemeris.ApproximateAscendant(jd, opts.Latitude, opts.Longitude)
		estimated = true
	}
	asc := astro.TropicalToSidereal(tropicalAsc, opts.Ayanamsa, jd)

	return positions, missing, asc, estimated, nil
}

// cachedPositions is the cache envelope for a memoized position lookup.
type cachedPositions struct {
	Positions []position.Position `json:"positions"`
	Missing   []catalog.Body      `json:"missing,omitempty"`
}

// siderealPositions fetches and derives the sidereal body positions,
// memoized by Julian Day and ayanamsa system. Positions for a moment never
// change, so they outlive any single chart entry.
func (r *Runner) siderealPositions(ctx context.Context, opts Options, jd float64) ([]position.Position, []catalog.Body, error) {
	posKey := r.Keyer.PositionsKey(jd, string(opts.Ayanamsa))
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, posKey); err == nil && hit {
			var cached cachedPositions
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached.Positions, cached.Missing, nil
			}
		}
	}

	raw, err := r.Provider.Positions(ctx, jd)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeEphemeris, err, "fetching positions for JD %f", jd)
	}

	var positions []position.Position
	var missing []catalog.Body
	for _, b := range catalog.Bodies() {
		rp, ok := raw[b]
		if !ok {
			missing = append(missing, b)
			continue
		}
		sidereal := astro.TropicalToSidereal(rp.Longitude, opts.Ayanamsa, jd)
		p := position.Derive(b, sidereal, rp.Retrograde)
		p.Latitude = rp.Latitude
		p.Speed = rp.Speed
		positions = append(positions, p)
	}

	if data, err := json.Marshal(cachedPositions{Positions: positions, Missing: missing}); err == nil {
		_ = r.Cache.Set(ctx, posKey, data, cache.TTLPositions)
	}
	return positions, missing, nil
}

// Aspects recomputes the aspect list for a result under a different mode,
// with caching.
func (r *Runner) Aspects(ctx context.Context, result *Result, mode aspect.Mode) ([]aspect.Aspect, error) {
	if mode != aspect.ModeRasi && mode != aspect.ModeDegree {
		return nil, errors.New(errors.ErrCodeInvalidMode, "unknown aspect mode: %q", mode)
	}

	hash := result.ID
	cacheKey := r.Keyer.AspectKey(hash, string(mode))
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		var cached []aspect.Aspect
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	aspects := aspect.All(result.Positions, mode)
	if data, err := json.Marshal(aspects); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLAspects)
	}
	return aspects, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
