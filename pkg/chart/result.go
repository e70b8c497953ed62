package chart

import (
	"time"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/bhava"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/dignity"
	"github.com/navagraha/jyotish/pkg/karaka"
	"github.com/navagraha/jyotish/pkg/panchanga"
	"github.com/navagraha/jyotish/pkg/position"
	"github.com/navagraha/jyotish/pkg/strength"
)

// Result contains the outputs of a chart computation.
type Result struct {
	// ID uniquely identifies this computed chart.
	ID string `json:"id"`

	// JulianDay is the birth moment in Universal Time.
	JulianDay float64 `json:"julian_day"`

	// Ayanamsa is the sidereal offset applied, in degrees.
	Ayanamsa float64 `json:"ayanamsa"`

	// System is the ayanamsa system used.
	System astro.AyanamsaSystem `json:"system"`

	// Mode is the aspect mode used.
	Mode aspect.Mode `json:"mode"`

	// Ascendant is the sidereal ascendant longitude.
	Ascendant float64 `json:"ascendant"`

	// Positions holds the sidereal placement of each body, in traditional
	// body order.
	Positions []position.Position `json:"positions"`

	// Placements holds the derived context per body: its house, dignity
	// and divisional chart signs.
	Placements []Placement `json:"placements,omitempty"`

	// Wheel is the equal house wheel.
	Wheel bhava.Wheel `json:"wheel"`

	// Aspects holds every aspect among the bodies.
	Aspects []aspect.Aspect `json:"aspects,omitempty"`

	// Conjunctions holds the body pairs within conjunction orb.
	Conjunctions []aspect.Conjunction `json:"conjunctions,omitempty"`

	// Strengths holds a report per house, ordered 1 through 12.
	Strengths []strength.Report `json:"strengths,omitempty"`

	// Karakas holds the chara karaka assignments.
	Karakas []karaka.Assignment `json:"karakas,omitempty"`

	// Panchanga holds the five limbs for the birth moment.
	Panchanga *panchanga.Panchanga `json:"panchanga,omitempty"`

	// Incomplete is set when the provider returned fewer than the nine
	// chart bodies or could not supply an ascendant. Missing lists the
	// absent bodies; AscendantEstimated marks a sidereal time fallback.
	Incomplete         bool           `json:"incomplete,omitempty"`
	Missing            []catalog.Body `json:"missing,omitempty"`
	AscendantEstimated bool           `json:"ascendant_estimated,omitempty"`

	// Stats contains timing information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks whether the result came from cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Placement is the derived chart context for one body.
type Placement struct {
	Body    catalog.Body                    `json:"body"`
	House   int                             `json:"house"`
	Sandhi  bool                            `json:"sandhi"` // body sits on a house junction
	Dignity dignity.Dignity                 `json:"dignity"`
	Vargas  map[position.Varga]catalog.Sign `json:"vargas,omitempty"`
}

// buildPlacements derives the per-body context from positions and houses.
func buildPlacements(positions []position.Position, wheel bhava.Wheel) []Placement {
	out := make([]Placement, 0, len(positions))
	for _, p := range positions {
		houseNum := wheel.HouseOf(p.Longitude)
		house := wheel.Houses[houseNum-1]
		pl := Placement{
			Body:    p.Body,
			House:   houseNum,
			Sandhi:  house.InSandhi(p.Longitude),
			Dignity: dignity.Resolve(p.Body, p.Sign, p.DegreesInSign),
			Vargas:  make(map[position.Varga]catalog.Sign, len(position.Vargas())),
		}
		for _, v := range position.Vargas() {
			if sign, err := p.VargaSign(v); err == nil {
				pl.Vargas[v] = sign
			}
		}
		out = append(out, pl)
	}
	return out
}

// Matrix returns the full body-by-body aspect strength table for the result.
func (r *Result) Matrix() aspect.Matrix {
	return aspect.BuildMatrix(r.Positions, r.Mode)
}

// HouseMatrix returns the body-by-house aspect strength table for the
// result.
func (r *Result) HouseMatrix() aspect.HouseMatrix {
	var cusps [bhava.HouseCount]float64
	for i, h := range r.Wheel.Houses {
		cusps[i] = h.Cusp
	}
	return aspect.BuildHouseMatrix(r.Positions, cusps, r.Mode)
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PositionTime time.Duration `json:"position_time"`
	AnalysisTime time.Duration `json:"analysis_time"`
}

// CacheInfo tracks cache usage for a run.
type CacheInfo struct {
	Hit bool `json:"hit"` // whether the whole chart came from cache
}

// PositionOf returns the placement of one body, if present.
func (r *Result) PositionOf(body catalog.Body) (position.Position, bool) {
	for _, p := range r.Positions {
		if p.Body == body {
			return p, true
		}
	}
	return position.Position{}, false
}

// HouseOf returns the house a body occupies, or 0 when absent.
func (r *Result) HouseOf(body catalog.Body) int {
	p, ok := r.PositionOf(body)
	if !ok {
		return 0
	}
	return r.Wheel.HouseOf(p.Longitude)
}
