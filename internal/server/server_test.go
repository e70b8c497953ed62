package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/ephemeris"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	bodies := map[catalog.Body]ephemeris.RawPosition{
		catalog.Sun:     {Longitude: 84.2},
		catalog.Moon:    {Longitude: 310.7},
		catalog.Mars:    {Longitude: 352.1},
		catalog.Mercury: {Longitude: 95.6},
		catalog.Jupiter: {Longitude: 121.3},
		catalog.Venus:   {Longitude: 45.8},
		catalog.Saturn:  {Longitude: 292.4, Retrograde: true},
		catalog.Rahu:    {Longitude: 315.9},
		catalog.Ketu:    {Longitude: 135.9},
	}
	provider := ephemeris.NewStatic(bodies).WithAscendant(210.5)

	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := chart.NewRunner(provider, nil, nil, logger)

	cfg := DefaultConfig()
	cfg.RateLimit.Enabled = false
	return New(cfg, runner, logger)
}

func chartRequestBody() []byte {
	return []byte(`{
		"year": 1990, "month": 6, "day": 15,
		"hour": 14, "minute": 30,
		"utc_offset": 5.5,
		"latitude": 28.61, "longitude": 77.21
	}`)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "healthy" {
		t.Errorf("status = %q, want healthy", body.Status)
	}
}

func TestChartEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/chart", "application/json", bytes.NewReader(chartRequestBody()))
	if err != nil {
		t.Fatalf("POST /api/chart: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result chart.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.ID == "" {
		t.Error("result ID missing")
	}
	if len(result.Positions) != int(catalog.BodyCount) {
		t.Errorf("positions = %d, want %d", len(result.Positions), catalog.BodyCount)
	}
	if len(result.Strengths) != 12 {
		t.Errorf("strengths = %d, want 12", len(result.Strengths))
	}
}

func TestChartEndpointBadBody(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	tests := []struct {
		name     string
		body     string
		want     int
		wantCode string
	}{
		{"malformed json", `{"year":`, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown field", `{"year": 1990, "planet": "X"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing year", `{"month": 6, "day": 15}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"bad latitude", `{"year": 1990, "month": 6, "day": 15, "latitude": 91}`, http.StatusBadRequest, "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/chart", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("POST: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}

			var body errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body.Error != tt.wantCode {
				t.Errorf("error code = %q, want %q", body.Error, tt.wantCode)
			}
		})
	}
}

func TestAspectsEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/chart", "application/json", bytes.NewReader(chartRequestBody()))
	if err != nil {
		t.Fatalf("POST /api/chart: %v", err)
	}
	var result chart.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/chart/" + result.ID + "/aspects?mode=degree")
	if err != nil {
		t.Fatalf("GET aspects: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		ChartID string            `json:"chart_id"`
		Mode    string            `json:"mode"`
		Aspects []json.RawMessage `json:"aspects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ChartID != result.ID {
		t.Errorf("chart_id = %q, want %q", body.ChartID, result.ID)
	}
	if body.Mode != "degree" {
		t.Errorf("mode = %q, want degree", body.Mode)
	}
}

func TestAspectsEndpointErrors(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	tests := []struct {
		name string
		path string
		want int
	}{
		{"unknown chart", "/api/chart/nope/aspects", http.StatusNotFound},
		{"bad mode", "/api/chart/nope/aspects?mode=sidereal", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			if err != nil {
				t.Fatalf("GET: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	s := testServer(t)
	s.config.RateLimit = RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         2,
	}
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	var limited bool
	for i := 0; i < 5; i++ {
		resp, err := http.Get(srv.URL + "/health")
		if err != nil {
			t.Fatalf("GET /health: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
		}
	}
	if !limited {
		t.Error("expected at least one 429 after exhausting the burst")
	}
}

func TestResultStoreEviction(t *testing.T) {
	s := testServer(t)

	for i := 0; i < maxStoredResults+10; i++ {
		s.store(&chart.Result{ID: string(rune('a'+i%26)) + string(rune('0'+i/26))})
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) > maxStoredResults {
		t.Errorf("stored %d results, cap is %d", len(s.order), maxStoredResults)
	}
	if len(s.results) != len(s.order) {
		t.Errorf("map size %d != order size %d", len(s.results), len(s.order))
	}
}

func TestMatrixEndpoint(t *testing.T) {
	srv := httptest.NewServer(testServer(t).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/chart", "application/json", bytes.NewReader(chartRequestBody()))
	if err != nil {
		t.Fatalf("POST /api/chart: %v", err)
	}
	var result chart.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/chart/" + result.ID + "/matrix")
	if err != nil {
		t.Fatalf("GET matrix: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		ChartID     string                        `json:"chart_id"`
		Matrix      map[string]map[string]float64 `json:"matrix"`
		HouseMatrix map[string]map[string]float64 `json:"house_matrix"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.ChartID != result.ID {
		t.Errorf("chart_id = %q, want %q", body.ChartID, result.ID)
	}
	if len(body.Matrix) != 9 {
		t.Errorf("matrix has %d rows, want 9", len(body.Matrix))
	}
	if len(body.HouseMatrix) != 9 {
		t.Errorf("house matrix has %d rows, want 9", len(body.HouseMatrix))
	}

	resp, err = http.Get(srv.URL + "/api/chart/missing/matrix")
	if err != nil {
		t.Fatalf("GET matrix: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown chart status = %d, want 404", resp.StatusCode)
	}
}
