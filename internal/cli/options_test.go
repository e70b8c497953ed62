package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/errors"
)

func TestBirthOptsToOptions(t *testing.T) {
	o := &birthOpts{
		date:      "1990-06-15",
		birthTime: "14:30",
		utcOffset: 5.5,
		latitude:  28.61,
		longitude: 77.21,
	}

	opts, err := o.toOptions(Config{})
	if err != nil {
		t.Fatalf("toOptions: %v", err)
	}

	if opts.Year != 1990 || opts.Month != 6 || opts.Day != 15 {
		t.Errorf("date = %d-%d-%d, want 1990-6-15", opts.Year, opts.Month, opts.Day)
	}
	if opts.Hour != 14 || opts.Minute != 30 || opts.Second != 0 {
		t.Errorf("time = %d:%d:%d, want 14:30:00", opts.Hour, opts.Minute, opts.Second)
	}
	if opts.Ayanamsa != astro.AyanamsaLahiri {
		t.Errorf("ayanamsa = %q, want default lahiri", opts.Ayanamsa)
	}
	if opts.Mode != aspect.ModeRasi {
		t.Errorf("mode = %q, want default rasi", opts.Mode)
	}
}

func TestBirthOptsWithSeconds(t *testing.T) {
	o := &birthOpts{
		date:      "1990-06-15",
		birthTime: "14:30:45",
		utcOffset: 5.5,
		latitude:  28.61,
		longitude: 77.21,
	}

	opts, err := o.toOptions(Config{})
	if err != nil {
		t.Fatalf("toOptions: %v", err)
	}
	if opts.Second != 45 {
		t.Errorf("second = %d, want 45", opts.Second)
	}
}

func TestBirthOptsLocationPreset(t *testing.T) {
	cfg := Config{
		Ayanamsa: "raman",
		Mode:     "degree",
		Locations: map[string]Location{
			"delhi": {Latitude: 28.61, Longitude: 77.21, UTCOffset: 5.5},
		},
	}

	o := &birthOpts{date: "1990-06-15", birthTime: "14:30", location: "delhi"}
	opts, err := o.toOptions(cfg)
	if err != nil {
		t.Fatalf("toOptions: %v", err)
	}

	if opts.Latitude != 28.61 || opts.Longitude != 77.21 || opts.UTCOffset != 5.5 {
		t.Errorf("preset not applied: lat=%g lon=%g tz=%g", opts.Latitude, opts.Longitude, opts.UTCOffset)
	}
	if opts.Ayanamsa != astro.AyanamsaRaman {
		t.Errorf("ayanamsa = %q, want raman from config", opts.Ayanamsa)
	}
	if opts.Mode != aspect.ModeDegree {
		t.Errorf("mode = %q, want degree from config", opts.Mode)
	}
}

func TestBirthOptsFlagsBeatConfig(t *testing.T) {
	cfg := Config{Ayanamsa: "raman"}
	o := &birthOpts{
		date: "1990-06-15", birthTime: "14:30",
		latitude: 28.61, longitude: 77.21, utcOffset: 5.5,
		ayanamsa: "krishnamurti",
	}

	opts, err := o.toOptions(cfg)
	if err != nil {
		t.Fatalf("toOptions: %v", err)
	}
	if opts.Ayanamsa != astro.AyanamsaKrishnamurti {
		t.Errorf("ayanamsa = %q, flag should beat config", opts.Ayanamsa)
	}
}

func TestBirthOptsErrors(t *testing.T) {
	tests := []struct {
		name string
		o    birthOpts
	}{
		{"bad date", birthOpts{date: "15/06/1990", birthTime: "14:30", latitude: 1, longitude: 1}},
		{"bad time", birthOpts{date: "1990-06-15", birthTime: "2pm", latitude: 1, longitude: 1}},
		{"unknown location", birthOpts{date: "1990-06-15", birthTime: "14:30", location: "atlantis"}},
		{"missing date", birthOpts{birthTime: "14:30", latitude: 1, longitude: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.o.toOptions(Config{}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
ayanamsa = "raman"
mode = "degree"

[locations.delhi]
latitude = 28.61
longitude = 77.21
utc_offset = 5.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Ayanamsa != "raman" {
		t.Errorf("ayanamsa = %q, want raman", cfg.Ayanamsa)
	}
	if cfg.Mode != "degree" {
		t.Errorf("mode = %q, want degree", cfg.Mode)
	}
	loc, ok := cfg.Locations["delhi"]
	if !ok {
		t.Fatal("delhi preset missing")
	}
	if loc.UTCOffset != 5.5 {
		t.Errorf("utc_offset = %g, want 5.5", loc.UTCOffset)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	if cfg.Ayanamsa != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("ayanamsa = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Error("malformed config should error")
	}
}

func TestLoadPositions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "positions.json")
	content := `{
		"ascendant": 210.5,
		"bodies": {
			"Sun": {"longitude": 84.2},
			"Moon": {"longitude": 310.7},
			"Saturn": {"longitude": 292.4, "retrograde": true}
		}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	provider, err := loadPositions(path)
	if err != nil {
		t.Fatalf("loadPositions: %v", err)
	}

	raw, err := provider.Positions(t.Context(), astro.J2000)
	if err != nil {
		t.Fatalf("Positions: %v", err)
	}
	if len(raw) != 3 {
		t.Errorf("bodies = %d, want 3", len(raw))
	}

	asc, err := provider.Ascendant(t.Context(), astro.J2000, 28.61, 77.21)
	if err != nil {
		t.Fatalf("Ascendant: %v", err)
	}
	if asc != 210.5 {
		t.Errorf("ascendant = %g, want pinned 210.5", asc)
	}
}

func TestLoadPositionsErrors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`{"bodies": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	unknown := filepath.Join(dir, "unknown.json")
	if err := os.WriteFile(unknown, []byte(`{"bodies": {"Pluto": {"longitude": 1}}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing file", filepath.Join(dir, "nope.json"), errors.ErrCodeFileNotFound},
		{"malformed", bad, errors.ErrCodeInvalidFormat},
		{"no bodies", empty, errors.ErrCodeInvalidFormat},
		{"unknown body", unknown, errors.ErrCodeInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPositions(tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q", got, tt.code)
			}
		})
	}
}
