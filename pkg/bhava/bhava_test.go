package bhava

import (
	"testing"

	"github.com/navagraha/jyotish/pkg/catalog"
)

func TestBuild(t *testing.T) {
	w := Build(100.0)

	first, err := w.House(1)
	if err != nil {
		t.Fatalf("House(1): %v", err)
	}
	if first.Cusp != 100.0 {
		t.Errorf("house 1 cusp = %g, want 100", first.Cusp)
	}
	if first.Sign != catalog.Cancer {
		t.Errorf("house 1 sign = %v, want Cancer", first.Sign)
	}
	if first.Lord != catalog.Moon {
		t.Errorf("house 1 lord = %v, want Moon", first.Lord)
	}

	seventh, err := w.House(7)
	if err != nil {
		t.Fatalf("House(7): %v", err)
	}
	if seventh.Cusp != 280.0 {
		t.Errorf("house 7 cusp = %g, want 280", seventh.Cusp)
	}

	// Cusps wrap around the zodiac.
	tenth, _ := w.House(10)
	if tenth.Cusp != 10.0 {
		t.Errorf("house 10 cusp = %g, want 10", tenth.Cusp)
	}
}

func TestHouseRange(t *testing.T) {
	w := Build(0)
	if _, err := w.House(0); err == nil {
		t.Error("expected error for house 0")
	}
	if _, err := w.House(13); err == nil {
		t.Error("expected error for house 13")
	}
}

func TestHouseOf(t *testing.T) {
	w := Build(100.0)

	tests := []struct {
		name string
		lon  float64
		want int
	}{
		{"on ascendant", 100, 1},
		{"within first house", 129.9, 1},
		{"second house start", 130, 2},
		{"seventh house", 285, 7},
		{"wraps past zero", 15, 10},
		{"just before ascendant", 99.9, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.HouseOf(tt.lon); got != tt.want {
				t.Errorf("HouseOf(%g) = %d, want %d", tt.lon, got, tt.want)
			}
		})
	}
}

func TestSpanAndMidpoint(t *testing.T) {
	w := Build(350.0)
	first, _ := w.House(1)

	from, to := first.Span()
	if from != 350.0 || to != 20.0 {
		t.Errorf("Span = %g-%g, want 350-20", from, to)
	}
	if got := first.Midpoint(); got != 5.0 {
		t.Errorf("Midpoint = %g, want 5", got)
	}
}

func TestInSandhi(t *testing.T) {
	w := Build(100.0)
	first, _ := w.House(1)

	tests := []struct {
		name string
		lon  float64
		want bool
	}{
		{"on cusp", 100, true},
		{"just inside orb", 101.9, true},
		{"middle of house", 115, false},
		{"near next cusp", 128.5, true},
		{"outside before cusp", 97.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := first.InSandhi(tt.lon); got != tt.want {
				t.Errorf("InSandhi(%g) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestHouseNatures(t *testing.T) {
	w := Build(0)

	for _, tt := range []struct {
		number   int
		kendra   bool
		trikona  bool
		upachaya bool
		dusthana bool
		maraka   bool
	}{
		{1, true, true, false, false, false},
		{2, false, false, false, false, true},
		{3, false, false, true, false, false},
		{4, true, false, false, false, false},
		{5, false, true, false, false, false},
		{6, false, false, true, true, false},
		{7, true, false, false, false, true},
		{8, false, false, false, true, false},
		{9, false, true, false, false, false},
		{10, true, false, true, false, false},
		{11, false, false, true, false, false},
		{12, false, false, false, true, false},
	} {
		h, _ := w.House(tt.number)
		if h.Kendra() != tt.kendra || h.Trikona() != tt.trikona ||
			h.Upachaya() != tt.upachaya || h.Dusthana() != tt.dusthana ||
			h.Maraka() != tt.maraka {
			t.Errorf("house %d natures = kendra=%v trikona=%v upachaya=%v dusthana=%v maraka=%v",
				tt.number, h.Kendra(), h.Trikona(), h.Upachaya(), h.Dusthana(), h.Maraka())
		}
	}
}

func TestHouseNatureLabels(t *testing.T) {
	w := Build(0)

	first, _ := w.House(1)
	if got := first.Natures; len(got) != 2 || got[0] != "Kendra" || got[1] != "Trikona" {
		t.Errorf("house 1 natures = %v, want [Kendra Trikona]", got)
	}

	sixth, _ := w.House(6)
	if got := sixth.Natures; len(got) != 2 || got[0] != "Upachaya" || got[1] != "Dusthana" {
		t.Errorf("house 6 natures = %v, want [Upachaya Dusthana]", got)
	}
}

func TestHouseSanskrit(t *testing.T) {
	w := Build(0)

	for _, tt := range []struct {
		number int
		want   string
	}{
		{1, "Tanu Bhava"},
		{7, "Kalatra Bhava"},
		{10, "Karma Bhava"},
		{12, "Vyaya Bhava"},
	} {
		h, _ := w.House(tt.number)
		if got := h.Sanskrit(); got != tt.want {
			t.Errorf("house %d sanskrit = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestHouseSignifications(t *testing.T) {
	w := Build(0)

	tenth, _ := w.House(10)
	sig := tenth.Significations()
	if len(sig) == 0 || sig[0] != "Career" {
		t.Errorf("house 10 significations = %v, want Career first", sig)
	}

	// The returned slice is a copy.
	sig[0] = "changed"
	again, _ := w.House(10)
	if again.Significations()[0] != "Career" {
		t.Error("mutating the returned slice should not affect the table")
	}
}
