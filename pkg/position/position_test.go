package position

import (
	"testing"

	"github.com/navagraha/jyotish/pkg/catalog"
)

func TestDerive(t *testing.T) {
	p := Derive(catalog.Moon, 95.0, false)

	if p.Sign != catalog.Cancer {
		t.Errorf("Sign = %v, want Cancer", p.Sign)
	}
	if p.DegreesInSign != 5.0 {
		t.Errorf("DegreesInSign = %g, want 5.0", p.DegreesInSign)
	}
	if p.Nakshatra.String() != "Pushya" {
		t.Errorf("Nakshatra = %v, want Pushya", p.Nakshatra)
	}
}

func TestDeriveNormalizes(t *testing.T) {
	p := Derive(catalog.Mars, 370.0, true)
	if p.Longitude != 10.0 {
		t.Errorf("Longitude = %g, want 10", p.Longitude)
	}
	if p.Sign != catalog.Aries {
		t.Errorf("Sign = %v, want Aries", p.Sign)
	}
	if !p.Retrograde {
		t.Error("Retrograde should be preserved")
	}
}

func TestPositionString(t *testing.T) {
	p := Derive(catalog.Saturn, 200.0, true)
	want := "Saturn 20.00° Libra (R)"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHora(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want catalog.Sign
	}{
		{"aries first half", 5, catalog.Cancer},
		{"aries second half", 20, catalog.Leo},
		{"taurus first half", 35, catalog.Leo},
		{"taurus second half", 50, catalog.Cancer},
		{"boundary at fifteen", 15, catalog.Leo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(catalog.Sun, tt.lon, false)
			got, err := p.VargaSign(D2)
			if err != nil {
				t.Fatalf("VargaSign: %v", err)
			}
			if got != tt.want {
				t.Errorf("hora of %g = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestDrekkana(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want catalog.Sign
	}{
		{"leo first third", 125, catalog.Aries},
		{"leo second third", 135, catalog.Leo},
		{"leo last third", 145, catalog.Sagittarius},
		{"virgo second third", 165, catalog.Virgo},
		{"aquarius last third", 325, catalog.Aquarius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(catalog.Sun, tt.lon, false)
			got, err := p.VargaSign(D3)
			if err != nil {
				t.Fatalf("VargaSign: %v", err)
			}
			if got != tt.want {
				t.Errorf("drekkana of %g = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestNavamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want catalog.Sign
	}{
		{"aries start", 0, catalog.Aries},
		{"aries second pada", 3.5, catalog.Taurus},
		{"taurus starts capricorn", 30, catalog.Capricorn},
		{"gemini starts libra", 60, catalog.Libra},
		{"cancer starts cancer", 90, catalog.Cancer},
		{"aries last navamsa", 29.9, catalog.Sagittarius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(catalog.Moon, tt.lon, false)
			got, err := p.VargaSign(D9)
			if err != nil {
				t.Fatalf("VargaSign: %v", err)
			}
			if got != tt.want {
				t.Errorf("navamsa of %g = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestDasamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want catalog.Sign
	}{
		{"aries start counts from aries", 0, catalog.Aries},
		{"aries second part", 4, catalog.Taurus},
		{"taurus counts from ninth", 30, catalog.Capricorn},
		{"taurus second part", 34, catalog.Aquarius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(catalog.Venus, tt.lon, false)
			got, err := p.VargaSign(D10)
			if err != nil {
				t.Fatalf("VargaSign: %v", err)
			}
			if got != tt.want {
				t.Errorf("dasamsa of %g = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestDwadasamsa(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want catalog.Sign
	}{
		{"sign start maps to itself", 0, catalog.Aries},
		{"second part", 2.5, catalog.Taurus},
		{"last part wraps", 29, catalog.Pisces},
		{"scorpio fourth part", 218, catalog.Aquarius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(catalog.Jupiter, tt.lon, false)
			got, err := p.VargaSign(D12)
			if err != nil {
				t.Fatalf("VargaSign: %v", err)
			}
			if got != tt.want {
				t.Errorf("dwadasamsa of %g = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestVargaSignUnsupported(t *testing.T) {
	p := Derive(catalog.Sun, 0, false)
	if _, err := p.VargaSign(Varga("D60")); err == nil {
		t.Error("expected error for unsupported varga")
	}
}
