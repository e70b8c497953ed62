package dignity

import (
	"testing"

	"github.com/navagraha/jyotish/pkg/catalog"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		body catalog.Body
		sign catalog.Sign
		deg  float64
		want Dignity
	}{
		{"sun exalted exact in aries", catalog.Sun, catalog.Aries, 10, ExaltedExact},
		{"sun exalted in aries", catalog.Sun, catalog.Aries, 25, Exalted},
		{"sun debilitated exact in libra", catalog.Sun, catalog.Libra, 10, DebilitatedExact},
		{"sun debilitated in libra", catalog.Sun, catalog.Libra, 25, Debilitated},
		{"sun moolatrikona in leo", catalog.Sun, catalog.Leo, 10, Moolatrikona},
		{"sun own sign past moolatrikona", catalog.Sun, catalog.Leo, 25, OwnSign},
		{"moon exalted exact in taurus", catalog.Moon, catalog.Taurus, 3, ExaltedExact},
		{"moon exalted in taurus", catalog.Moon, catalog.Taurus, 20, Exalted},
		{"mercury exalted over own virgo", catalog.Mercury, catalog.Virgo, 18, Exalted},
		{"mercury exalted exact in virgo", catalog.Mercury, catalog.Virgo, 15.5, ExaltedExact},
		{"mercury own gemini", catalog.Mercury, catalog.Gemini, 10, OwnSign},
		{"jupiter in friend sign", catalog.Jupiter, catalog.Aries, 15, FriendSign},
		{"venus in enemy sign", catalog.Venus, catalog.Leo, 15, EnemySign},
		{"saturn neutral toward jupiter signs", catalog.Saturn, catalog.Pisces, 15, NeutralSign},
		{"rahu exalted in gemini", catalog.Rahu, catalog.Gemini, 25, Exalted},
		{"ketu debilitated in gemini", catalog.Ketu, catalog.Gemini, 2, Debilitated},
		{"rahu friend of venus signs", catalog.Rahu, catalog.Libra, 15, FriendSign},
		{"mars own scorpio", catalog.Mars, catalog.Scorpio, 20, OwnSign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.body, tt.sign, tt.deg); got != tt.want {
				t.Errorf("Resolve(%v, %v, %g) = %v, want %v",
					tt.body, tt.sign, tt.deg, got, tt.want)
			}
		})
	}
}

func TestResolveExactBoundary(t *testing.T) {
	// The exact window is inclusive at one degree either side.
	tests := []struct {
		deg  float64
		want Dignity
	}{
		{9.0, ExaltedExact},
		{11.0, ExaltedExact},
		{11.01, Exalted},
		{8.99, Exalted},
	}
	for _, tt := range tests {
		if got := Resolve(catalog.Sun, catalog.Aries, tt.deg); got != tt.want {
			t.Errorf("Resolve(Sun, Aries, %g) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestDignityStrong(t *testing.T) {
	for _, d := range []Dignity{ExaltedExact, Exalted, Moolatrikona, OwnSign} {
		if !d.Strong() {
			t.Errorf("%v should be strong", d)
		}
	}
	for _, d := range []Dignity{FriendSign, NeutralSign, EnemySign, Debilitated, DebilitatedExact} {
		if d.Strong() {
			t.Errorf("%v should not be strong", d)
		}
	}
}
