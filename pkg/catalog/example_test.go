package catalog_test

import (
	"fmt"

	"github.com/navagraha/jyotish/pkg/catalog"
)

func ExampleSignOf() {
	// Map a sidereal longitude to its sign
	sign := catalog.SignOf(95.0)

	fmt.Println("Sign:", sign)
	fmt.Println("Element:", sign.Element())
	fmt.Println("Ruler:", sign.Ruler())
	// Output:
	// Sign: Cancer
	// Element: Water
	// Ruler: Moon
}

func ExampleSign_Opposite() {
	fmt.Println(catalog.Aries.Opposite())
	fmt.Println(catalog.Scorpio.Opposite())
	// Output:
	// Libra
	// Taurus
}

func ExampleNakshatraOf() {
	// Each nakshatra spans 13°20' and divides into four padas
	nak, pada := catalog.NakshatraOf(50.0)

	fmt.Println("Nakshatra:", nak)
	fmt.Println("Pada:", pada)
	fmt.Println("Lord:", nak.Lord())
	// Output:
	// Nakshatra: Rohini
	// Pada: 4
	// Lord: Moon
}
