package position_test

import (
	"fmt"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/position"
)

func ExampleDerive() {
	// Derive the full placement from a sidereal longitude
	p := position.Derive(catalog.Moon, 100.5, false)

	fmt.Println("Sign:", p.Sign)
	fmt.Printf("Degrees in sign: %.1f\n", p.DegreesInSign)
	fmt.Printf("Nakshatra: %s pada %d\n", p.Nakshatra, p.Pada)
	// Output:
	// Sign: Cancer
	// Degrees in sign: 10.5
	// Nakshatra: Pushya pada 3
}

func ExamplePosition_VargaSign() {
	p := position.Derive(catalog.Moon, 100.5, false)

	// The navamsa for a water sign counts from Cancer
	d9, err := p.VargaSign(position.D9)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("D9 sign:", d9)
	// Output:
	// D9 sign: Libra
}
