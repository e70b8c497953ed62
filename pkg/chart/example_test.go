package chart_test

import (
	"context"
	"fmt"

	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/ephemeris"
)

func ExampleRunner_Execute() {
	// A static provider serves externally computed tropical longitudes
	provider := ephemeris.NewStatic(map[catalog.Body]ephemeris.RawPosition{
		catalog.Sun:     {Longitude: 84.2},
		catalog.Moon:    {Longitude: 310.7},
		catalog.Mars:    {Longitude: 352.1},
		catalog.Mercury: {Longitude: 95.6},
		catalog.Jupiter: {Longitude: 121.3},
		catalog.Venus:   {Longitude: 45.8},
		catalog.Saturn:  {Longitude: 292.4, Retrograde: true},
		catalog.Rahu:    {Longitude: 315.9},
		catalog.Ketu:    {Longitude: 135.9},
	}).WithAscendant(210.5)

	runner := chart.NewRunner(provider, nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), chart.Options{
		Year: 1990, Month: 6, Day: 15,
		Hour: 14, Minute: 30,
		UTCOffset: 5.5,
		Latitude:  28.61, Longitude: 77.21,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Positions:", len(result.Positions))
	fmt.Println("Houses:", len(result.Wheel.Houses))
	fmt.Println("Karakas:", len(result.Karakas))
	fmt.Println("Panchanga computed:", result.Panchanga != nil)
	// Output:
	// Positions: 9
	// Houses: 12
	// Karakas: 8
	// Panchanga computed: true
}
