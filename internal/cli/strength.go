package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/strength"
)

// strengthCommand creates the strength command: per-house strength reports
// and yoga detection.
func (c *CLI) strengthCommand() *cobra.Command {
	opts := &birthOpts{}
	var house int
	var yogas bool

	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Score house strengths and detect yogas",
		Long: `Score each house by placement, lord condition, occupants, incoming
aspects and sign quality. Use --house for a single house with its factor
breakdown, or --yogas to list detected yogas.

Examples:
  jyotish strength -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 -p positions.json
  jyotish strength --jhd birth.jhd -p positions.json --house 10
  jyotish strength --jhd birth.jhd -p positions.json --yogas`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if yogas || house > 0 {
				analysis := strength.New(result.Wheel, result.Positions, result.Mode)
				if house > 0 {
					report, err := analysis.HouseStrength(house)
					if err != nil {
						return err
					}
					printHouseReport(report, true)
					if h, herr := result.Wheel.House(house); herr == nil {
						printDetail("%s: %s", h.Sanskrit(), strings.Join(h.Significations(), ", "))
					}
					if yogas {
						printNewline()
						printYogas(analysis, house)
					}
					return nil
				}
				for h := 1; h <= 12; h++ {
					printYogas(analysis, h)
				}
				return nil
			}

			printTitle("House Strengths")
			for _, report := range result.Strengths {
				printHouseReport(report, false)
			}
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	cmd.Flags().IntVar(&house, "house", 0, "report a single house (1-12) with factor breakdown")
	cmd.Flags().BoolVar(&yogas, "yogas", false, "list detected yogas")
	return cmd
}

func printHouseReport(r strength.Report, detailed bool) {
	bar := strengthBar(r.Total)
	fmt.Printf("  %s %-2d %s %.2f  %s\n",
		StyleDim.Render("house"),
		r.House,
		bar,
		r.Total,
		styleForCategory(r.Category).Render(r.Category),
	)
	if !detailed {
		return
	}
	printDetail("base %.2f · lord %.2f · occupant %.2f · aspect %.2f · sign %.2f",
		r.Factors.Base, r.Factors.Lord, r.Factors.Occupant, r.Factors.Aspect, r.Factors.Sign)
	if len(r.Contributors) > 0 {
		printDetail("%s", strings.Join(r.Contributors, ", "))
	}
}

// strengthBar renders a ten-segment bar for a score in [0, 1].
func strengthBar(total float64) string {
	filled := int(total*10 + 0.5)
	if filled > 10 {
		filled = 10
	}
	return StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", 10-filled))
}

func printYogas(analysis *strength.Analysis, house int) {
	found, err := analysis.Yogas(house)
	if err != nil || len(found) == 0 {
		return
	}
	printTitle(fmt.Sprintf("House %d", house))
	for _, y := range found {
		printDetail("%s: %s", y.Kind, y.Description)
	}
}
