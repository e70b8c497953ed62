package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/bhava"
	"github.com/navagraha/jyotish/pkg/catalog"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/chartio"
	"github.com/navagraha/jyotish/pkg/dignity"
	"github.com/navagraha/jyotish/pkg/position"
)

// chartCommand creates the chart command, the main entry point: it runs the
// full pipeline and prints positions, houses and the panchanga.
func (c *CLI) chartCommand() *cobra.Command {
	opts := &birthOpts{}
	var jsonOut bool
	var vargas bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a sidereal birth chart",
		Long: `Compute a sidereal birth chart from birth data and a positions file.

Examples:
  jyotish chart -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 -p positions.json
  jyotish chart --jhd birth.jhd -p positions.json --ayanamsa raman
  jyotish chart -d 1990-06-15 -t 14:30 -l delhi -p positions.json --mode degree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sp := newSpinnerWithContext(cmd.Context(), "computing chart")
			sp.Start()
			result, err := c.execute(cmd.Context(), opts)
			sp.Stop()
			if err != nil {
				return err
			}

			if jsonOut {
				return chartio.WriteJSON(os.Stdout, result)
			}

			printChartHeader(result.JulianDay, string(result.System), result.Ayanamsa, result.CacheInfo.Hit)
			printNewline()
			printPositions(result.Positions, result.Wheel)
			printNewline()
			printAscendant(result.Ascendant, result.Wheel)
			if vargas {
				printNewline()
				printVargas(result.Placements)
			}
			if result.Panchanga != nil {
				printNewline()
				printPanchanga(result.Panchanga)
			}
			if result.Incomplete {
				printNewline()
				if len(result.Missing) > 0 {
					printWarning("incomplete chart: missing %v", result.Missing)
				}
				if result.AscendantEstimated {
					printWarning("incomplete chart: ascendant estimated from sidereal time")
				}
			}
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&vargas, "vargas", false, "print divisional chart signs per body")
	return cmd
}

func printChartHeader(jd float64, system string, ayanamsa float64, cached bool) {
	printTitle("Birth Chart")
	printKeyValue("julian day", fmt.Sprintf("%.5f", jd))
	printKeyValue("ayanamsa", fmt.Sprintf("%s (%.4f°)", system, ayanamsa))
	printCacheStatus(cached)
}

func printPositions(positions []position.Position, wheel bhava.Wheel) {
	printTitle("Positions")
	for _, p := range positions {
		d := dignity.Resolve(p.Body, p.Sign, p.DegreesInSign)
		house := wheel.HouseOf(p.Longitude)
		fmt.Printf("  %-8s %s %7.2f° %-11s %s %-2d  %-13s %s\n",
			styleForBody(p.Body).Render(p.Body.String()),
			retroMarker(p.Retrograde),
			p.DegreesInSign,
			p.Sign.String(),
			StyleDim.Render("house"),
			house,
			p.Nakshatra.String()+fmt.Sprintf("/%d", p.Pada),
			styleForDignity(d).Render(string(d)),
		)
	}
}

func printAscendant(asc float64, wheel bhava.Wheel) {
	rising := wheel.Houses[0].Sign
	printTitle("Ascendant")
	printKeyValue("longitude", fmt.Sprintf("%.2f°", asc))
	printKeyValue("sign", fmt.Sprintf("%s (%s)", rising, rising.Sanskrit()))
	printKeyValue("friends", joinBodies(rising.FriendlyBodies()))
	printKeyValue("enemies", joinBodies(rising.EnemyBodies()))
}

func joinBodies(bodies []catalog.Body) string {
	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = b.String()
	}
	return strings.Join(names, ", ")
}

func printVargas(placements []chart.Placement) {
	printTitle("Divisional Charts")
	for _, pl := range placements {
		var cells string
		for _, v := range position.Vargas() {
			cells += fmt.Sprintf("  %s %-11s", StyleDim.Render(string(v)), pl.Vargas[v])
		}
		sandhi := ""
		if pl.Sandhi {
			sandhi = StyleWarning.Render(" sandhi")
		}
		fmt.Printf("  %-8s%s%s\n", styleForBody(pl.Body).Render(pl.Body.String()), cells, sandhi)
	}
}
