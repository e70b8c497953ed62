package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// karakasCommand creates the karakas command: chara karaka assignments.
func (c *CLI) karakasCommand() *cobra.Command {
	opts := &birthOpts{}

	cmd := &cobra.Command{
		Use:   "karakas",
		Short: "Show the chara karaka assignments",
		Long: `Show the eight chara karakas, assigned by descending degrees within
sign. Rahu counts from the end of its sign; Ketu carries no karaka.

Example:
  jyotish karakas -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 -p positions.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printTitle("Chara Karakas")
			for _, a := range result.Karakas {
				fmt.Printf("  %-4s %-20s %-8s %6.2f°\n",
					StyleHighlight.Render(string(a.Karaka)),
					StyleDim.Render(a.Karaka.FullName()),
					styleForBody(a.Body).Render(a.Body.String()),
					a.Degrees,
				)
			}
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	return cmd
}
