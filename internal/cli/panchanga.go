package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/errors"
	"github.com/navagraha/jyotish/pkg/panchanga"
)

// panchangaCommand creates the panchanga command: the five limbs of the
// birth moment.
func (c *CLI) panchangaCommand() *cobra.Command {
	opts := &birthOpts{}

	cmd := &cobra.Command{
		Use:   "panchanga",
		Short: "Show the five limbs for the birth moment",
		Long: `Show the panchanga (tithi, vara, nakshatra, yoga, karana) for the birth
moment. Requires Sun and Moon longitudes in the positions file.

Example:
  jyotish panchanga -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 -p positions.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if result.Panchanga == nil {
				return errors.New(errors.ErrCodeIncompleteChart, "panchanga needs Sun and Moon positions")
			}
			printPanchanga(result.Panchanga)
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	return cmd
}

func printPanchanga(p *panchanga.Panchanga) {
	printTitle("Panchanga")
	printKeyValue("tithi", fmt.Sprintf("%s (%s, #%d)", p.Tithi.Name, p.Tithi.Paksha, p.Tithi.Number))
	printKeyValue("vara", fmt.Sprintf("%s (lord %s)", p.Vara.Name, p.Vara.Lord))
	printKeyValue("nakshatra", fmt.Sprintf("%s, pada %d", p.Nakshatra, p.Pada))
	printKeyValue("yoga", fmt.Sprintf("%s (#%d)", p.Yoga.Name, p.Yoga.Number))
	printKeyValue("karana", fmt.Sprintf("%s (#%d)", p.Karana.Name, p.Karana.Number))
}
