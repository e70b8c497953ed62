package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/aspect"
)

// aspectsCommand creates the aspects command: drishti cast among the bodies,
// plus conjunctions and mutual aspects.
func (c *CLI) aspectsCommand() *cobra.Command {
	opts := &birthOpts{}
	var mutual bool

	cmd := &cobra.Command{
		Use:   "aspects",
		Short: "List aspects among the chart bodies",
		Long: `List the aspects (drishti) each body casts onto the others.

Rasi mode (the default) treats aspects sign-to-sign; degree mode grades each
aspect by its orb. Use --mutual to show only pairs aspecting each other.

Examples:
  jyotish aspects -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 -p positions.json
  jyotish aspects --jhd birth.jhd -p positions.json --mode degree --mutual`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if mutual {
				printMutual(aspect.MutualAspects(result.Positions, result.Mode))
				return nil
			}

			printTitle(fmt.Sprintf("Aspects (%s mode)", result.Mode))
			for _, a := range result.Aspects {
				printAspect(a)
			}
			if len(result.Conjunctions) > 0 {
				printNewline()
				printTitle("Conjunctions")
				for _, conj := range result.Conjunctions {
					fmt.Printf("  %s %s %s  %5.2f°  %s\n",
						styleForBody(conj.A).Render(conj.A.String()),
						StyleDim.Render("+"),
						styleForBody(conj.B).Render(conj.B.String()),
						conj.Separation,
						StyleDim.Render(conj.Closeness),
					)
				}
			}
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	cmd.Flags().BoolVar(&mutual, "mutual", false, "show only mutual aspects")
	return cmd
}

func printAspect(a aspect.Aspect) {
	detail := fmt.Sprintf("%.0f°", a.Angle)
	if a.Category != "" {
		detail = fmt.Sprintf("%.0f° orb %.2f° (%s)", a.Angle, a.Orb, a.Category)
	}
	fmt.Printf("  %-8s %s %-8s %-24s %s\n",
		styleForBody(a.Source).Render(a.Source.String()),
		StyleDim.Render(iconArrow),
		styleForBody(a.Target).Render(a.Target.String()),
		detail,
		StyleValue.Render(a.Effect),
	)
}

func printMutual(pairs []aspect.Mutual) {
	printTitle("Mutual Aspects")
	if len(pairs) == 0 {
		printDetail("none")
		return
	}
	for _, m := range pairs {
		fmt.Printf("  %s %s %s\n",
			styleForBody(m.A).Render(m.A.String()),
			StyleDim.Render("⇄"),
			styleForBody(m.B).Render(m.B.String()),
		)
		for _, a := range append(m.Forward, m.Backward...) {
			printDetail("%s → %s at %.0f° (%s)", a.Source, a.Target, a.Angle, a.Effect)
		}
	}
}
