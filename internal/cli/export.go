package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/chartio"
)

// exportCommand creates the export command with format subcommands.
func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a chart or birth data to a file",
	}

	cmd.AddCommand(c.exportJSONCommand())
	cmd.AddCommand(c.exportJHDCommand())
	return cmd
}

// exportJSONCommand creates the "export json" subcommand: the full computed
// chart as JSON.
func (c *CLI) exportJSONCommand() *cobra.Command {
	opts := &birthOpts{}
	var output string

	cmd := &cobra.Command{
		Use:   "json",
		Short: "Export the full computed chart as JSON",
		Long: `Run the chart pipeline and write the complete result as JSON.

Example:
  jyotish export json --jhd birth.jhd -p positions.json -o chart.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.execute(cmd.Context(), opts)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := chartio.WriteJSON(out, result); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported chart")
				printFile(output)
			}
			return nil
		},
	}

	opts.addBirthFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

// exportJHDCommand creates the "export jhd" subcommand: birth data in the
// Jagannatha Hora format. No positions file is needed.
func (c *CLI) exportJHDCommand() *cobra.Command {
	opts := &birthOpts{}
	var output, place, country string

	cmd := &cobra.Command{
		Use:   "jhd",
		Short: "Export birth data in Jagannatha Hora format",
		Long: `Write the birth data as a JHD file readable by Jagannatha Hora.

Example:
  jyotish export jhd -d 1990-06-15 -t 14:30 --tz 5.5 --lat 28.61 --lon 77.21 \
      --place "New Delhi" --country India -o birth.jhd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			chartOpts, err := opts.toOptions(c.config)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			rec := &chartio.JHDRecord{Options: chartOpts, Place: place, Country: country}
			if err := chartio.WriteJHD(out, rec); err != nil {
				return err
			}
			if output != "" {
				printSuccess("Exported birth data")
				printFile(output)
			}
			return nil
		},
	}

	opts.addBirthDataFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&place, "place", "", "birth place name")
	cmd.Flags().StringVar(&country, "country", "", "birth country name")
	return cmd
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path, or stdout when path
// is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
