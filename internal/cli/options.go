package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/navagraha/jyotish/pkg/aspect"
	"github.com/navagraha/jyotish/pkg/astro"
	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/chartio"
	"github.com/navagraha/jyotish/pkg/errors"
)

// birthOpts holds the command-line flags shared by every chart-reading
// command. Birth data comes either from --date/--time/--lat/--lon or from a
// JHD file via --jhd; planetary longitudes always come from --positions.
type birthOpts struct {
	date      string // birth date, YYYY-MM-DD
	birthTime string // birth time, HH:MM or HH:MM:SS
	utcOffset float64
	latitude  float64
	longitude float64
	location  string // named preset from the config file
	jhdFile   string // JHD birth data file, overrides date/time/place flags
	positions string // positions file (required)
	ayanamsa  string
	mode      string
	noCache   bool
	refresh   bool
}

// addBirthDataFlags registers the birth data flags only (no positions file,
// no cache control). Used by commands that never run the pipeline.
func (o *birthOpts) addBirthDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.date, "date", "d", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&o.birthTime, "time", "t", "", "birth time (HH:MM or HH:MM:SS)")
	cmd.Flags().Float64Var(&o.utcOffset, "tz", 0, "UTC offset in hours, east positive")
	cmd.Flags().Float64Var(&o.latitude, "lat", 0, "birth latitude, north positive")
	cmd.Flags().Float64Var(&o.longitude, "lon", 0, "birth longitude, east positive")
	cmd.Flags().StringVarP(&o.location, "location", "l", "", "named location preset from the config file")
	cmd.Flags().StringVar(&o.jhdFile, "jhd", "", "JHD birth data file (overrides date/time/place flags)")
	cmd.Flags().StringVar(&o.ayanamsa, "ayanamsa", "", "ayanamsa system (lahiri, raman, krishnamurti, fagan_bradley)")
	cmd.Flags().StringVar(&o.mode, "mode", "", "aspect mode (rasi or degree)")
}

// addBirthFlags registers the shared flags on cmd.
func (o *birthOpts) addBirthFlags(cmd *cobra.Command) {
	o.addBirthDataFlags(cmd)
	cmd.Flags().StringVarP(&o.positions, "positions", "p", "", "tropical positions file (required)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the chart cache")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "bypass the cache for this run")
	_ = cmd.MarkFlagRequired("positions")
}

// toOptions builds chart.Options from the flags, the config file and, when
// given, a JHD file. Flag values win over JHD values; the config supplies
// ayanamsa and mode defaults and location presets.
func (o *birthOpts) toOptions(cfg Config) (chart.Options, error) {
	var opts chart.Options

	if o.jhdFile != "" {
		f, err := os.Open(o.jhdFile)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", o.jhdFile)
		}
		defer f.Close()
		rec, err := chartio.ReadJHD(f)
		if err != nil {
			return opts, err
		}
		// Copy birth data only so the merged options go through
		// validation again below.
		opts.Year, opts.Month, opts.Day = rec.Options.Year, rec.Options.Month, rec.Options.Day
		opts.Hour, opts.Minute, opts.Second = rec.Options.Hour, rec.Options.Minute, rec.Options.Second
		opts.UTCOffset = rec.Options.UTCOffset
		opts.Latitude = rec.Options.Latitude
		opts.Longitude = rec.Options.Longitude
	}

	if o.date != "" {
		d, err := time.Parse("2006-01-02", o.date)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --date %q, want YYYY-MM-DD", o.date)
		}
		opts.Year, opts.Month, opts.Day = d.Year(), int(d.Month()), d.Day()
	}
	if o.birthTime != "" {
		layout := "15:04"
		if len(o.birthTime) > 5 {
			layout = "15:04:05"
		}
		tm, err := time.Parse(layout, o.birthTime)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid --time %q, want HH:MM or HH:MM:SS", o.birthTime)
		}
		opts.Hour, opts.Minute, opts.Second = tm.Hour(), tm.Minute(), tm.Second()
	}

	if o.location != "" {
		preset, ok := cfg.Locations[o.location]
		if !ok {
			return opts, errors.New(errors.ErrCodeNotFound, "location %q not in config file", o.location)
		}
		opts.Latitude = preset.Latitude
		opts.Longitude = preset.Longitude
		opts.UTCOffset = preset.UTCOffset
	}
	if o.latitude != 0 {
		opts.Latitude = o.latitude
	}
	if o.longitude != 0 {
		opts.Longitude = o.longitude
	}
	if o.utcOffset != 0 {
		opts.UTCOffset = o.utcOffset
	}

	opts.Ayanamsa = firstNonEmptyAyanamsa(o.ayanamsa, cfg.Ayanamsa)
	opts.Mode = firstNonEmptyMode(o.mode, cfg.Mode)
	opts.Refresh = o.refresh

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

func firstNonEmptyAyanamsa(values ...string) astro.AyanamsaSystem {
	for _, v := range values {
		if v != "" {
			return astro.AyanamsaSystem(v)
		}
	}
	return ""
}

func firstNonEmptyMode(values ...string) aspect.Mode {
	for _, v := range values {
		if v != "" {
			return aspect.Mode(v)
		}
	}
	return ""
}

// execute loads the positions file, builds a runner and runs the pipeline.
func (c *CLI) execute(ctx context.Context, o *birthOpts) (*chart.Result, error) {
	opts, err := o.toOptions(c.config)
	if err != nil {
		return nil, err
	}
	provider, err := loadPositions(o.positions)
	if err != nil {
		return nil, err
	}

	runner := c.newRunner(provider, o.noCache)
	defer runner.Close()
	return runner.Execute(ctx, opts)
}
