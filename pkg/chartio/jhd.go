// Package chartio reads and writes chart data in interchange formats: the
// library's own JSON result format and the line-oriented JHD birth-data
// format used by desktop jyotish software.
package chartio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/navagraha/jyotish/pkg/chart"
	"github.com/navagraha/jyotish/pkg/errors"
)

// JHD file constants. The format is one value per line, in fixed order.
const (
	jhdMinLines = 18

	jhdElevation   = 0.0
	jhdPressure    = 1013.25
	jhdTemperature = 20.0
	jhdAyanamsa    = 105 // Lahiri
	jhdBirthType   = 1
	jhdChartType   = 2
)

// JHDRecord is the birth data carried by a JHD file.
type JHDRecord struct {
	Options chart.Options
	Place   string
	Country string
}

// ReadJHD parses a JHD file into birth options. The time in the file is
// Universal Time as a fractional day; it is converted back to civil time
// using the file's timezone offset.
func ReadJHD(r io.Reader) (*JHDRecord, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "reading jhd data")
	}
	if len(lines) < jhdMinLines {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "jhd data has %d lines, want at least %d", len(lines), jhdMinLines)
	}

	month, err := atoiField("month", lines[0])
	if err != nil {
		return nil, err
	}
	day, err := atoiField("day", lines[1])
	if err != nil {
		return nil, err
	}
	year, err := atoiField("year", lines[2])
	if err != nil {
		return nil, err
	}
	fractionalDay, err := atofField("time", lines[3])
	if err != nil {
		return nil, err
	}
	longitude, err := atofField("longitude", lines[5])
	if err != nil {
		return nil, err
	}
	latitude, err := atofField("latitude", lines[6])
	if err != nil {
		return nil, err
	}
	tzOffset, err := atofField("timezone", lines[8])
	if err != nil {
		return nil, err
	}

	// Some writers store hours instead of a day fraction.
	hours := fractionalDay
	if fractionalDay <= 1.0 {
		hours = fractionalDay * 24
	}

	// The stored time is UT; shift back to civil time for the options.
	utc := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(math.Round(hours * float64(time.Hour))))
	civil := utc.In(time.FixedZone("", int(tzOffset*3600)))

	rec := &JHDRecord{
		Options: chart.Options{
			Year:      civil.Year(),
			Month:     int(civil.Month()),
			Day:       civil.Day(),
			Hour:      civil.Hour(),
			Minute:    civil.Minute(),
			Second:    civil.Second(),
			UTCOffset: tzOffset,
			Latitude:  latitude,
			Longitude: longitude,
		},
		Place:   lines[12],
		Country: lines[13],
	}
	if err := rec.Options.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "jhd birth data invalid")
	}
	return rec, nil
}

// WriteJHD serializes birth options in JHD line format.
func WriteJHD(w io.Writer, rec *JHDRecord) error {
	o := rec.Options

	utHours := float64(o.Hour) + float64(o.Minute)/60 + float64(o.Second)/3600 - o.UTCOffset
	day := o.Day
	for utHours < 0 {
		utHours += 24
		day--
	}
	for utHours >= 24 {
		utHours -= 24
		day++
	}
	fractionalDay := utHours / 24
	lmtOffset := o.Longitude / 15

	lines := []string{
		strconv.Itoa(o.Month),
		strconv.Itoa(day),
		strconv.Itoa(o.Year),
		strconv.FormatFloat(fractionalDay, 'f', 15, 64),
		fmt.Sprintf("%.6f", lmtOffset),
		fmt.Sprintf("%.6f", o.Longitude),
		fmt.Sprintf("%.6f", o.Latitude),
		fmt.Sprintf("%.6f", jhdElevation),
		fmt.Sprintf("%.6f", o.UTCOffset),
		"0.000000",
		"0",
		strconv.Itoa(jhdAyanamsa),
		rec.Place,
		rec.Country,
		strconv.Itoa(jhdBirthType),
		fmt.Sprintf("%.6f", jhdPressure),
		fmt.Sprintf("%.6f", jhdTemperature),
		strconv.Itoa(jhdChartType),
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing jhd data")
	}
	return nil
}

func atoiField(field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "jhd %s field invalid: %q", field, s)
	}
	return v, nil
}

func atofField(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidFormat, "jhd %s field invalid: %q", field, s)
	}
	return v, nil
}
