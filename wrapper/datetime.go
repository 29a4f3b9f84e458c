package wrapper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/go-fhir/datatype"
)

var dateTimePattern = regexp.MustCompile(
	`^([0-9]{4})(?:-([0-9]{2})(?:-([0-9]{2})(?:T([0-9]{2}):([0-9]{2}):([0-9]{2})(?:\.([0-9]+))?(Z|[+-][0-9]{2}:[0-9]{2}))?)?)?$`)

var errBadDateTime = errors.New("not a FHIR dateTime")

func parseDateTime(data []byte, loc *time.Location) (datatype.Moment, error) {
	s, err := decodeAs[string](data, "string")
	if err != nil {
		return datatype.Moment{}, err
	}
	return ParseMoment(s, loc)
}

// ParseMoment parses the text of a FHIR dateTime. Values without a time of
// day are placed at midnight in loc; values with one must carry a zone.
func ParseMoment(s string, loc *time.Location) (datatype.Moment, error) {
	if loc == nil {
		loc = time.UTC
	}
	m := dateTimePattern.FindStringSubmatch(s)
	if m == nil {
		return datatype.Moment{}, fmt.Errorf("%w: %q", errBadDateTime, s)
	}
	num := func(i int) int {
		if m[i] == "" {
			return 0
		}
		n, _ := strconv.Atoi(m[i])
		return n
	}
	year, month, day := num(1), 1, 1
	prec := datatype.PrecisionYear
	if m[2] != "" {
		month = num(2)
		prec = datatype.PrecisionMonth
	}
	if m[3] != "" {
		day = num(3)
		prec = datatype.PrecisionDay
	}
	hour, minute, sec, nsec := num(4), num(5), num(6), 0
	if m[4] != "" {
		prec = datatype.PrecisionSecond
		if hour > 23 || minute > 59 || sec > 59 {
			return datatype.Moment{}, fmt.Errorf("%w: %q: time out of range", errBadDateTime, s)
		}
		frac := m[7]
		switch {
		case frac == "":
		case len(frac) <= 3:
			prec = datatype.PrecisionMillisecond
		case len(frac) <= 6:
			prec = datatype.PrecisionMicrosecond
		default:
			return datatype.Moment{}, fmt.Errorf("%w: %q: more than 6 fractional digits", errBadDateTime, s)
		}
		if frac != "" {
			frac += strings.Repeat("0", 9-len(frac))
			nsec, _ = strconv.Atoi(frac)
		}
		zl, err := zone(m[8])
		if err != nil {
			return datatype.Moment{}, fmt.Errorf("%w: %q: %w", errBadDateTime, s, err)
		}
		loc = zl
	} else if m[8] != "" {
		return datatype.Moment{}, fmt.Errorf("%w: %q: zone without time", errBadDateTime, s)
	}
	if month < 1 || month > 12 {
		return datatype.Moment{}, fmt.Errorf("%w: %q: month out of range", errBadDateTime, s)
	}
	t := time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc)
	if t.Day() != day {
		return datatype.Moment{}, fmt.Errorf("%w: %q: day out of range", errBadDateTime, s)
	}
	return datatype.Moment{Time: t, Precision: prec}, nil
}

var errNoZone = errors.New("a time of day requires a zone")

func zone(z string) (*time.Location, error) {
	switch z {
	case "":
		return nil, errNoZone
	case "Z":
		return time.UTC, nil
	}
	hh, _ := strconv.Atoi(z[1:3])
	mm, _ := strconv.Atoi(z[4:6])
	if hh > 14 || mm > 59 || (hh == 14 && mm != 0) {
		return nil, fmt.Errorf("zone %s out of range", z)
	}
	off := hh*3600 + mm*60
	if z[0] == '-' {
		off = -off
	}
	return time.FixedZone(z, off), nil
}

func formatDateTime(v datatype.Moment) (string, error) {
	s, err := FormatMoment(v)
	if err != nil {
		return "", err
	}
	return formatString(s)
}

// FormatMoment renders v as FHIR dateTime text at its precision.
func FormatMoment(v datatype.Moment) (string, error) {
	t := v.Time
	if y := t.Year(); y < 0 || y > 9999 {
		return "", fmt.Errorf("year %d cannot be written as a dateTime", y)
	}
	switch v.Precision {
	case datatype.PrecisionYear:
		return fmt.Sprintf("%04d", t.Year()), nil
	case datatype.PrecisionMonth:
		return fmt.Sprintf("%04d-%02d", t.Year(), t.Month()), nil
	case datatype.PrecisionDay:
		return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day()), nil
	}
	var layout string
	switch v.Precision {
	case datatype.PrecisionSecond:
		layout = "2006-01-02T15:04:05"
	case datatype.PrecisionMillisecond:
		layout = "2006-01-02T15:04:05.000"
	case datatype.PrecisionMicrosecond:
		layout = "2006-01-02T15:04:05.000000"
	default:
		return "", fmt.Errorf("invalid precision %s", v.Precision)
	}
	if t.Location() == time.UTC {
		return t.Format(layout) + "Z", nil
	}
	return t.Format(layout + "-07:00"), nil
}
