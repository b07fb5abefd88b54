package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognised indicates that free-form input matched none of the known date-time shapes
var ErrUnrecognised = errors.New("unrecognised date-time string")

// isoLike matches the common 'YYYY-MM-DDTHH:mm:ss.SSS' family, with every part after the year optional and '-' or '/'
// as the date separator. Input of this shape never carries a zone, so it is read as wall clock in the given location.
var isoLike = regexp.MustCompile(`^(\d{4})[-/]?(\d{1,2})?[-/]?(\d{0,2})[Tt\s]*(\d{1,2})?:?(\d{1,2})?:?(\d{1,2})?[.:]?(\d+)?$`)

// extendedISO matches ISO 8601 date-times whose year is signed and at least six digits long, the form used for years
// outside 0-9999
var extendedISO = regexp.MustCompile(`^([+-]\d{6,})-(\d{2})-(\d{2})(?:T(\d{2}):(\d{2})(?::(\d{2})(?:\.(\d+))?)?)?(Z|[+-]\d{2}:?\d{2})?$`)

// fallbackLayouts are tried in order when the input is not ISO-like. Layouts without zone information are read in the
// given location; the others fix the instant, which is then displayed in the given location.
var fallbackLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999 -0700",
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	time.RubyDate,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006 15:04:05 GMT-0700 (MST)",
	"Mon Jan 02 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// zoneAbbreviations are the zone abbreviations free-form input may carry, with their offsets in seconds east of UTC.
// Any other abbreviation is rejected rather than guessed.
var zoneAbbreviations = map[string]int{
	"UTC": 0,
	"GMT": 0,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// namesZone reports whether layout fixes the offset by abbreviation alone
func namesZone(layout string) bool {
	return strings.Contains(layout, "MST") && !strings.Contains(layout, "-0700")
}

// ParseLoose reads a date-time string without a layout, using the shapes accepted by most date-time APIs
func ParseLoose(value string, loc *time.Location) (time.Time, error) {
	if m := extendedISO.FindStringSubmatch(value); m != nil {
		return fromExtendedISO(m, loc), nil
	}

	if !strings.HasSuffix(strings.ToUpper(value), "Z") {
		if m := isoLike.FindStringSubmatch(value); m != nil {
			return fromISOLike(m, loc), nil
		}
	}

	trimmed := strings.TrimSpace(value)
	for _, layout := range fallbackLayouts {
		t, err := time.ParseInLocation(layout, trimmed, loc)
		if err != nil {
			continue
		}

		if namesZone(layout) {
			if t, err = resolveAbbreviation(t); err != nil {
				return time.Time{}, err
			}
		}

		return t.In(loc), nil
	}

	return time.Time{}, ErrUnrecognised
}

// fromExtendedISO reads an extendedISO match. Without an offset the value is wall clock in loc, as for ISO-like input.
func fromExtendedISO(m []string, loc *time.Location) time.Time {
	offset := m[8]
	if offset == "" {
		return fromISOLike(m, loc)
	}

	zone := time.UTC
	if offset != "Z" {
		digits := strings.ReplaceAll(offset[1:], ":", "")
		hours, _ := strconv.Atoi(digits[:2])
		minutes, _ := strconv.Atoi(digits[2:])

		seconds := hours*3600 + minutes*60
		if offset[0] == '-' {
			seconds = -seconds
		}
		zone = time.FixedZone("", seconds)
	}

	return fromISOLike(m, zone).In(loc)
}

func fromISOLike(m []string, loc *time.Location) time.Time {
	atoi := func(s string, fallback int) int {
		if s == "" {
			return fallback
		}

		v, _ := strconv.Atoi(s)
		return v
	}

	// Fractional seconds are read to millisecond precision
	fraction := m[7]
	if len(fraction) > 3 {
		fraction = fraction[:3]
	}
	for len(fraction) < 3 {
		fraction += "0"
	}

	return time.Date(
		atoi(m[1], 0),
		time.Month(atoi(m[2], 1)),
		atoi(m[3], 1),
		atoi(m[4], 0),
		atoi(m[5], 0),
		atoi(m[6], 0),
		atoi(fraction, 0)*int(time.Millisecond),
		loc,
	)
}

// resolveAbbreviation re-reads the wall clock of t at the offset its zone abbreviation stands for. The time package
// gives abbreviations that the parse location does not use a zero offset, which would silently read "EST" as UTC.
func resolveAbbreviation(t time.Time) (time.Time, error) {
	name, _ := t.Zone()

	// "GMT+3" style names carry their own offset, which the time package has already applied
	if strings.HasPrefix(name, "GMT") && len(name) > 3 {
		return t, nil
	}

	offset, ok := zoneAbbreviations[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown zone abbreviation %q", ErrUnrecognised, name)
	}

	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), time.FixedZone(name, offset)), nil
}
