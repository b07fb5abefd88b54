package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNoMatch indicates that the input does not match the layout
	ErrNoMatch = errors.New("input does not match layout")

	// ErrStrictMismatch indicates that, in strict mode, the parsed value does not reproduce the input exactly
	ErrStrictMismatch = errors.New("input does not strictly match layout")
)

// fields collects parsed components. Pointers distinguish "absent" from zero.
type fields struct {
	year, month, day             *int
	hour, minute, second, millis int
	afternoon                    *bool
	offset                       *int
	unixMillis                   *int64
}

// Parse reads value according to a token layout. Components that the layout does not mention default from now:
// a missing year is the current year; a missing month is January when a year was given and the current month
// otherwise; a missing day is 1, or today when neither year nor month was given.
//
// Unless the input carries a UTC offset (Z/ZZ) or a timestamp (X/x), the wall clock is interpreted in loc.
//
// In non-strict mode, literal text in the layout is skipped by length without being compared. In strict mode, the
// result must format back to exactly value.
func Parse(value, layout string, strict bool, loc *time.Location, now time.Time) (time.Time, error) {
	layout = expandLocalized(layout)

	var f fields
	pos := 0

	for _, tok := range tokenize(layout, parseTokens) {
		if tok.literal {
			pos = min(pos+len(tok.text), len(value))
			continue
		}

		n, err := f.consume(tok.text, value[pos:])
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %q as %q: %w", value, tok.text, err)
		}

		pos += n
	}

	t := f.time(loc, now.In(loc))

	if strict && Format(t, layout) != value {
		return time.Time{}, ErrStrictMismatch
	}

	return t, nil
}

// consume parses a single token from the start of input, returning the number of bytes used
func (f *fields) consume(tok string, input string) (int, error) {
	switch tok {
	case "YYYY":
		n, v, err := digits(input, 4, 4)
		f.year = &v
		return n, err
	case "YY":
		n, v, err := digits(input, 2, 2)
		v = twoDigitYear(v)
		f.year = &v
		return n, err
	case "M", "MM":
		n, v, err := digits(input, len(tok), 2)
		f.month = &v
		return n, err
	case "MMM", "MMMM":
		word := leadingLetters(input)
		month, ok := lookupMonth(word)
		if !ok {
			return 0, ErrNoMatch
		}
		v := int(month)
		f.month = &v
		return len(word), nil
	case "D", "DD":
		n, v, err := digits(input, len(tok), 2)
		f.day = &v
		return n, err
	case "Do":
		n, v, err := digits(input, 1, 2)
		if err != nil {
			return 0, err
		}
		f.day = &v
		return n + len(leadingLetters(input[n:])), nil
	case "H", "HH", "h", "hh":
		n, v, err := digits(input, 1, 2)
		f.hour = v
		return n, err
	case "m", "mm":
		n, v, err := digits(input, 1, 2)
		f.minute = v
		return n, err
	case "s", "ss":
		n, v, err := digits(input, 1, 2)
		f.second = v
		return n, err
	case "S", "SS", "SSS":
		n, v, err := digits(input, len(tok), len(tok))
		for i := len(tok); i < 3; i++ {
			v *= 10
		}
		f.millis = v
		return n, err
	case "A", "a":
		word := leadingLetters(input)
		if word == "" {
			return 0, ErrNoMatch
		}
		afternoon := strings.EqualFold(word, "pm")
		f.afternoon = &afternoon
		return len(word), nil
	case "Z", "ZZ":
		return f.consumeOffset(input)
	case "X", "x":
		n := signedLength(input)
		if n == 0 {
			return 0, ErrNoMatch
		}
		v, err := strconv.ParseInt(input[:n], 10, 64)
		if err != nil {
			return 0, ErrNoMatch
		}
		if tok == "X" {
			v *= 1000
		}
		f.unixMillis = &v
		return n, nil
	}

	return 0, ErrNoMatch
}

func (f *fields) consumeOffset(input string) (int, error) {
	if strings.HasPrefix(input, "Z") || strings.HasPrefix(input, "z") {
		zero := 0
		f.offset = &zero
		return 1, nil
	}

	if input == "" || (input[0] != '+' && input[0] != '-') {
		return 0, ErrNoMatch
	}

	n, hours, err := digits(input[1:], 2, 2)
	if err != nil {
		return 0, err
	}
	used := 1 + n

	minutes := 0
	rest := strings.TrimPrefix(input[used:], ":")
	if m, v, err := digits(rest, 2, 2); err == nil {
		minutes = v
		used = len(input) - len(rest) + m
	}

	offset := (hours*60 + minutes) * 60
	if input[0] == '-' {
		offset = -offset
	}
	f.offset = &offset

	return used, nil
}

func (f *fields) time(loc *time.Location, now time.Time) time.Time {
	if f.unixMillis != nil {
		return time.UnixMilli(*f.unixMillis).In(loc)
	}

	year := now.Year()
	if f.year != nil {
		year = *f.year
	}

	month := now.Month()
	if f.month != nil {
		month = time.Month(*f.month)
	} else if f.year != nil {
		month = time.January
	}

	day := 1
	if f.day != nil {
		day = *f.day
	} else if f.year == nil && f.month == nil {
		day = now.Day()
	}

	hour := f.hour
	if f.afternoon != nil {
		if *f.afternoon && hour < 12 {
			hour += 12
		} else if !*f.afternoon && hour == 12 {
			hour = 0
		}
	}

	nsec := f.millis * int(time.Millisecond)

	if f.offset != nil {
		zone := time.FixedZone("", *f.offset)
		return time.Date(year, month, day, hour, f.minute, f.second, nsec, zone).In(loc)
	}

	return time.Date(year, month, day, hour, f.minute, f.second, nsec, loc)
}

// digits reads between minLen and maxLen ASCII digits from the start of input
func digits(input string, minLen, maxLen int) (int, int, error) {
	n := 0
	for n < maxLen && n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}

	if n < minLen || n == 0 {
		return 0, 0, ErrNoMatch
	}

	v, err := strconv.Atoi(input[:n])
	if err != nil {
		return 0, 0, ErrNoMatch
	}

	return n, v, nil
}

func signedLength(input string) int {
	n := 0
	if n < len(input) && (input[n] == '-' || input[n] == '+') {
		n++
	}

	start := n
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}

	if n == start {
		return 0
	}

	return n
}

func leadingLetters(input string) string {
	n := 0
	for n < len(input) && (input[n] >= 'a' && input[n] <= 'z' || input[n] >= 'A' && input[n] <= 'Z' || input[n] == '.') {
		n++
	}

	return input[:n]
}

// twoDigitYear maps 69-99 to the 1900s and 00-68 to the 2000s
func twoDigitYear(v int) int {
	if v > 68 {
		return 1900 + v
	}

	return 2000 + v
}
