package ecma119

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformed indicates that a record holds a value no valid date and time encodes to
var ErrMalformed = errors.New("malformed date and time record")

// Bounds of the GMT offset, in 15 minute intervals, from -12:00 to +13:00
const (
	MinGMTOffset = -48
	MaxGMTOffset = 52
)

// DateTimeSize is the encoded length of [DateTime]
const DateTimeSize = 7

// DateTime is a numerical representation of a date and time
//
// ECMA-119 (5th ed.) §10.1.6
type DateTime struct {
	YearsSince1900            uint8
	Month                     uint8
	Day                       uint8
	Hour                      uint8
	Minute                    uint8
	Second                    uint8
	GMTOffsetIn15MinIntervals int8
}

// Time decodes d, returning a time in a fixed zone with d's GMT offset
func (d DateTime) Time() (time.Time, error) {
	if err := checkRanges(int(d.YearsSince1900)+1900, int(d.Month), int(d.Day), int(d.Hour), int(d.Minute), int(d.Second), d.GMTOffsetIn15MinIntervals); err != nil {
		return time.Time{}, err
	}

	return time.Date(
		int(d.YearsSince1900)+1900,
		time.Month(d.Month),
		int(d.Day),
		int(d.Hour),
		int(d.Minute),
		int(d.Second),
		0,
		offsetZone(d.GMTOffsetIn15MinIntervals),
	), nil
}

// LongDateTimeSize is the encoded length of [LongDateTime]
const LongDateTimeSize = 17

// LongDateTime is a character (digit) representation of date and time
//
// ECMA-119 (5th ed.) §9.4.27.2
type LongDateTime struct {
	YearDigits                [4]uint8
	MonthDigits               [2]uint8
	DayDigits                 [2]uint8
	HourDigits                [2]uint8
	MinuteDigits              [2]uint8
	SecondDigits              [2]uint8
	CentisecondsDigits        [2]uint8
	GMTOffsetIn15MinIntervals int8
}

// ZeroLongDateTime represents the zero-value of the [LongDateTime] type, which means "not specified"
//
// ECMA-119 (5th ed.) §9.4.27.2
var ZeroLongDateTime = LongDateTime{
	YearDigits:                [4]uint8{'0', '0', '0', '0'},
	MonthDigits:               [2]uint8{'0', '0'},
	DayDigits:                 [2]uint8{'0', '0'},
	HourDigits:                [2]uint8{'0', '0'},
	MinuteDigits:              [2]uint8{'0', '0'},
	SecondDigits:              [2]uint8{'0', '0'},
	CentisecondsDigits:        [2]uint8{'0', '0'},
	GMTOffsetIn15MinIntervals: 0,
}

func (d LongDateTime) IsZero() bool {
	return d == ZeroLongDateTime
}

// Time decodes d, returning a time in a fixed zone with d's GMT offset. The zero value does not denote a time and
// gives [ErrMalformed].
func (d LongDateTime) Time() (time.Time, error) {
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("%w: date and time not specified", ErrMalformed)
	}

	var fields [7]int
	for i, digits := range [][]uint8{
		d.YearDigits[:], d.MonthDigits[:], d.DayDigits[:], d.HourDigits[:],
		d.MinuteDigits[:], d.SecondDigits[:], d.CentisecondsDigits[:],
	} {
		v, err := parseDigits(digits)
		if err != nil {
			return time.Time{}, err
		}
		fields[i] = v
	}

	year, month, day, hour, minute, second, centis := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6]
	if err := checkRanges(year, month, day, hour, minute, second, d.GMTOffsetIn15MinIntervals); err != nil {
		return time.Time{}, err
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, centis*int(10*time.Millisecond), offsetZone(d.GMTOffsetIn15MinIntervals)), nil
}

func parseDigits(digits []uint8) (int, error) {
	v := 0
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q is not a digit", ErrMalformed, c)
		}
		v = v*10 + int(c-'0')
	}

	return v, nil
}

func checkRanges(year, month, day, hour, minute, second int, offset int8) error {
	switch {
	case month < 1 || month > 12:
		return fmt.Errorf("%w: month %d", ErrMalformed, month)
	case day < 1 || day > daysIn(year, time.Month(month)):
		return fmt.Errorf("%w: day %d of %04d-%02d", ErrMalformed, day, year, month)
	case hour > 23:
		return fmt.Errorf("%w: hour %d", ErrMalformed, hour)
	case minute > 59:
		return fmt.Errorf("%w: minute %d", ErrMalformed, minute)
	case second > 59:
		return fmt.Errorf("%w: second %d", ErrMalformed, second)
	case offset < MinGMTOffset || offset > MaxGMTOffset:
		return fmt.Errorf("%w: GMT offset %d", ErrMalformed, offset)
	}

	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func offsetZone(intervals int8) *time.Location {
	if intervals == 0 {
		return time.UTC
	}

	return time.FixedZone("", int(intervals)*15*60)
}
