package encode

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-datetime/internal/ecma119"
	"time"
)

// ErrOutOfRange indicates that a time falls outside the years a record can hold
var ErrOutOfRange = errors.New("time cannot be represented in record")

// gmtOffset returns t's UTC offset in 15 minute intervals. Offsets that are not a whole number of intervals, or that
// fall outside the range a record can hold, cannot be encoded; ok is false and t should be written as UTC instead.
func gmtOffset(t time.Time) (int8, bool) {
	_, offset := t.Zone()
	if offset%(15*60) != 0 {
		return 0, false
	}

	intervals := offset / (15 * 60)
	if intervals < ecma119.MinGMTOffset || intervals > ecma119.MaxGMTOffset {
		return 0, false
	}

	return int8(intervals), true
}

// AsDateTime encodes t as a numerical date and time, keeping t's UTC offset where the record can express it
func AsDateTime(t time.Time) (ecma119.DateTime, error) {
	offset, ok := gmtOffset(t)
	if !ok {
		t = t.UTC()
	}

	if t.Year() < 1900 || t.Year() > 1900+255 {
		return ecma119.DateTime{}, fmt.Errorf("%w: year %d is outside 1900-2155", ErrOutOfRange, t.Year())
	}

	return ecma119.DateTime{
		YearsSince1900:            uint8(t.Year() - 1900),
		Month:                     uint8(t.Month()),
		Day:                       uint8(t.Day()),
		Hour:                      uint8(t.Hour()),
		Minute:                    uint8(t.Minute()),
		Second:                    uint8(t.Second()),
		GMTOffsetIn15MinIntervals: offset,
	}, nil
}

// AsLongDateTime encodes t as a digit date and time with centisecond precision, keeping t's UTC offset where the
// record can express it
func AsLongDateTime(t time.Time) (ecma119.LongDateTime, error) {
	offset, ok := gmtOffset(t)
	if !ok {
		t = t.UTC()
	}

	if t.Year() < 1 || t.Year() > 9999 {
		return ecma119.LongDateTime{}, fmt.Errorf("%w: year %d is outside 1-9999", ErrOutOfRange, t.Year())
	}

	var d ecma119.LongDateTime
	AsDigits(t.Year(), d.YearDigits[:])
	AsDigits(int(t.Month()), d.MonthDigits[:])
	AsDigits(t.Day(), d.DayDigits[:])
	AsDigits(t.Hour(), d.HourDigits[:])
	AsDigits(t.Minute(), d.MinuteDigits[:])
	AsDigits(t.Second(), d.SecondDigits[:])
	AsDigits(t.Nanosecond()/int(10*time.Millisecond), d.CentisecondsDigits[:])
	d.GMTOffsetIn15MinIntervals = offset

	return d, nil
}
