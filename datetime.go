// Package datetime provides immutable date-time and duration values with time zone aware parsing, formatting,
// arithmetic and comparison.
//
// A [DateTime] is a point in time together with the zone it is displayed in. Every operation that looks like a
// mutation returns a new value. Input that cannot be understood produces an invalid value rather than an error:
// check [DateTime.IsValid] (or [DateTime.Err] for the reason) before relying on a value built from untrusted input.
//
// Layouts use tokens such as "YYYY-MM-DD HH:mm:ss" rather than Go's reference time; see [FormatISO] and friends for
// the named layouts.
package datetime

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// DateTime is an immutable instant with a display zone. The zero value is invalid.
type DateTime struct {
	t     time.Time
	utc   bool
	valid bool
	err   error
	cal   *Calendar
}

// Components is a DateTime broken into its calendar fields, read in its display zone. Month is 1-based.
type Components struct {
	Year        int `json:"years"`
	Month       int `json:"months"`
	Date        int `json:"date"`
	Hour        int `json:"hours"`
	Minute      int `json:"minutes"`
	Second      int `json:"seconds"`
	Millisecond int `json:"milliseconds"`
}

func (d DateTime) calendar() *Calendar {
	if d.cal == nil {
		return defaultCalendar
	}

	return d.cal
}

func (d DateTime) engine() Engine {
	return d.calendar().engine
}

// derive returns a copy of d holding the result of op. Invalid values are returned unchanged.
func (d DateTime) derive(op func(e Engine, t time.Time) time.Time) DateTime {
	if !d.valid {
		return d
	}

	d.t = op(d.engine(), d.t)
	return d
}

// Now returns a copy of d. It does not read the clock: use [New] with nil input for the current time.
func (d DateTime) Now() DateTime {
	return d.Clone()
}

// FromInput builds a new value from input, using the same calendar as d and no options
func (d DateTime) FromInput(input any) DateTime {
	return d.calendar().New(input)
}

// Clone returns an independent copy of d
func (d DateTime) Clone() DateTime {
	return d
}

// UTC switches d to display in UTC. With keepLocalTime, the wall clock reading is kept instead of the instant.
func (d DateTime) UTC(keepLocalTime bool) DateTime {
	if !d.valid {
		return d
	}

	if keepLocalTime {
		d.t = wallClock(d.t, time.UTC)
	} else {
		d.t = d.t.UTC()
	}
	d.utc = true

	return d
}

// ConvertToZone switches d to display in the named zone, or in the host's zone when name is empty. With
// keepLocalTime, the wall clock reading is kept instead of the instant. An unknown zone gives an invalid value.
func (d DateTime) ConvertToZone(name string, keepLocalTime bool) DateTime {
	if !d.valid {
		return d
	}

	cal := d.calendar()

	var loc *time.Location
	var err error
	if name == "" {
		loc, err = cal.zones.Local()
	} else {
		loc, err = cal.engine.LoadLocation(name)
	}
	if err != nil {
		return cal.invalid(d, Options{Timezone: name}, fmt.Errorf("%w %q: %w", ErrUnknownTimezone, name, err))
	}

	if keepLocalTime {
		d.t = wallClock(d.t, loc)
	} else {
		d.t = d.t.In(loc)
	}
	d.utc = false

	return d
}

// Format renders d with a token layout. The empty layout is ISO 8601 with the UTC offset, e.g.
// "2023-05-11T10:00:00-07:00". Invalid values format as "Invalid Date".
func (d DateTime) Format(layout string) string {
	if !d.valid {
		return invalidDateString
	}

	return d.engine().Format(d.t, layout)
}

func (d DateTime) String() string {
	return d.Format("")
}

// ISOString renders the instant in UTC with millisecond precision, e.g. "2023-05-11T17:00:00.000Z", whatever zone
// d displays in. Years outside 0-9999 take the signed six-digit form, e.g. "+010000-01-01T00:00:00.000Z".
func (d DateTime) ISOString() string {
	if !d.valid {
		return invalidDateString
	}

	u := d.t.UTC()
	rest := d.engine().Format(u, "-MM-DDTHH:mm:ss.SSS[Z]")

	year := u.Year()
	switch {
	case year < 0:
		return fmt.Sprintf("-%06d%s", -year, rest)
	case year > 9999:
		return fmt.Sprintf("+%06d%s", year, rest)
	}

	return fmt.Sprintf("%04d%s", year, rest)
}

// Set returns d with one component replaced. Values outside the component's range roll over into larger units.
func (d DateTime) Set(unit Unit, value int) DateTime {
	return d.derive(func(e Engine, t time.Time) time.Time {
		return e.Set(t, normalize(unit), value)
	})
}

// Get returns one component of d, or 0 for invalid values and unknown units
func (d DateTime) Get(unit Unit) int {
	if !d.valid {
		return 0
	}

	return d.engine().Get(d.t, normalize(unit))
}

// Unix returns whole seconds since the Unix epoch, truncated toward zero
func (d DateTime) Unix() int64 {
	if !d.valid {
		return 0
	}

	return d.t.UnixMilli() / 1000
}

func (d DateTime) UnixMilliseconds() int64 {
	if !d.valid {
		return 0
	}

	return d.t.UnixMilli()
}

// Add shifts d by n units. Adding months or years keeps the day of the month where it exists and otherwise clamps to
// the end of the month.
func (d DateTime) Add(n int, unit Unit) DateTime {
	return d.derive(func(e Engine, t time.Time) time.Time {
		return e.Add(t, n, normalize(unit))
	})
}

func (d DateTime) Subtract(n int, unit Unit) DateTime {
	return d.Add(-n, unit)
}

// Diff returns d - other in unit (milliseconds when empty), truncated toward zero unless float is set. other is read
// as by [New]. The result is NaN when either value is invalid.
func (d DateTime) Diff(other any, unit Unit, float bool) float64 {
	o, ok := d.operand(other)
	if !ok {
		return math.NaN()
	}

	return d.engine().Diff(d.t, o, normalize(unit), float)
}

func (d DateTime) StartOf(unit Unit) DateTime {
	return d.derive(func(e Engine, t time.Time) time.Time {
		return e.StartOf(t, normalize(unit))
	})
}

func (d DateTime) EndOf(unit Unit) DateTime {
	return d.derive(func(e Engine, t time.Time) time.Time {
		return e.EndOf(t, normalize(unit))
	})
}

// operand reads a comparison argument, reporting false if it or d is invalid
func (d DateTime) operand(other any) (time.Time, bool) {
	if !d.valid {
		return time.Time{}, false
	}

	o := d.FromInput(other)
	if !o.valid {
		return time.Time{}, false
	}

	return o.t, true
}

// IsSame reports whether d and other fall in the same unit, e.g. the same day. An empty unit compares instants.
func (d DateTime) IsSame(other any, unit Unit) bool {
	o, ok := d.operand(other)
	if !ok {
		return false
	}

	u := normalize(unit)
	start := d.engine().StartOf(d.t, u).UnixMilli()
	end := d.engine().EndOf(d.t, u).UnixMilli()

	return start <= o.UnixMilli() && o.UnixMilli() <= end
}

// IsBefore reports whether d's unit ends before other
func (d DateTime) IsBefore(other any, unit Unit) bool {
	o, ok := d.operand(other)
	if !ok {
		return false
	}

	return d.engine().EndOf(d.t, normalize(unit)).UnixMilli() < o.UnixMilli()
}

// IsAfter reports whether d's unit starts after other
func (d DateTime) IsAfter(other any, unit Unit) bool {
	o, ok := d.operand(other)
	if !ok {
		return false
	}

	return o.UnixMilli() < d.engine().StartOf(d.t, normalize(unit)).UnixMilli()
}

func (d DateTime) IsSameOrBefore(other any, unit Unit) bool {
	return d.IsSame(other, unit) || d.IsBefore(other, unit)
}

func (d DateTime) IsSameOrAfter(other any, unit Unit) bool {
	return d.IsSame(other, unit) || d.IsAfter(other, unit)
}

// IsBetween reports whether d lies between a and b, in either order, at the granularity of unit. inclusivity decides
// whether a and b themselves count; the empty boundary excludes both.
func (d DateTime) IsBetween(a, b any, unit Unit, inclusivity Boundary) bool {
	if !d.valid {
		return false
	}

	from, to := d.FromInput(a), d.FromInput(b)
	if !from.valid || !to.valid {
		return false
	}

	openStart, openEnd := inclusivity.exclusive()

	afterStart := func(x DateTime) bool {
		if openStart {
			return d.IsAfter(x, unit)
		}
		return !d.IsBefore(x, unit)
	}
	beforeStart := func(x DateTime) bool {
		if openStart {
			return d.IsBefore(x, unit)
		}
		return !d.IsAfter(x, unit)
	}
	beforeEnd := func(x DateTime) bool {
		if openEnd {
			return d.IsBefore(x, unit)
		}
		return !d.IsAfter(x, unit)
	}
	afterEnd := func(x DateTime) bool {
		if openEnd {
			return d.IsAfter(x, unit)
		}
		return !d.IsBefore(x, unit)
	}

	return (afterStart(from) && beforeEnd(to)) || (beforeStart(from) && afterEnd(to))
}

func (d DateTime) IsValid() bool {
	return d.valid
}

// IsUTC reports whether d was switched to UTC display with [DateTime.UTC]
func (d DateTime) IsUTC() bool {
	return d.valid && d.utc
}

// Err returns the reason d is invalid, or nil if it is valid
func (d DateTime) Err() error {
	if d.valid {
		return nil
	}
	if d.err == nil {
		return ErrInvalidDate
	}

	return d.err
}

// Duration creates a [Duration] of value units (milliseconds when unit is empty). d itself plays no part beyond
// providing the method.
func (d DateTime) Duration(value float64, unit Unit) Duration {
	return newDuration(value, normalize(unit))
}

// Time returns d as a [time.Time] in its display zone, or the zero time if d is invalid
func (d DateTime) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}

	return d.t
}

func (d DateTime) Components() Components {
	if !d.valid {
		return Components{}
	}

	e := d.engine()
	return Components{
		Year:        e.Get(d.t, Year),
		Month:       e.Get(d.t, Month),
		Date:        e.Get(d.t, Date),
		Hour:        e.Get(d.t, Hour),
		Minute:      e.Get(d.t, Minute),
		Second:      e.Get(d.t, Second),
		Millisecond: e.Get(d.t, Millisecond),
	}
}

// Week returns the week of the year, with weeks starting on Sunday
func (d DateTime) Week() int {
	return d.Get(Week)
}

func (d DateTime) Quarter() int {
	return d.Get(Quarter)
}

func (d DateTime) DaysInMonth() int {
	if !d.valid {
		return 0
	}

	return d.engine().Get(d.engine().EndOf(d.t, Month), Date)
}

// UTCOffset returns the offset of d's display zone from UTC, in minutes
func (d DateTime) UTCOffset() int {
	if !d.valid {
		return 0
	}

	_, offset := d.t.Zone()
	return offset / 60
}

// Timezone returns the name of d's display zone, e.g. "America/New_York"
func (d DateTime) Timezone() string {
	if !d.valid {
		return ""
	}

	return d.t.Location().String()
}

// MarshalJSON encodes d as its ISO string, or null if d is invalid
func (d DateTime) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}

	return json.Marshal(d.ISOString())
}

// MarshalText encodes d in the default layout, keeping its UTC offset
func (d DateTime) MarshalText() ([]byte, error) {
	if !d.valid {
		return nil, d.Err()
	}

	return []byte(d.Format("")), nil
}
