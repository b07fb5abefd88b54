package datetime

import (
	"encoding/json"
	"github.com/davejbax/go-datetime/internal/engine"
	"math"
	"time"
)

// Duration is an immutable length of time that is not anchored to any instant. Months and years are fixed averages
// (a year is 365 days and a month a twelfth of that), so use [DateTime.Diff] when calendar-exact months matter.
//
// The component accessors (Hours, Days, ...) return what is left of that unit once all larger units are removed;
// the As accessors express the whole duration in one unit.
type Duration struct {
	span engine.Span
}

func newDuration(value float64, unit Unit) Duration {
	return Duration{span: engine.NewSpan(value, unit)}
}

func (d Duration) Milliseconds() int {
	return d.span.Component(Millisecond)
}

func (d Duration) Seconds() int {
	return d.span.Component(Second)
}

func (d Duration) Minutes() int {
	return d.span.Component(Minute)
}

func (d Duration) Hours() int {
	return d.span.Component(Hour)
}

func (d Duration) Days() int {
	return d.span.Component(Day)
}

// Weeks returns the number of whole weeks in the entire duration
func (d Duration) Weeks() int {
	return d.span.Component(Week)
}

func (d Duration) Months() int {
	return d.span.Component(Month)
}

func (d Duration) Years() int {
	return d.span.Component(Year)
}

func (d Duration) AsMilliseconds() float64 {
	return d.span.As(Millisecond)
}

func (d Duration) AsSeconds() float64 {
	return d.span.As(Second)
}

func (d Duration) AsMinutes() float64 {
	return d.span.As(Minute)
}

func (d Duration) AsHours() float64 {
	return d.span.As(Hour)
}

func (d Duration) AsDays() float64 {
	return d.span.As(Day)
}

func (d Duration) AsWeeks() float64 {
	return d.span.As(Week)
}

func (d Duration) AsMonths() float64 {
	return d.span.As(Month)
}

func (d Duration) AsYears() float64 {
	return d.span.As(Year)
}

// ISOString renders d as an ISO 8601 duration such as "P1DT2H30M"
func (d Duration) ISOString() string {
	return d.span.ISOString()
}

func (d Duration) String() string {
	return d.ISOString()
}

// Format renders d's components with a layout of the tokens Y, YY, YYYY, M, MM, D, DD, H, HH, m, mm, s, ss and SSS.
// Text in square brackets is emitted verbatim. The empty layout is "YYYY-MM-DDTHH:mm:ss".
func (d Duration) Format(layout string) string {
	return d.span.Format(layout)
}

// Std converts d to a [time.Duration], saturating at its limits
func (d Duration) Std() time.Duration {
	ns := d.span.Total() * float64(time.Millisecond)

	switch {
	case ns >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case ns <= math.MinInt64:
		return time.Duration(math.MinInt64)
	}

	return time.Duration(math.Round(ns))
}

// MarshalJSON encodes d as its ISO string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ISOString())
}
