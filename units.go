package datetime

import "github.com/davejbax/go-datetime/internal/engine"

// Unit names a calendar granularity. Any spelling accepted by [NormalizeUnit] may be used wherever a Unit is expected:
// "d", "day" and "Days" all mean the same thing.
type Unit = engine.Unit

// Canonical units
const (
	Millisecond = engine.Millisecond
	Second      = engine.Second
	Minute      = engine.Minute
	Hour        = engine.Hour
	Day         = engine.Day
	Date        = engine.Date
	Week        = engine.Week
	Month       = engine.Month
	Quarter     = engine.Quarter
	Year        = engine.Year
)

// NormalizeUnit maps a short ("ms", "M", "Q"), long ("minute") or plural ("Hours") spelling to its canonical [Unit].
// The short forms are case-sensitive where case matters: "M" is a month and "m" a minute; "D" is the day of the month
// and "d" the day of the week.
func NormalizeUnit(u string) Unit {
	return engine.NormalizeUnit(u)
}

func normalize(u Unit) Unit {
	if u == "" {
		return ""
	}

	return engine.NormalizeUnit(string(u))
}
