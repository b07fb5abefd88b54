package engine

import "strings"

// Unit is a canonical calendar unit name. Callers usually pass loose spellings through [NormalizeUnit] first.
type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"

	// Day is the day of the week when getting or setting, and a calendar day in arithmetic
	Day Unit = "day"

	// Date is the day of the month
	Date Unit = "date"

	Week    Unit = "week"
	Month   Unit = "month"
	Quarter Unit = "quarter"
	Year    Unit = "year"
)

// shortUnits are matched case-sensitively, since 'M'/'m' and 'D'/'d' name different units
var shortUnits = map[string]Unit{
	"M":  Month,
	"y":  Year,
	"w":  Week,
	"d":  Day,
	"D":  Date,
	"h":  Hour,
	"m":  Minute,
	"s":  Second,
	"ms": Millisecond,
	"Q":  Quarter,
}

// foldedShortUnits are the short aliases whose upper-case spelling is unambiguous
var foldedShortUnits = map[string]Unit{
	"y":  Year,
	"w":  Week,
	"h":  Hour,
	"s":  Second,
	"ms": Millisecond,
	"q":  Quarter,
}

var knownUnits = map[Unit]bool{
	Millisecond: true,
	Second:      true,
	Minute:      true,
	Hour:        true,
	Day:         true,
	Date:        true,
	Week:        true,
	Month:       true,
	Quarter:     true,
	Year:        true,
}

// NormalizeUnit maps a short, long, or plural unit spelling to its canonical [Unit]. Long and plural spellings are
// case-insensitive. Unrecognised input is returned lower-cased with any plural 's' removed, and reports false from
// [Unit.Known].
func NormalizeUnit(u string) Unit {
	if unit, ok := shortUnits[u]; ok {
		return unit
	}

	lower := strings.ToLower(u)
	if unit, ok := foldedShortUnits[lower]; ok {
		return unit
	}

	return Unit(strings.TrimSuffix(lower, "s"))
}

// Known reports whether u is one of the canonical units
func (u Unit) Known() bool {
	return knownUnits[u]
}

// Manipulable reports whether u may be used for add/subtract. 'date' is only meaningful for get/set.
func (u Unit) Manipulable() bool {
	return u.Known() && u != Date
}
