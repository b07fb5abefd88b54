package engine

import (
	"math"
	"strconv"
	"strings"
)

// Conversion factors used for durations. Months and years are fixed averages rather than calendar lengths.
const (
	spanYear  = 365 * msPerDay
	spanMonth = spanYear / 12
)

var spanUnits = map[Unit]float64{
	Millisecond: 1,
	Second:      msPerSecond,
	Minute:      msPerMinute,
	Hour:        msPerHour,
	Day:         msPerDay,
	Week:        msPerWeek,
	Month:       spanMonth,
	Year:        spanYear,
}

// Span is an elapsed time, held in milliseconds, together with its breakdown into calendar-approximate components
type Span struct {
	total float64

	years, months, days, hours, minutes, seconds float64
	millis                                       float64
}

// NewSpan creates a span of value units. Units that cannot express a duration are treated as milliseconds.
func NewSpan(value float64, unit Unit) Span {
	factor, ok := spanUnits[unit]
	if !ok {
		factor = 1
	}

	s := Span{total: value * factor}

	rest := s.total
	s.years, rest = math.Trunc(rest/spanYear), math.Mod(rest, spanYear)
	s.months, rest = math.Trunc(rest/spanMonth), math.Mod(rest, spanMonth)
	s.days, rest = math.Trunc(rest/msPerDay), math.Mod(rest, msPerDay)
	s.hours, rest = math.Trunc(rest/msPerHour), math.Mod(rest, msPerHour)
	s.minutes, rest = math.Trunc(rest/msPerMinute), math.Mod(rest, msPerMinute)
	s.seconds, rest = math.Trunc(rest/msPerSecond), math.Mod(rest, msPerSecond)
	s.millis = rest

	return s
}

// Total returns the whole span in milliseconds
func (s Span) Total() float64 {
	return s.total
}

// Component returns the whole number of units left over once all larger units are removed. Weeks are the exception:
// they count whole weeks across the entire span. Milliseconds are the remainder within the current second.
func (s Span) Component(unit Unit) int {
	var v float64

	switch unit {
	case Millisecond:
		v = math.Mod(s.total, msPerSecond)
	case Second:
		v = s.seconds
	case Minute:
		v = s.minutes
	case Hour:
		v = s.hours
	case Day:
		v = s.days
	case Week:
		v = s.total / msPerWeek
	case Month:
		v = s.months
	case Year:
		v = s.years
	}

	return int(math.Trunc(v))
}

// As returns the whole span expressed in unit, which may be fractional
func (s Span) As(unit Unit) float64 {
	factor, ok := spanUnits[unit]
	if !ok {
		return s.total
	}

	return s.total / factor
}

// ISOString renders the span as an ISO 8601 duration, e.g. "P1DT2H" or "PT0.5S". A zero span is "P0D".
func (s Span) ISOString() string {
	var b strings.Builder
	negative := false

	part := func(v float64, designator string) string {
		if v == 0 {
			return ""
		}
		if v < 0 {
			negative = true
			v = -v
		}

		return strconv.FormatFloat(v, 'f', -1, 64) + designator
	}

	seconds := s.seconds
	if s.millis != 0 {
		seconds = math.Round((seconds+s.millis/msPerSecond)*1000) / 1000
	}

	date := part(s.years, "Y") + part(s.months, "M") + part(s.days, "D")
	clock := part(s.hours, "H") + part(s.minutes, "M") + part(seconds, "S")

	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('P')
	b.WriteString(date)
	if clock != "" {
		b.WriteByte('T')
		b.WriteString(clock)
	}

	if b.String() == "P" || b.String() == "-P" {
		return "P0D"
	}

	return b.String()
}

// DefaultSpanLayout is used when formatting a span with an empty layout
const DefaultSpanLayout = "YYYY-MM-DDTHH:mm:ss"

var spanTokens = sortedByLength([]string{
	"Y", "YY", "YYYY",
	"M", "MM",
	"D", "DD",
	"H", "HH",
	"m", "mm",
	"s", "ss",
	"SSS",
})

// Format renders the span's components using a token layout. Only component tokens are recognised: the calendar
// tokens of [Format] have no meaning for a span and are emitted verbatim.
func (s Span) Format(layout string) string {
	if layout == "" {
		layout = DefaultSpanLayout
	}

	var b strings.Builder
	for _, tok := range tokenize(layout, spanTokens) {
		if tok.literal {
			b.WriteString(tok.text)
			continue
		}

		b.WriteString(s.formatToken(tok.text))
	}

	return b.String()
}

func (s Span) formatToken(tok string) string {
	whole := func(v float64) int {
		return int(math.Trunc(v))
	}

	switch tok {
	case "Y":
		return strconv.Itoa(whole(s.years))
	case "YY":
		return pad(whole(s.years), 2)
	case "YYYY":
		return pad(whole(s.years), 4)
	case "M":
		return strconv.Itoa(whole(s.months))
	case "MM":
		return pad(whole(s.months), 2)
	case "D":
		return strconv.Itoa(whole(s.days))
	case "DD":
		return pad(whole(s.days), 2)
	case "H":
		return strconv.Itoa(whole(s.hours))
	case "HH":
		return pad(whole(s.hours), 2)
	case "m":
		return strconv.Itoa(whole(s.minutes))
	case "mm":
		return pad(whole(s.minutes), 2)
	case "s":
		return strconv.Itoa(whole(s.seconds))
	case "ss":
		return pad(whole(s.seconds), 2)
	case "SSS":
		return pad(whole(s.millis), 3)
	}

	return tok
}
