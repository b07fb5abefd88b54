package engine

import (
	"math"
	"time"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
)

// Add shifts t by n units. Calendar units (day and larger) are applied to the wall clock in t's location, so adding a
// day across a DST change keeps the time of day. Month, quarter and year addition clamps the day of the month to the
// length of the target month. Units that are not [Unit.Manipulable], including 'date', are treated as milliseconds.
func Add(t time.Time, n int, unit Unit) time.Time {
	if !unit.Manipulable() {
		return addElapsed(t, n, 1)
	}

	switch unit {
	case Second:
		return addElapsed(t, n, msPerSecond)
	case Minute:
		return addElapsed(t, n, msPerMinute)
	case Hour:
		return addElapsed(t, n, msPerHour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Quarter:
		return addMonths(t, 3*n)
	case Year:
		return addMonths(t, 12*n)
	}

	return addElapsed(t, n, 1)
}

// addElapsed shifts t by n units of unitMs milliseconds. The sum is taken in Unix milliseconds rather than as a
// time.Duration, which only spans about 292 years, and saturates at the limits of int64.
func addElapsed(t time.Time, n int, unitMs int64) time.Time {
	count := int64(n)
	start := t.UnixMilli()

	var ms int64
	switch {
	case count > math.MaxInt64/unitMs:
		ms = math.MaxInt64
	case count < math.MinInt64/unitMs:
		ms = math.MinInt64
	default:
		delta := count * unitMs
		ms = start + delta
		if delta > 0 && ms < start {
			ms = math.MaxInt64
		} else if delta < 0 && ms > start {
			ms = math.MinInt64
		}
	}

	return time.UnixMilli(ms).Add(time.Duration(t.Nanosecond() % int(time.Millisecond))).In(t.Location())
}

func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, hour, minute, sec, t.Nanosecond(), t.Location())
	day = min(day, DaysInMonth(first))

	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the month containing t
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Set replaces one component of t. Out-of-range values roll over into the next larger unit (e.g. a date of 32),
// except that setting the month or year clamps the day of the month. Unknown units leave t unchanged.
func Set(t time.Time, unit Unit, value int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	nsec := t.Nanosecond()
	loc := t.Location()

	switch unit {
	case Millisecond:
		return time.Date(year, month, day, hour, minute, sec, value*int(time.Millisecond), loc)
	case Second:
		return time.Date(year, month, day, hour, minute, value, nsec, loc)
	case Minute:
		return time.Date(year, month, day, hour, value, sec, nsec, loc)
	case Hour:
		return time.Date(year, month, day, value, minute, sec, nsec, loc)
	case Date:
		return time.Date(year, month, value, hour, minute, sec, nsec, loc)
	case Day:
		return time.Date(year, month, day+value-int(t.Weekday()), hour, minute, sec, nsec, loc)
	case Week:
		return t.AddDate(0, 0, 7*(value-WeekOfYear(t)))
	case Month:
		return addMonths(t, value-int(month))
	case Quarter:
		return addMonths(t, 3*(value-quarterOf(t)))
	case Year:
		return addMonths(t, 12*(value-year))
	}

	return t
}

// Get returns one component of t. Months and quarters are 1-based; the day of the week runs from 0 (Sunday). Unknown
// units return 0.
func Get(t time.Time, unit Unit) int {
	switch unit {
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	case Second:
		return t.Second()
	case Minute:
		return t.Minute()
	case Hour:
		return t.Hour()
	case Date:
		return t.Day()
	case Day:
		return int(t.Weekday())
	case Week:
		return WeekOfYear(t)
	case Month:
		return int(t.Month())
	case Quarter:
		return quarterOf(t)
	case Year:
		return t.Year()
	}

	return 0
}

// StartOf snaps t back to the first instant of the unit containing it. Weeks start on Sunday. Unknown units and
// milliseconds return t unchanged.
func StartOf(t time.Time, unit Unit) time.Time {
	year, month, day := t.Date()
	loc := t.Location()

	switch unit {
	case Year:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	case Quarter:
		return time.Date(year, time.Month((quarterOf(t)-1)*3+1), 1, 0, 0, 0, 0, loc)
	case Month:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case Week:
		return time.Date(year, month, day-int(t.Weekday()), 0, 0, 0, 0, loc)
	case Day, Date:
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	case Hour:
		return time.Date(year, month, day, t.Hour(), 0, 0, 0, loc)
	case Minute:
		// Stepping back keeps the result in the same DST fold and honours offsets with seconds
		return t.Add(-time.Duration(t.Second())*time.Second - time.Duration(t.Nanosecond()))
	case Second:
		return t.Add(-time.Duration(t.Nanosecond()))
	}

	return t
}

// EndOf moves t forward to the last millisecond of the unit containing it
func EndOf(t time.Time, unit Unit) time.Time {
	start := StartOf(t, unit)

	var next time.Time
	switch unit {
	case Year:
		next = start.AddDate(1, 0, 0)
	case Quarter:
		next = start.AddDate(0, 3, 0)
	case Month:
		next = start.AddDate(0, 1, 0)
	case Week:
		next = start.AddDate(0, 0, 7)
	case Day, Date:
		next = start.AddDate(0, 0, 1)
	case Hour:
		next = start.Add(time.Hour)
	case Minute:
		next = start.Add(time.Minute)
	case Second:
		next = start.Add(time.Second)
	default:
		return t
	}

	return next.Add(-time.Millisecond)
}

// Diff returns a - b in the given unit, truncated toward zero unless float is set. Month, quarter and year differences
// are measured against month anchors so that, e.g., Jan 31 to Feb 28 is a whole month. Day and week differences
// discount any change of UTC offset between a and b. Unknown units give milliseconds.
func Diff(a, b time.Time, unit Unit, float bool) float64 {
	diff := float64(a.UnixMilli() - b.UnixMilli())

	_, aOffset := a.Zone()
	_, bOffset := b.Zone()
	zoneDelta := float64((bOffset - aOffset) * msPerSecond)

	var result float64
	switch unit {
	case Year:
		result = monthDiff(a, b) / 12
	case Month:
		result = monthDiff(a, b)
	case Quarter:
		result = monthDiff(a, b) / 3
	case Week:
		result = (diff - zoneDelta) / msPerWeek
	case Day, Date:
		result = (diff - zoneDelta) / msPerDay
	case Hour:
		result = diff / msPerHour
	case Minute:
		result = diff / msPerMinute
	case Second:
		result = diff / msPerSecond
	default:
		result = diff
	}

	if !float {
		result = math.Trunc(result)
	}

	// Normalise negative zero
	return result + 0
}

func monthDiff(a, b time.Time) float64 {
	if a.Day() < b.Day() {
		return -monthDiff(b, a)
	}

	whole := (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
	anchor := addMonths(a, whole)
	behind := b.Before(anchor)

	var fraction float64
	if behind {
		previous := addMonths(a, whole-1)
		fraction = float64(b.UnixMilli()-anchor.UnixMilli()) / float64(anchor.UnixMilli()-previous.UnixMilli())
	} else {
		next := addMonths(a, whole+1)
		fraction = float64(b.UnixMilli()-anchor.UnixMilli()) / float64(next.UnixMilli()-anchor.UnixMilli())
	}

	result := -(float64(whole) + fraction)
	if math.IsNaN(result) || result == 0 {
		return 0
	}

	return result
}

// WeekOfYear returns the week number of t, with weeks starting on Sunday and week 1 being the week containing
// January 1st.
func WeekOfYear(t time.Time) int {
	loc := t.Location()

	if t.Month() == time.December && t.Day() > 25 {
		nextYearStart := time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, loc)
		if nextYearStart.Before(EndOf(t, Week)) {
			return 1
		}
	}

	yearStart := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	yearStartWeek := StartOf(yearStart, Week).Add(-time.Millisecond)

	return int(math.Ceil(Diff(t, yearStartWeek, Week, true)))
}
