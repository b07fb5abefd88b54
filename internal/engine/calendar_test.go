package engine_test

import (
	"fmt"
	"github.com/davejbax/go-datetime/internal/engine"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
	"time"
)

const isoLayout = "YYYY-MM-DDTHH:mm:ss.SSSZ"

func TestAdd(t *testing.T) {
	base := time.Date(2023, time.January, 31, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		n        int
		unit     engine.Unit
		expected string
	}{
		{1, engine.Millisecond, "2023-01-31T10:30:00.001+00:00"},
		{30, engine.Second, "2023-01-31T10:30:30.000+00:00"},
		{-31, engine.Minute, "2023-01-31T09:59:00.000+00:00"},
		{14, engine.Hour, "2023-02-01T00:30:00.000+00:00"},
		{1, engine.Day, "2023-02-01T10:30:00.000+00:00"},
		{-1, engine.Week, "2023-01-24T10:30:00.000+00:00"},
		{1, engine.Month, "2023-02-28T10:30:00.000+00:00"},
		{13, engine.Month, "2024-02-29T10:30:00.000+00:00"},
		{1, engine.Quarter, "2023-04-30T10:30:00.000+00:00"},
		{-2, engine.Year, "2021-01-31T10:30:00.000+00:00"},
		{5, engine.Unit("fortnight"), "2023-01-31T10:30:00.005+00:00"},
		{5, engine.Date, "2023-01-31T10:30:00.005+00:00"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d %s", c.n, c.unit), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.Format(engine.Add(base, c.n, c.unit), isoLayout), "Addition should follow calendar rules")
		})
	}
}

func TestAddLargeCounts(t *testing.T) {
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		n        int
		unit     engine.Unit
		expected string
	}{
		{3000000, engine.Hour, "2365-03-29T00:00:00.000+00:00"},
		{-200000000, engine.Minute, "1642-09-26T02:40:00.000+00:00"},
		{10000000000000, engine.Millisecond, "2339-11-21T17:46:40.000+00:00"},
		{10000000000, engine.Second, "2339-11-21T17:46:40.000+00:00"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%d %s", c.n, c.unit), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.Format(engine.Add(base, c.n, c.unit), isoLayout), "Addition should not overflow")
		})
	}
}

func TestAddSaturates(t *testing.T) {
	base := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, unit := range []engine.Unit{engine.Millisecond, engine.Second, engine.Minute, engine.Hour} {
		t.Run(string(unit), func(t *testing.T) {
			t.Parallel()

			assert.True(t, engine.Add(base, math.MaxInt, unit).After(base), "Adding a huge count should move forward")
			assert.True(t, engine.Add(base, math.MinInt, unit).Before(base), "Subtracting a huge count should move back")
		})
	}
}

func TestAddDayKeepsWallClockAcrossDST(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	before := time.Date(2023, time.March, 11, 12, 0, 0, 0, ny)

	after := engine.Add(before, 1, engine.Day)

	assert.Equal(t, "2023-03-12T12:00:00.000-04:00", engine.Format(after, isoLayout), "Adding a day should keep the time of day")
	assert.Equal(t, 23*time.Hour, after.Sub(before), "The DST change should shorten the day")
}

func TestSet(t *testing.T) {
	base := time.Date(2023, time.May, 31, 10, 30, 15, 250*int(time.Millisecond), time.UTC)

	cases := []struct {
		unit     engine.Unit
		value    int
		expected string
	}{
		{engine.Millisecond, 999, "2023-05-31T10:30:15.999+00:00"},
		{engine.Second, 0, "2023-05-31T10:30:00.250+00:00"},
		{engine.Minute, 61, "2023-05-31T11:01:15.250+00:00"},
		{engine.Hour, 2, "2023-05-31T02:30:15.250+00:00"},
		{engine.Date, 1, "2023-05-01T10:30:15.250+00:00"},
		{engine.Date, 32, "2023-06-01T10:30:15.250+00:00"},
		{engine.Day, 0, "2023-05-28T10:30:15.250+00:00"},
		{engine.Month, 6, "2023-06-30T10:30:15.250+00:00"},
		{engine.Quarter, 1, "2023-02-28T10:30:15.250+00:00"},
		{engine.Year, 2024, "2024-05-31T10:30:15.250+00:00"},
		{engine.Unit("nope"), 7, "2023-05-31T10:30:15.250+00:00"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s=%d", c.unit, c.value), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.Format(engine.Set(base, c.unit, c.value), isoLayout), "Setting a component should follow calendar rules")
		})
	}
}

func TestGet(t *testing.T) {
	tm := time.Date(2023, time.May, 2, 14, 5, 6, 7*int(time.Millisecond), time.UTC)

	cases := []struct {
		unit     engine.Unit
		expected int
	}{
		{engine.Millisecond, 7},
		{engine.Second, 6},
		{engine.Minute, 5},
		{engine.Hour, 14},
		{engine.Date, 2},
		{engine.Day, 2},
		{engine.Week, 18},
		{engine.Month, 5},
		{engine.Quarter, 2},
		{engine.Year, 2023},
		{engine.Unit("nope"), 0},
	}

	for _, c := range cases {
		t.Run(string(c.unit), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.Get(tm, c.unit), "Component should be read in the value's location")
		})
	}
}

func TestStartAndEndOf(t *testing.T) {
	tm := time.Date(2023, time.May, 2, 14, 5, 6, 7*int(time.Millisecond), time.UTC)

	cases := []struct {
		unit  engine.Unit
		start string
		end   string
	}{
		{engine.Year, "2023-01-01T00:00:00.000+00:00", "2023-12-31T23:59:59.999+00:00"},
		{engine.Quarter, "2023-04-01T00:00:00.000+00:00", "2023-06-30T23:59:59.999+00:00"},
		{engine.Month, "2023-05-01T00:00:00.000+00:00", "2023-05-31T23:59:59.999+00:00"},
		{engine.Week, "2023-04-30T00:00:00.000+00:00", "2023-05-06T23:59:59.999+00:00"},
		{engine.Day, "2023-05-02T00:00:00.000+00:00", "2023-05-02T23:59:59.999+00:00"},
		{engine.Date, "2023-05-02T00:00:00.000+00:00", "2023-05-02T23:59:59.999+00:00"},
		{engine.Hour, "2023-05-02T14:00:00.000+00:00", "2023-05-02T14:59:59.999+00:00"},
		{engine.Minute, "2023-05-02T14:05:00.000+00:00", "2023-05-02T14:05:59.999+00:00"},
		{engine.Second, "2023-05-02T14:05:06.000+00:00", "2023-05-02T14:05:06.999+00:00"},
		{engine.Millisecond, "2023-05-02T14:05:06.007+00:00", "2023-05-02T14:05:06.007+00:00"},
	}

	for _, c := range cases {
		t.Run(string(c.unit), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.start, engine.Format(engine.StartOf(tm, c.unit), isoLayout), "Start of unit should be its first millisecond")
			assert.Equal(t, c.end, engine.Format(engine.EndOf(tm, c.unit), isoLayout), "End of unit should be its last millisecond")
		})
	}
}

func TestStartOfDayInZone(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	tm := time.Date(2023, time.May, 2, 1, 0, 0, 0, ny)

	assert.Equal(t, "2023-05-02T00:00:00.000-04:00", engine.Format(engine.StartOf(tm, engine.Day), isoLayout), "Start of day should use the value's location")
}

func TestStartOfFollowsWallClock(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	// New York kept local mean time, 4:56:02 behind UTC, until 1883
	lmt := time.Date(1880, time.June, 1, 12, 34, 56, 500*int(time.Millisecond), ny)
	assert.Equal(t, "12:34:00.000", engine.Format(engine.StartOf(lmt, engine.Minute), "HH:mm:ss.SSS"), "Start of minute should be on the wall clock")
	assert.Equal(t, "12:34:56.000", engine.Format(engine.StartOf(lmt, engine.Second), "HH:mm:ss.SSS"), "Start of second should be on the wall clock")
	assert.Equal(t, "12:34:59.999", engine.Format(engine.EndOf(lmt, engine.Minute), "HH:mm:ss.SSS"), "End of minute should be on the wall clock")

	// 01:30:45 occurs twice on the day DST ends; this is the second, in EST
	repeated := time.Date(2024, time.November, 3, 6, 30, 45, 0, time.UTC).In(ny)
	assert.Equal(t, "2024-11-03T06:30:00.000+00:00", engine.Format(engine.StartOf(repeated, engine.Minute).UTC(), isoLayout), "Start of minute should stay in the same fold")
}

func TestDiff(t *testing.T) {
	a := time.Date(2023, time.May, 2, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		b        time.Time
		unit     engine.Unit
		float    bool
		expected float64
	}{
		{time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), engine.Day, false, 1},
		{time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), engine.Day, true, 34.0 / 24},
		{time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), engine.Date, false, 1},
		{time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), engine.Hour, false, 34},
		{time.Date(2023, time.May, 2, 10, 0, 1, 0, time.UTC), engine.Millisecond, false, -1000},
		{time.Date(2023, time.May, 2, 10, 0, 1, 0, time.UTC), engine.Second, false, -1},
		{time.Date(2023, time.May, 2, 10, 0, 1, 0, time.UTC), engine.Minute, false, 0},
		{time.Date(2023, time.April, 18, 10, 0, 0, 0, time.UTC), engine.Week, false, 2},
		{time.Date(2023, time.March, 2, 10, 0, 0, 0, time.UTC), engine.Month, false, 2},
		{time.Date(2023, time.March, 2, 10, 0, 0, 0, time.UTC), engine.Quarter, false, 0},
		{time.Date(2022, time.May, 2, 10, 0, 0, 0, time.UTC), engine.Year, false, 1},
		{time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC), engine.Year, false, -1},
		{time.Date(2023, time.May, 3, 10, 0, 0, 0, time.UTC), engine.Unit("fortnight"), false, -86400000},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %s", c.b.Format(time.RFC3339), c.unit), func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, c.expected, engine.Diff(a, c.b, c.unit, c.float), 1e-9, "Difference should be measured in the unit")
		})
	}
}

func TestDiffMonthEnds(t *testing.T) {
	jan31 := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	feb28 := time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, float64(1), engine.Diff(feb28, jan31, engine.Month, false), "Clamped month ends should be a whole month apart")
	assert.Equal(t, float64(-1), engine.Diff(jan31, feb28, engine.Month, false), "Difference should be antisymmetric")
}

func TestDiffNeverNegativeZero(t *testing.T) {
	a := time.Date(2023, time.May, 2, 10, 0, 0, 0, time.UTC)
	b := a.Add(time.Second)

	d := engine.Diff(a, b, engine.Hour, false)
	assert.False(t, math.Signbit(d), "Truncated difference should not be negative zero")
}

func TestDiffDiscountsOffsetChange(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	before := time.Date(2023, time.March, 11, 12, 0, 0, 0, ny)
	after := time.Date(2023, time.March, 12, 12, 0, 0, 0, ny)

	assert.Equal(t, float64(1), engine.Diff(after, before, engine.Day, true), "A 23-hour DST day should count as one day")
	assert.Equal(t, float64(23), engine.Diff(after, before, engine.Hour, true), "Hours should count elapsed time")
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		input    time.Time
		expected int
	}{
		{time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, c := range cases {
		t.Run(c.input.Format("2006-01"), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.DaysInMonth(c.input), "Month length should account for leap years")
		})
	}
}

func TestWeekOfYear(t *testing.T) {
	cases := []struct {
		input    time.Time
		expected int
	}{
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2023, time.January, 7, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2023, time.January, 8, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2022, time.January, 2, 0, 0, 0, 0, time.UTC), 2},
		{time.Date(2024, time.December, 29, 0, 0, 0, 0, time.UTC), 1},
	}

	for _, c := range cases {
		t.Run(c.input.Format(time.DateOnly), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, engine.WeekOfYear(c.input), "Weeks should start on Sunday")
		})
	}
}
