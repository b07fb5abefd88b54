package engine_test

import (
	"fmt"
	"github.com/davejbax/go-datetime/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

var parseNow = time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	cases := []struct {
		value    string
		layout   string
		expected string
	}{
		{"2023-05-11", "YYYY-MM-DD", "2023-05-11T00:00:00.000+00:00"},
		{"05/11/2023", "MM/DD/YYYY", "2023-05-11T00:00:00.000+00:00"},
		{"20230511", "YYYYMMDD", "2023-05-11T00:00:00.000+00:00"},
		{"23-5-1", "YY-M-D", "2023-05-01T00:00:00.000+00:00"},
		{"99-12-31", "YY-MM-DD", "1999-12-31T00:00:00.000+00:00"},
		{"2023-05-11T10:20:30.456", "YYYY-MM-DDTHH:mm:ss.SSS", "2023-05-11T10:20:30.456+00:00"},
		{"2023-05-11T10:20:30.4", "YYYY-MM-DDTHH:mm:ss.S", "2023-05-11T10:20:30.400+00:00"},
		{"2023-05-11T10:00:00-03:00", "YYYY-MM-DDTHH:mm:ssZ", "2023-05-11T13:00:00.000+00:00"},
		{"2023-05-11T10:00:00+0530", "YYYY-MM-DDTHH:mm:ssZZ", "2023-05-11T04:30:00.000+00:00"},
		{"2023-05-11T10:00:00Z", "YYYY-MM-DDTHH:mm:ssZ", "2023-05-11T10:00:00.000+00:00"},
		{"07:45 PM", "hh:mm A", "2024-03-15T19:45:00.000+00:00"},
		{"12:15 am", "hh:mm a", "2024-03-15T00:15:00.000+00:00"},
		{"May 4, 2021", "MMMM D, YYYY", "2021-05-04T00:00:00.000+00:00"},
		{"4th Sep 2021", "Do MMM YYYY", "2021-09-04T00:00:00.000+00:00"},
		{"2021", "YYYY", "2021-01-01T00:00:00.000+00:00"},
		{"07", "MM", "2024-07-01T00:00:00.000+00:00"},
		{"1683850000", "X", "2023-05-12T00:06:40.000+00:00"},
		{"1683850000000", "x", "2023-05-12T00:06:40.000+00:00"},
		{"2023 at 11", "YYYY [at] HH", "2023-01-01T11:00:00.000+00:00"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s as %s", c.value, c.layout), func(t *testing.T) {
			t.Parallel()

			parsed, err := engine.Parse(c.value, c.layout, false, time.UTC, parseNow)
			require.NoError(t, err, "Parse should accept input that matches the layout")
			assert.Equal(t, c.expected, engine.Format(parsed, isoLayout), "Parsed value should match input")
		})
	}
}

func TestParseInLocation(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")

	parsed, err := engine.Parse("2023-05-11 10:00", "YYYY-MM-DD HH:mm", false, la, parseNow)
	require.NoError(t, err, "Parse should accept input that matches the layout")

	assert.Equal(t, "2023-05-11T10:00:00-07:00", engine.Format(parsed, ""), "Wall clock should be read in the given location")
	assert.Equal(t, la, parsed.Location(), "Parsed value should be in the given location")
}

func TestParseOffsetConvertsToLocation(t *testing.T) {
	la := mustLoad(t, "America/Los_Angeles")

	parsed, err := engine.Parse("2023-05-11T10:00:00Z", "YYYY-MM-DDTHH:mm:ssZ", false, la, parseNow)
	require.NoError(t, err, "Parse should accept input that matches the layout")

	assert.Equal(t, "2023-05-11T03:00:00-07:00", engine.Format(parsed, ""), "An explicit offset should fix the instant")
}

func TestParseFailures(t *testing.T) {
	cases := []struct {
		value  string
		layout string
	}{
		{"", "hh:ss"},
		{"abc", "YYYY"},
		{"2023-xx-01", "YYYY-MM-DD"},
		{"10:00", "HH:mm Z"},
		{"Smarch 1", "MMMM D"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q as %s", c.value, c.layout), func(t *testing.T) {
			t.Parallel()

			_, err := engine.Parse(c.value, c.layout, false, time.UTC, parseNow)
			assert.ErrorIs(t, err, engine.ErrNoMatch, "Parse should reject input that does not match the layout")
		})
	}
}

func TestParseStrict(t *testing.T) {
	cases := []struct {
		value   string
		layout  string
		matches bool
	}{
		{"2023-05-11", "YYYY-MM-DD", true},
		{"2023/05/11", "YYYY-MM-DD", false},
		{"2023-5-11", "YYYY-MM-DD", false},
		{"2023-02-30", "YYYY-MM-DD", false},
		{"05/11/2023", "MM/DD/YYYY", true},
		{"10:30 PM", "hh:mm A", true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s as %s", c.value, c.layout), func(t *testing.T) {
			t.Parallel()

			_, err := engine.Parse(c.value, c.layout, true, time.UTC, parseNow)
			if c.matches {
				assert.NoError(t, err, "Strict parse should accept an exact match")
			} else {
				assert.Error(t, err, "Strict parse should reject an inexact match")
			}
		})
	}
}

func TestParseLoose(t *testing.T) {
	cases := []struct {
		value    string
		expected string
	}{
		{"2023-05-02", "2023-05-02T00:00:00.000+00:00"},
		{"2023/05/02", "2023-05-02T00:00:00.000+00:00"},
		{"20230502", "2023-05-02T00:00:00.000+00:00"},
		{"2023-05", "2023-05-01T00:00:00.000+00:00"},
		{"2023", "2023-01-01T00:00:00.000+00:00"},
		{"2023-05-02T10:00:00", "2023-05-02T10:00:00.000+00:00"},
		{"2023-05-02 10:00", "2023-05-02T10:00:00.000+00:00"},
		{"2023-05-02T10:00:00.5", "2023-05-02T10:00:00.500+00:00"},
		{"2023-05-02T10:00:00.123456", "2023-05-02T10:00:00.123+00:00"},
		{"2023-05-02T10:00:00Z", "2023-05-02T10:00:00.000+00:00"},
		{"2023-05-02T10:00:00.000Z", "2023-05-02T10:00:00.000+00:00"},
		{"2023-05-02T10:00:00-04:00", "2023-05-02T14:00:00.000+00:00"},
		{"2023-05-02T10:00:00+0200", "2023-05-02T08:00:00.000+00:00"},
		{"2023-05-02T10:00Z", "2023-05-02T10:00:00.000+00:00"},
		{"Tue, 02 May 2023 10:00:00 GMT", "2023-05-02T10:00:00.000+00:00"},
		{"Tue, 02 May 2023 10:00:00 +0200", "2023-05-02T08:00:00.000+00:00"},
		{"Tue May 02 2023 10:00:00 GMT-0400", "2023-05-02T14:00:00.000+00:00"},
		{"Thu, 11 May 2023 10:00:00 UTC", "2023-05-11T10:00:00.000+00:00"},
		{"Thu, 11 May 2023 10:00:00 EST", "2023-05-11T15:00:00.000+00:00"},
		{"Thu, 11 May 2023 10:00:00 PDT", "2023-05-11T17:00:00.000+00:00"},
		{"Thu May 11 10:00:00 CDT 2023", "2023-05-11T15:00:00.000+00:00"},
		{"11 May 23 10:00 MST", "2023-05-11T17:00:00.000+00:00"},
		{"May 2, 2023", "2023-05-02T00:00:00.000+00:00"},
		{"05/02/2023", "2023-05-02T00:00:00.000+00:00"},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			t.Parallel()

			parsed, err := engine.ParseLoose(c.value, time.UTC)
			require.NoError(t, err, "Loose parse should accept common date-time strings")
			assert.Equal(t, c.expected, engine.Format(parsed.UTC(), isoLayout), "Parsed instant should match input")
		})
	}
}

func TestParseLooseExtendedYears(t *testing.T) {
	cases := []struct {
		value    string
		expected time.Time
	}{
		{"+010000-01-01T00:00:00.000Z", time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"-000001-12-31T23:59:59.999Z", time.Date(-1, time.December, 31, 23, 59, 59, 999000000, time.UTC)},
		{"+275760-09-13T00:00:00Z", time.Date(275760, time.September, 13, 0, 0, 0, 0, time.UTC)},
		{"+010000-06-01T12:00:00+02:00", time.Date(10000, time.June, 1, 10, 0, 0, 0, time.UTC)},
		{"-000100-03-01", time.Date(-100, time.March, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			t.Parallel()

			parsed, err := engine.ParseLoose(c.value, time.UTC)
			require.NoError(t, err, "Loose parse should accept a six-digit year")
			assert.True(t, c.expected.Equal(parsed), "Parsed instant should match input, got %s", parsed)
		})
	}
}

func TestParseLooseReadsWallClockInLocation(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	parsed, err := engine.ParseLoose("2023-05-01", ny)
	require.NoError(t, err, "Loose parse should accept an ISO date")

	assert.Equal(t, "2023-05-01T00:00:00-04:00", engine.Format(parsed, ""), "Zone-less input should be read as wall clock")
}

func TestParseLooseAbbreviationInLocation(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	cases := []struct {
		value    string
		expected string
	}{
		{"Thu, 11 May 2023 10:00:00 EST", "2023-05-11T15:00:00.000+00:00"},
		{"Thu, 11 May 2023 10:00:00 EDT", "2023-05-11T14:00:00.000+00:00"},
		{"Wed, 11 Jan 2023 10:00:00 EDT", "2023-01-11T14:00:00.000+00:00"},
		{"Thu, 11 May 2023 10:00:00 PST", "2023-05-11T18:00:00.000+00:00"},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			t.Parallel()

			parsed, err := engine.ParseLoose(c.value, ny)
			require.NoError(t, err, "Loose parse should accept a known abbreviation")
			assert.Equal(t, c.expected, engine.Format(parsed.UTC(), isoLayout), "Abbreviation should fix the offset whatever the location")
			assert.Equal(t, ny, parsed.Location(), "Parsed value should be displayed in the location")
		})
	}
}

func TestParseLooseRejects(t *testing.T) {
	cases := []string{
		"",
		"not a date",
		"2023-05-02T10:00:00 later",
		"tomorrow",
		"Thu, 11 May 2023 10:00:00 XYZ",
		"Thu, 11 May 2023 10:00:00 BST",
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%q", c), func(t *testing.T) {
			t.Parallel()

			_, err := engine.ParseLoose(c, time.UTC)
			assert.ErrorIs(t, err, engine.ErrUnrecognised, "Loose parse should reject unrecognised input")
		})
	}
}
