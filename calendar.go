package datetime

import (
	"fmt"
	"github.com/charmbracelet/log"
	"math"
	"os"
	"time"
)

// Calendar constructs [DateTime] values. It holds the engine that performs calendar computations and the sources of
// ambient state (the current time and the host's zone). A Calendar is immutable and safe for concurrent use.
//
// The package-level constructors use a Calendar backed by the system clock and [SystemZones].
type Calendar struct {
	engine Engine
	clock  Clock
	zones  ZoneResolver
	logger *log.Logger
}

type CalendarOption func(*Calendar)

func WithEngine(e Engine) CalendarOption {
	return func(c *Calendar) {
		c.engine = e
	}
}

func WithClock(clock Clock) CalendarOption {
	return func(c *Calendar) {
		c.clock = clock
	}
}

func WithZoneResolver(zones ZoneResolver) CalendarOption {
	return func(c *Calendar) {
		c.zones = zones
	}
}

// WithLogger sets the logger that receives diagnostics about input that could not be turned into a valid value
func WithLogger(logger *log.Logger) CalendarOption {
	return func(c *Calendar) {
		c.logger = logger
	}
}

func NewCalendar(opts ...CalendarOption) *Calendar {
	c := &Calendar{
		engine: DefaultEngine{},
		clock:  SystemClock{},
		zones:  SystemZones{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "datetime"})
	}

	return c
}

var defaultCalendar = NewCalendar()

// New creates a [DateTime] from input, which may be:
//   - nil, for the current time
//   - a [DateTime] or *DateTime, copied along with its display zone
//   - a string, parsed with [Options.InputFormat] or, without one, in any common date-time notation
//   - any integer or float kind, as milliseconds since the Unix epoch
//   - a [time.Time] or *time.Time
//
// Construction never fails: input that cannot be understood produces a value whose [DateTime.IsValid] is false.
func New(input any, opts ...Option) DateTime {
	return defaultCalendar.New(input, opts...)
}

// NewEST is [New] with the timezone fixed to US Eastern time, overriding any [WithTimezone] option
func NewEST(input any, opts ...Option) DateTime {
	return defaultCalendar.NewEST(input, opts...)
}

func (c *Calendar) New(input any, opts ...Option) DateTime {
	return c.build(input, collectOptions(opts))
}

func (c *Calendar) NewEST(input any, opts ...Option) DateTime {
	o := collectOptions(opts)
	o.Timezone = EasternTimezone

	return c.build(input, o)
}

func (c *Calendar) build(input any, o Options) (d DateTime) {
	defer func() {
		if r := recover(); r != nil {
			d = c.invalid(input, o, fmt.Errorf("%w: %v", ErrEngineFailure, r))
		}
	}()

	t, utc, err := c.resolve(input, o)
	if err != nil {
		return c.invalid(input, o, err)
	}

	return DateTime{t: t, utc: utc, valid: true, cal: c}
}

func (c *Calendar) invalid(input any, o Options, err error) DateTime {
	c.logger.Debug("Input is not a valid date-time",
		"input", input,
		"format", o.InputFormat,
		"timezone", o.Timezone,
		"strict", o.Strict,
		"err", err,
	)

	return DateTime{err: err, cal: c}
}

// resolve applies the construction policy, returning the instant (in its display location) and whether it displays
// as UTC
func (c *Calendar) resolve(input any, o Options) (time.Time, bool, error) {
	// Values carry millisecond precision
	now := c.clock.Now().Truncate(time.Millisecond)

	if o.Timezone != "" {
		loc, err := c.engine.LoadLocation(o.Timezone)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w %q: %w", ErrUnknownTimezone, o.Timezone, err)
		}

		if s, ok := input.(string); ok {
			// Parse in UTC so that any offset in the input is applied, then read the resulting wall clock in loc
			wall, err := c.parseString(s, o, time.UTC, wallClock(now.In(loc), time.UTC))
			if err != nil {
				return time.Time{}, false, err
			}

			return wallClock(wall.In(time.UTC), loc), false, nil
		}

		t, _, err := c.instant(input, now)
		if err != nil {
			return time.Time{}, false, err
		}

		return t.In(loc), false, nil
	}

	if s, ok := input.(string); ok {
		local, err := c.local()
		if err != nil {
			return time.Time{}, false, err
		}

		t, err := c.parseString(s, o, local, now)
		return t, false, err
	}

	t, utc, err := c.instant(input, now)
	if err != nil {
		return time.Time{}, false, err
	}

	// Existing values keep their display zone
	if isDateTime(input) {
		return t, utc, nil
	}

	local, err := c.local()
	if err != nil {
		return time.Time{}, false, err
	}

	return t.In(local), false, nil
}

func (c *Calendar) local() (*time.Location, error) {
	loc, err := c.zones.Local()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownTimezone, err)
	}

	return loc, nil
}

func (c *Calendar) parseString(s string, o Options, loc *time.Location, now time.Time) (time.Time, error) {
	if o.InputFormat != "" {
		t, err := c.engine.Parse(s, o.InputFormat, o.Strict, loc, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q: %w", ErrFormatMismatch, o.InputFormat, err)
		}

		return t, nil
	}

	t, err := c.engine.ParseLoose(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, s, err)
	}

	return t, nil
}

// instant interprets non-string input
func (c *Calendar) instant(input any, now time.Time) (time.Time, bool, error) {
	switch v := input.(type) {
	case nil:
		return now, false, nil
	case DateTime:
		if !v.IsValid() {
			return time.Time{}, false, v.Err()
		}
		return v.t, v.utc, nil
	case *DateTime:
		if v == nil {
			return now, false, nil
		}
		return c.instant(*v, now)
	case time.Time:
		return v.Truncate(time.Millisecond), false, nil
	case *time.Time:
		if v == nil {
			return now, false, nil
		}
		return v.Truncate(time.Millisecond), false, nil
	case int:
		return time.UnixMilli(int64(v)), false, nil
	case int8:
		return time.UnixMilli(int64(v)), false, nil
	case int16:
		return time.UnixMilli(int64(v)), false, nil
	case int32:
		return time.UnixMilli(int64(v)), false, nil
	case int64:
		return time.UnixMilli(v), false, nil
	case uint:
		return time.UnixMilli(int64(v)), false, nil
	case uint8:
		return time.UnixMilli(int64(v)), false, nil
	case uint16:
		return time.UnixMilli(int64(v)), false, nil
	case uint32:
		return time.UnixMilli(int64(v)), false, nil
	case uint64:
		if v > math.MaxInt64 {
			return time.Time{}, false, fmt.Errorf("%w: %d milliseconds is out of range", ErrInvalidDate, v)
		}
		return time.UnixMilli(int64(v)), false, nil
	case float32:
		return fromFloatMillis(float64(v))
	case float64:
		return fromFloatMillis(v)
	}

	return time.Time{}, false, fmt.Errorf("%w: %T", ErrUnsupportedInput, input)
}

func fromFloatMillis(ms float64) (time.Time, bool, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > math.MaxInt64 {
		return time.Time{}, false, fmt.Errorf("%w: %v milliseconds", ErrInvalidDate, ms)
	}

	return time.UnixMilli(int64(ms)), false, nil
}

func isDateTime(input any) bool {
	switch v := input.(type) {
	case DateTime:
		return true
	case *DateTime:
		return v != nil
	}

	return false
}

// wallClock returns the instant at which loc's clock shows the same reading as t's
func wallClock(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), loc)
}
