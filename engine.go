package datetime

import (
	"fmt"
	"github.com/davejbax/go-datetime/internal/engine"
	"time"
)

// Engine performs the calendar computations behind a [DateTime]. Values handed to an Engine are always valid; an
// Engine may return errors (or panic) only while parsing or loading zones, which happens during construction.
type Engine interface {
	// Parse reads value using a token layout such as "YYYY-MM-DD". Zone-less input is wall clock in loc; missing
	// components default from now.
	Parse(value, layout string, strict bool, loc *time.Location, now time.Time) (time.Time, error)

	// ParseLoose reads value without a layout
	ParseLoose(value string, loc *time.Location) (time.Time, error)

	Format(t time.Time, layout string) string
	Add(t time.Time, n int, unit Unit) time.Time
	Set(t time.Time, unit Unit, value int) time.Time
	Get(t time.Time, unit Unit) int
	StartOf(t time.Time, unit Unit) time.Time
	EndOf(t time.Time, unit Unit) time.Time

	// Diff returns a - b in unit, truncated toward zero unless float is set
	Diff(a, b time.Time, unit Unit, float bool) float64

	LoadLocation(name string) (*time.Location, error)
}

// DefaultEngine implements [Engine] on Go's time package and tz database
type DefaultEngine struct{}

var _ Engine = DefaultEngine{}

func (DefaultEngine) Parse(value, layout string, strict bool, loc *time.Location, now time.Time) (time.Time, error) {
	return engine.Parse(value, layout, strict, loc, now)
}

func (DefaultEngine) ParseLoose(value string, loc *time.Location) (time.Time, error) {
	return engine.ParseLoose(value, loc)
}

func (DefaultEngine) Format(t time.Time, layout string) string {
	return engine.Format(t, layout)
}

func (DefaultEngine) Add(t time.Time, n int, unit Unit) time.Time {
	return engine.Add(t, n, unit)
}

func (DefaultEngine) Set(t time.Time, unit Unit, value int) time.Time {
	return engine.Set(t, unit, value)
}

func (DefaultEngine) Get(t time.Time, unit Unit) int {
	return engine.Get(t, unit)
}

func (DefaultEngine) StartOf(t time.Time, unit Unit) time.Time {
	return engine.StartOf(t, unit)
}

func (DefaultEngine) EndOf(t time.Time, unit Unit) time.Time {
	return engine.EndOf(t, unit)
}

func (DefaultEngine) Diff(a, b time.Time, unit Unit, float bool) float64 {
	return engine.Diff(a, b, unit, float)
}

// LoadLocation resolves an IANA zone name. Unlike [time.LoadLocation], the empty string and "Local" are rejected:
// callers wanting the host zone ask a [ZoneResolver].
func (DefaultEngine) LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%q does not name a zone", name)
	}

	return time.LoadLocation(name)
}
