package datetime

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Clock supplies the current instant. It is read on every construction, never cached.
type Clock interface {
	Now() time.Time
}

// ZoneResolver supplies the host's local time zone. It is consulted once per construction, so a process whose zone
// changes (or a test that stubs it) is observed immediately.
type ZoneResolver interface {
	Local() (*time.Location, error)
}

// SystemClock reads the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// SystemZones resolves the local zone from the TZ environment variable each time it is asked, falling back to the
// zone Go determined at startup when TZ is unset. An empty TZ means UTC.
type SystemZones struct{}

func (SystemZones) Local() (*time.Location, error) {
	name, ok := os.LookupEnv("TZ")
	if !ok {
		return time.Local, nil
	}

	switch name = strings.TrimPrefix(name, ":"); name {
	case "", "UTC":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load local zone %q: %w", name, err)
	}

	return loc, nil
}

// FixedZone always resolves to the same location. It is useful for servers that should not depend on host settings.
type FixedZone struct {
	Location *time.Location
}

func (z FixedZone) Local() (*time.Location, error) {
	if z.Location == nil {
		return time.UTC, nil
	}

	return z.Location, nil
}
