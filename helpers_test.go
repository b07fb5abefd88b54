package datetime_test

import (
	"context"
	"fmt"
	"github.com/davejbax/go-datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"io"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"
)

// testNow is what the stopped clock reads in tests that do not care about the current time
var testNow = time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)

type stoppedClock struct {
	at time.Time
}

func (c stoppedClock) Now() time.Time {
	return c.at
}

// newTestCalendar returns a calendar whose clock reads testNow and whose local zone is the named zone
func newTestCalendar(t *testing.T, zone string) *datetime.Calendar {
	t.Helper()

	loc, err := time.LoadLocation(zone)
	require.NoError(t, err, "zone %s should be present in the tz database", zone)

	return datetime.NewCalendar(
		datetime.WithClock(stoppedClock{at: testNow}),
		datetime.WithZoneResolver(datetime.FixedZone{Location: loc}),
	)
}

func dumpContainerLogs(t *testing.T, container testcontainers.Container) {
	logReader, err := container.Logs(context.Background())
	if err != nil {
		t.Logf("failed to get container logs: %v", err)
	} else {
		logs, err := io.ReadAll(logReader)
		if err != nil {
			t.Logf("tried to get container logs, but could not read: %v", err)
		} else {
			_ = logReader.Close()
			t.Logf("container logs:\n%s", string(logs))
		}
	}
}

// runInContainer runs cmd in a container built from dockerfile, which is assumed to produce the file outputPath. The
// contents of that file are returned.
//
// The dockerfile is a path relative to the testdata directory which will be built with the testdata directory as its
// context.
func runInContainer(t *testing.T, dockerfile string, cmd []string, outputPath string) ([]byte, error) {
	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    filepath.Join(".", "testdata"),
			Dockerfile: dockerfile,
		},
		Cmd:        cmd,
		WaitingFor: wait.ForExit(),
	}

	container, err := testcontainers.GenericContainer(context.Background(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	defer testcontainers.CleanupContainer(t, container)
	if err != nil {
		return nil, fmt.Errorf("failed to start container: %w", err)
	}

	// Dump the logs for ease of debugging
	dumpContainerLogs(t, container)

	state, err := container.State(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get state of container: %w", err)
	}

	assert.Equal(t, "exited", state.Status, "container should be exited")
	require.Equal(t, 0, state.ExitCode, "container should run without any errors")

	output, err := container.CopyFileFromContainer(context.Background(), outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to copy file from container: %w", err)
	}
	defer output.Close()

	contents, err := io.ReadAll(output)
	if err != nil {
		return nil, fmt.Errorf("failed to read file copied from container: %w", err)
	}

	return contents, nil
}
