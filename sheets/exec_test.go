package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsCapturedStdout(t *testing.T) {
	out, err := Run(context.Background(), "/bin/sh", "-c", "echo hello; echo noise >&2")

	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestRunReportsStderrOnNonZeroExit(t *testing.T) {
	_, err := Run(context.Background(), "/bin/sh", "-c", "echo oops >&2; exit 3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}

func TestRunFailsOnNonZeroExitWithoutStderr(t *testing.T) {
	_, err := Run(context.Background(), "/bin/sh", "-c", "exit 1")

	require.Error(t, err)
}

func TestRunTimesOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	started := time.Now()

	_, err := Run(ctx, "/bin/sh", "-c", "sleep 10")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(started), 5*time.Second)
}
