package sheets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a command as a child process and waits for it to exit or
// for ctx to expire, whichever comes first. On a zero exit status it
// returns the captured stdout (stderr is discarded). A non-zero exit
// fails with the captured stderr text and an expired context fails with
// a timeout error. Exactly one child is spawned per call and it is
// fully reaped before Run returns.
func Run(ctx context.Context, name string, args ...string) (string, error) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: timed out", name)
		}

		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s", name, msg)
		}

		return "", fmt.Errorf("%s: %v", name, err)
	}

	return stdout.String(), nil
}
