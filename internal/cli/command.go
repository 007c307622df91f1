package cli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aryankumar/cbench/internal/util"
)

// maxStderrTail bounds how much of a failing command's stderr ends up in the error
const maxStderrTail = 512

// commandWork returns a work body that runs argv once per call.
// The command's stdout is discarded; a non-zero exit fails the iteration.
func commandWork(ctx context.Context, argv []string, dir string) func() error {
	return func() error {
		c := exec.CommandContext(ctx, argv[0], argv[1:]...)
		c.Dir = dir

		var stderr bytes.Buffer
		c.Stderr = &stderr

		if err := c.Run(); err != nil {
			if msg := stderrTail(stderr.String()); msg != "" {
				return fmt.Errorf("%s: %w: %s", argv[0], err, msg)
			}
			return fmt.Errorf("%s: %w", argv[0], err)
		}
		return nil
	}
}

func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrTail {
		s = "..." + s[len(s)-maxStderrTail:]
	}
	return s
}

// interrupted replaces err with a cancellation error when ctx was cancelled,
// since a killed command only reports "signal: killed"
func interrupted(ctx context.Context, name string, err error) error {
	if ctx.Err() == nil {
		return err
	}
	return fmt.Errorf("benchmark %q interrupted: %w", name, util.ErrCancelled)
}
