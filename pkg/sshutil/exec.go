package sshutil

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rileyhilliard/moonwatch/internal/errors"
	"golang.org/x/crypto/ssh"
)

// Run executes a command on the remote host and returns its stdout.
// The context bounds the whole execution so one unresponsive host can't
// stall a polling cycle.
func (c *Client) Run(ctx context.Context, cmd string) (string, error) {
	session, err := c.Client.NewSession()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Failed to open session on '%s'", c.Name),
			"Connection may have been closed. Try reconnecting.")
	}
	defer session.Close()

	var stdout bytes.Buffer
	session.Stdout = &stdout

	done := make(chan error, 1)
	go func() {
		done <- session.Run(cmd)
	}()

	select {
	case <-ctx.Done():
		_ = session.Close()
		return "", errors.WrapWithCode(ctx.Err(), errors.ErrExec,
			fmt.Sprintf("Command timed out on '%s'", c.Name),
			"The host may be overloaded or unreachable")
	case err := <-done:
		if err != nil {
			if _, ok := err.(*ssh.ExitError); ok {
				// Command ran but exited non-zero; partial output still counts
				return stdout.String(), nil
			}
			return "", errors.WrapWithCode(err, errors.ErrExec,
				fmt.Sprintf("Failed to execute command on '%s'", c.Name),
				"Check if the command exists on the remote host.")
		}
		return stdout.String(), nil
	}
}
