package sshutil

import (
	"context"
	"time"
)

// Runner defines the interface for remote command execution.
// Both the real Client and the sshtest mock satisfy this interface, which
// lets collector code run against canned outputs in tests.
type Runner interface {
	// Run executes a command and returns its stdout.
	Run(ctx context.Context, cmd string) (string, error)

	// Close closes the connection.
	Close() error
}

// Dialer establishes a connection to a target. The production implementation
// is DialRunner; tests substitute a mock.
type Dialer func(target Target, timeout time.Duration) (Runner, error)

// DialRunner adapts Dial to the Dialer signature.
func DialRunner(target Target, timeout time.Duration) (Runner, error) {
	return Dial(target, timeout)
}
