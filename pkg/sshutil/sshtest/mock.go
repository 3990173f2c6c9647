// Package sshtest provides a mock SSH runner for testing code that executes
// remote commands without requiring actual SSH connections.
package sshtest

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/rileyhilliard/moonwatch/pkg/sshutil"
)

// CommandResponse defines a canned response for a specific command pattern.
type CommandResponse struct {
	Stdout string
	Err    error
}

// MockRunner simulates an SSH connection for testing.
// Commands are matched against configured exact strings first, then regexp
// patterns in registration order.
type MockRunner struct {
	mu       sync.Mutex
	closed   bool
	exact    map[string]CommandResponse
	patterns []patternResponse
	calls    []string
}

type patternResponse struct {
	re   *regexp.Regexp
	resp CommandResponse
}

// NewMockRunner creates a mock runner with no canned responses.
// Unmatched commands return empty output.
func NewMockRunner() *MockRunner {
	return &MockRunner{exact: make(map[string]CommandResponse)}
}

// Respond registers an exact-match response for a command.
func (m *MockRunner) Respond(cmd string, resp CommandResponse) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exact[cmd] = resp
	return m
}

// RespondPattern registers a regexp-match response for commands.
func (m *MockRunner) RespondPattern(pattern string, resp CommandResponse) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.patterns = append(m.patterns, patternResponse{re: regexp.MustCompile(pattern), resp: resp})
	return m
}

// Run returns the canned response for the command.
func (m *MockRunner) Run(ctx context.Context, cmd string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return "", errors.New("connection closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.calls = append(m.calls, cmd)

	if resp, ok := m.exact[cmd]; ok {
		return resp.Stdout, resp.Err
	}
	for _, p := range m.patterns {
		if p.re.MatchString(cmd) {
			return p.resp.Stdout, p.resp.Err
		}
	}
	return "", nil
}

// Close marks the runner closed; further Run calls fail.
func (m *MockRunner) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Calls returns the commands executed so far.
func (m *MockRunner) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Dialer returns a sshutil.Dialer that hands out this runner for every target.
func (m *MockRunner) Dialer() sshutil.Dialer {
	return func(sshutil.Target, time.Duration) (sshutil.Runner, error) {
		return m, nil
	}
}

// FailingDialer returns a sshutil.Dialer that always fails with err.
func FailingDialer(err error) sshutil.Dialer {
	return func(sshutil.Target, time.Duration) (sshutil.Runner, error) {
		return nil, err
	}
}

// DialerFor returns a sshutil.Dialer that routes each target name to its own
// runner. Unknown targets fail with the fallback error.
func DialerFor(runners map[string]sshutil.Runner, fallback error) sshutil.Dialer {
	return func(target sshutil.Target, _ time.Duration) (sshutil.Runner, error) {
		if r, ok := runners[target.Name]; ok {
			return r, nil
		}
		if fallback == nil {
			fallback = errors.New("no runner configured")
		}
		return nil, fallback
	}
}
