package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrSSH,
		ErrNotify,
		ErrExec,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in moonwatch.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "ssh error",
			code:       ErrSSH,
			message:    "Cannot connect to host 'web-1'",
			suggestion: "Check the host address and credentials",
		},
		{
			name:       "notify error",
			code:       ErrNotify,
			message:    "Telegram rejected the message",
			suggestion: "Verify the bot token and chat id",
		},
		{
			name:       "exec error",
			code:       ErrExec,
			message:    "Command failed with exit code 1",
			suggestion: "Check command output for details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "SSH handshake with 'db-1' didn't go through")

	require.NotNil(t, err)
	assert.Equal(t, ErrSSH, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.True(t, errors.Is(err, cause))
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := WrapWithCode(cause, ErrConfig, "Invalid config format", "Check the YAML syntax")

	require.NotNil(t, err)
	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "Check the YAML syntax", err.Suggestion)
}

func TestErrorFormat(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := WrapWithCode(cause, ErrSSH,
		"Can't reach 'web-1' at 10.0.0.5:22",
		"Check the host is up and port 22 is open")

	msg := err.Error()

	// Message, cause, and suggestion each get their own section
	assert.True(t, strings.HasPrefix(msg, "✗ Can't reach 'web-1' at 10.0.0.5:22\n"))
	assert.Contains(t, msg, "dial tcp: i/o timeout")
	assert.Contains(t, msg, "Check the host is up and port 22 is open")
}

func TestIsCode(t *testing.T) {
	err := New(ErrNotify, "Delivery failed", "")

	assert.True(t, IsCode(err, ErrNotify))
	assert.False(t, IsCode(err, ErrSSH))
	assert.False(t, IsCode(nil, ErrNotify))
	assert.False(t, IsCode(errors.New("plain"), ErrNotify))

	// Wrapped structured errors are still found
	wrapped := WrapWithCode(err, ErrConfig, "outer", "")
	assert.True(t, IsCode(wrapped, ErrConfig))
}
