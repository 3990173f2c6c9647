package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when MOONWATCH_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when MOONWATCH_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when MOONWATCH_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture log output
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			if tt.envValue != "" {
				t.Setenv("MOONWATCH_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("MOONWATCH_DEBUG")
			}

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			if tt.expectLog {
				assert.Contains(t, buf.String(), "[test] test message arg")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[cycle]")

	l.Info("polled %d hosts", 3)
	assert.Contains(t, buf.String(), "[cycle] polled 3 hosts")
	buf.Reset()

	l.Warn("delivery failed: %s", "timeout")
	assert.Contains(t, buf.String(), "[cycle] WARN: delivery failed: timeout")
	buf.Reset()

	l.Error("host %s offline", "web-1")
	assert.Contains(t, buf.String(), "[cycle] ERROR: host web-1 offline")
}

func TestNoopLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()
	require.NotNil(t, l)

	l.Info("interval report sent")
	l.Warn("slow host: %s", "db-1")
	l.Error("delivery failed")

	assert.Len(t, l.Messages, 3)
	assert.True(t, l.HasLevel("warn"))
	assert.True(t, l.HasLevel("error"))
	assert.False(t, l.HasLevel("debug"))
	assert.Equal(t, "slow host: db-1", l.Messages[1].Message)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	buffered := NewBufferLogger()
	SetDefault(buffered)

	Default().Info("hello")
	assert.Len(t, buffered.Messages, 1)
}
