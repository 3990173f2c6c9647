package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistration(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"run", "report", "watch", "init", "version"} {
		assert.True(t, names[want], "command %q should be registered", want)
	}
}

func TestRootConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestReportFlags(t *testing.T) {
	require.NotNil(t, reportCmd.Flags().Lookup("send"))
	require.NotNil(t, reportCmd.Flags().Lookup("daily"))
}

func TestWatchIntervalDefault(t *testing.T) {
	flag := watchCmd.Flags().Lookup("interval")
	require.NotNil(t, flag)
	assert.Equal(t, "15s", flag.DefValue)
}
