package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dev stays bare", "dev", "dev"},
		{"empty stays bare", "", ""},
		{"adds v prefix", "1.2.3", "v1.2.3"},
		{"keeps existing prefix", "v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatVersion(tt.in))
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	// Save original values
	originalVersion := version
	originalCommit := commit
	originalDate := date

	defer func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-03-01T12:00:00Z")

	assert.Equal(t, "1.2.3", GetVersion())
	assert.Equal(t, "abc1234", commit)
	assert.Equal(t, "2026-03-01T12:00:00Z", date)
}
