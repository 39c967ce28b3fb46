package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		toolEnv  map[string]string
		expected []string
	}{
		{
			name:     "System Only (Allowed)",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"HOME=/home/test", "PATH=/bin", "USER=test"},
		},
		{
			name:     "System Only (Filtered)",
			sysEnv:   []string{"USER=test", "SSH_AUTH_SOCK=/tmp/ssh", "SECRET=key"},
			expected: []string{"USER=test"},
		},
		{
			name:     "Tool Override",
			sysEnv:   []string{"USER=test", "PATH=/bin", "JAVA_HOME=/opt/jdk"},
			toolEnv:  map[string]string{"PATH": "/sdk/build-tools", "_JAVA_OPTIONS": "-Xmx1024m"},
			expected: []string{"JAVA_HOME=/opt/jdk", "PATH=/sdk/build-tools", "USER=test", "_JAVA_OPTIONS=-Xmx1024m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveEnvironment(tt.sysEnv, tt.toolEnv))
		})
	}
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "aapt2")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // Test executable
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	got, err := lookPath("aapt2", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, got)

	_, err = lookPath("notes.txt", []string{"PATH=" + dir})
	require.Error(t, err)

	_, err = lookPath("aapt2", nil)
	require.Error(t, err)
}
