package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger returns a logger writing uncolored output into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("extracting project archive") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("build artifact not found") },
			goldenName: "warn_basic",
		},
		{
			name:       "standard error",
			log:        func(l *logger.Logger) { l.Error(os.ErrPermission) },
			goldenName: "error_simple",
		},
		{
			name: "zerr chain with metadata",
			log: func(l *logger.Logger) {
				err := zerr.With(zerr.Wrap(os.ErrNotExist, "failed to read config file"), "path", "/etc/buildserver.yaml")
				l.Error(err)
			},
			goldenName: "error_chain",
		},
		{
			name: "multiline message",
			log: func(l *logger.Logger) {
				l.Error(errors.New("yaml: unmarshal errors:\n  line 3: cannot unmarshal"))
			},
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("careful")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "careful", record["msg"])
}

func TestLogger_JSONKeepsOutputAfterToggle(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestCollectErrorEntries(t *testing.T) {
	t.Run("metadata stays on its link", func(t *testing.T) {
		err := zerr.With(zerr.Wrap(errors.New("exit status 1"), "command failed"), "exit_code", 1)
		entries := logger.CollectErrorEntries(err)

		require.Len(t, entries, 2)
		assert.Equal(t, "command failed", entries[0].Message)
		assert.Equal(t, map[string]any{"exit_code": 1}, entries[0].Metadata)
		assert.Equal(t, "exit status 1", entries[1].Message)
	})

	t.Run("metadata-only wrapper folds into the next link", func(t *testing.T) {
		err := zerr.With(errors.New("boom"), "task", "RunAapt")
		entries := logger.CollectErrorEntries(err)

		require.Len(t, entries, 1)
		assert.Equal(t, "boom", entries[0].Message)
		assert.Equal(t, map[string]any{"task": "RunAapt"}, entries[0].Metadata)
	})
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]logger.ErrorEntry{
		{Message: "outer", Metadata: map[string]any{"b": 2, "a": 1}},
		{Message: "inner"},
	})
	assert.Equal(t, "Error: outer (a=1, b=2)\n\n  Caused by:\n    → inner", got)
}
