package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildserver/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	tests := []struct {
		name  string
		build func(*slog.Logger) *slog.Logger
		level slog.Level
		msg   string
		want  string
	}{
		{name: "info", level: slog.LevelInfo, msg: "hello", want: "hello\n"},
		{name: "warn", level: slog.LevelWarn, msg: "hello", want: "! hello\n"},
		{name: "error", level: slog.LevelError, msg: "hello", want: "✗ hello\n"},
		{name: "debug filtered", level: slog.LevelDebug, msg: "hello", want: ""},
		{
			name:  "attrs",
			build: func(l *slog.Logger) *slog.Logger { return l.With("task", "RunAapt") },
			level: slog.LevelInfo,
			msg:   "done",
			want:  "done task=RunAapt\n",
		},
		{
			name:  "grouped attrs",
			build: func(l *slog.Logger) *slog.Logger { return l.WithGroup("build").With("id", "42") },
			level: slog.LevelInfo,
			msg:   "done",
			want:  "done build.id=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			if tt.build != nil {
				lg = tt.build(lg)
			}

			lg.Log(t.Context(), tt.level, tt.msg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
