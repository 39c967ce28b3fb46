package shell_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/shell"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestRunner_StreamsOutputToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("line1")
	log.EXPECT().Info("line2")
	log.EXPECT().Warn("oops")

	runner := shell.NewRunner(log)

	var stdout, stderr bytes.Buffer
	err := runner.Run(context.Background(), domain.ToolCommand{
		Name: "sh",
		Args: []string{"-c", "echo line1; printf line2; echo oops >&2"},
		Dir:  t.TempDir(),
	}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "line1\nline2", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestRunner_Environment(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(log)

	var stdout bytes.Buffer
	err := runner.Run(context.Background(), domain.ToolCommand{
		Name: "sh",
		Args: []string{"-c", "echo $_JAVA_OPTIONS"},
		Env:  map[string]string{"_JAVA_OPTIONS": "-Xmx2048m"},
	}, &stdout, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "-Xmx2048m\n", stdout.String())
}

func TestRunner_ExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	runner := shell.NewRunner(log)

	err := runner.Run(context.Background(), domain.ToolCommand{
		Name: "sh",
		Args: []string{"-c", "echo broken >&2; exit 3"},
	}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrToolFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh", zErr.Metadata()["tool"])
}

func TestRunner_MissingExecutable(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))

	err := runner.Run(context.Background(), domain.ToolCommand{
		Name: "definitely-not-a-build-tool",
	}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrToolFailed)

	err = runner.Run(context.Background(), domain.ToolCommand{}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrToolFailed)
}

func TestRunner_DeclaredOutputs(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))
	dir := t.TempDir()
	out := filepath.Join(dir, "resources.ap_")

	err := runner.Run(context.Background(), domain.ToolCommand{
		Name:    "sh",
		Args:    []string{"-c", "true"},
		Outputs: []string{out},
	}, io.Discard, io.Discard)
	require.ErrorIs(t, err, domain.ErrToolOutputMissing)

	err = runner.Run(context.Background(), domain.ToolCommand{
		Name:    "sh",
		Args:    []string{"-c", "touch " + out},
		Outputs: []string{out},
	}, io.Discard, io.Discard)
	require.NoError(t, err)
}

func TestRunner_Cancelled(t *testing.T) {
	runner := shell.NewRunner(mocks.NewMockLogger(gomock.NewController(t)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, domain.ToolCommand{
		Name: "sh",
		Args: []string{"-c", "sleep 5"},
	}, io.Discard, io.Discard)
	require.ErrorIs(t, err, context.Canceled)
}
