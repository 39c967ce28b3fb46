package workspace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/workspace"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.UnixMilli(1760000000000)

func TestCreate_Name(t *testing.T) {
	base := t.TempDir()
	m := workspace.NewManager(mocks.NewMockLogger(gomock.NewController(t)))

	ws, err := m.Create(base)
	require.NoError(t, err)
	defer ws.Close()

	assert.DirExists(t, ws.Root())
	assert.Equal(t, base, filepath.Dir(ws.Root()))

	name := filepath.Base(ws.Root())
	millis, rest, ok := strings.Cut(name, "_")
	require.True(t, ok)
	assert.NotEmpty(t, millis)
	assert.True(t, strings.HasSuffix(rest, "-0"), rest)
}

func TestCreate_RetriesOnCollision(t *testing.T) {
	base := t.TempDir()
	for i := range 3 {
		require.NoError(t, os.Mkdir(filepath.Join(base, "1760000000000_r-"+string(rune('0'+i))), 0o750))
	}

	m := workspace.NewManagerWith(mocks.NewMockLogger(gomock.NewController(t)), fixedNow, "r", 10)
	ws, err := m.Create(base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "1760000000000_r-3"), ws.Root())
}

func TestCreate_Exhausted(t *testing.T) {
	base := t.TempDir()
	for i := range 3 {
		require.NoError(t, os.Mkdir(filepath.Join(base, "1760000000000_r-"+string(rune('0'+i))), 0o750))
	}

	m := workspace.NewManagerWith(mocks.NewMockLogger(gomock.NewController(t)), fixedNow, "r", 3)
	_, err := m.Create(base)
	require.ErrorIs(t, err, domain.ErrWorkspaceExhausted)
}

func TestClose_Idempotent(t *testing.T) {
	m := workspace.NewManager(mocks.NewMockLogger(gomock.NewController(t)))
	ws, err := m.Create(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(ws.Root(), "build", "deploy"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(ws.Root(), "build", "deploy", "Foo.apk"), []byte("apk"), 0o600))

	ws.Close()
	assert.NoDirExists(t, ws.Root())
	ws.Close()
	assert.NoDirExists(t, ws.Root())
}

func TestCreate_RelativeBaseIsAbsolutized(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	m := workspace.NewManagerWith(mocks.NewMockLogger(gomock.NewController(t)), fixedNow, "r", 10)
	ws, err := m.Create("work")
	require.NoError(t, err)
	defer ws.Close()

	assert.True(t, filepath.IsAbs(ws.Root()), ws.Root())
	assert.Equal(t, filepath.Join(dir, "work", "1760000000000_r-0"), ws.Root())
}

func TestClose_FailureIsWarned(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	var warned string
	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { warned = msg }).Times(1)

	// RemoveAll rejects paths ending in a dot element.
	root := filepath.Join(t.TempDir(), "gone") + string(filepath.Separator) + "."
	ws := workspace.NewWorkspaceAt(root, logger)

	ws.Close()
	ws.Close()
	assert.Contains(t, warned, domain.ErrWorkspaceCleanup.Error())
	assert.Contains(t, warned, root)
}
