package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/config"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestLoader_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	loader := config.NewLoaderIn(logger, t.TempDir(), t.TempDir())
	settings, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSettings(), *settings)
	assert.Equal(t, config.DefaultChildRAM, settings.ChildRAM)
	assert.Equal(t, "keytool", settings.Toolchain.Keytool)
}

func TestLoader_ExplicitPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
workspace_base: /srv/builds
child_ram_mb: 4096
build_timeout: 10m
toolchain:
  java: /opt/jdk/bin/java
`)

	loader := config.NewLoaderIn(logger, t.TempDir(), t.TempDir())
	settings, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/builds", settings.WorkspaceBase)
	assert.Equal(t, 4096, settings.ChildRAM)
	assert.Equal(t, 10*time.Minute, settings.BuildTimeout)
	assert.Equal(t, "/opt/jdk/bin/java", settings.Toolchain.Java)
	// Unset keys keep their defaults.
	assert.Equal(t, "keytool", settings.Toolchain.Keytool)
	assert.Equal(t, config.DefaultMinSDK, settings.MinSDK)
}

func TestLoader_Discovery(t *testing.T) {
	t.Parallel()

	t.Run("working directory wins", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any())

		workDir := t.TempDir()
		configHome := t.TempDir()
		writeFile(t, filepath.Join(workDir, domain.ConfigFileName), "child_ram_mb: 1024\n")
		writeFile(t, filepath.Join(configHome, domain.XDGConfigRelPath), "child_ram_mb: 512\n")

		settings, err := config.NewLoaderIn(logger, workDir, configHome).Load("")
		require.NoError(t, err)
		assert.Equal(t, 1024, settings.ChildRAM)
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any())

		configHome := t.TempDir()
		writeFile(t, filepath.Join(configHome, domain.XDGConfigRelPath), "child_ram_mb: 512\n")

		settings, err := config.NewLoaderIn(logger, t.TempDir(), configHome).Load("")
		require.NoError(t, err)
		assert.Equal(t, 512, settings.ChildRAM)
	})
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		missing bool
		wantErr error
	}{
		{
			name:    "missing explicit file",
			missing: true,
			wantErr: domain.ErrConfigNotFound,
		},
		{
			name:    "malformed yaml",
			content: "child_ram_mb: [1, 2\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "ram below minimum",
			content: "child_ram_mb: 16\n",
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name:    "target below min sdk",
			content: "min_sdk: 30\ntarget_sdk: 21\n",
			wantErr: domain.ErrInvalidSettings,
		},
		{
			name:    "empty tool",
			content: "toolchain:\n  keytool: \"\"\n",
			wantErr: domain.ErrInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			logger := mocks.NewMockLogger(ctrl)
			logger.EXPECT().Info(gomock.Any()).AnyTimes()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if !tt.missing {
				writeFile(t, path, tt.content)
			}

			_, err := config.NewLoaderIn(logger, t.TempDir(), t.TempDir()).Load(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
