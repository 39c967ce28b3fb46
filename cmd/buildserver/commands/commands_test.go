package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/cmd/buildserver/commands"
	"go.trai.ch/buildserver/internal/app"
	"go.trai.ch/buildserver/internal/build"
	"go.trai.ch/buildserver/internal/core/domain"
)

type mockApp struct {
	buildFunc  func(ctx context.Context, req app.BuildRequest) domain.Result
	recordFunc func(configPath, id string) (*domain.BuildRecord, error)
}

func (m *mockApp) Build(ctx context.Context, req app.BuildRequest) domain.Result {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, req)
	}
	return domain.Result{Success: true}
}

func (m *mockApp) BuildRecord(configPath, id string) (*domain.BuildRecord, error) {
	if m.recordFunc != nil {
		return m.recordFunc(configPath, id)
	}
	return nil, nil
}

type jsonRecorder struct {
	json bool
}

func (l *jsonRecorder) Info(string)     {}
func (l *jsonRecorder) Warn(string)     {}
func (l *jsonRecorder) Error(error)     {}
func (l *jsonRecorder) SetJSON(on bool) { l.json = on }

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildRequest
		mock := &mockApp{
			buildFunc: func(_ context.Context, req app.BuildRequest) domain.Result {
				captured = req
				return domain.Result{BuildID: "b1", Success: true}
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{
			"build", "project.aia",
			"--config", "settings.yaml",
			"--out", "dist",
			"--format", "aab",
			"--output-name", "custom.aab",
			"--user", "alice",
			"--companion",
			"--emulator",
			"--dangerous-permissions",
			"--ext", "com.example.A",
			"--ext", "com.example.B",
			"--ram", "1024",
			"--dex-cache", "/cache/dex",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.BuildRequest{
			ConfigPath:           "settings.yaml",
			UserName:             "alice",
			ArchivePath:          "project.aia",
			OutputDir:            "dist",
			OutputName:           "custom.aab",
			Companion:            true,
			Emulator:             true,
			DangerousPermissions: true,
			ExtraTypes:           []string{"com.example.A", "com.example.B"},
			ChildProcessRAM:      1024,
			DexCachePath:         "/cache/dex",
			Format:               domain.FormatAAB,
		}, captured)
	})

	t.Run("defaults to apk", func(t *testing.T) {
		var captured app.BuildRequest
		mock := &mockApp{
			buildFunc: func(_ context.Context, req app.BuildRequest) domain.Result {
				captured = req
				return domain.Result{Success: true}
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.FormatAPK, captured.Format)
		assert.Equal(t, ".", captured.OutputDir)
	})

	t.Run("prints artifacts on success", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildRequest) domain.Result {
				return domain.Result{
					BuildID:     "b1",
					Success:     true,
					UserMessage: "[1/2] ReadBuildInfo\n",
					Artifacts: domain.Artifacts{
						Package:       "dist/Foo.apk",
						PackageDigest: "sha256:abc",
						Keystore:      "dist/android.keystore",
					},
				}
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "package: dist/Foo.apk (sha256:abc)")
		assert.Contains(t, out.String(), "keystore: dist/android.keystore")
		assert.Contains(t, out.String(), "build b1 succeeded")
	})

	t.Run("returns build failed on unsuccessful result", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildRequest) domain.Result {
				return domain.NewFailingResult("b2", "", domain.MsgExtractionFailed)
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBuildFailed)
		assert.Contains(t, out.String(), domain.MsgExtractionFailed)
	})

	t.Run("writes the log file", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildRequest) domain.Result {
				return domain.Result{Success: true, Log: "aapt ok<br>"}
			},
		}
		logFile := filepath.Join(t.TempDir(), "build.html")

		cli := commands.New(mock, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia", "--log-file", logFile})

		require.NoError(t, cli.Execute(context.Background()))
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Equal(t, "aapt ok<br>", string(data))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(context.Context, app.BuildRequest) domain.Result {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia", "--format", "ipa"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("requires an archive", func(t *testing.T) {
		cli := commands.New(&mockApp{}, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build"})

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("json switches the logger", func(t *testing.T) {
		logger := &jsonRecorder{}
		cli := commands.New(&mockApp{}, logger)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"build", "project.aia", "--json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, logger.json)
	})
}

func TestCommands_Record(t *testing.T) {
	t.Run("prints the record as json", func(t *testing.T) {
		mock := &mockApp{
			recordFunc: func(configPath, id string) (*domain.BuildRecord, error) {
				assert.Equal(t, "settings.yaml", configPath)
				return &domain.BuildRecord{ID: id, Project: "Foo", State: domain.StateSucceeded, Success: true}, nil
			},
		}

		cli := commands.New(mock, &jsonRecorder{})
		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"record", "b1", "--config", "settings.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		var record domain.BuildRecord
		require.NoError(t, json.Unmarshal(out.Bytes(), &record))
		assert.Equal(t, "b1", record.ID)
		assert.Equal(t, "Foo", record.Project)
	})

	t.Run("unknown build", func(t *testing.T) {
		cli := commands.New(&mockApp{}, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"record", "missing"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build record not found")
	})

	t.Run("store error", func(t *testing.T) {
		mock := &mockApp{
			recordFunc: func(string, string) (*domain.BuildRecord, error) {
				return nil, errors.New("disk on fire")
			},
		}
		cli := commands.New(mock, &jsonRecorder{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"record", "b1"})

		require.ErrorContains(t, cli.Execute(context.Background()), "disk on fire")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, &jsonRecorder{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
