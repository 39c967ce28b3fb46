package tasks_test

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/archive"
	"go.trai.ch/buildserver/internal/adapters/catalog"
	"go.trai.ch/buildserver/internal/adapters/fs"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
)

// fakeRunner records commands and creates their declared outputs.
// Archive outputs are written as valid zip files.
type fakeRunner struct {
	mu   sync.Mutex
	cmds []domain.ToolCommand
	fail map[string]error
}

func (r *fakeRunner) Run(_ context.Context, cmd domain.ToolCommand, stdout, _ io.Writer) error {
	r.mu.Lock()
	r.cmds = append(r.cmds, cmd)
	r.mu.Unlock()

	if err := r.fail[cmd.Name]; err != nil {
		return err
	}
	if stdout != nil {
		_, _ = io.WriteString(stdout, cmd.Name+" ok\n")
	}
	for _, out := range cmd.Outputs {
		if err := writeOutput(out); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRunner) commands() []domain.ToolCommand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.ToolCommand(nil), r.cmds...)
}

func writeOutput(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".ap_", ".zip", ".apk", ".aab", ".jar":
		return writeZip(path, map[string]string{"AndroidManifest.xml": "<manifest/>", "res/layout.xml": "<x/>"})
	default:
		return os.WriteFile(path, []byte("x"), domain.FilePerm)
	}
}

func writeZip(path string, entries map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := zip.NewWriter(f)
	for _, name := range domain.SortedKeys(entries) {
		e, err := w.Create(name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(e, entries[name]); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return f.Close()
}

func zipEntries(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

type fixture struct {
	root    string
	runtime string
	project domain.Project
	runner  *fakeRunner
	env     *pipeline.Env
}

// newFixture lays out a project and a runtime directory on disk.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	runtime := t.TempDir()

	writeFile(t, filepath.Join(runtime, domain.RuntimeJarName), "runtime")
	writeFile(t, filepath.Join(runtime, domain.DefaultIconName), "default-icon")

	project := domain.Project{
		Name:       "Foo",
		Root:       root,
		AssetsDir:  filepath.Join(root, "assets"),
		SourceDir:  filepath.Join(root, "src"),
		MainClass:  "com.example.foo.Screen1",
		Properties: map[string]string{"name": "Foo"},
	}

	walker := fs.NewWalker()
	cat, err := catalog.New()
	require.NoError(t, err)

	runner := &fakeRunner{}
	env := &pipeline.Env{
		Settings: domain.Settings{
			DexCache:  filepath.Join(t.TempDir(), "dex"),
			ChildRAM:  2048,
			MinSDK:    21,
			TargetSDK: 34,
			Toolchain: domain.Toolchain{
				Java:          "java",
				Keytool:       "keytool",
				Aapt:          "aapt",
				Aapt2:         "aapt2",
				Zipalign:      "zipalign",
				Apksigner:     "apksigner",
				Jarsigner:     "jarsigner",
				AndroidJar:    "/sdk/android.jar",
				D8Jar:         "/sdk/d8.jar",
				KawaJar:       "/sdk/kawa.jar",
				BundletoolJar: "/sdk/bundletool.jar",
				RuntimeDir:    runtime,
			},
		},
		Runner:    runner,
		Catalog:   cat,
		Extractor: archive.NewExtractor(),
		Copier:    fs.NewCopier(walker),
		Finder:    walker,
		Hasher:    fs.NewHasher(),
		Output:    io.Discard,
		State:     pipeline.NewState(),
	}

	return &fixture{root: root, runtime: runtime, project: project, runner: runner, env: env}
}

// context builds a context for the fixture project. mutate may adjust the parameters.
func (f *fixture) context(t *testing.T, mutate func(*domain.ContextParams)) *domain.BuildContext {
	t.Helper()
	project := f.project
	p := domain.ContextParams{
		Project:      &project,
		Format:       domain.FormatAPK,
		Reporter:     domain.NewReporter(),
		Blocks:       domain.NewBlockAnalysis(),
		Orientations: map[string]string{"Screen1": "portrait"},
		KeystorePath: domain.KeystorePath(f.root),
	}
	if mutate != nil {
		mutate(&p)
	}
	bc, err := domain.NewBuildContext(p)
	require.NoError(t, err)
	return bc
}

func argsOf(cmd domain.ToolCommand) string {
	return strings.Join(cmd.Args, " ")
}
