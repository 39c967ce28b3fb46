package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildserver/internal/adapters/catalog"
	"go.trai.ch/buildserver/internal/core/domain"
)

const runtimePkg = "com.google.appinventor.components.runtime."

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestNameTypes_Builtins(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	lookup, err := c.NameTypes(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, runtimePkg+"Button", lookup["Button"])
	assert.Equal(t, runtimePkg+"Form", lookup["Form"])
}

func TestNameTypes_Extensions(t *testing.T) {
	assets := t.TempDir()
	ext := filepath.Join(assets, domain.ExternalComponentsDirName)
	writeFile(t, filepath.Join(ext, "a.single", "component.json"),
		`{"name":"Pedometer","type":"edu.mit.Pedometer"}`)
	writeFile(t, filepath.Join(ext, "b.multi", "components.json"),
		`[{"name":"Pedometer","type":"org.example.Pedometer"},{"name":"Counter","type":"org.example.Counter"}]`)
	writeFile(t, filepath.Join(ext, "c.both", "component.json"),
		`{"name":"Both","type":"org.example.FromSingle"}`)
	writeFile(t, filepath.Join(ext, "c.both", "components.json"),
		`[{"name":"Both","type":"org.example.FromArray"}]`)
	writeFile(t, filepath.Join(ext, "d.override", "component.json"),
		`{"name":"Button","type":"org.example.FancyButton"}`)

	c, err := catalog.New()
	require.NoError(t, err)

	lookup, err := c.NameTypes(assets)
	require.NoError(t, err)

	assert.Equal(t, "org.example.Pedometer", lookup["Pedometer"], "later directory wins")
	assert.Equal(t, "org.example.Counter", lookup["Counter"])
	assert.Equal(t, "org.example.FromSingle", lookup["Both"], "component.json is checked first")
	assert.Equal(t, "org.example.FancyButton", lookup["Button"], "extensions overwrite built-ins")
}

func TestNameTypes_InvalidDescriptor(t *testing.T) {
	assets := t.TempDir()
	writeFile(t, filepath.Join(assets, domain.ExternalComponentsDirName, "x", "component.json"), "{")

	c, err := catalog.New()
	require.NoError(t, err)

	_, err = c.NameTypes(assets)
	require.ErrorIs(t, err, domain.ErrCatalogLoad)
}

func TestTypes(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	types := c.Types()
	assert.IsIncreasing(t, types)
	assert.Contains(t, types, runtimePkg+"Texting")
}

func TestBuildInfo(t *testing.T) {
	assets := t.TempDir()
	dir := filepath.Join(assets, domain.ExternalComponentsDirName, "org.example.counter")
	writeFile(t, filepath.Join(dir, "component.json"), `{"name":"Counter","type":"org.example.Counter"}`)
	writeFile(t, filepath.Join(dir, "files", "component_build_infos.json"),
		`[{"type":"org.example.Counter","permissions":["android.permission.VIBRATE"],"libraries":["counter-lib.jar"],"native":["arm64-v8a/libcounter.so"]}]`)

	c, err := catalog.New()
	require.NoError(t, err)

	infos, err := c.BuildInfo(assets, []string{runtimePkg + "Texting", "org.example.Counter"})
	require.NoError(t, err)

	texting := infos[runtimePkg+"Texting"]
	assert.Equal(t, "Texting", texting.Name)
	assert.Contains(t, texting.Permissions, "android.permission.SEND_SMS")
	assert.Empty(t, texting.BaseDir)

	counter := infos["org.example.Counter"]
	assert.Equal(t, "Counter", counter.Name)
	assert.Equal(t, []string{"android.permission.VIBRATE"}, counter.Permissions)
	assert.Equal(t, []string{"counter-lib.jar"}, counter.Libraries)
	assert.Equal(t, []string{"arm64-v8a/libcounter.so"}, counter.NativeLibraries)
	assert.Equal(t, filepath.Join(dir, "files"), counter.BaseDir)
}

func TestBuildInfo_SingleInfoFile(t *testing.T) {
	assets := t.TempDir()
	dir := filepath.Join(assets, domain.ExternalComponentsDirName, "org.example.single")
	writeFile(t, filepath.Join(dir, "component.json"), `{"name":"Single","type":"org.example.Single"}`)
	writeFile(t, filepath.Join(dir, "files", "component_build_info.json"),
		`{"type":"org.example.Single","assets":["beep.wav"]}`)

	c, err := catalog.New()
	require.NoError(t, err)

	infos, err := c.BuildInfo(assets, []string{"org.example.Single"})
	require.NoError(t, err)
	assert.Equal(t, []string{"beep.wav"}, infos["org.example.Single"].Assets)
}

func TestBuildInfo_UnknownType(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	_, err = c.BuildInfo(t.TempDir(), []string{"org.example.Missing"})
	require.ErrorIs(t, err, domain.ErrUnknownComponent)
}
