package domain

import "time"

// Settings is the server configuration shared by every build.
type Settings struct {
	WorkspaceBase string        `yaml:"workspace_base" validate:"required"`
	StateDir      string        `yaml:"state_dir" validate:"required"`
	DexCache      string        `yaml:"dex_cache" validate:"required"`
	ChildRAM      int           `yaml:"child_ram_mb" validate:"gte=256"`
	BuildTimeout  time.Duration `yaml:"build_timeout" validate:"gte=0"`
	MinSDK        int           `yaml:"min_sdk" validate:"gte=1"`
	TargetSDK     int           `yaml:"target_sdk" validate:"gtefield=MinSDK"`
	TraceFile     string        `yaml:"trace_file"`
	MetricsFile   string        `yaml:"metrics_file"`
	Toolchain     Toolchain     `yaml:"toolchain"`
}

// Toolchain locates the external tools and runtime files tasks rely on.
type Toolchain struct {
	Java          string `yaml:"java" validate:"required"`
	Keytool       string `yaml:"keytool" validate:"required"`
	Aapt          string `yaml:"aapt" validate:"required"`
	Aapt2         string `yaml:"aapt2" validate:"required"`
	Zipalign      string `yaml:"zipalign" validate:"required"`
	Apksigner     string `yaml:"apksigner" validate:"required"`
	Jarsigner     string `yaml:"jarsigner" validate:"required"`
	AndroidJar    string `yaml:"android_jar"`
	D8Jar         string `yaml:"d8_jar"`
	KawaJar       string `yaml:"kawa_jar"`
	BundletoolJar string `yaml:"bundletool_jar"`
	// RuntimeDir holds the runtime jar, component libraries, native
	// libraries under native/, component assets under assets/ and the
	// default icon.
	RuntimeDir string `yaml:"runtime_dir"`
}

// Runtime file names under Toolchain.RuntimeDir.
const (
	RuntimeJarName    = "AndroidRuntime.jar"
	RuntimeNativeDir  = "native"
	RuntimeAssetsDir  = "assets"
	DefaultIconName   = "ya.png"
	ExtensionFilesDir = "files"
)
