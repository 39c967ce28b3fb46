package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.trai.ch/buildserver/internal/core/domain"
)

// Default values for settings absent from the config file.
const (
	DefaultChildRAM  = 2048
	DefaultMinSDK    = 21
	DefaultTargetSDK = 34
)

// DefaultSettings returns the settings used when no config file exists.
// Tools are resolved on PATH and state lives under the XDG base directories.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		WorkspaceBase: os.TempDir(),
		StateDir:      filepath.Join(xdg.StateHome, domain.AppDirName),
		DexCache:      filepath.Join(xdg.CacheHome, domain.AppDirName, "dex"),
		ChildRAM:      DefaultChildRAM,
		MinSDK:        DefaultMinSDK,
		TargetSDK:     DefaultTargetSDK,
		Toolchain: domain.Toolchain{
			Java:      "java",
			Keytool:   "keytool",
			Aapt:      "aapt",
			Aapt2:     "aapt2",
			Zipalign:  "zipalign",
			Apksigner: "apksigner",
			Jarsigner: "jarsigner",
		},
	}
}
