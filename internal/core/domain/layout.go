package domain

import "path/filepath"

const (
	// ProjectDirName is the directory holding the project properties file.
	ProjectDirName = "youngandroidproject"

	// ProjectPropertiesName is the name of the project properties file.
	ProjectPropertiesName = "project.properties"

	// KeystoreFileName is the project-relative location of the signing keystore.
	KeystoreFileName = "android.keystore"

	// KeystoreAlias is the key alias used for generated keystores.
	KeystoreAlias = "AndroidKey"

	// KeystorePassword is the store and key password of generated keystores.
	KeystorePassword = "android"

	// ExternalComponentsDirName is the assets subdirectory holding extension packages.
	ExternalComponentsDirName = "external_comps"

	// FormExtension is the suffix of form property descriptor files.
	FormExtension = ".scm"

	// BlocksExtension is the suffix of block descriptor files.
	BlocksExtension = ".bky"

	// YailExtension is the suffix of generated intermediate sources.
	YailExtension = ".yail"

	// BuildDirName is the build output directory under the project root.
	BuildDirName = "build"

	// DeployDirName is the directory under build that receives the final package.
	DeployDirName = "deploy"

	// TmpDirName is the scratch directory under build.
	TmpDirName = "tmp"

	// StoreDirName is the directory under the state dir holding build records.
	StoreDirName = "records"

	// ConfigFileName is the server configuration file looked up in the working directory.
	ConfigFileName = "buildserver.yaml"

	// XDGConfigRelPath is the configuration file relative to the XDG config home.
	XDGConfigRelPath = "buildserver/config.yaml"

	// AppDirName is the per-application directory under XDG state and cache homes.
	AppDirName = "buildserver"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// PropertiesPath returns the path of project.properties under root.
func PropertiesPath(root string) string {
	return filepath.Join(root, ProjectDirName, ProjectPropertiesName)
}

// KeystorePath returns the path of the project keystore under root.
func KeystorePath(root string) string {
	return filepath.Join(root, KeystoreFileName)
}

// BuildPath returns the build directory under root.
func BuildPath(root string) string {
	return filepath.Join(root, BuildDirName)
}

// DeployPath returns the directory the final package is written to.
func DeployPath(root string) string {
	return filepath.Join(root, BuildDirName, DeployDirName)
}

// TmpPath returns the build scratch directory.
func TmpPath(root string) string {
	return filepath.Join(root, BuildDirName, TmpDirName)
}

// DefaultStorePath returns the build record directory under a state dir.
func DefaultStorePath(stateDir string) string {
	return filepath.Join(stateDir, StoreDirName)
}
