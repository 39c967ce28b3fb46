package domain

// ComponentInfo is the build information of one component type.
type ComponentInfo struct {
	// Name is the simple component name used in form descriptors.
	Name string `json:"name"`
	// Type is the fully qualified component class.
	Type string `json:"type"`
	// Permissions are the platform permissions the component needs.
	Permissions []string `json:"permissions,omitempty"`
	// Libraries are jar or aar files the component links against.
	Libraries []string `json:"libraries,omitempty"`
	// NativeLibraries are shared objects, named <abi>/<file>.
	NativeLibraries []string `json:"native,omitempty"`
	// Assets are files copied into the package assets.
	Assets []string `json:"assets,omitempty"`
	// BaseDir is the directory library and asset paths are relative to.
	// It is empty for built-in components, which resolve against the runtime dir.
	BaseDir string `json:"-"`
}
