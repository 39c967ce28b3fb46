package domain

import "strings"

// Project describes a project as declared by its project.properties file.
type Project struct {
	// Name is the project name. It is the default artifact base name.
	Name string
	// Root is the absolute path of the extracted project.
	Root string
	// AssetsDir is the absolute path of the project assets.
	AssetsDir string
	// SourceDir is the absolute path of the project sources.
	SourceDir string
	// MainClass is the fully qualified class of the main screen.
	MainClass string
	// AppName is the user-visible application label.
	AppName string
	// Icon is the asset name of the launcher icon, if any.
	Icon        string
	VersionCode string
	VersionName string
	Theme       string
	// Colors holds the primary, primary dark and accent colors as declared.
	Colors Colors
	// DefaultFileScope is the storage scope declared for the project.
	DefaultFileScope string
	// Properties holds every raw key=value pair of project.properties.
	Properties map[string]string
}

// Colors holds the theme colors of a project.
type Colors struct {
	Primary     string
	PrimaryDark string
	Accent      string
}

// PackageName derives the Android package name from the main class.
func (p *Project) PackageName() string {
	if i := strings.LastIndex(p.MainClass, "."); i > 0 {
		return p.MainClass[:i]
	}
	return p.MainClass
}

// MainScreen returns the simple name of the main screen class.
func (p *Project) MainScreen() string {
	if i := strings.LastIndex(p.MainClass, "."); i >= 0 {
		return p.MainClass[i+1:]
	}
	return p.MainClass
}

// Label returns the application label, falling back to the project name.
func (p *Project) Label() string {
	if p.AppName != "" {
		return p.AppName
	}
	return p.Name
}
