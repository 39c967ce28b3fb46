package tasks

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Default theme colors, in the #AARRGGBB form.
const (
	defaultPrimary     = "#FF3F51B5"
	defaultPrimaryDark = "#FF303F9F"
	defaultAccent      = "#FFFF4081"
)

// PrepareAppIcon copies the project icon, or the default icon, into the resources.
type PrepareAppIcon struct{}

func (PrepareAppIcon) Name() string { return NamePrepareAppIcon }

func (t PrepareAppIcon) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	project := bc.Project()
	src := filepath.Join(env.Settings.Toolchain.RuntimeDir, domain.DefaultIconName)

	if project.Icon != "" {
		custom := filepath.Join(project.AssetsDir, project.Icon)
		if exists(custom) {
			src = custom
		} else {
			bc.Reporter().Warn(fmt.Sprintf("icon %s not found, using the default icon", project.Icon))
		}
	}

	if !exists(src) {
		return domain.NewTaskFailure(t.Name(), "no application icon available")
	}
	return env.Copier.CopyFile(src, buildPath(bc, resDirName, "drawable", iconName))
}

type resourcesXML struct {
	XMLName xml.Name   `xml:"resources"`
	Colors  []colorXML `xml:"color,omitempty"`
	Styles  []styleXML `xml:"style,omitempty"`
}

type colorXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type styleXML struct {
	Name   string    `xml:"name,attr"`
	Parent string    `xml:"parent,attr"`
	Items  []itemXML `xml:"item"`
}

type itemXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// XMLConfig writes the color and style resources derived from the project theme.
type XMLConfig struct{}

func (XMLConfig) Name() string { return NameXMLConfig }

func (XMLConfig) Run(_ context.Context, bc *domain.BuildContext, _ *pipeline.Env) error {
	project := bc.Project()
	values := buildPath(bc, resDirName, "values")
	if err := mkdirs(values); err != nil {
		return err
	}

	colors := resourcesXML{Colors: []colorXML{
		{Name: "colorPrimary", Value: androidColor(project.Colors.Primary, defaultPrimary)},
		{Name: "colorPrimaryDark", Value: androidColor(project.Colors.PrimaryDark, defaultPrimaryDark)},
		{Name: "colorAccent", Value: androidColor(project.Colors.Accent, defaultAccent)},
	}}
	if err := writeXML(filepath.Join(values, "colors.xml"), colors); err != nil {
		return err
	}

	styles := resourcesXML{Styles: []styleXML{{
		Name:   "AppTheme",
		Parent: parentTheme(project.Theme),
		Items: []itemXML{
			{Name: "colorPrimary", Value: "@color/colorPrimary"},
			{Name: "colorPrimaryDark", Value: "@color/colorPrimaryDark"},
			{Name: "colorAccent", Value: "@color/colorAccent"},
		},
	}}}
	return writeXML(filepath.Join(values, "styles.xml"), styles)
}

// androidColor converts a &HAARRGGBB project color into #AARRGGBB.
func androidColor(value, fallback string) string {
	value = strings.TrimSpace(value)
	if hex, ok := strings.CutPrefix(value, "&H"); ok && len(hex) == 8 {
		return "#" + strings.ToUpper(hex)
	}
	if strings.HasPrefix(value, "#") {
		return value
	}
	return fallback
}

func parentTheme(theme string) string {
	switch theme {
	case "AppTheme.Light.DarkActionBar":
		return "Theme.AppCompat.Light.DarkActionBar"
	case "AppTheme.Light":
		return "Theme.AppCompat.Light.NoActionBar"
	case "AppTheme":
		return "Theme.AppCompat.NoActionBar"
	default:
		return "Theme.AppCompat.Light"
	}
}

func writeXML(path string, v any) error {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode xml"), "path", path)
	}
	data = append([]byte(xml.Header), append(data, '\n')...)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write xml"), "path", path)
	}
	return nil
}

// MergeResources merges the resource directories of attached libraries into
// the project resources. Later directories overwrite earlier ones.
type MergeResources struct{}

func (MergeResources) Name() string { return NameMergeResources }

func (MergeResources) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	res := buildPath(bc, resDirName)
	if err := mkdirs(res); err != nil {
		return err
	}
	for _, dir := range env.State.ResourceDirs {
		if err := env.Copier.CopyTree(dir, res); err != nil {
			return err
		}
	}
	return nil
}
