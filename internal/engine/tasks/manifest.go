package tasks

import (
	"context"
	"encoding/xml"
	"strconv"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
)

const androidNS = "http://schemas.android.com/apk/res/android"

type manifestXML struct {
	XMLName     xml.Name        `xml:"manifest"`
	Namespace   string          `xml:"xmlns:android,attr"`
	Package     string          `xml:"package,attr"`
	VersionCode string          `xml:"android:versionCode,attr"`
	VersionName string          `xml:"android:versionName,attr"`
	UsesSDK     usesSDKXML      `xml:"uses-sdk"`
	Permissions []permissionXML `xml:"uses-permission"`
	Application applicationXML  `xml:"application"`
}

type usesSDKXML struct {
	MinSDK    string `xml:"android:minSdkVersion,attr"`
	TargetSDK string `xml:"android:targetSdkVersion,attr"`
}

type permissionXML struct {
	Name string `xml:"android:name,attr"`
}

type applicationXML struct {
	Label      string        `xml:"android:label,attr"`
	Icon       string        `xml:"android:icon,attr"`
	Theme      string        `xml:"android:theme,attr"`
	Activities []activityXML `xml:"activity"`
}

type activityXML struct {
	Name         string           `xml:"android:name,attr"`
	Orientation  string           `xml:"android:screenOrientation,attr"`
	Exported     string           `xml:"android:exported,attr"`
	IntentFilter *intentFilterXML `xml:"intent-filter,omitempty"`
}

type intentFilterXML struct {
	Action   nameXML `xml:"action"`
	Category nameXML `xml:"category"`
}

type nameXML struct {
	Name string `xml:"android:name,attr"`
}

// CreateManifest writes AndroidManifest.xml with one activity per screen.
// The main screen gets the launcher intent filter.
type CreateManifest struct{}

func (CreateManifest) Name() string { return NameCreateManifest }

func (CreateManifest) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	if err := mkdirs(buildPath(bc)); err != nil {
		return err
	}
	return writeXML(buildPath(bc, manifestName), newManifest(bc, env))
}

func newManifest(bc *domain.BuildContext, env *pipeline.Env) manifestXML {
	project := bc.Project()

	m := manifestXML{
		Namespace:   androidNS,
		Package:     project.PackageName(),
		VersionCode: orDefault(project.VersionCode, "1"),
		VersionName: orDefault(project.VersionName, "1.0"),
		UsesSDK: usesSDKXML{
			MinSDK:    strconv.Itoa(env.Settings.MinSDK),
			TargetSDK: strconv.Itoa(env.Settings.TargetSDK),
		},
		Application: applicationXML{
			Label: project.Label(),
			Icon:  "@drawable/ya",
			Theme: "@style/AppTheme",
		},
	}

	for _, p := range env.State.Permissions {
		m.Permissions = append(m.Permissions, permissionXML{Name: p})
	}

	main := project.MainScreen()
	for _, screen := range bc.Screens() {
		activity := activityXML{
			Name:        "." + screen.Name,
			Orientation: screen.Orientation,
			Exported:    "false",
		}
		if screen.Name == main {
			activity.Exported = "true"
			activity.IntentFilter = &intentFilterXML{
				Action:   nameXML{Name: "android.intent.action.MAIN"},
				Category: nameXML{Name: "android.intent.category.LAUNCHER"},
			}
		}
		m.Application.Activities = append(m.Application.Activities, activity)
	}
	return m
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
