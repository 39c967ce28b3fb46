package domain

import (
	"errors"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/zerr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ContextParams collects everything a build context is made from.
// Project, Format and Reporter are required.
type ContextParams struct {
	Project  *Project      `validate:"required"`
	Format   PackageFormat `validate:"required,oneof=apk aab"`
	Reporter *Reporter     `validate:"required"`

	// ComponentTypes are the types found in form descriptors.
	ComponentTypes []string
	// CatalogTypes are every type the catalog knows. Used in companion mode.
	CatalogTypes []string
	// ExtraTypes are extension types declared by the caller.
	ExtraTypes []string

	Blocks       BlockAnalysis
	Orientations map[string]string

	Companion            bool
	Emulator             bool
	DangerousPermissions bool

	ChildProcessRAM int `validate:"gte=0"`
	DexCachePath    string
	KeystorePath    string
	OutputName      string
}

// BuildContext is the immutable input of a build pipeline.
// Only the reporter it exposes may be written to.
type BuildContext struct {
	project         Project
	format          PackageFormat
	componentTypes  map[string]struct{}
	componentBlocks map[string]map[string]struct{}
	permissions     map[string]struct{}
	orientations    map[string]string

	companion            bool
	emulator             bool
	dangerousPermissions bool

	childProcessRAM int
	dexCachePath    string
	keystorePath    string
	outputName      string

	reporter *Reporter
}

// NewBuildContext validates p and builds a context from it.
// Companion mode and extra types add to the component types found in the project.
// Storage scopes are folded into the permission set.
func NewBuildContext(p ContextParams) (*BuildContext, error) {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, zerr.With(zerr.Wrap(ErrIncompleteContext, "invalid "+fe.Field()), "rule", fe.Tag())
		}
		return nil, errors.Join(ErrIncompleteContext, err)
	}

	types := make(map[string]struct{}, len(p.ComponentTypes))
	for _, t := range p.ComponentTypes {
		types[t] = struct{}{}
	}
	if p.Companion {
		for _, t := range p.CatalogTypes {
			types[t] = struct{}{}
		}
	}
	for _, t := range p.ExtraTypes {
		types[t] = struct{}{}
	}

	blocks := make(map[string]map[string]struct{}, len(p.Blocks.ComponentBlocks))
	for typ, names := range p.Blocks.ComponentBlocks {
		blocks[typ] = maps.Clone(names)
	}

	perms := make(map[string]struct{}, len(p.Blocks.Permissions))
	maps.Copy(perms, p.Blocks.Permissions)
	for _, perm := range PermissionsForScopes(SortedKeys(p.Blocks.Scopes)) {
		perms[perm] = struct{}{}
	}

	orientations := make(map[string]string, len(p.Orientations))
	maps.Copy(orientations, p.Orientations)

	project := *p.Project
	project.Properties = maps.Clone(p.Project.Properties)

	return &BuildContext{
		project:              project,
		format:               p.Format,
		componentTypes:       types,
		componentBlocks:      blocks,
		permissions:          perms,
		orientations:         orientations,
		companion:            p.Companion,
		emulator:             p.Emulator,
		dangerousPermissions: p.DangerousPermissions,
		childProcessRAM:      p.ChildProcessRAM,
		dexCachePath:         p.DexCachePath,
		keystorePath:         p.KeystorePath,
		outputName:           p.OutputName,
		reporter:             p.Reporter,
	}, nil
}

// Project returns a copy of the project.
func (c *BuildContext) Project() Project {
	p := c.project
	p.Properties = maps.Clone(c.project.Properties)
	return p
}

// Format returns the target package format.
func (c *BuildContext) Format() PackageFormat { return c.format }

// ComponentTypes returns the required component types in ascending order.
func (c *BuildContext) ComponentTypes() []string { return SortedKeys(c.componentTypes) }

// HasComponentType reports whether typ is required by the build.
func (c *BuildContext) HasComponentType(typ string) bool {
	_, ok := c.componentTypes[typ]
	return ok
}

// ComponentBlocks returns the block names used with typ in ascending order.
func (c *BuildContext) ComponentBlocks(typ string) []string {
	return SortedKeys(c.componentBlocks[typ])
}

// Permissions returns the permissions requested by blocks and scopes in ascending order.
func (c *BuildContext) Permissions() []string { return SortedKeys(c.permissions) }

// Orientation returns the orientation of a screen, or "unspecified".
func (c *BuildContext) Orientation(screen string) string {
	if o, ok := c.orientations[screen]; ok && o != "" {
		return o
	}
	return "unspecified"
}

func (c *BuildContext) IsCompanion() bool                 { return c.companion }
func (c *BuildContext) IsEmulator() bool                  { return c.emulator }
func (c *BuildContext) IncludeDangerousPermissions() bool { return c.dangerousPermissions }

// ChildProcessRAM returns the memory ceiling in MB for child JVMs.
func (c *BuildContext) ChildProcessRAM() int { return c.childProcessRAM }

// DexCachePath returns the directory pre-dexed libraries are cached in.
func (c *BuildContext) DexCachePath() string { return c.dexCachePath }

// KeystorePath returns the keystore used to sign the package.
func (c *BuildContext) KeystorePath() string { return c.keystorePath }

// OutputName returns the artifact file name, defaulting to <project>.<ext>.
func (c *BuildContext) OutputName() string {
	if c.outputName != "" {
		return c.outputName
	}
	return c.project.Name + "." + c.format.Extension()
}

// Reporter returns the build's log sink.
func (c *BuildContext) Reporter() *Reporter { return c.reporter }

// Screens returns every screen with its orientation, ordered by name.
func (c *BuildContext) Screens() []Screen {
	names := slices.Sorted(maps.Keys(c.orientations))
	screens := make([]Screen, 0, len(names))
	for _, n := range names {
		screens = append(screens, Screen{Name: n, Orientation: c.Orientation(n)})
	}
	return screens
}

// Screen is a form and its declared orientation.
type Screen struct {
	Name        string
	Orientation string
}
