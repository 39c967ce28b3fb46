// Package config loads the server settings.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger

	workDir      string
	searchConfig func(relPath string) (string, error)
	validate     *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:       logger,
		workDir:      ".",
		searchConfig: xdg.SearchConfigFile,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load returns the settings in path laid over the defaults. An empty path
// looks for buildserver.yaml in the working directory, then for the XDG
// config file, and falls back to the defaults when neither exists.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	settings := DefaultSettings()

	configPath, err := l.findConfiguration(path)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := readAndUnmarshalYAML(configPath, &settings); err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		l.Logger.Info("loaded settings from " + configPath)
	}

	if err := l.validate.Struct(settings); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, fe.Namespace()), "rule", fe.Tag())
		}
		return nil, errors.Join(domain.ErrInvalidSettings, err)
	}

	return &settings, nil
}

func (l *Loader) findConfiguration(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", zerr.With(errors.Join(domain.ErrConfigNotFound, err), "path", path)
		}
		return path, nil
	}

	local := filepath.Join(l.workDir, domain.ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if found, err := l.searchConfig(domain.XDGConfigRelPath); err == nil {
		return found, nil
	}
	return "", nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
