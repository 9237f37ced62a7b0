package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/YoshitsuguKoike/hellolib/internal/app/config"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// SettingFile is the settings file name inside the home directory.
const SettingFile = "setting.yaml"

// RawSettings represents the structure of setting.yaml.
// Pointer fields distinguish "unset" from zero values.
type RawSettings struct {
	LogLevel  *string `yaml:"log_level"`
	LogFormat *string `yaml:"log_format"`
}

// LoadSettings loads configuration from <baseDir>/setting.yaml.
// Priority: setting.yaml > defaults
func LoadSettings(fsys afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	yamlPath := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(fsys, yamlPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
		}
		configSource = "yaml"
		settingPath = yamlPath
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", yamlPath, err)
	}

	applyDefaults(settings)

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", yamlPath, err)
	}

	return config.NewAppConfig(
		baseDir,
		*settings.LogLevel,
		*settings.LogFormat,
		configSource,
		settingPath,
	), nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings) {
	if settings.LogLevel == nil {
		v := "warn"
		settings.LogLevel = &v
	}
	if settings.LogFormat == nil {
		v := "console"
		settings.LogFormat = &v
	}
}

func validate(settings *RawSettings) error {
	switch strings.ToLower(strings.TrimSpace(*settings.LogFormat)) {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be \"console\" or \"json\", got %q", *settings.LogFormat)
	}
	return nil
}
