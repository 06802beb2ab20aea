// Package config loads scaffolder defaults from an optional
// .create-react-csr-app.yaml in the directory the tool is run from. A missing
// file returns sane defaults without error. CLI flags (bound via cobra)
// override config file values at the highest precedence by mutating the
// returned struct after loading.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values for Config fields.
const (
	DefaultPackageManager = "npm"
	DefaultTemplate       = "react-swc-ts"
	DefaultSkipInstall    = false
)

// Config holds the tunable defaults of the scaffolder. Everything else the
// tool does is driven by the interactive answers, not configuration.
type Config struct {
	PackageManager string `yaml:"package_manager"`
	Template       string `yaml:"template"`
	SkipInstall    bool   `yaml:"skip_install"`
}

// defaults returns a Config populated with sane defaults.
func defaults() Config {
	return Config{
		PackageManager: DefaultPackageManager,
		Template:       DefaultTemplate,
		SkipInstall:    DefaultSkipInstall,
	}
}

// partialConfig is used during YAML parsing to distinguish between a field
// being absent (nil pointer) and a field being explicitly set to its zero value.
type partialConfig struct {
	PackageManager *string `yaml:"package_manager"`
	Template       *string `yaml:"template"`
	SkipInstall    *bool   `yaml:"skip_install"`
}

// Load reads the config file at path and returns a Config.
// If the file does not exist, defaults are returned without error.
// Fields absent from the file are filled with their default values.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var partial partialConfig
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return nil, err
	}

	if partial.PackageManager != nil {
		cfg.PackageManager = *partial.PackageManager
	}
	if partial.Template != nil {
		cfg.Template = *partial.Template
	}
	if partial.SkipInstall != nil {
		cfg.SkipInstall = *partial.SkipInstall
	}

	return &cfg, nil
}
