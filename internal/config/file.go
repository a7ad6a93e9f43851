package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file looked up in the working
// directory when --config is not given.
const DefaultFileName = ".seam.yml"

// FileConfig is the parsed YAML configuration file. Every field is
// optional; zero values mean "absent".
type FileConfig struct {
	// Only and Except are rule filters, mutually exclusive with each
	// other in effect (only wins) and overridden by any CLI filter.
	Only   []string `yaml:"only"`
	Except []string `yaml:"except"`

	// Format names the output format. Empty is treated as absent.
	Format string `yaml:"format"`

	// Include and Exclude are glob patterns matched against paths
	// relative to the discovery root. Exclude wins over Include.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// MaxSeverity is the failure threshold ("warning" or "error").
	MaxSeverity string `yaml:"max-severity"`

	// Limits overrides construct-length thresholds.
	Limits FileLimits `yaml:"limits"`

	// Location is where the file was loaded from. Set by Load, not by
	// the document itself.
	Location string `yaml:"-"`
}

// FileLimits mirrors lint.Limits with explicit absence.
type FileLimits struct {
	MaxLineLength *int `yaml:"max-line-length"`
	MaxFileLength *int `yaml:"max-file-length"`
}

// Load reads the configuration file at path. When explicit is false the
// path is the default lookup and a missing file simply means "no file
// configuration" (nil, nil); when true, the user named the file and any
// failure to read it is an error.
func Load(path string, explicit bool) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	loc, err := filepath.Abs(path)
	if err != nil {
		loc = path
	}
	cfg.Location = loc

	return &cfg, nil
}
