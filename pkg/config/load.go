package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Config file names searched during project discovery, in priority order.
var configFileNames = []string{".tidydown.yaml", ".tidydown.yml"}

// Load resolves the configuration for a run.
//
// When explicitPath is set it is loaded directly and discovery is skipped;
// a missing explicit file is an error. Otherwise Discover walks up from
// workDir and the nearest project config is loaded, falling back to
// defaults when none exists.
func Load(explicitPath, workDir string) (*Config, error) {
	if explicitPath != "" {
		return loadFile(explicitPath)
	}

	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	path, err := Discover(workDir)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return NewConfig(), nil
	}

	return loadFile(path)
}

// Discover searches for a project config file, walking up from dir toward
// the filesystem root. Returns the first match, or empty string if no
// config file exists on the path.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && info.Mode().IsRegular() {
				return candidate, nil
			}
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("stat %s: %w", candidate, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadFile reads and parses a config file, applying defaults for fields
// the file does not set.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in zero-valued fields from NewConfig.
func applyDefaults(cfg *Config) {
	defaults := NewConfig()
	if cfg.Flavor == "" {
		cfg.Flavor = defaults.Flavor
	}
	if cfg.SeverityDefault == "" {
		cfg.SeverityDefault = defaults.SeverityDefault
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
}
