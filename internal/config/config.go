package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AmbiguousPolicy controls how symbols defined in more than one file are
// rendered: "all" joins every defining file, "first" keeps only the first
// one discovered.
type AmbiguousPolicy string

const (
	AmbiguousAll   AmbiguousPolicy = "all"
	AmbiguousFirst AmbiguousPolicy = "first"
)

// Config represents the crossref configuration.
type Config struct {
	Exclude     ExcludeConfig   `yaml:"exclude"`
	MaxFileSize int64           `yaml:"max_file_size"`
	MaxFiles    int             `yaml:"max_files"`
	Ambiguous   AmbiguousPolicy `yaml:"ambiguous"`
	Workers     int             `yaml:"workers"`
}

// ExcludeConfig defines patterns to exclude from scanning.
type ExcludeConfig struct {
	Dirs      []string `yaml:"dirs"`
	FilesGlob []string `yaml:"files_glob"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Exclude: ExcludeConfig{
			Dirs: []string{
				"node_modules", "venv", ".venv", "env", ".env", ".git",
				"__pycache__", "dist", "build", "target", "bin", "obj",
				"vendor", "third_party",
			},
			FilesGlob: []string{"*.min.js", "*.pb.go", "*_gen.go"},
		},
		MaxFileSize: 1 << 20, // files over 1 MiB are skipped by the walker
		MaxFiles:    500,
		Ambiguous:   AmbiguousAll,
		Workers:     0, // 0 means pick from CPU count
	}
}

// Load reads configuration from file, falling back to defaults.
// If configPath is empty, it looks for crossref.yaml in the current directory.
// Values in the config file replace defaults entirely (no merging).
func Load(configPath string) (*Config, error) {
	defaults := Default()

	if configPath == "" {
		configPath = "crossref.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No config file, use defaults
			return defaults, nil
		}
		return nil, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, err
	}

	defaults.Merge(&fileCfg)
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return defaults, nil
}

// LoadFromDir loads configuration from the specified directory.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "crossref.yaml"))
}

// Merge combines another config into this one, with other taking precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.Exclude.Dirs) > 0 {
		c.Exclude.Dirs = other.Exclude.Dirs
	}
	if len(other.Exclude.FilesGlob) > 0 {
		c.Exclude.FilesGlob = other.Exclude.FilesGlob
	}
	if other.MaxFileSize > 0 {
		c.MaxFileSize = other.MaxFileSize
	}
	if other.MaxFiles > 0 {
		c.MaxFiles = other.MaxFiles
	}
	if other.Ambiguous != "" {
		c.Ambiguous = other.Ambiguous
	}
	if other.Workers > 0 {
		c.Workers = other.Workers
	}
}

// Validate checks configuration values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Ambiguous {
	case AmbiguousAll, AmbiguousFirst:
		return nil
	default:
		return fmt.Errorf("invalid ambiguous policy %q (want %q or %q)", c.Ambiguous, AmbiguousAll, AmbiguousFirst)
	}
}

// IsExcludedDir checks if a directory should be excluded from scanning.
func (c *Config) IsExcludedDir(dir string) bool {
	base := filepath.Base(dir)
	for _, excluded := range c.Exclude.Dirs {
		if base == excluded {
			return true
		}
	}
	return false
}

// IsExcludedFile checks a file's base name against the exclusion globs.
func (c *Config) IsExcludedFile(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range c.Exclude.FilesGlob {
		matched, err := filepath.Match(pattern, base)
		if err == nil && matched {
			return true
		}
	}
	return false
}
