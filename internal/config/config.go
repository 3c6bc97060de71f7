// Package config loads optional YAML defaults for randpick.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/randpick/internal/pathfilter"
	"github.com/taigrr/randpick/internal/types"
	"gopkg.in/yaml.v3"
)

// Config holds the settings a pick starts from. Command line flags override them.
type Config struct {
	// Root is the directory to pick from. Empty means the working directory;
	// a relative path is taken from the directory holding the config file.
	Root string `yaml:"root,omitempty"`

	types.FilterConfig `yaml:",inline"`

	// Internal: file the settings were read from, empty for defaults
	configPath string
}

// DefaultConfig returns a configuration that matches every file under the
// working directory.
func DefaultConfig() *Config {
	return &Config{}
}

// GetConfigDir returns the config directory path
func GetConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "randpick")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "randpick")
	}
	return filepath.Join(home, ".config", "randpick")
}

// GetConfigPath returns the full path to the default config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load reads the config file at path. With an empty path the default
// location is tried, and a missing default file yields DefaultConfig.
// An explicitly named file must exist and parse.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = GetConfigPath()
	}

	if err := cfg.loadFromFile(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	cfg.configPath = path

	cfg.Root = expandHome(cfg.Root)
	if cfg.Root != "" && !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}
	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// GetConfigFilePath returns the file the config was loaded from, or an empty
// string when defaults are in use.
func (c *Config) GetConfigFilePath() string {
	return c.configPath
}

// WithOverrides returns a copy of c with per-invocation settings applied.
// Non-empty extensions replace the configured ones; exclude patterns are
// added to the configured ones.
func (c *Config) WithOverrides(extensions, exclude []string) *Config {
	merged := *c
	if len(extensions) > 0 {
		merged.Extensions = slices.Clone(extensions)
	}
	merged.Exclude = append(slices.Clone(c.Exclude), exclude...)
	return &merged
}

// Filter builds the path filter for the configured extensions and excludes.
// It returns nil when neither is set.
func (c *Config) Filter() *pathfilter.Filter {
	return pathfilter.New(c.Extensions, pathfilter.WithExclude(c.Exclude...))
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
