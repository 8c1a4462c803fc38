package iconset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config declares the icon sets a Factory can resolve from.
type Config struct {
	// Class is prepended to the class attribute of every icon.
	Class string `json:"class" yaml:"class"`
	// Attributes are defaults applied to every icon; sets and callers win.
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
	// Fallback names an icon rendered when a lookup misses.
	Fallback string `json:"fallback" yaml:"fallback"`
	// Sets are keyed by set name.
	Sets map[string]SetConfig `json:"sets" yaml:"sets"`
}

// SetConfig describes one directory of icons.
type SetConfig struct {
	Prefix     string         `json:"prefix" yaml:"prefix"`
	Path       string         `json:"path" yaml:"path"`
	Class      string         `json:"class" yaml:"class"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
	// Defer is the default defer flag for icons of this set: false, true or
	// a string key.
	Defer any `json:"defer" yaml:"defer"`
	// Sanitize runs icon markup through svg.Sanitize when it is loaded.
	Sanitize bool `json:"sanitize" yaml:"sanitize"`
}

// LoadConfigFS reads and validates the config file at name.
func LoadConfigFS(fsys fs.FS, name string) (Config, error) {
	if fsys == nil {
		return Config{}, fmt.Errorf("iconset: config filesystem is required")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("iconset: read %s: %w", name, err)
	}
	return LoadConfig(data, name)
}

// LoadConfig parses a JSON or YAML config. source is only used in errors.
func LoadConfig(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("iconset: file %s is empty", source)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Config{}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("iconset: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := cfg.normalise(source); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks a programmatically built config.
func (c *Config) Validate() error {
	return c.normalise("config")
}

func (c *Config) normalise(source string) error {
	if len(c.Sets) == 0 {
		return fmt.Errorf("iconset: %s declares no icon sets", source)
	}

	c.Class = strings.TrimSpace(c.Class)
	c.Fallback = strings.TrimSpace(c.Fallback)

	prefixes := make(map[string]string, len(c.Sets))
	names := make([]string, 0, len(c.Sets))
	for name := range c.Sets {
		names = append(names, name)
	}
	sort.Strings(names)

	normalised := make(map[string]SetConfig, len(c.Sets))
	for _, name := range names {
		set := c.Sets[name]
		id := strings.TrimSpace(name)
		if id == "" {
			return fmt.Errorf("iconset: %s defines a set with an empty name", source)
		}

		set.Prefix = strings.TrimSpace(set.Prefix)
		set.Class = strings.TrimSpace(set.Class)
		set.Path = path.Clean(strings.TrimSpace(set.Path))
		if strings.TrimSpace(c.Sets[name].Path) == "" || !fs.ValidPath(set.Path) {
			return fmt.Errorf("iconset: %s set %q has invalid path %q", source, id, c.Sets[name].Path)
		}

		if other, exists := prefixes[set.Prefix]; exists {
			return fmt.Errorf("iconset: %s sets %q and %q share prefix %q", source, other, id, set.Prefix)
		}
		prefixes[set.Prefix] = id
		normalised[id] = set
	}

	c.Sets = normalised
	return nil
}
