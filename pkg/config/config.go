// Package config loads user-level configuration and custom template packs.
// Configuration problems never abort the tool: a missing or malformed file
// yields defaults plus a warning for the caller to surface.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/cmdgen/cmdgen/pkg/osutil"
)

type Settings struct {
	// AutoDetect enables project detection during init. When off, init
	// requires an explicit language.
	AutoDetect bool `toml:"auto_detect"`

	// PreferTypeScript breaks the JavaScript/TypeScript tie when a project
	// has a JS manifest but no type-system config and no Node.js signals.
	PreferTypeScript bool `toml:"prefer_typescript"`

	IncludeTests bool `toml:"include_tests"`
	IncludeDocs  bool `toml:"include_docs"`
}

type Config struct {
	Settings Settings `toml:"settings"`
}

func Default() Config {
	return Config{
		Settings: Settings{
			AutoDetect:       true,
			PreferTypeScript: true,
			IncludeTests:     true,
			IncludeDocs:      true,
		},
	}
}

// Dir returns the user directory holding configuration, custom template packs
// and persisted command documents.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".cmdgen"), nil
}

func FilePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func CommandsDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "commands"), nil
}

func TemplatesDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates"), nil
}

// Load reads the configuration at path. The returned Config is always usable:
// a missing file yields defaults silently, and a malformed file yields
// defaults plus a non-nil error describing the problem.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	contents, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.PermissionDirectory); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, contents, osutil.PermissionFile); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}

	return nil
}
