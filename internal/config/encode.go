package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the on-disk layout, with hooks as [hooks.NAME] tables.
type fileConfig struct {
	Project        ProjectConfig        `toml:"project"`
	PackageManager PackageManagerConfig `toml:"package_manager"`
	Git            GitConfig            `toml:"git"`
	Hooks          map[string]Hook      `toml:"hooks,omitempty"`
}

// Encode writes cfg as TOML in the config file layout.
func Encode(w io.Writer, cfg Config) error {
	fc := fileConfig{
		Project:        cfg.Project,
		PackageManager: cfg.PackageManager,
		Git:            cfg.Git,
		Hooks:          cfg.Hooks.Hooks,
	}
	if err := toml.NewEncoder(w).Encode(fc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
