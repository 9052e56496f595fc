package config

import (
	"fmt"
	"path/filepath"
)

// LocalConfigFileName is the per-project config file name.
const LocalConfigFileName = ".postgen.toml"

// LocalConfig holds per-project overrides from .postgen.toml.
// Zero values mean "not set" (inherit from global).
type LocalConfig struct {
	Project        ProjectConfig
	PackageManager PackageManagerConfig
	Git            GitConfig
	Hooks          HooksConfig // merge by name into global
}

// LoadLocal reads <dir>/.postgen.toml.
// A file that parses but fails validation yields its project fields alongside the error.
// Returns nil (no error) if the file doesn't exist.
func LoadLocal(dir string) (*LocalConfig, error) {
	path := filepath.Join(dir, LocalConfigFileName)

	raw, err := readRaw(path)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	local := &LocalConfig{
		Project:        raw.Project,
		PackageManager: raw.PackageManager,
		Git:            raw.Git,
		Hooks:          parseHooksConfig(raw.Hooks),
	}

	if name := local.PackageManager.Name; name != "" {
		if err := validateToolName(name); err != nil {
			return &LocalConfig{Project: raw.Project}, fmt.Errorf("%s: %w", path, err)
		}
	}

	return local, nil
}
