package config

import "errors"

// Resolve returns the effective config for a project directory: the global
// config merged with <dir>/.postgen.toml, validated.
// Errors are joined and returned alongside a usable config. A broken global
// file falls back to defaults and the local file is still merged. If the
// merge fails validation, the global config is returned with the local
// project identity kept.
func Resolve(dir string) (Config, error) {
	var errs []error

	global, err := Load()
	if err != nil {
		errs = append(errs, err)
		global = Default()
	}

	local, err := LoadLocal(dir)
	if err != nil {
		errs = append(errs, err)
		return withLocalProject(global, local), errors.Join(errs...)
	}

	merged := MergeLocal(global, local)
	merged.applyDefaults()
	if err := Validate(merged); err != nil {
		errs = append(errs, err)
		return withLocalProject(global, local), errors.Join(errs...)
	}
	return merged, errors.Join(errs...)
}

func withLocalProject(cfg Config, local *LocalConfig) Config {
	if local == nil {
		return cfg
	}
	cfg.Project = MergeLocal(cfg, &LocalConfig{Project: local.Project}).Project
	return cfg
}
