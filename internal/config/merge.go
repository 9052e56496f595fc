package config

import (
	"maps"
	"slices"
)

// MergeLocal merges a per-project config into a global config,
// returning a new Config without mutating the global.
// Returns a copy of global if local is nil.
func MergeLocal(global Config, local *LocalConfig) Config {
	merged := global
	merged.PackageManager.Sync = slices.Clone(global.PackageManager.Sync)
	merged.PackageManager.PreCommit = slices.Clone(global.PackageManager.PreCommit)
	merged.Hooks = mergeHooks(global.Hooks, HooksConfig{})

	if local == nil {
		return merged
	}

	if local.Project.Kind != "" {
		merged.Project.Kind = local.Project.Kind
	}
	if local.Project.Owner != "" {
		merged.Project.Owner = local.Project.Owner
	}
	if local.Project.Slug != "" {
		merged.Project.Slug = local.Project.Slug
	}

	// A different package manager without its own install URL must not
	// inherit uv's.
	if local.PackageManager.Name != "" && local.PackageManager.Name != merged.PackageManager.Name {
		merged.PackageManager.InstallURL = ""
	}
	if local.PackageManager.Name != "" {
		merged.PackageManager.Name = local.PackageManager.Name
	}
	if local.PackageManager.InstallURL != "" {
		merged.PackageManager.InstallURL = local.PackageManager.InstallURL
	}
	if len(local.PackageManager.Sync) > 0 {
		merged.PackageManager.Sync = slices.Clone(local.PackageManager.Sync)
	}
	if len(local.PackageManager.PreCommit) > 0 {
		merged.PackageManager.PreCommit = slices.Clone(local.PackageManager.PreCommit)
	}

	if local.Git.CommitMessage != "" {
		merged.Git.CommitMessage = local.Git.CommitMessage
	}

	merged.Hooks = mergeHooks(global.Hooks, local.Hooks)

	return merged
}

// mergeHooks merges local hooks into global hooks.
// Local hooks with the same name override global hooks.
// Local hooks with enabled=false remove the global hook.
func mergeHooks(global, local HooksConfig) HooksConfig {
	merged := HooksConfig{
		Hooks: make(map[string]Hook, len(global.Hooks)),
	}

	maps.Copy(merged.Hooks, global.Hooks)

	for name, hook := range local.Hooks {
		if !hook.IsEnabled() {
			delete(merged.Hooks, name)
			continue
		}
		merged.Hooks[name] = hook
	}

	return merged
}
