package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks an effective config.
func Validate(cfg Config) error {
	if err := validateToolName(cfg.PackageManager.Name); err != nil {
		return err
	}
	if len(cfg.PackageManager.Sync) == 0 {
		return errors.New("package_manager.sync must not be empty")
	}
	if len(cfg.PackageManager.PreCommit) == 0 {
		return errors.New("package_manager.pre_commit must not be empty")
	}
	if strings.TrimSpace(cfg.Git.CommitMessage) == "" {
		return errors.New("git.commit_message must not be empty")
	}
	for name, hook := range cfg.Hooks.Hooks {
		if hook.IsEnabled() && strings.TrimSpace(hook.Command) == "" {
			return fmt.Errorf("hooks.%s: command must not be empty", name)
		}
	}
	return nil
}

// validateToolName requires a bare executable name, resolved via PATH.
func validateToolName(name string) error {
	if name == "" {
		return errors.New("package_manager.name must not be empty")
	}
	if strings.ContainsAny(name, `/\ `) {
		return fmt.Errorf("invalid package_manager.name %q: must be an executable name, not a path", name)
	}
	return nil
}
