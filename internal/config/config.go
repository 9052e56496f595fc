package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults matching the stock uv + git bootstrap.
const (
	DefaultProjectKind    = "Python package"
	DefaultPackageManager = "uv"
	DefaultInstallURL     = "https://github.com/astral-sh/uv"
	DefaultCommitMessage  = "feat: initial commit from cookiecutter template"
)

// ConfigEnvVar overrides the global config file location.
const ConfigEnvVar = "POSTGEN_CONFIG"

// Hook defines a post-setup hook
type Hook struct {
	Command     string `toml:"command"`
	Description string `toml:"description,omitempty"`
	Enabled     *bool  `toml:"enabled,omitempty"` // nil = enabled; false removes a global hook locally
}

// IsEnabled reports whether the hook should run.
func (h Hook) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
}

// ProjectConfig describes the generated project.
type ProjectConfig struct {
	Kind  string `toml:"kind"`
	Owner string `toml:"owner"`
	Slug  string `toml:"slug"`
}

// PackageManagerConfig describes the package manager executable and its subcommands.
type PackageManagerConfig struct {
	Name       string   `toml:"name"`
	InstallURL string   `toml:"install_url"`
	Sync       []string `toml:"sync"`
	PreCommit  []string `toml:"pre_commit"`
}

// GitConfig holds settings for the repository steps.
type GitConfig struct {
	CommitMessage string `toml:"commit_message"`
}

// Config holds the postgen configuration
type Config struct {
	Project        ProjectConfig        `toml:"project"`
	PackageManager PackageManagerConfig `toml:"package_manager"`
	Git            GitConfig            `toml:"git"`
	Hooks          HooksConfig          `toml:"-"` // custom parsing needed
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Project: ProjectConfig{
			Kind: DefaultProjectKind,
		},
		PackageManager: PackageManagerConfig{
			Name:       DefaultPackageManager,
			InstallURL: DefaultInstallURL,
			Sync:       []string{"sync"},
			PreCommit:  []string{"run", "pre-commit", "install"},
		},
		Git: GitConfig{
			CommitMessage: DefaultCommitMessage,
		},
		Hooks: HooksConfig{Hooks: map[string]Hook{}},
	}
}

// applyDefaults fills empty fields from Default().
func (c *Config) applyDefaults() {
	d := Default()
	if c.Project.Kind == "" {
		c.Project.Kind = d.Project.Kind
	}
	if c.PackageManager.Name == "" {
		c.PackageManager.Name = d.PackageManager.Name
	}
	if c.PackageManager.InstallURL == "" && c.PackageManager.Name == d.PackageManager.Name {
		c.PackageManager.InstallURL = d.PackageManager.InstallURL
	}
	if len(c.PackageManager.Sync) == 0 {
		c.PackageManager.Sync = d.PackageManager.Sync
	}
	if len(c.PackageManager.PreCommit) == 0 {
		c.PackageManager.PreCommit = d.PackageManager.PreCommit
	}
	if c.Git.CommitMessage == "" {
		c.Git.CommitMessage = d.Git.CommitMessage
	}
	if c.Hooks.Hooks == nil {
		c.Hooks.Hooks = map[string]Hook{}
	}
}

// Path returns the global config file path.
// POSTGEN_CONFIG wins over ~/.config/postgen/config.toml.
func Path() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "postgen", "config.toml"), nil
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	Project        ProjectConfig        `toml:"project"`
	PackageManager PackageManagerConfig `toml:"package_manager"`
	Git            GitConfig            `toml:"git"`
	Hooks          map[string]any       `toml:"hooks"`
}

// Load reads the global config.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path, applying defaults and validation.
func LoadFile(path string) (Config, error) {
	raw, err := readRaw(path)
	if err != nil {
		return Default(), err
	}
	if raw == nil {
		return Default(), nil
	}

	cfg := Config{
		Project:        raw.Project,
		PackageManager: raw.PackageManager,
		Git:            raw.Git,
		Hooks:          parseHooksConfig(raw.Hooks),
	}
	cfg.applyDefaults()

	if err := Validate(cfg); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// readRaw parses a TOML file. Returns nil, nil when it doesn't exist.
func readRaw(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &raw, nil
}

// parseHooksConfig extracts HooksConfig from raw TOML map
// Handles [hooks.NAME] sections
func parseHooksConfig(raw map[string]any) HooksConfig {
	hc := HooksConfig{
		Hooks: make(map[string]Hook),
	}

	for key, value := range raw {
		hookMap, ok := value.(map[string]any)
		if !ok {
			continue
		}
		hook := Hook{}
		if cmd, ok := hookMap["command"].(string); ok {
			hook.Command = cmd
		}
		if desc, ok := hookMap["description"].(string); ok {
			hook.Description = desc
		}
		if enabled, ok := hookMap["enabled"].(bool); ok {
			hook.Enabled = &enabled
		}
		hc.Hooks[key] = hook
	}

	return hc
}

const defaultConfig = `# postgen configuration
# Every setting is optional; the values shown are the defaults.

[project]
# Noun used in the "Setting up your ..." header
kind = "Python package"
# GitHub account and repository name for the "git remote add" guidance.
# Usually set per project in .postgen.toml or via --owner/--project.
# owner = "octocat"
# slug = "my-project"

[package_manager]
# Executable looked up on PATH. When missing, install hints are printed
# and the dependency and pre-commit steps are skipped.
name = "uv"
install_url = "https://github.com/astral-sh/uv"
sync = ["sync"]
pre_commit = ["run", "pre-commit", "install"]

[git]
commit_message = "feat: initial commit from cookiecutter template"

# Hooks - extra commands run after the built-in steps, in name order.
# Failures are reported as warnings and never stop the setup.
#
# [hooks.docs]
# command = "uv run sphinx-build -b html docs docs/_build/html"
# description = "Build docs once"
#
# Available placeholders:
#   {path}    - absolute project path
#   {project} - project slug
#   {owner}   - project owner
#
# In .postgen.toml, "enabled = false" turns off a global hook:
# [hooks.docs]
# enabled = false
`

// DefaultContent returns the commented default config file.
func DefaultContent() string {
	return defaultConfig
}

// ErrConfigExists is returned by Init when the file is present and force is false.
var ErrConfigExists = errors.New("config file already exists")

const ownerExample = `# owner = "octocat"`

// ContentWithOwner returns the default config file with owner filled in.
// An empty owner yields DefaultContent.
func ContentWithOwner(owner string) string {
	if owner == "" {
		return defaultConfig
	}
	var line strings.Builder
	if err := toml.NewEncoder(&line).Encode(map[string]string{"owner": owner}); err != nil {
		return defaultConfig
	}
	return strings.Replace(defaultConfig, ownerExample, strings.TrimSuffix(line.String(), "\n"), 1)
}

// Init creates the default global config file, with owner set when non-empty.
// If force is true, overwrites existing file.
// Returns the path to the created file.
func Init(force bool, owner string) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(ContentWithOwner(owner)), 0644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}
