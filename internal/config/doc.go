// Package config handles loading and validation of postgen configuration.
//
// Configuration is optional. With no files present, postgen behaves like a
// stock uv + git bootstrap for a Python package.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (--owner, --project, --skip)
//   - <project>/.postgen.toml, usually rendered by the template itself
//   - ~/.config/postgen/config.toml, or the file named by POSTGEN_CONFIG
//   - Default values
//
// # Key Settings
//
//   - project.kind: Noun used in the "Setting up your ..." header
//   - project.owner, project.slug: Values for the "git remote add" guidance
//   - package_manager.name: Executable checked on PATH (default: "uv")
//   - package_manager.sync, package_manager.pre_commit: Argument lists
//   - git.commit_message: Message for the initial commit
//
// # Hooks Configuration
//
// Extra commands to run after the built-in steps are defined in
// [hooks.NAME] sections:
//
//	[hooks.docs]
//	command = "uv run sphinx-build -b html docs docs/_build/html"
//	description = "Build docs once"
//
// A project-local hook with enabled = false removes a global hook of the
// same name.
package config
