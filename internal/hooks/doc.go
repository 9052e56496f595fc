// Package hooks provides user-defined post-setup hooks with placeholder substitution.
//
// Hooks are shell commands defined in config that run after the built-in
// setup steps, for example building docs once or opening an editor:
//
//	[hooks.editor]
//	command = "code {path}"
//	description = "Open VS Code"
//
// # Placeholder Substitution
//
//   - {path}: Absolute project path
//   - {project}: Project slug
//   - {owner}: Project owner (GitHub account)
//
// Values are shell-quoted. Hooks run through "sh -c" with the project
// directory as working directory, in name order. A failing hook is reported
// as a warning and never stops the remaining hooks.
package hooks
