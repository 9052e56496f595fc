// Package bootstrap runs the post-generation setup of a freshly generated project.
//
// A [Runner] performs a fixed, ordered sequence of best-effort steps:
//
//  1. package manager availability check
//  2. dependency sync (only when the package manager is on PATH)
//  3. pre-commit hook install (only when the package manager is on PATH)
//  4. git init (fails when the directory already is a repository)
//  5. initial commit: "git add ." then "git commit" (only after a successful init)
//  6. configured post-setup hooks
//  7. the next-steps guidance block, always printed last
//
// No step failure aborts the sequence. Each step's outcome is recorded as a
// [StepResult] in the returned [Report], and rendered as a status line on
// the printer attached to the context.
//
// All process execution goes through the [Commander] interface, so the
// sequence itself does not depend on which tools are installed.
package bootstrap
