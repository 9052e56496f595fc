// Package git provides the git side of project setup.
//
// Mutating operations shell out to the git CLI so that the user's own
// configuration (user.name, init.defaultBranch, commit hooks) applies:
//
//   - [InitCommand]: "git init"
//   - [AddAllCommand]: "git add ."
//   - [CommitCommand]: "git commit -m <message>"
//
// Read-only inspection uses go-git and never spawns a process:
//
//   - [IsRepo]: whether a directory already holds a repository
//   - [HeadShort]: abbreviated hash of HEAD after the initial commit
package git
