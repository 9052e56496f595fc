package hooks

import "path/filepath"

// ContextForProject builds a Context for a generated project.
// The slug falls back to the directory name.
func ContextForProject(dir, project, owner string) Context {
	if project == "" {
		project = filepath.Base(dir)
	}
	return Context{
		Path:    dir,
		Project: project,
		Owner:   owner,
	}
}
