package hooks

import (
	"slices"
	"strings"

	"github.com/raphi011/postgen/internal/cmd"
	"github.com/raphi011/postgen/internal/config"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes,
// e.g. "it's" becomes 'it'\''s'.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// Context holds the values for placeholder substitution
type Context struct {
	Path    string // absolute project path
	Project string // project slug
	Owner   string // project owner
}

// HookMatch is a configured hook selected to run.
type HookMatch struct {
	Hook config.Hook
	Name string
}

// Select returns the enabled hooks in name order.
func Select(cfg config.HooksConfig) []HookMatch {
	names := make([]string, 0, len(cfg.Hooks))
	for name, hook := range cfg.Hooks {
		if hook.IsEnabled() {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	matches := make([]HookMatch, 0, len(names))
	for _, name := range names {
		matches = append(matches, HookMatch{Hook: cfg.Hooks[name], Name: name})
	}
	return matches
}

// Command builds the shell invocation for a hook.
func Command(m HookMatch, ctx Context) cmd.Command {
	return cmd.New("sh", "-c", SubstitutePlaceholders(m.Hook.Command, ctx))
}

// Label returns the hook's description, or its name when it has none.
func (m HookMatch) Label() string {
	if m.Hook.Description != "" {
		return m.Hook.Description
	}
	return m.Name
}

// SubstitutePlaceholders replaces {placeholder} with shell-quoted values from Context.
func SubstitutePlaceholders(command string, ctx Context) string {
	return strings.NewReplacer(
		"{path}", shellQuote(ctx.Path),
		"{project}", shellQuote(ctx.Project),
		"{owner}", shellQuote(ctx.Owner),
	).Replace(command)
}
