package bootstrap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Step names, as used in the report and by --skip.
const (
	StepPackageManager = "package-manager"
	StepDeps           = "deps"
	StepPreCommit      = "pre-commit"
	StepGit            = "git"
	StepCommit         = "commit"
	StepHooks          = "hooks"
)

// hookStepPrefix prefixes the report entry of each configured hook.
const hookStepPrefix = "hook:"

// SkippableSteps lists the steps --skip accepts.
var SkippableSteps = []string{StepDeps, StepPreCommit, StepGit, StepCommit, StepHooks}

// ParseSkip turns step names into a skip set. Names may be comma separated.
// Unknown names are dropped and reported as warnings with a suggestion.
func ParseSkip(names []string) (map[string]bool, []string) {
	skip := make(map[string]bool)
	var warnings []string

	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if slices.Contains(SkippableSteps, name) {
				skip[name] = true
				continue
			}
			warnings = append(warnings, unknownStepWarning(name))
		}
	}

	return skip, warnings
}

func unknownStepWarning(name string) string {
	if suggestion := suggestStep(name); suggestion != "" {
		return fmt.Sprintf("unknown step %q ignored (did you mean %q?)", name, suggestion)
	}
	return fmt.Sprintf("unknown step %q ignored (valid: %s)", name, strings.Join(SkippableSteps, ", "))
}

// suggestStep finds the closest step name. It accepts abbreviations
// ("dep" for "deps") as well as longer spellings ("dependencies").
func suggestStep(name string) string {
	if matches := fuzzy.Find(name, SkippableSteps); len(matches) > 0 {
		return matches[0].Str
	}
	for _, step := range SkippableSteps {
		if len(fuzzy.Find(step, []string{name})) > 0 {
			return step
		}
	}
	return ""
}
