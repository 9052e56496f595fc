// Package doctor diagnoses the environment postgen depends on.
//
// Checks, in order:
//
//   - git on PATH (required)
//   - git identity (user.name / user.email), needed for the initial commit
//   - the configured package manager on PATH
//   - config validity (required)
//   - .pre-commit-config.yaml in the project directory
//   - whether the project directory already holds a repository
//
// # Usage
//
//	checks, err := doctor.Run(ctx, doctor.Options{Dir: dir, Config: cfg})
//
// Each [Check] carries a [Severity]. Run returns [ErrUnhealthy] when any
// check has [SeverityError]; warnings never fail.
package doctor
