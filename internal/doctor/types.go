package doctor

import (
	"context"
	"errors"

	"github.com/raphi011/postgen/internal/config"
)

// ErrUnhealthy is returned by Run when a required check failed.
var ErrUnhealthy = errors.New("doctor found problems")

// Severity ranks a check outcome.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityWarn
	SeverityError
)

// Symbol returns the status mark printed before the check line.
func (s Severity) Symbol() string {
	switch s {
	case SeverityWarn:
		return "⚠"
	case SeverityError:
		return "❌"
	default:
		return "✓"
	}
}

// Check is the outcome of one diagnostic.
type Check struct {
	Name     string   // short label, e.g. "git"
	Severity Severity // outcome
	Detail   string   // human-readable explanation
	Hint     string   // what to do about it, empty when OK
}

// Options configures Run. Nil funcs use the real implementations.
type Options struct {
	Dir       string
	Config    config.Config
	ConfigErr error // error from config.Resolve, if any

	CheckGit    func() error
	LookPath    func(name string) (string, error)
	GitIdentity func(ctx context.Context, dir, key string) (string, error)
	RepoExists  func(dir string) bool
}
