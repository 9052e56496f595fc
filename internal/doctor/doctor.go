package doctor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/postgen/internal/cmd"
	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/git"
	"github.com/raphi011/postgen/internal/output"
)

const preCommitConfigFile = ".pre-commit-config.yaml"

// Run performs all checks, prints one line per check and returns them.
func Run(ctx context.Context, opts Options) ([]Check, error) {
	opts.withDefaults()
	p := output.FromContext(ctx)

	checks := []Check{
		checkGit(opts),
		checkGitIdentity(ctx, opts),
		checkPackageManager(opts),
		checkConfig(opts),
		checkPreCommitConfig(opts),
		checkRepository(opts),
	}

	failed := 0
	for _, c := range checks {
		printCheck(p, c)
		if c.Severity == SeverityError {
			failed++
		}
	}

	p.Println()
	if failed > 0 {
		p.Printf("Found %d problem(s) that will affect setup.\n", failed)
		return checks, ErrUnhealthy
	}
	p.Println("✓ Ready to run setup")
	return checks, nil
}

func printCheck(p *output.Printer, c Check) {
	line := fmt.Sprintf("  %s %s: %s", c.Severity.Symbol(), c.Name, c.Detail)
	switch c.Severity {
	case SeverityOK:
		p.Success(line)
	case SeverityWarn:
		p.Warn(line)
	default:
		p.Error(line)
	}
	if c.Hint != "" {
		p.Printf("      %s\n", c.Hint)
	}
}

func (o *Options) withDefaults() {
	if o.CheckGit == nil {
		o.CheckGit = git.CheckGit
	}
	if o.LookPath == nil {
		o.LookPath = exec.LookPath
	}
	if o.GitIdentity == nil {
		o.GitIdentity = gitConfigValue
	}
	if o.RepoExists == nil {
		o.RepoExists = git.IsRepo
	}
}

func gitConfigValue(ctx context.Context, dir, key string) (string, error) {
	out, err := cmd.OutputContext(ctx, dir, "git", "config", "--get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func checkGit(opts Options) Check {
	if err := opts.CheckGit(); err != nil {
		return Check{
			Name:     "git",
			Severity: SeverityError,
			Detail:   "not found on PATH",
			Hint:     "Install git from https://git-scm.com",
		}
	}
	return Check{Name: "git", Severity: SeverityOK, Detail: "found"}
}

func checkGitIdentity(ctx context.Context, opts Options) Check {
	if err := opts.CheckGit(); err != nil {
		return Check{Name: "git identity", Severity: SeverityWarn, Detail: "skipped, git not available"}
	}

	var missing []string
	for _, key := range []string{"user.name", "user.email"} {
		if v, err := opts.GitIdentity(ctx, opts.Dir, key); err != nil || v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Check{
			Name:     "git identity",
			Severity: SeverityWarn,
			Detail:   strings.Join(missing, ", ") + " not set, the initial commit will fail",
			Hint:     `Run: git config --global user.name "Your Name" && git config --global user.email you@example.com`,
		}
	}
	return Check{Name: "git identity", Severity: SeverityOK, Detail: "configured"}
}

func checkPackageManager(opts Options) Check {
	pm := opts.Config.PackageManager
	if _, err := opts.LookPath(pm.Name); err != nil {
		c := Check{
			Name:     pm.Name,
			Severity: SeverityWarn,
			Detail:   "not found on PATH, dependency and pre-commit steps will be skipped",
		}
		if pm.InstallURL != "" {
			c.Hint = "Install it from: " + pm.InstallURL
		}
		return c
	}
	return Check{Name: pm.Name, Severity: SeverityOK, Detail: "found"}
}

func checkConfig(opts Options) Check {
	if opts.ConfigErr != nil {
		path, _ := config.Path()
		return Check{
			Name:     "config",
			Severity: SeverityError,
			Detail:   opts.ConfigErr.Error(),
			Hint:     fmt.Sprintf("Fix %s or %s", path, filepath.Join(opts.Dir, config.LocalConfigFileName)),
		}
	}
	if err := config.Validate(opts.Config); err != nil {
		return Check{Name: "config", Severity: SeverityError, Detail: err.Error()}
	}
	return Check{Name: "config", Severity: SeverityOK, Detail: "valid"}
}

func checkPreCommitConfig(opts Options) Check {
	if _, err := os.Stat(filepath.Join(opts.Dir, preCommitConfigFile)); err != nil {
		return Check{
			Name:     "pre-commit",
			Severity: SeverityWarn,
			Detail:   preCommitConfigFile + " not found, hook install will fail",
		}
	}
	return Check{Name: "pre-commit", Severity: SeverityOK, Detail: preCommitConfigFile + " present"}
}

func checkRepository(opts Options) Check {
	if opts.RepoExists(opts.Dir) {
		return Check{
			Name:     "repository",
			Severity: SeverityWarn,
			Detail:   "directory is already a git repository, init and initial commit will be skipped",
		}
	}
	return Check{Name: "repository", Severity: SeverityOK, Detail: "not yet initialized"}
}
