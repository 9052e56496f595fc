package bootstrap

import (
	"context"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/postgen/internal/cmd"
	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/git"
	"github.com/raphi011/postgen/internal/hooks"
	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
	"github.com/raphi011/postgen/internal/ui/static"
)

// Commander runs external commands and reports success as a boolean.
// A missing executable and a non-zero exit both yield false.
type Commander interface {
	Available(name string) bool
	Run(ctx context.Context, c cmd.Command) bool
}

var _ Commander = (*cmd.Executor)(nil)

// Runner performs the setup sequence for one project directory.
type Runner struct {
	// Dir is the generated project root.
	Dir string
	// Config is the effective configuration.
	Config config.Config
	// Commander executes every step's command.
	Commander Commander
	// Skip holds step names to leave out (see SkippableSteps).
	Skip map[string]bool
	// Summary prints the step report as a table before the guidance block.
	Summary bool

	// RepoExists reports whether Dir already holds a repository.
	// Defaults to git.IsRepo.
	RepoExists func(dir string) bool
	// HeadHash returns the abbreviated HEAD hash after the initial commit.
	// Defaults to git.HeadShort.
	HeadHash func(dir string) (string, error)
}

// Run executes every step in order and returns their outcomes.
// It always finishes with the guidance block.
func (r *Runner) Run(ctx context.Context) Report {
	p := output.FromContext(ctx)
	var report Report

	p.Printf("🚀 Setting up your %s...\n", r.Config.Project.Kind)
	p.Println()

	r.runPackageManager(ctx, &report)
	r.runGit(ctx, &report)
	r.runHooks(ctx, &report)

	if r.Summary {
		if table := static.RenderTable([]string{"STEP", "STATUS", "DETAIL"}, report.Rows()); table != "" {
			if !p.Styled() {
				table = ansi.Strip(table)
			}
			p.Print(table)
			p.Println()
		}
	}

	PrintGuidance(p, r.Guidance())
	return report
}

// Guidance returns the values printed in the next-steps block.
func (r *Runner) Guidance() Guidance {
	return Guidance{
		Owner:          r.Config.Project.Owner,
		Project:        r.projectSlug(),
		PackageManager: r.Config.PackageManager.Name,
	}
}

func (r *Runner) projectSlug() string {
	return hooks.ContextForProject(r.Dir, r.Config.Project.Slug, r.Config.Project.Owner).Project
}

func (r *Runner) runPackageManager(ctx context.Context, report *Report) {
	p := output.FromContext(ctx)
	pm := r.Config.PackageManager
	syncCmd := cmd.New(pm.Name, pm.Sync...)
	preCommitCmd := cmd.New(pm.Name, pm.PreCommit...)

	if !r.Commander.Available(pm.Name) {
		report.record(StepPackageManager, StatusFailed, pm.Name+" not found on PATH")

		p.Warn(fmt.Sprintf("⚠️  %s is not installed!", pm.Name))
		if pm.InstallURL != "" {
			p.Printf("   Install it from: %s\n", pm.InstallURL)
		}
		p.Println("   Then run manually:")
		if !r.Skip[StepDeps] {
			p.Printf("   - %s\n", syncCmd)
		}
		if !r.Skip[StepPreCommit] {
			p.Printf("   - %s\n", preCommitCmd)
		}
		p.Println()

		report.record(StepDeps, StatusSkipped, pm.Name+" not installed")
		report.record(StepPreCommit, StatusSkipped, pm.Name+" not installed")
		return
	}
	report.record(StepPackageManager, StatusOK, pm.Name)

	r.step(ctx, report, stepDef{
		name:    StepDeps,
		heading: fmt.Sprintf("📦 Installing dependencies with %s...", pm.Name),
		success: "✅ Dependencies installed",
		failure: "⚠️  Failed to install dependencies",
		command: syncCmd,
	})

	r.step(ctx, report, stepDef{
		name:    StepPreCommit,
		heading: "🔧 Installing pre-commit hooks...",
		success: "✅ Pre-commit hooks installed",
		failure: "⚠️  Failed to install pre-commit hooks",
		command: preCommitCmd,
	})
}

// stepDef describes a single-command step and its status lines.
type stepDef struct {
	name    string
	heading string
	success string
	failure string
	command cmd.Command
}

// step runs a single-command step followed by a blank line.
func (r *Runner) step(ctx context.Context, report *Report, s stepDef) {
	p := output.FromContext(ctx)

	if r.Skip[s.name] {
		r.skipped(ctx, report, s.name)
		return
	}

	p.Heading(s.heading)
	if r.Commander.Run(ctx, s.command) {
		p.Success(s.success)
		report.record(s.name, StatusOK, s.command.String())
	} else {
		p.Warn(s.failure)
		report.record(s.name, StatusFailed, s.command.String())
	}
	p.Println()
}

func (r *Runner) skipped(ctx context.Context, report *Report, step string) {
	p := output.FromContext(ctx)
	p.Muted("⏭️  Skipping " + step)
	p.Println()
	report.record(step, StatusSkipped, "--skip")
}

func (r *Runner) runGit(ctx context.Context, report *Report) {
	p := output.FromContext(ctx)
	l := log.FromContext(ctx)

	if r.Skip[StepGit] {
		r.skipped(ctx, report, StepGit)
		report.record(StepCommit, StatusSkipped, "git skipped")
		return
	}

	p.Heading("📚 Initializing git repository...")

	initialized := false
	if r.repoExists(r.Dir) {
		l.Debug("repository already exists", "dir", r.Dir)
		report.record(StepGit, StatusFailed, "already a git repository")
	} else if r.Commander.Run(ctx, git.InitCommand()) {
		initialized = true
		report.record(StepGit, StatusOK, "git init")
	} else {
		report.record(StepGit, StatusFailed, "git init")
	}

	if !initialized {
		p.Warn("⚠️  Failed to initialize git (may already exist)")
		p.Println()
		report.record(StepCommit, StatusSkipped, "git init failed")
		return
	}
	p.Success("✅ Git repository initialized")

	if r.Skip[StepCommit] {
		r.skipped(ctx, report, StepCommit)
		return
	}

	p.Heading("📝 Creating initial commit...")
	// Both commands run even when staging fails.
	added := r.Commander.Run(ctx, git.AddAllCommand())
	committed := r.Commander.Run(ctx, git.CommitCommand(r.Config.Git.CommitMessage))

	switch {
	case added && committed:
		line := "✅ Initial commit created"
		detail := r.Config.Git.CommitMessage
		if hash, err := r.headHash(r.Dir); err == nil {
			line += " (" + hash + ")"
			detail = hash + " " + detail
		} else {
			l.Debug("could not read HEAD", "err", err)
		}
		p.Success(line)
		report.record(StepCommit, StatusOK, detail)
	case !added:
		p.Warn("⚠️  Failed to create initial commit")
		report.record(StepCommit, StatusFailed, "git add failed")
	default:
		p.Warn("⚠️  Failed to create initial commit")
		report.record(StepCommit, StatusFailed, "git commit failed")
	}
	p.Println()
}

func (r *Runner) runHooks(ctx context.Context, report *Report) {
	matches := hooks.Select(r.Config.Hooks)
	if len(matches) == 0 {
		return
	}
	if r.Skip[StepHooks] {
		r.skipped(ctx, report, StepHooks)
		return
	}

	p := output.FromContext(ctx)
	hctx := hooks.ContextForProject(r.Dir, r.Config.Project.Slug, r.Config.Project.Owner)

	p.Heading("🪝 Running post-setup hooks...")
	for _, m := range matches {
		step := hookStepPrefix + m.Name
		if r.Commander.Run(ctx, hooks.Command(m, hctx)) {
			p.Success("✅ " + m.Label())
			report.record(step, StatusOK, m.Hook.Command)
		} else {
			p.Warn(fmt.Sprintf("⚠️  Hook %q failed", m.Name))
			report.record(step, StatusFailed, m.Hook.Command)
		}
	}
	p.Println()
}

func (r *Runner) repoExists(dir string) bool {
	if r.RepoExists != nil {
		return r.RepoExists(dir)
	}
	return git.IsRepo(dir)
}

func (r *Runner) headHash(dir string) (string, error) {
	if r.HeadHash != nil {
		return r.HeadHash(dir)
	}
	return git.HeadShort(dir)
}
