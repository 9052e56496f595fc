package main

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/postgen/internal/bootstrap"
	"github.com/raphi011/postgen/internal/cmd"
	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
)

// setupOptions holds the root command's flags.
type setupOptions struct {
	dir        string
	owner      string
	project    string
	skip       []string
	summary    bool
	copyRemote bool
}

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// runSetup resolves config, runs every setup step and prints the guide.
// Problems are reported as warnings; setup itself never fails.
func runSetup(ctx context.Context, opts setupOptions, progress io.Writer) bootstrap.Report {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		l.Warnf("failed to resolve %s: %v", opts.dir, err)
		dir = opts.dir
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		l.Warnf("%v (using defaults)", err)
	}
	cfg = applyProjectFlags(cfg, opts)

	skip, warnings := bootstrap.ParseSkip(opts.skip)
	for _, w := range warnings {
		l.Warnf("%s", w)
	}

	runner := &bootstrap.Runner{
		Dir:    dir,
		Config: cfg,
		Commander: &cmd.Executor{
			Dir:      dir,
			Stdout:   out.Writer(),
			Progress: progress,
		},
		Skip:    skip,
		Summary: opts.summary,
	}
	l.Debug("starting setup", "dir", dir, "package_manager", cfg.PackageManager.Name)
	report := runner.Run(ctx)

	if failed := report.Failed(); len(failed) > 0 {
		l.Debug("setup finished with failures", "count", len(failed))
	}

	if opts.copyRemote {
		if err := copyToClipboard(runner.Guidance().RemoteCommand()); err != nil {
			l.Warnf("failed to copy to clipboard: %v", err)
		}
	}

	return report
}

// applyProjectFlags lets --owner and --project win over config.
func applyProjectFlags(cfg config.Config, opts setupOptions) config.Config {
	if owner := strings.TrimSpace(opts.owner); owner != "" {
		cfg.Project.Owner = owner
	}
	if project := strings.TrimSpace(opts.project); project != "" {
		cfg.Project.Slug = project
	}
	return cfg
}

// completeSteps completes --skip values.
func completeSteps(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return bootstrap.SkippableSteps, cobra.ShellCompDirectiveNoFileComp
}
