package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool

	setupOpts setupOptions
)

// Command group IDs for organizing help output
const (
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd runs the setup sequence when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "postgen",
	Short: "Set up a freshly generated Python project",
	Long: `postgen runs after a project template has been rendered.

It installs dependencies and pre-commit hooks with uv, initializes a git
repository with an initial commit, runs configured hooks and prints the
next steps. Every step is best effort: failures are reported as warnings
and the command always finishes with the next-steps guide.`,
	Example: `  postgen                              # Set up the current directory
  postgen --owner octocat              # Fill in the GitHub account in the guide
  postgen --skip pre-commit,commit     # Leave out steps
  postgen --summary                    # Print a step summary table`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose, quiet))
		ctx = output.WithStyledPrinter(ctx, newStdoutPrinter(os.Stdout, noColor))
		cmd.SetContext(ctx)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		runSetup(cmd.Context(), setupOpts, progressWriter())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'postgen -h' for help")
		os.Exit(1)
	}
}

// newStdoutPrinter styles status lines only for a color-capable terminal.
// The colorprofile writer downsamples or strips ANSI for the detected profile.
func newStdoutPrinter(f *os.File, noColor bool) *output.Printer {
	w := colorprofile.NewWriter(f, os.Environ())
	if noColor {
		w.Profile = colorprofile.NoTTY
	}
	styled := !noColor && isTerminal(f) &&
		w.Profile != colorprofile.NoTTY && w.Profile != colorprofile.Ascii
	return output.NewStyled(w, styled)
}

// progressWriter returns stderr when a spinner can be drawn there.
func progressWriter() io.Writer {
	if verbose || quiet || !isTerminal(os.Stderr) {
		return nil
	}
	return os.Stderr
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Setup flags
	f := rootCmd.Flags()
	f.StringVarP(&setupOpts.dir, "dir", "C", ".", "Generated project directory")
	f.StringVar(&setupOpts.owner, "owner", "", "GitHub account used in the remote URL")
	f.StringVar(&setupOpts.project, "project", "", "Repository name used in the remote URL (default: directory name)")
	f.StringSliceVar(&setupOpts.skip, "skip", nil, "Steps to skip: deps, pre-commit, git, commit, hooks")
	f.BoolVar(&setupOpts.summary, "summary", false, "Print a step summary table before the guide")
	f.BoolVar(&setupOpts.copyRemote, "copy-remote", false, `Copy the "git remote add" command to the clipboard`)
	_ = rootCmd.RegisterFlagCompletionFunc("skip", completeSteps)

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
}
