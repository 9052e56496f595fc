package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
	"github.com/raphi011/postgen/internal/ui/prompt"
)

// Prompts are replaced in tests.
var (
	confirmPrompt = prompt.Confirm
	textPrompt    = prompt.TextInput
	isInteractive = func() bool { return isTerminal(os.Stdin) && isTerminal(os.Stderr) }
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage postgen configuration.

Global config: ~/.config/postgen/config.toml (or $POSTGEN_CONFIG)
Local config:  .postgen.toml (in the generated project)`,
		Example: `  postgen config init          # Create default global config
  postgen config init --force  # Overwrite existing config
  postgen config show          # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		owner  string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create the default global config file.

On a terminal, asks for the GitHub account to use in the remote URL
unless --owner is given, and asks before overwriting an existing file.`,
		Example: `  postgen config init                  # Create global config
  postgen config init --owner octocat  # Preset the GitHub account
  postgen config init -f               # Overwrite existing config
  postgen config init -s               # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, configInitOptions{
				force:       force,
				stdout:      stdout,
				owner:       owner,
				ownerFlag:   cmd.Flags().Changed("owner"),
				interactive: isInteractive(),
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().StringVar(&owner, "owner", "", "GitHub account to store as project.owner")

	return cmd
}

type configInitOptions struct {
	force       bool
	stdout      bool
	owner       string
	ownerFlag   bool
	interactive bool
}

func runConfigInit(cmd *cobra.Command, opts configInitOptions) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)
	l := log.FromContext(ctx)

	if opts.stdout {
		out.Print(config.ContentWithOwner(opts.owner))
		return nil
	}

	owner := opts.owner
	if !opts.ownerFlag && opts.interactive {
		res, err := textPrompt(os.Stderr, "GitHub account for the remote URL (optional):", "octocat")
		if err != nil {
			return err
		}
		if res.Cancelled {
			l.Println("Cancelled")
			return nil
		}
		owner = res.Value
	}

	path, err := config.Init(opts.force, owner)
	if errors.Is(err, config.ErrConfigExists) && opts.interactive {
		res, perr := confirmPrompt(os.Stderr, fmt.Sprintf("Overwrite %s?", path))
		if perr != nil {
			return perr
		}
		if !res.Confirmed {
			l.Println("Kept existing config")
			return nil
		}
		path, err = config.Init(true, owner)
	}
	if err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	out.Printf("Created config file: %s\n", path)
	return nil
}

func newConfigShowCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration for a project directory as TOML.

The global config is merged with the project's .postgen.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			l := log.FromContext(ctx)

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			cfg, err := config.Resolve(absDir)
			if err != nil {
				l.Warnf("%v (showing fallback config)", err)
			}

			globalPath, _ := config.Path()
			out.Printf("# Global config: %s\n", globalPath)
			localPath := filepath.Join(absDir, config.LocalConfigFileName)
			if _, err := os.Stat(localPath); err == nil {
				out.Printf("# Local config:  %s\n", localPath)
			} else {
				out.Println("# Local config:  (none)")
			}
			out.Println()

			return config.Encode(out.Writer(), cfg)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "Generated project directory")

	return cmd
}
