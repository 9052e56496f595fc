package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/doctor"
	"github.com/raphi011/postgen/internal/output"
)

func newDoctorCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Check the tools setup depends on",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Check the tools and settings setup depends on.

Checks:
- git is installed (required)
- git user.name and user.email are set
- the package manager (uv by default) is installed
- the configuration is valid (required)
- .pre-commit-config.yaml exists in the project
- the project is not yet a git repository

Exits non-zero only when a required check fails.`,
		Example: `  postgen doctor                 # Check the current directory
  postgen doctor --dir ./my-lib  # Check another project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			cfg, cfgErr := config.Resolve(absDir)

			out.Println("Running diagnostics...")
			out.Println()

			_, err = doctor.Run(ctx, doctor.Options{
				Dir:       absDir,
				Config:    cfg,
				ConfigErr: cfgErr,
			})
			return err
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "Generated project directory")

	return cmd
}
