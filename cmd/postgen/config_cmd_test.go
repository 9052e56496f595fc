package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
	"github.com/raphi011/postgen/internal/ui/prompt"
)

func configCmdForTest(t *testing.T) (*cobra.Command, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "postgen", "config.toml")
	t.Setenv(config.ConfigEnvVar, path)

	var stdout bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, false))
	ctx = output.WithPrinter(ctx, &stdout)

	c := &cobra.Command{}
	c.SetContext(ctx)
	return c, &stdout, path
}

func stubPrompts(t *testing.T, owner string, overwrite bool) {
	t.Helper()
	origText, origConfirm := textPrompt, confirmPrompt
	t.Cleanup(func() {
		textPrompt, confirmPrompt = origText, origConfirm
	})

	textPrompt = func(io.Writer, string, string) (prompt.TextInputResult, error) {
		return prompt.TextInputResult{Value: owner}, nil
	}
	confirmPrompt = func(io.Writer, string) (prompt.ConfirmResult, error) {
		return prompt.ConfirmResult{Confirmed: overwrite}, nil
	}
}

func TestConfigInit_NonInteractive(t *testing.T) {
	c, stdout, path := configCmdForTest(t)

	if err := runConfigInit(c, configInitOptions{owner: "octocat", ownerFlag: true}); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	if !strings.Contains(stdout.String(), "Created config file: "+path) {
		t.Errorf("stdout = %q", stdout.String())
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Owner != "octocat" {
		t.Errorf("owner = %q, want octocat", cfg.Project.Owner)
	}

	err = runConfigInit(c, configInitOptions{})
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Errorf("second init error = %v, want hint to use --force", err)
	}
}

func TestConfigInit_InteractivePromptsForOwner(t *testing.T) {
	c, _, path := configCmdForTest(t)
	stubPrompts(t, "prompted", false)

	if err := runConfigInit(c, configInitOptions{interactive: true}); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Project.Owner != "prompted" {
		t.Errorf("owner = %q, want prompted", cfg.Project.Owner)
	}
}

func TestConfigInit_InteractiveOverwrite(t *testing.T) {
	tests := []struct {
		name      string
		overwrite bool
		wantOwner string
	}{
		{"confirmed overwrites", true, "new"},
		{"declined keeps file", false, "old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, path := configCmdForTest(t)
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(config.ContentWithOwner("old")), 0644); err != nil {
				t.Fatal(err)
			}
			stubPrompts(t, "new", tt.overwrite)

			if err := runConfigInit(c, configInitOptions{interactive: true}); err != nil {
				t.Fatalf("runConfigInit() error = %v", err)
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Project.Owner != tt.wantOwner {
				t.Errorf("owner = %q, want %q", cfg.Project.Owner, tt.wantOwner)
			}
		})
	}
}

func TestConfigInit_Stdout(t *testing.T) {
	c, stdout, path := configCmdForTest(t)

	if err := runConfigInit(c, configInitOptions{stdout: true}); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}
	if stdout.String() != config.DefaultContent() {
		t.Error("--stdout should print the default config")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("--stdout must not write the config file")
	}
}
