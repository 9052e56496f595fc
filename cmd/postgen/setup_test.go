package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/postgen/internal/bootstrap"
	"github.com/raphi011/postgen/internal/config"
	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/output"
)

// testContext isolates setup from the user's config and tools.
func testContext(t *testing.T) (context.Context, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv(config.ConfigEnvVar, filepath.Join(t.TempDir(), "none.toml"))
	t.Setenv("PATH", t.TempDir())

	var stdout, stderr bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&stderr, false, false))
	ctx = output.WithPrinter(ctx, &stdout)
	return ctx, &stdout, &stderr
}

func TestRunSetup_NoTools(t *testing.T) {
	ctx, stdout, _ := testContext(t)
	dir := filepath.Join(t.TempDir(), "my-lib")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	report := runSetup(ctx, setupOptions{dir: dir, owner: "octocat"}, nil)

	out := stdout.String()
	for _, want := range []string{
		"🚀 Setting up your Python package...",
		"⚠️  uv is not installed!",
		"⚠️  Failed to initialize git (may already exist)",
		"git remote add origin git@github.com:octocat/my-lib.git",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Initial commit created") {
		t.Error("commit must not be reported without git")
	}

	if res, ok := report.Result(bootstrap.StepGit); !ok || res.Status != bootstrap.StatusFailed {
		t.Errorf("git result = %+v, want failed", res)
	}
}

func TestRunSetup_SkipWarningsAndLocalConfig(t *testing.T) {
	ctx, stdout, stderr := testContext(t)
	dir := t.TempDir()
	local := "[project]\nkind = \"library\"\nowner = \"from-file\"\nslug = \"lib\"\n"
	if err := os.WriteFile(filepath.Join(dir, config.LocalConfigFileName), []byte(local), 0644); err != nil {
		t.Fatal(err)
	}

	runSetup(ctx, setupOptions{dir: dir, project: "override", skip: []string{"git", "dependencies"}}, nil)

	out := stdout.String()
	if !strings.Contains(out, "🚀 Setting up your library...") {
		t.Errorf("local config kind not applied:\n%s", out)
	}
	if !strings.Contains(out, "git@github.com:from-file/override.git") {
		t.Errorf("--project should override the local slug:\n%s", out)
	}
	if !strings.Contains(out, "⏭️  Skipping git") {
		t.Errorf("git should be skipped:\n%s", out)
	}
	if !strings.Contains(stderr.String(), `unknown step "dependencies" ignored (did you mean "deps"?)`) {
		t.Errorf("stderr = %q, want skip suggestion", stderr.String())
	}
}

func TestRunSetup_InvalidConfigUsesDefaults(t *testing.T) {
	ctx, stdout, stderr := testContext(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.LocalConfigFileName), []byte("not toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	runSetup(ctx, setupOptions{dir: dir, skip: []string{"git"}}, nil)

	if !strings.Contains(stderr.String(), "Warning: ") {
		t.Errorf("stderr = %q, want config warning", stderr.String())
	}
	if !strings.Contains(stdout.String(), "✨ Project setup complete!") {
		t.Error("setup must still finish with the guide")
	}
}

func TestRunSetup_CopyRemote(t *testing.T) {
	ctx, _, stderr := testContext(t)

	var copied string
	orig := copyToClipboard
	t.Cleanup(func() { copyToClipboard = orig })

	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	runSetup(ctx, setupOptions{dir: t.TempDir(), owner: "a", project: "b", skip: []string{"git"}, copyRemote: true}, nil)
	if copied != "git remote add origin git@github.com:a/b.git" {
		t.Errorf("copied = %q", copied)
	}

	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	runSetup(ctx, setupOptions{dir: t.TempDir(), skip: []string{"git"}, copyRemote: true}, nil)
	if !strings.Contains(stderr.String(), "failed to copy to clipboard: no clipboard") {
		t.Errorf("stderr = %q, want clipboard warning", stderr.String())
	}
}

func TestApplyProjectFlags(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Project.Owner = "file-owner"
	cfg.Project.Slug = "file-slug"

	tests := []struct {
		name      string
		opts      setupOptions
		wantOwner string
		wantSlug  string
	}{
		{"no flags keeps config", setupOptions{}, "file-owner", "file-slug"},
		{"owner flag wins", setupOptions{owner: "flag"}, "flag", "file-slug"},
		{"blank flags ignored", setupOptions{owner: " ", project: ""}, "file-owner", "file-slug"},
		{"project flag wins", setupOptions{project: "p"}, "file-owner", "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := applyProjectFlags(cfg, tt.opts)
			if got.Project.Owner != tt.wantOwner || got.Project.Slug != tt.wantSlug {
				t.Errorf("got owner=%q slug=%q, want %q %q", got.Project.Owner, got.Project.Slug, tt.wantOwner, tt.wantSlug)
			}
		})
	}
}
