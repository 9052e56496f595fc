package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/postgen/internal/log"
	"github.com/raphi011/postgen/internal/ui/progress"
)

// Command is one external invocation: a program name and its arguments.
type Command struct {
	Name string
	Args []string
}

// New creates a Command.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String joins the tokens with spaces, for messages and logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Result holds the captured output of a finished command.
// ExitCode is -1 when the process could not be started.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the command exited with status 0.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Capture runs c in dir and captures its output.
// A non-zero exit is not an error; the returned error is set only when
// the process could not be started or ctx was cancelled.
func Capture(ctx context.Context, dir string, c Command) (Result, error) {
	done := log.FromContext(ctx).Command(dir, c.Name, c.Args...)
	start := time.Now()

	// #nosec G204 - commands come from built-in steps or the user's own config
	ec := exec.CommandContext(ctx, c.Name, c.Args...)
	ec.Dir = dir
	var stdout, stderr bytes.Buffer
	ec.Stdout = &stdout
	ec.Stderr = &stderr

	err := ec.Run()
	done(time.Since(start))

	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		return res, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, err
}

// OutputContext executes a command and returns stdout, with stderr in the error if it fails.
func OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	res, err := Capture(ctx, dir, New(name, args...))
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		if errMsg := strings.TrimSpace(res.Stderr); errMsg != "" {
			return nil, fmt.Errorf("%s", errMsg)
		}
		return nil, fmt.Errorf("%s: exit status %d", name, res.ExitCode)
	}
	return []byte(res.Stdout), nil
}

// Executor runs setup commands in a project directory and reports
// success as a boolean.
type Executor struct {
	// Dir is the working directory for every command.
	Dir string
	// Stdout receives the captured stdout of each command. Nil discards it.
	Stdout io.Writer
	// Progress, when set, shows a spinner there while a command runs.
	Progress io.Writer
}

// Available reports whether name resolves on the search path.
func (e *Executor) Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Run executes c and reports whether it exited with status 0.
// Captured stdout is echoed to Stdout whatever the exit status. Stderr and
// the exit status of a failed command, or a missing executable, are only
// traced in verbose mode.
func (e *Executor) Run(ctx context.Context, c Command) bool {
	l := log.FromContext(ctx)

	stop := func() {}
	if e.Progress != nil {
		sp := progress.NewSpinner(e.Progress, c.String())
		sp.Start()
		stop = sp.Stop
	}

	res, err := Capture(ctx, e.Dir, c)
	stop()
	if err != nil {
		l.Debug("command did not run", "cmd", c.String(), "err", err)
		return false
	}

	if out := strings.TrimRight(res.Stdout, "\n"); out != "" && e.Stdout != nil {
		fmt.Fprintln(e.Stdout, out)
	}

	if !res.OK() {
		l.Debug("command failed", "cmd", c.String(), "exit", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return false
	}
	return true
}
