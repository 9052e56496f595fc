// Package cmd runs external commands for postgen's setup steps.
//
// Every step is a thin wrapper around a child process. [Capture] runs a
// [Command] with stdout and stderr captured into a [Result]. [Executor]
// builds the boolean capability the setup runner needs on top of it:
//
//	exec := &cmd.Executor{Dir: projectDir, Stdout: os.Stdout}
//	if !exec.Available("uv") {
//	    // print install instructions
//	}
//	ok := exec.Run(ctx, cmd.New("uv", "sync"))
//
// "Executable not found" and "exited non-zero" both collapse to false in
// [Executor.Run]; the distinction is only visible in verbose logs.
//
// [OutputContext] returns an error that carries the child's stderr, for
// callers that need an error value.
package cmd
