package git

import "github.com/raphi011/postgen/internal/cmd"

// InitCommand creates a repository in the working directory.
func InitCommand() cmd.Command {
	return cmd.New("git", "init")
}

// AddAllCommand stages every file in the working directory.
func AddAllCommand() cmd.Command {
	return cmd.New("git", "add", ".")
}

// CommitCommand records the staged files with message.
func CommitCommand(message string) cmd.Command {
	return cmd.New("git", "commit", "-m", message)
}
