package model

// ExitCodeSpawnFailure is reported when a command could not be started at all.
const ExitCodeSpawnFailure = -1

// CommandResult is produced once per external command invocation and never mutated.
type CommandResult struct {
	ExitCode  int
	Succeeded bool
}

// NewCommandResult builds a result from an exit code.
func NewCommandResult(exitCode int) CommandResult {
	return CommandResult{ExitCode: exitCode, Succeeded: exitCode == 0}
}

// SpawnFailed returns the result used when the binary could not be executed.
func SpawnFailed() CommandResult {
	return CommandResult{ExitCode: ExitCodeSpawnFailure, Succeeded: false}
}
