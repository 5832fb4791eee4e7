package execrunner

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Output holds the trimmed stdout/stderr of a finished command.
type Output struct {
	Stdout string
	Stderr string
}

// Primary returns stderr if present, otherwise stdout.
func (o Output) Primary() string {
	if o.Stderr != "" {
		return o.Stderr
	}
	return o.Stdout
}

// runStream connects the child straight to the given writers without keeping
// any output. Nil writers discard.
func runStream(cmd *exec.Cmd, stdout, stderr io.Writer) error {
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// runTee wires the command's stdout/stderr through to the given writers while
// collecting the output. Nil writers mean collect only.
func runTee(cmd *exec.Cmd, stdout, stderr io.Writer) (Output, error) {
	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	if stdout != nil {
		cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	}
	cmd.Stderr = &stderrBuf
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	err := cmd.Run()

	return Output{
		Stdout: strings.TrimSpace(stdoutBuf.String()),
		Stderr: strings.TrimSpace(stderrBuf.String()),
	}, err
}

// resultOf folds a cmd.Run error into a CommandResult. Anything other than a
// clean exit status, including a binary that could not be started, is a failure.
// A child killed by a signal reports 128+signo as a shell would, so it never
// collides with ExitCodeSpawnFailure.
func resultOf(err error) model.CommandResult {
	if err == nil {
		return model.NewCommandResult(0)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return model.NewCommandResult(128 + int(status.Signal()))
		}
		return model.NewCommandResult(exitErr.ExitCode())
	}

	return model.SpawnFailed()
}
