// Package execrunner runs external commands and reports their exit status.
package execrunner

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Runner executes one command synchronously. It blocks until the child exits
// and never interprets output; a spawn failure is a failed result, not an error.
type Runner interface {
	Run(ctx context.Context, argv []string) model.CommandResult
}

// Capturer runs a command quietly and also returns what it printed.
type Capturer interface {
	Capture(ctx context.Context, argv []string) (Output, model.CommandResult)
}

// Exec is the Runner backed by os/exec. No timeout is applied; cancelling ctx
// (e.g. on SIGINT) kills the current child.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string
	Dir    string

	log *logger.Logger
}

var (
	_ Runner   = (*Exec)(nil)
	_ Capturer = (*Exec)(nil)
)

// New creates an Exec runner that streams child output to the process stdio.
func New(log *logger.Logger) *Exec {
	return &Exec{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		log:    log,
	}
}

// Run streams the child's output and returns its exit status.
func (e *Exec) Run(ctx context.Context, argv []string) model.CommandResult {
	log := e.log.WithCommand(argv)
	if len(argv) == 0 {
		log.Warn("refusing to run empty command")
		return model.SpawnFailed()
	}

	log.Info("running command")
	err := runStream(e.command(ctx, argv), e.Stdout, e.Stderr)
	result := resultOf(err)
	if !result.Succeeded {
		log.WithFields(map[string]any{"exit_code": result.ExitCode}).Error(err, "command failed")
	}
	return result
}

// Capture runs the command without streaming and returns its trimmed output.
func (e *Exec) Capture(ctx context.Context, argv []string) (Output, model.CommandResult) {
	if len(argv) == 0 {
		return Output{}, model.SpawnFailed()
	}

	e.log.WithCommand(argv).Debug("capturing command output")
	out, err := runTee(e.command(ctx, argv), nil, nil)
	return out, resultOf(err)
}

func (e *Exec) command(ctx context.Context, argv []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	if len(e.Env) > 0 {
		cmd.Env = append(cmd.Env, e.Env...)
	}
	if e.Dir != "" {
		cmd.Dir = e.Dir
	}
	return cmd
}
