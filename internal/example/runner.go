// Package example runs the downstream workflow that needs a working solver.
package example

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// ErrEnvironmentNotReady is returned when the example is requested before the
// bootstrap reached a successful terminal state.
var ErrEnvironmentNotReady = errors.New("solver environment is not ready")

// Result is what a finished example produced.
type Result struct {
	Succeeded bool
	// ArtifactPaths lists the configured artifacts that exist after the run.
	ArtifactPaths []string
}

// Runner invokes the configured example entry point with the configured interpreter.
type Runner struct {
	runner execrunner.Runner
	cfg    *config.Config
	log    *logger.Logger
	stat   func(string) (os.FileInfo, error)
}

// NewRunner creates a Runner. The supplied runner should execute inside cfg.Example.WorkDir.
func NewRunner(cfg *config.Config, runner execrunner.Runner, log *logger.Logger) *Runner {
	return &Runner{
		runner: runner,
		cfg:    cfg,
		log:    log.WithFields(map[string]any{"stage": model.StageExample, "module": cfg.Example.Module}),
		stat:   os.Stat,
	}
}

// Argv is the interpreter invocation that imports and calls the entry point.
// The working directory is put on sys.path so a checked-out package is importable.
func (r *Runner) Argv() []string {
	ex := r.cfg.Example
	script := fmt.Sprintf("import os, sys\nsys.path.insert(0, os.getcwd())\nfrom %s import %s\n%s()\n", ex.Module, ex.Entry, ex.Entry)
	return []string{r.cfg.Python, "-c", script}
}

// Run executes the example once. Failures are reported, never retried.
func (r *Runner) Run(ctx context.Context) Result {
	r.log.Info("running example")
	result := r.runner.Run(ctx, r.Argv())
	if !result.Succeeded {
		r.log.WithFields(map[string]any{"exit_code": result.ExitCode}).Warn("example failed")
		return Result{}
	}
	return Result{Succeeded: true, ArtifactPaths: r.artifacts()}
}

// RunWhenReady refuses to run unless state is a successful terminal state.
func (r *Runner) RunWhenReady(ctx context.Context, state model.State) (Result, error) {
	if !state.Succeeded() {
		return Result{}, fmt.Errorf("%w: bootstrap ended in %s", ErrEnvironmentNotReady, state)
	}
	return r.Run(ctx), nil
}

func (r *Runner) artifacts() []string {
	paths := make([]string, 0, len(r.cfg.Example.Artifacts))
	for _, name := range r.cfg.Example.Artifacts {
		path := name
		if !filepath.IsAbs(path) && r.cfg.Example.WorkDir != "" {
			path = filepath.Join(r.cfg.Example.WorkDir, name)
		}
		if _, err := r.stat(path); err != nil {
			r.log.WithFields(map[string]any{"artifact": path}).Debug("expected artifact not found")
			continue
		}
		paths = append(paths, path)
	}
	return paths
}
