// Package verifier decides whether the solver binding is actually usable.
//
// Presence on the import path is not enough: a binding can import yet fail on
// first use because its native library is missing, so the check always
// evaluates a trivial symbolic expression.
package verifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Exit codes emitted by the smoke script.
const (
	exitNotLoaded = 3
	exitSmokeFail = 4
)

// Only ImportError means the binding is absent; anything else raised while
// importing comes from a binding that is present but broken.
const smokeTemplate = `import sys
try:
    import %[1]s as binding
except ImportError as exc:
    print(exc, file=sys.stderr)
    sys.exit(%[4]d)
except Exception as exc:
    print("%%s: %%s" %% (type(exc).__name__, exc), file=sys.stderr)
    sys.exit(%[5]d)
try:
    x = binding.%[2]s("x")
    binding.%[3]s(x)
except Exception as exc:
    print(exc, file=sys.stderr)
    sys.exit(%[5]d)
`

// Verifier runs the smoke script with the configured interpreter.
type Verifier struct {
	runner  execrunner.Capturer
	python  string
	binding string
	smoke   config.SmokeTest
	log     *logger.Logger
}

// New creates a Verifier for the binding described by cfg.
func New(cfg *config.Config, runner execrunner.Capturer, log *logger.Logger) *Verifier {
	return &Verifier{
		runner:  runner,
		python:  cfg.Python,
		binding: cfg.Binding,
		smoke:   cfg.Smoke,
		log:     log.WithFields(map[string]any{"binding": cfg.Binding}),
	}
}

// Script returns the Python source evaluated by Verify.
func (v *Verifier) Script() string {
	return fmt.Sprintf(smokeTemplate, v.binding, v.smoke.Variable, v.smoke.UnaryOp, exitNotLoaded, exitSmokeFail)
}

// Argv returns the full command line used for verification.
func (v *Verifier) Argv() []string {
	return []string{v.python, "-c", v.Script()}
}

// Verify loads the binding and evaluates one unary operation on one variable.
func (v *Verifier) Verify(ctx context.Context) model.VerificationOutcome {
	out, result := v.runner.Capture(ctx, v.Argv())

	switch {
	case result.Succeeded:
		v.log.Debug("binding is functional")
		return model.Functional()
	case result.ExitCode == model.ExitCodeSpawnFailure:
		v.log.WithFields(map[string]any{"python": v.python}).Warn("python interpreter could not be started")
		return model.NotInstalled()
	case result.ExitCode == exitNotLoaded:
		v.log.WithFields(map[string]any{"detail": out.Stderr}).Debug("binding could not be loaded")
		return model.NotInstalled()
	case result.ExitCode == exitSmokeFail:
		return model.Broken(lastLine(out.Primary(), "smoke test raised an exception"))
	default:
		// e.g. the native library crashed the interpreter, reported as 128+signal
		return model.Broken(lastLine(out.Primary(), fmt.Sprintf("smoke test exited with code %d", result.ExitCode)))
	}
}

func lastLine(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
