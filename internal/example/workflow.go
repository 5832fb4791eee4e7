package example

import (
	"context"

	"github.com/alexisbeaulieu97/solverboot/internal/bootstrap"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

// Outcome is the result of a gated example run.
type Outcome struct {
	// Ready is true once the solver verified as functional.
	Ready     bool
	Delegated bool
	// Ran is true when the example was invoked; Result is only meaningful then.
	Ran    bool
	Result Result
	Err    error
}

// Workflow gates the example on a functional solver, optionally delegating
// installation to a separate installer process first.
type Workflow struct {
	verifier    bootstrap.Verifier
	delegate    execrunner.Runner
	installArgv []string
	example     *Runner
	log         *logger.Logger
}

// NewWorkflow creates a Workflow. installArgv is the installer command line run
// through delegate when installation is allowed.
func NewWorkflow(verifier bootstrap.Verifier, delegate execrunner.Runner, installArgv []string, example *Runner, log *logger.Logger) *Workflow {
	return &Workflow{
		verifier:    verifier,
		delegate:    delegate,
		installArgv: append([]string(nil), installArgv...),
		example:     example,
		log:         log,
	}
}

// Run verifies, installs through the delegate if allowed and needed, verifies
// again, and only then runs the example. Nothing is retried.
func (w *Workflow) Run(ctx context.Context, allowInstall bool) Outcome {
	initial := w.verifier.Verify(ctx)
	if initial.IsFunctional {
		return w.runExample(ctx, model.StateAlreadyFunctional, Outcome{})
	}

	if !allowInstall {
		w.log.WithFields(map[string]any{"detail": initial.FailureDetail}).Warn("solver not functional and installation not requested")
		return Outcome{Err: bootErrors.NewVerificationError(initial.FailureDetail, initial.Loaded)}
	}

	out := Outcome{Delegated: true}
	result := w.delegate.Run(ctx, w.installArgv)
	if !result.Succeeded {
		out.Err = bootErrors.NewDelegationError(w.installArgv, result.ExitCode)
		w.log.Error(out.Err, "delegated installation failed")
		return out
	}

	final := w.verifier.Verify(ctx)
	if !final.IsFunctional {
		out.Err = bootErrors.NewVerificationError(final.FailureDetail, final.Loaded)
		return out
	}

	return w.runExample(ctx, model.StateVerifiedSuccess, out)
}

func (w *Workflow) runExample(ctx context.Context, state model.State, out Outcome) Outcome {
	out.Ready = true
	res, err := w.example.RunWhenReady(ctx, state)
	out.Ran = err == nil
	out.Result = res
	out.Err = err
	return out
}
