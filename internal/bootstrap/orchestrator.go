// Package bootstrap drives the solver installation state machine:
// verify, install system dependencies, install the binding, verify again.
//
// Every run starts from StateStart and re-derives everything by probing;
// nothing is carried over from earlier runs, so running it again is always safe.
package bootstrap

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

// Verifier reports whether the binding is functional.
type Verifier interface {
	Verify(ctx context.Context) model.VerificationOutcome
}

// CapabilityProbe answers platform and privilege questions.
type CapabilityProbe interface {
	Platform() model.PlatformInfo
	Privilege() model.PrivilegeContext
}

// SystemInstaller installs native dependencies; nil means all steps succeeded.
type SystemInstaller interface {
	Install(ctx context.Context, platform model.PlatformInfo, privilege model.PrivilegeContext) error
}

// BindingInstaller installs the language binding; nil means the package manager exited zero.
type BindingInstaller interface {
	Install(ctx context.Context) error
}

// Options tune a single run.
type Options struct {
	// SkipSystemDeps goes straight from a failed verification to the binding install.
	SkipSystemDeps bool
	// OnStage, if set, receives a running and a finished StageResult for every stage.
	OnStage func(model.StageResult)
}

// Report is the outcome of one run.
type Report struct {
	State model.State
	// Path lists every state entered, StateStart first.
	Path    []model.State
	Initial model.VerificationOutcome
	// Final is only set once StateReVerifying was reached.
	Final  *model.VerificationOutcome
	Err    error
	Stages []model.StageResult
}

// Orchestrator composes the installers and the verifier.
type Orchestrator struct {
	verifier Verifier
	probe    CapabilityProbe
	system   SystemInstaller
	binding  BindingInstaller
	log      *logger.Logger
	now      func() time.Time
}

// New creates an Orchestrator.
func New(verifier Verifier, probe CapabilityProbe, system SystemInstaller, binding BindingInstaller, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		verifier: verifier,
		probe:    probe,
		system:   system,
		binding:  binding,
		log:      log,
		now:      time.Now,
	}
}

// Check runs the verifier alone and never installs anything.
func (o *Orchestrator) Check(ctx context.Context) model.VerificationOutcome {
	return o.verifier.Verify(ctx)
}

// Run walks the state machine until a terminal state is reached.
func (o *Orchestrator) Run(ctx context.Context, opts Options) *Report {
	r := &run{o: o, opts: opts, report: &Report{}}
	r.enter(model.StateStart)

	var initial model.VerificationOutcome
	// a non-functional binding is the normal reason to continue, not a terminal failure
	_ = r.stage(model.StageVerify, func() (string, error) {
		initial = o.verifier.Verify(ctx)
		if initial.IsFunctional {
			return "binding is functional", nil
		}
		return "", bootErrors.NewVerificationError(initial.FailureDetail, initial.Loaded)
	})
	r.report.Initial = initial
	if initial.IsFunctional {
		return r.finish(model.StateAlreadyFunctional, nil)
	}

	if opts.SkipSystemDeps {
		r.skip(model.StageSystemDeps, "skipped on request")
	} else {
		r.enter(model.StateCheckingSystemDeps)
		platform := o.probe.Platform()
		privilege := o.probe.Privilege()
		err := r.stage(model.StageSystemDeps, func() (string, error) {
			return "system dependencies installed", o.system.Install(ctx, platform, privilege)
		})
		if err != nil {
			return r.finish(model.StateSystemDepsFailed, err)
		}
	}

	r.enter(model.StateInstallingBinding)
	err := r.stage(model.StageBinding, func() (string, error) {
		return "binding installed", o.binding.Install(ctx)
	})
	if err != nil {
		return r.finish(model.StateBindingFailed, err)
	}

	// Package managers exiting zero does not prove the binding works.
	r.enter(model.StateReVerifying)
	var final model.VerificationOutcome
	err = r.stage(model.StageReVerify, func() (string, error) {
		final = o.verifier.Verify(ctx)
		if final.IsFunctional {
			return "binding is functional", nil
		}
		return "", bootErrors.NewVerificationError(final.FailureDetail, final.Loaded)
	})
	r.report.Final = &final
	if err != nil {
		return r.finish(model.StateVerifiedFailure, err)
	}
	return r.finish(model.StateVerifiedSuccess, nil)
}

type run struct {
	o      *Orchestrator
	opts   Options
	report *Report
}

func (r *run) enter(state model.State) {
	from := r.report.State
	r.report.State = state
	r.report.Path = append(r.report.Path, state)
	r.o.log.WithFields(map[string]any{"from": string(from), "to": string(state)}).Debug("state transition")
}

func (r *run) finish(state model.State, err error) *Report {
	r.enter(state)
	r.report.Err = err
	if err != nil {
		r.o.log.WithFields(map[string]any{"state": string(state)}).Error(err, "bootstrap failed")
	} else {
		r.o.log.WithFields(map[string]any{"state": string(state)}).Info("bootstrap complete")
	}
	return r.report
}

func (r *run) stage(name string, fn func() (string, error)) error {
	start := r.o.now()
	r.emit(model.StageResult{Stage: name, Status: model.StatusRunning, Timestamp: start})

	msg, err := fn()
	result := model.StageResult{
		Stage:     name,
		Status:    model.StatusSuccess,
		Message:   msg,
		Duration:  r.o.now().Sub(start),
		Timestamp: start,
	}
	if err != nil {
		result.Status = model.StatusFailed
		result.Message = err.Error()
		result.Error = err
	}
	r.report.Stages = append(r.report.Stages, result)
	r.emit(result)
	return err
}

func (r *run) skip(name, msg string) {
	result := model.StageResult{Stage: name, Status: model.StatusSkipped, Message: msg, Timestamp: r.o.now()}
	r.report.Stages = append(r.report.Stages, result)
	r.emit(result)
}

func (r *run) emit(result model.StageResult) {
	if r.opts.OnStage != nil {
		r.opts.OnStage(result)
	}
}
