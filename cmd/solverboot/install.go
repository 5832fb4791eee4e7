package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/solverboot/internal/bootstrap"
	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/installer"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	"github.com/alexisbeaulieu97/solverboot/internal/tui"
	"github.com/alexisbeaulieu97/solverboot/internal/verifier"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

type installOptions struct {
	Check    bool
	SkipDeps bool
}

func newInstallCmd(root *rootFlags) *cobra.Command {
	opts := installOptions{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the solver and its Python binding unless they already work",
		Long: `install verifies the binding first and stops if it already works. Otherwise it
installs the system package from the vendor repository (root required), installs the
Python binding with pip, and verifies again.

Exit code 0 means the binding is functional; any failure state exits non-zero.
With --check only the verification runs and the exit code is always 0.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, root)
			if err != nil {
				if opts.Check {
					fmt.Fprintf(cmd.OutOrStdout(), "cannot check the binding: %v\n", err)
					return nil
				}
				return err
			}
			return runInstall(cmd.Context(), cmd.OutOrStdout(), env, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "Only verify the binding; never install and always exit 0")
	cmd.Flags().BoolVar(&opts.SkipDeps, "skip-deps", false, "Skip system package installation and go straight to pip")

	return cmd
}

func newOrchestrator(env *environment) *bootstrap.Orchestrator {
	runner := env.runnerIn("")
	return bootstrap.New(
		verifier.New(env.cfg, runner, env.log),
		env.probe,
		installer.NewSystemDeps(env.cfg, runner, env.log, env.reinvocation()),
		installer.NewBinding(env.cfg, runner, env.log),
		env.log,
	)
}

func runInstall(ctx context.Context, out io.Writer, env *environment, opts installOptions) error {
	orch := newOrchestrator(env)

	if opts.Check {
		printCheck(out, env.cfg, orch.Check(ctx))
		return nil
	}

	state := tui.NewModel(env.cfg.Binding, tui.PlannedStages(opts.SkipDeps))
	report := orch.Run(ctx, bootstrap.Options{
		SkipSystemDeps: opts.SkipDeps,
		OnStage: func(res model.StageResult) {
			dispatchTuiMessage(&state, tui.StageCompleteMsg{Result: res})
		},
	})

	if ctx.Err() != nil && !report.State.Succeeded() {
		dispatchTuiMessage(&state, tui.CancelledMsg{
			State:    report.State,
			Headline: "Interrupted; completed steps were not rolled back, re-run install to continue",
		})
	} else {
		rem := bootstrap.RemediationFor(report, env.cfg)
		dispatchTuiMessage(&state, tui.FinishedMsg{State: report.State, Headline: rem.Headline, Lines: rem.Lines})
	}
	fmt.Fprintln(out, state.View())

	if code := report.State.ExitCode(); code != 0 {
		return bootErrors.NewExitError(code, nil)
	}
	return nil
}

func printCheck(out io.Writer, cfg *config.Config, outcome model.VerificationOutcome) {
	switch {
	case outcome.IsFunctional:
		fmt.Fprintf(out, "%s is installed and working\n", cfg.Binding)
	case outcome.Loaded:
		fmt.Fprintf(out, "%s is installed but not working: %s\n", cfg.Binding, outcome.FailureDetail)
	default:
		fmt.Fprintf(out, "%s is not functional: %s\n", cfg.Binding, outcome.FailureDetail)
	}
}

// dispatchTuiMessage feeds msg to the report model directly; child processes
// own the terminal while the run is in progress, so the model is rendered once at the end.
func dispatchTuiMessage(state *tui.Model, msg tea.Msg) {
	*state = state.Update(msg)
}
