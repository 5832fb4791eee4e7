package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/solverboot/internal/bootstrap"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	"github.com/alexisbeaulieu97/solverboot/internal/verifier"
)

func newStatusCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report the installation state without changing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, root)
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), cmd.OutOrStdout(), env)
		},
	}
}

func runStatus(ctx context.Context, out io.Writer, env *environment) error {
	runner := env.runnerIn("")
	diagnoser := bootstrap.NewDiagnoser(verifier.New(env.cfg, runner, env.log), env.probe, runner, env.cfg.SystemPackage)
	diag := diagnoser.Diagnose(ctx)

	fmt.Fprintf(out, "state:          %s\n", diag.State)
	fmt.Fprintf(out, "binding:        %s (%s)\n", env.cfg.Binding, describeVerification(diag.Verification))
	fmt.Fprintf(out, "platform:       %s (apt: %s)\n", diag.Platform.GOOS, yesNo(diag.Platform.HasAptTooling))
	if diag.Platform.SupportsApt() {
		fmt.Fprintf(out, "system package: %s (installed: %s)\n", env.cfg.SystemPackage, yesNo(diag.SystemPackageInstalled))
	}
	fmt.Fprintf(out, "elevated:       %s\n", yesNo(diag.Privilege.IsElevated))
	return nil
}

func describeVerification(outcome model.VerificationOutcome) string {
	if outcome.IsFunctional {
		return "functional"
	}
	return outcome.FailureDetail
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
