package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/solverboot/internal/example"
	"github.com/alexisbeaulieu97/solverboot/internal/installer"
	"github.com/alexisbeaulieu97/solverboot/internal/verifier"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

type exampleOptions struct {
	Install bool
}

func newExampleCmd(root *rootFlags) *cobra.Command {
	opts := exampleOptions{}

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Run the example workflow once the solver works",
		Long: `example runs the configured Python entry point, but only after the solver binding
verifies as functional. With --install a non-functional binding is installed first by
running "solverboot install" as a separate process; a failed install is fatal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnvironment(cmd, root)
			if err != nil {
				return err
			}
			return runExample(cmd.Context(), cmd.OutOrStdout(), env, installArgv(env, root), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Install, "install", false, "Install the solver first if it is not functional")

	return cmd
}

// installArgv re-invokes this program's install subcommand with the same target.
func installArgv(env *environment, root *rootFlags) []string {
	argv := append(append([]string(nil), env.self...), "install")
	if root.configPath != "" {
		argv = append(argv, "--config", root.configPath)
	}
	if root.verbose {
		argv = append(argv, "--verbose")
	}
	if root.logJSON {
		argv = append(argv, "--log-json")
	}
	return argv
}

func runExample(ctx context.Context, out io.Writer, env *environment, install []string, opts exampleOptions) error {
	cfg := env.cfg
	workflow := example.NewWorkflow(
		verifier.New(cfg, env.runnerIn(""), env.log),
		env.runnerIn(""),
		install,
		example.NewRunner(cfg, env.runnerIn(cfg.Example.WorkDir), env.log),
		env.log,
	)

	outcome := workflow.Run(ctx, opts.Install)
	if outcome.Err != nil {
		printExampleGuidance(out, env, outcome)
		return bootErrors.NewExitError(1, nil)
	}

	if !outcome.Result.Succeeded {
		fmt.Fprintf(out, "Example %s.%s failed; see its output above.\n", cfg.Example.Module, cfg.Example.Entry)
		return bootErrors.NewExitError(1, nil)
	}

	fmt.Fprintln(out, "Example completed successfully.")
	if len(outcome.Result.ArtifactPaths) > 0 {
		fmt.Fprintln(out, "Generated files:")
		for _, path := range outcome.Result.ArtifactPaths {
			fmt.Fprintf(out, "  - %s\n", path)
		}
	}
	return nil
}

func printExampleGuidance(out io.Writer, env *environment, outcome example.Outcome) {
	cfg := env.cfg

	var delegationErr *bootErrors.DelegationError
	if errors.As(outcome.Err, &delegationErr) {
		fmt.Fprintf(out, "Automatic installation failed (exit code %d).\n", delegationErr.ExitCode)
		fmt.Fprintln(out, "Install manually:")
		for i, step := range installer.ManualSteps(cfg) {
			fmt.Fprintf(out, "  %d. %s\n", i+1, step)
		}
		return
	}

	var verificationErr *bootErrors.VerificationError
	if errors.As(outcome.Err, &verificationErr) {
		if outcome.Delegated {
			fmt.Fprintf(out, "%s was installed but is still not working: %s\n", cfg.Binding, verificationErr.Detail)
			fmt.Fprintf(out, "See %s for manual installation instructions.\n", cfg.ManualURL)
			return
		}
		fmt.Fprintf(out, "%s is not functional: %s\n", cfg.Binding, verificationErr.Detail)
		fmt.Fprintln(out, "Install it first with one of:")
		fmt.Fprintf(out, "  %s example --install\n", env.self[0])
		fmt.Fprintf(out, "  %s install\n", env.self[0])
		return
	}

	fmt.Fprintln(out, outcome.Err)
}
