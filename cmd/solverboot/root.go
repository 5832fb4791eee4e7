package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	logJSON    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "solverboot",
		Short: "solverboot installs and verifies the dReal SMT solver and its Python binding",
		Long: `solverboot checks whether the solver's Python binding actually works and, if it
does not, installs the native library from the vendor's apt repository and the
binding from PyPI, then verifies again.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.logJSON, "log-json", false, "Write logs as JSON instead of console text")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML file overriding the built-in target")

	cmd.AddCommand(newInstallCmd(flags))
	cmd.AddCommand(newExampleCmd(flags))
	cmd.AddCommand(newStatusCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
