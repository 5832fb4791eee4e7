package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/solverboot/internal/bootstrap"
	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/probe"
)

// commandRunner executes external commands either streaming or captured.
type commandRunner interface {
	execrunner.Runner
	execrunner.Capturer
}

// environment is everything a subcommand needs from the host.
type environment struct {
	cfg   *config.Config
	log   *logger.Logger
	probe bootstrap.CapabilityProbe
	// runnerIn returns a runner whose children start in dir; "" keeps the current directory.
	runnerIn func(dir string) commandRunner
	// self is the command that re-invokes this program; args is what it was invoked with.
	self []string
	args []string
}

var newEnvironment = hostEnvironment

func hostEnvironment(cmd *cobra.Command, flags *rootFlags) (*environment, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.logJSON,
		NoColor:       !isTerminal(os.Stderr),
		Writer:        cmd.ErrOrStderr(),
		Component:     "solverboot",
	})
	if err != nil {
		return nil, err
	}

	self, err := os.Executable()
	if err != nil {
		self = os.Args[0]
	}

	return &environment{
		cfg:   cfg,
		log:   log,
		probe: probe.New(),
		runnerIn: func(dir string) commandRunner {
			r := execrunner.New(log)
			r.Stdout = cmd.OutOrStdout()
			r.Stderr = cmd.ErrOrStderr()
			r.Dir = dir
			return r
		},
		self: []string{self},
		args: os.Args[1:],
	}, nil
}

func isTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// reinvocation is the full command line used to run this program again.
func (e *environment) reinvocation() []string {
	return append(append([]string(nil), e.self...), e.args...)
}
