// Package installer applies system and Python package changes for the solver.
//
// Nothing here retries or rolls back: a failed step leaves whatever the
// package manager already applied in place and is reported to the caller.
package installer

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

// SystemDeps installs the solver's native library from the vendor's apt repository.
type SystemDeps struct {
	runner   execrunner.Runner
	cfg      *config.Config
	log      *logger.Logger
	reinvoke []string
}

// NewSystemDeps creates a SystemDeps installer. reinvoke is the command line
// suggested, prefixed with sudo, when the process is not elevated.
func NewSystemDeps(cfg *config.Config, runner execrunner.Runner, log *logger.Logger, reinvoke []string) *SystemDeps {
	return &SystemDeps{
		runner:   runner,
		cfg:      cfg,
		log:      log.WithFields(map[string]any{"stage": model.StageSystemDeps}),
		reinvoke: append([]string(nil), reinvoke...),
	}
}

// Commands returns the five privileged commands in execution order. The index is
// refreshed twice because the new repository is only visible after the second refresh.
func (s *SystemDeps) Commands() [][]string {
	return [][]string{
		{"apt-get", "update"},
		{"apt-get", "install", "-y", s.cfg.SupportPackage},
		{"add-apt-repository", s.cfg.Repository, "-y"},
		{"apt-get", "update"},
		{"apt-get", "install", "-y", s.cfg.SystemPackage},
	}
}

// SuggestedCommand is the elevated re-invocation offered when not running as root.
func (s *SystemDeps) SuggestedCommand() string {
	return strings.Join(append([]string{"sudo"}, s.reinvoke...), " ")
}

// Install gates on platform then privilege, and only then runs Commands in
// order, stopping at the first failure. It returns nil only if all five succeed.
func (s *SystemDeps) Install(ctx context.Context, platform model.PlatformInfo, privilege model.PrivilegeContext) error {
	if !platform.SupportsApt() {
		reason := "apt tooling not found"
		if platform.OSFamily != model.OSLinux {
			reason = "only Debian/Ubuntu Linux is supported"
		}
		err := bootErrors.NewPlatformError(platform.GOOS, reason)
		s.log.Error(err, "skipping system dependency installation")
		return err
	}

	if !privilege.IsElevated {
		err := bootErrors.NewPrivilegeError(s.SuggestedCommand())
		s.log.WithFields(map[string]any{"euid": privilege.EUID}).Error(err, "system dependency installation requires root")
		return err
	}

	s.log.WithFields(map[string]any{"package": s.cfg.SystemPackage, "repository": s.cfg.Repository}).Info("installing system dependencies")
	for _, argv := range s.Commands() {
		if err := ctx.Err(); err != nil {
			return err
		}
		result := s.runner.Run(ctx, argv)
		if !result.Succeeded {
			return bootErrors.NewCommandError(argv, result.ExitCode)
		}
	}

	s.log.Info("system dependencies installed")
	return nil
}
