package installer

import (
	"context"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

// Binding installs or upgrades the solver's Python package with pip.
type Binding struct {
	runner execrunner.Runner
	cfg    *config.Config
	log    *logger.Logger
}

// NewBinding creates a Binding installer.
func NewBinding(cfg *config.Config, runner execrunner.Runner, log *logger.Logger) *Binding {
	return &Binding{
		runner: runner,
		cfg:    cfg,
		log:    log.WithFields(map[string]any{"stage": model.StageBinding}),
	}
}

// Command is the single pip invocation.
func (b *Binding) Command() []string {
	return []string{b.cfg.Python, "-m", "pip", "install", b.cfg.Binding, "--upgrade"}
}

// Install runs Command once. Network failures surface unchanged.
func (b *Binding) Install(ctx context.Context) error {
	argv := b.Command()
	b.log.WithFields(map[string]any{"binding": b.cfg.Binding}).Info("installing python binding")

	result := b.runner.Run(ctx, argv)
	if !result.Succeeded {
		return bootErrors.NewCommandError(argv, result.ExitCode)
	}

	b.log.Info("python binding installed")
	return nil
}
