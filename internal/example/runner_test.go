package example

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/logger"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

func configIn(dir string) *config.Config {
	cfg := config.Default()
	cfg.Example.WorkDir = dir
	return cfg
}

func TestRunnerArgv(t *testing.T) {
	r := NewRunner(config.Default(), execrunner.NewFake(), logger.Nop())

	argv := r.Argv()
	require.Len(t, argv, 3)
	assert.Equal(t, "python3", argv[0])
	assert.Contains(t, argv[2], "from control_lyapunov.examples.van_der_pol_example import main\nmain()")
	assert.Contains(t, argv[2], "sys.path.insert(0, os.getcwd())")
}

func TestRunnerReportsExistingArtifacts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "loss_history.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phase_portrait.png"), []byte("png"), 0o644))

	fake := execrunner.NewFake()
	res := NewRunner(configIn(dir), fake, logger.Nop()).Run(context.Background())

	assert.True(t, res.Succeeded)
	assert.Equal(t, []string{
		filepath.Join(dir, "loss_history.png"),
		filepath.Join(dir, "phase_portrait.png"),
	}, res.ArtifactPaths)
	assert.Len(t, fake.Calls, 1)
}

func TestRunnerFailureIsNotRetried(t *testing.T) {
	fake := execrunner.NewFake()
	fake.Handler = func([]string) (execrunner.Output, model.CommandResult) {
		return execrunner.Output{}, model.NewCommandResult(1)
	}

	res := NewRunner(configIn(t.TempDir()), fake, logger.Nop()).Run(context.Background())
	assert.False(t, res.Succeeded)
	assert.Empty(t, res.ArtifactPaths)
	assert.Len(t, fake.Calls, 1)
}

func TestRunWhenReadyRefusesFailureStates(t *testing.T) {
	fake := execrunner.NewFake()
	r := NewRunner(configIn(t.TempDir()), fake, logger.Nop())

	for _, state := range []model.State{model.StateSystemDepsFailed, model.StateBindingFailed, model.StateVerifiedFailure, model.StateStart} {
		_, err := r.RunWhenReady(context.Background(), state)
		require.ErrorIs(t, err, ErrEnvironmentNotReady, state.String())
	}
	assert.Empty(t, fake.Calls)

	for _, state := range []model.State{model.StateAlreadyFunctional, model.StateVerifiedSuccess} {
		res, err := r.RunWhenReady(context.Background(), state)
		require.NoError(t, err)
		assert.True(t, res.Succeeded)
	}
	assert.Len(t, fake.Calls, 2)
}
