package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullInstall = []string{
	"apt-get update",
	"apt-get install -y software-properties-common",
	"add-apt-repository ppa:dreal/dreal -y",
	"apt-get update",
	"apt-get install -y libdreal-dev",
	"python3 -m pip install dreal --upgrade",
}

func TestInstallCheckOnlyVerifiesAndExitsZero(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected string
	}{
		{"functional", smokeOK, "dreal is installed and working"},
		{"missing", smokeMissing, "dreal is not functional: not installed"},
		{"broken", smokeBroken, "dreal is installed but not working: RuntimeError: libdreal.so.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost(tt.code)
			out, err := execute(t, host, macOS, nil, "install", "--check")

			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
			assert.Len(t, host.Calls, 1)
			assert.Equal(t, 1, host.verifyCalls)
		})
	}
}

func TestInstallAlreadyFunctionalSkipsInstallers(t *testing.T) {
	host := newFakeHost(smokeOK)
	out, err := execute(t, host, debianRoot, nil, "install")

	require.NoError(t, err)
	assert.Contains(t, out, "already installed and working")
	assert.Contains(t, out, "Bootstrap succeeded (already-functional)")
	assert.Empty(t, host.commandLines())
}

func TestInstallUnsupportedPlatform(t *testing.T) {
	host := newFakeHost(smokeMissing)
	out, err := execute(t, host, macOS, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "only available on Debian/Ubuntu")
	assert.Contains(t, out, "https://github.com/dreal/dreal4")
	assert.Empty(t, host.commandLines())
}

func TestInstallWithoutPrivilegeSuggestsSudo(t *testing.T) {
	host := newFakeHost(smokeMissing)
	out, err := execute(t, host, debianUser, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "sudo apt-get install -y libdreal-dev")
	assert.Contains(t, out, "sudo "+selfPath+" install")
	assert.Empty(t, host.commandLines())
}

func TestInstallFullRunSucceeds(t *testing.T) {
	host := newFakeHost(smokeMissing, smokeOK)
	out, err := execute(t, host, debianRoot, nil, "install")

	require.NoError(t, err)
	assert.Equal(t, fullInstall, host.commandLines())
	assert.Equal(t, 2, host.verifyCalls)
	assert.Contains(t, out, "dreal installation completed successfully")
	assert.Contains(t, out, "import dreal")
	assert.Contains(t, out, "4/4 stages")
}

func TestInstallStillBrokenAfterInstall(t *testing.T) {
	host := newFakeHost(smokeMissing, smokeBroken)
	out, err := execute(t, host, debianRoot, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, fullInstall, host.commandLines())
	assert.Contains(t, out, "dreal is installed but not working")
	assert.NotContains(t, out, "sudo apt-get")
}

func TestInstallStillUnimportableAfterInstall(t *testing.T) {
	host := newFakeHost(smokeMissing)
	out, err := execute(t, host, debianRoot, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, fullInstall, host.commandLines())
	assert.Contains(t, out, "dreal was installed by pip but python3 still cannot import it")
	assert.NotContains(t, out, "is installed but not working")
}

func TestInstallStopsAtFirstFailingSystemCommand(t *testing.T) {
	host := newFakeHost(smokeMissing)
	host.FailOn(100, "add-apt-repository", "ppa:dreal/dreal", "-y")

	out, err := execute(t, host, debianRoot, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, fullInstall[:3], host.commandLines())
	assert.Contains(t, out, "Install them manually:")
	assert.Contains(t, out, "Bootstrap failed (system-deps-failed)")
}

func TestInstallBindingFailure(t *testing.T) {
	host := newFakeHost(smokeMissing)
	host.FailOn(1, "python3", "-m", "pip", "install", "dreal", "--upgrade")

	out, err := execute(t, host, debianRoot, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, fullInstall, host.commandLines())
	assert.Equal(t, 1, host.verifyCalls)
	assert.Contains(t, out, "pip install dreal")
}

func TestInstallSkipDepsGoesStraightToPip(t *testing.T) {
	host := newFakeHost(smokeMissing, smokeOK)
	out, err := execute(t, host, macOS, nil, "install", "--skip-deps")

	require.NoError(t, err)
	assert.Equal(t, []string{"python3 -m pip install dreal --upgrade"}, host.commandLines())
	assert.Contains(t, out, "skipped on request")
}

func TestInstallInterruptedReportsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	host := newFakeHost(smokeMissing)
	out, err := executeContext(t, ctx, host, debianRoot, nil, "install")

	assert.Equal(t, 1, exitCode(err))
	assert.Empty(t, host.commandLines())
	assert.Contains(t, out, "Bootstrap cancelled")
	assert.Contains(t, out, "re-run install to continue")
	assert.NotContains(t, out, "Install them manually:")
}

func TestInstallCheckExitsZeroWhenEnvironmentFails(t *testing.T) {
	original := newEnvironment
	t.Cleanup(func() { newEnvironment = original })
	newEnvironment = func(cmd *cobra.Command, flags *rootFlags) (*environment, error) {
		return nil, errors.New("config: binding is required")
	}

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"install", "--check"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "cannot check the binding: config: binding is required")

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"install"})
	require.Error(t, root.Execute())
}
