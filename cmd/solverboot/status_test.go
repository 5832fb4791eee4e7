package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
)

const dpkgQuery = "dpkg-query -W -f=${db:Status-Status} libdreal-dev"

func TestStatusReportsInstallationState(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		probe     hostProbe
		installed bool
		expected  string
	}{
		{"verified", smokeOK, debianUser, false, "state:          verified"},
		{"unsupported platform", smokeMissing, macOS, false, "state:          platform-unsupported"},
		{"python package missing", smokeMissing, debianUser, true, "state:          python-package-missing"},
		{"privilege insufficient", smokeMissing, debianUser, false, "state:          privilege-insufficient"},
		{"system deps missing", smokeMissing, debianRoot, false, "state:          system-deps-missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := newFakeHost(tt.code)
			if tt.installed {
				host.Outputs[dpkgQuery] = execrunner.Output{Stdout: "installed\n"}
			} else {
				host.FailOn(1, "dpkg-query", "-W", "-f=${db:Status-Status}", "libdreal-dev")
			}

			out, err := execute(t, host, tt.probe, nil, "status")

			require.NoError(t, err)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestStatusNeverInstalls(t *testing.T) {
	host := newFakeHost(smokeBroken)
	out, err := execute(t, host, debianRoot, nil, "status")

	require.NoError(t, err)
	for _, line := range host.commandLines() {
		assert.Equal(t, dpkgQuery, line)
	}
	assert.Contains(t, out, "binding:        dreal (RuntimeError: libdreal.so.4: cannot open shared object file)")
	assert.Contains(t, out, "elevated:       yes")
}
