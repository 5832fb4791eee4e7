package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

const dpkgQuery = "dpkg-query -W -f=${db:Status-Status} libdreal-dev"

func packageQuery(installed bool) *execrunner.Fake {
	fake := execrunner.NewFake()
	if installed {
		fake.Outputs[dpkgQuery] = execrunner.Output{Stdout: "installed"}
	} else {
		fake.FailOn(1, "dpkg-query", "-W", "-f=${db:Status-Status}", "libdreal-dev")
	}
	return fake
}

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name      string
		outcome   model.VerificationOutcome
		probe     fakeProbe
		installed bool
		want      model.InstallationState
		queried   bool
	}{
		{"functional", model.Functional(), macHost, false, model.InstallVerified, false},
		{"non-apt host", model.NotInstalled(), macHost, false, model.InstallPlatformUnsupported, false},
		{"system package present", model.NotInstalled(), debianHost, true, model.InstallPythonPackageMissing, true},
		{"broken binding with package present", model.Broken("boom"), debianHost, true, model.InstallPythonPackageMissing, true},
		{"package missing as root", model.NotInstalled(), debianHost, false, model.InstallSystemDepsMissing, true},
		{"package missing as user", model.NotInstalled(), unprivilegedHost, false, model.InstallPrivilegeInsufficient, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := packageQuery(tt.installed)
			d := NewDiagnoser(&fakeVerifier{outcomes: []model.VerificationOutcome{tt.outcome}}, tt.probe, query, "libdreal-dev")

			diag := d.Diagnose(context.Background())
			assert.Equal(t, tt.want, diag.State)
			assert.Equal(t, tt.outcome, diag.Verification)
			if tt.queried {
				assert.Equal(t, []string{dpkgQuery}, query.CallLines())
			} else {
				assert.Empty(t, query.Calls)
			}
		})
	}
}

func TestDiagnoseTreatsHalfInstalledPackageAsMissing(t *testing.T) {
	query := execrunner.NewFake()
	query.Outputs[dpkgQuery] = execrunner.Output{Stdout: "config-files"}

	d := NewDiagnoser(&fakeVerifier{outcomes: []model.VerificationOutcome{model.NotInstalled()}}, debianHost, query, "libdreal-dev")
	assert.Equal(t, model.InstallSystemDepsMissing, d.Diagnose(context.Background()).State)
}
