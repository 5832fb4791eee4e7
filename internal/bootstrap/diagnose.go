package bootstrap

import (
	"context"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/execrunner"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Diagnosis is the derived InstallationState plus the evidence behind it.
type Diagnosis struct {
	State        model.InstallationState
	Verification model.VerificationOutcome
	Platform     model.PlatformInfo
	Privilege    model.PrivilegeContext
	// SystemPackageInstalled is only meaningful on apt hosts.
	SystemPackageInstalled bool
}

// Diagnoser derives the InstallationState by probing: verify the binding first,
// then query dpkg for the system package.
type Diagnoser struct {
	verifier      Verifier
	probe         CapabilityProbe
	query         execrunner.Capturer
	systemPackage string
}

// NewDiagnoser creates a Diagnoser for systemPackage.
func NewDiagnoser(verifier Verifier, probe CapabilityProbe, query execrunner.Capturer, systemPackage string) *Diagnoser {
	return &Diagnoser{verifier: verifier, probe: probe, query: query, systemPackage: systemPackage}
}

// Diagnose never changes the host.
func (d *Diagnoser) Diagnose(ctx context.Context) Diagnosis {
	diag := Diagnosis{
		Verification: d.verifier.Verify(ctx),
		Platform:     d.probe.Platform(),
		Privilege:    d.probe.Privilege(),
	}

	if diag.Verification.IsFunctional {
		diag.State = model.InstallVerified
		return diag
	}

	if !diag.Platform.SupportsApt() {
		diag.State = model.InstallPlatformUnsupported
		return diag
	}

	diag.SystemPackageInstalled = d.packageInstalled(ctx)
	switch {
	case diag.SystemPackageInstalled:
		diag.State = model.InstallPythonPackageMissing
	case !diag.Privilege.IsElevated:
		diag.State = model.InstallPrivilegeInsufficient
	default:
		diag.State = model.InstallSystemDepsMissing
	}
	return diag
}

func (d *Diagnoser) packageInstalled(ctx context.Context) bool {
	out, result := d.query.Capture(ctx, []string{"dpkg-query", "-W", "-f=${db:Status-Status}", d.systemPackage})
	if !result.Succeeded {
		return false
	}
	return strings.TrimSpace(out.Stdout) == "installed"
}
