package bootstrap

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/solverboot/internal/config"
	"github.com/alexisbeaulieu97/solverboot/internal/installer"
	"github.com/alexisbeaulieu97/solverboot/internal/model"
	bootErrors "github.com/alexisbeaulieu97/solverboot/pkg/errors"
)

// Remediation is the operator guidance for a finished run.
type Remediation struct {
	Headline string
	Lines    []string
}

// RemediationFor returns guidance for the report's terminal state.
func RemediationFor(report *Report, cfg *config.Config) Remediation {
	switch report.State {
	case model.StateAlreadyFunctional:
		return Remediation{Headline: fmt.Sprintf("%s is already installed and working; no action needed", cfg.Binding)}

	case model.StateVerifiedSuccess:
		return Remediation{
			Headline: fmt.Sprintf("%s installation completed successfully", cfg.Binding),
			Lines:    installer.UsageSnippet(cfg),
		}

	case model.StateSystemDepsFailed:
		rem := Remediation{Headline: "Failed to install system dependencies"}
		var platformErr *bootErrors.PlatformError
		if errors.As(report.Err, &platformErr) {
			rem.Headline = fmt.Sprintf("Automatic system installation is only available on Debian/Ubuntu (%s)", platformErr.Reason)
			rem.Lines = []string{"Follow the manual installation instructions at:", cfg.ManualURL}
			return rem
		}
		rem.Lines = append([]string{"Install them manually:"}, installer.ManualSystemSteps(cfg)...)
		var privErr *bootErrors.PrivilegeError
		if errors.As(report.Err, &privErr) && privErr.Suggested != "" {
			rem.Lines = append(rem.Lines, "Or re-run with elevated privileges:", privErr.Suggested)
		}
		return rem

	case model.StateBindingFailed:
		return Remediation{
			Headline: fmt.Sprintf("Failed to install the %s Python package", cfg.Binding),
			Lines:    []string{"Try installing it manually:", installer.ManualBindingStep(cfg)},
		}

	case model.StateVerifiedFailure:
		if report.Final == nil || !report.Final.Loaded {
			return Remediation{
				Headline: fmt.Sprintf("%s was installed by pip but %s still cannot import it", cfg.Binding, cfg.Python),
				Lines: []string{
					"pip may have installed into a different interpreter or user site. Compare:",
					fmt.Sprintf("%s -m pip show %s", cfg.Python, cfg.Binding),
					fmt.Sprintf("%s -c 'import sys; print(sys.path)'", cfg.Python),
					"or refer to " + cfg.ManualURL,
				},
			}
		}
		return Remediation{
			Headline: fmt.Sprintf("%s is installed but not working: %s", cfg.Binding, report.Final.FailureDetail),
			Lines: []string{
				"The installers succeeded, so re-running them will not help.",
				"Check that the native solver library can be loaded by the Python interpreter,",
				"or refer to " + cfg.ManualURL,
			},
		}
	}

	return Remediation{Headline: fmt.Sprintf("bootstrap stopped in state %s", report.State)}
}
