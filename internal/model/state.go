package model

// InstallationState is derived on every run by probing the host; it is never persisted.
type InstallationState string

const (
	InstallVerified              InstallationState = "verified"
	InstallPythonPackageMissing  InstallationState = "python-package-missing"
	InstallSystemDepsMissing     InstallationState = "system-deps-missing"
	InstallPlatformUnsupported   InstallationState = "platform-unsupported"
	InstallPrivilegeInsufficient InstallationState = "privilege-insufficient"
)

// String implements fmt.Stringer.
func (s InstallationState) String() string {
	return string(s)
}

// State is a node in the bootstrap orchestrator's state machine.
type State string

const (
	StateStart              State = "start"
	StateAlreadyFunctional  State = "already-functional"
	StateCheckingSystemDeps State = "checking-system-deps"
	StateSystemDepsFailed   State = "system-deps-failed"
	StateInstallingBinding  State = "installing-binding"
	StateBindingFailed      State = "binding-failed"
	StateReVerifying        State = "re-verifying"
	StateVerifiedSuccess    State = "verified-success"
	StateVerifiedFailure    State = "verified-failure"
)

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition leaves the state.
func (s State) IsTerminal() bool {
	switch s {
	case StateAlreadyFunctional, StateVerifiedSuccess,
		StateSystemDepsFailed, StateBindingFailed, StateVerifiedFailure:
		return true
	default:
		return false
	}
}

// Succeeded reports whether the state is a terminal success, i.e. the environment is ready.
func (s State) Succeeded() bool {
	return s == StateAlreadyFunctional || s == StateVerifiedSuccess
}

// ExitCode maps a terminal state to the process exit status.
func (s State) ExitCode() int {
	if s.Succeeded() {
		return 0
	}
	return 1
}
