package model

// DetailNotInstalled is the failure detail reported when the binding cannot be loaded.
const DetailNotInstalled = "not installed"

// VerificationOutcome is the single source of truth for whether the binding is usable.
type VerificationOutcome struct {
	IsFunctional bool
	// Loaded is true when the binding imported but the smoke test may still have failed.
	Loaded        bool
	FailureDetail string
}

// Functional returns a successful outcome.
func Functional() VerificationOutcome {
	return VerificationOutcome{IsFunctional: true, Loaded: true}
}

// NotInstalled returns the outcome for a binding that could not be loaded.
func NotInstalled() VerificationOutcome {
	return VerificationOutcome{FailureDetail: DetailNotInstalled}
}

// Broken returns the outcome for a binding that loads but fails its smoke test.
func Broken(detail string) VerificationOutcome {
	return VerificationOutcome{Loaded: true, FailureDetail: detail}
}
