package model

import (
	"time"
)

const (
	// StatusPending indicates a stage has not started yet.
	StatusPending = "pending"
	// StatusRunning indicates a stage is actively executing.
	StatusRunning = "running"
	// StatusSuccess marks a successful stage.
	StatusSuccess = "success"
	// StatusSkipped indicates the orchestrator bypassed the stage.
	StatusSkipped = "skipped"
	// StatusFailed marks a failed stage.
	StatusFailed = "failed"
)

// Stage names reported by the bootstrap orchestrator, in pipeline order.
const (
	StageVerify        = "verify"
	StageSystemDeps    = "system-deps"
	StageBinding       = "binding"
	StageReVerify      = "re-verify"
	StageExample       = "example"
	StageDelegatedInst = "delegated-install"
)

// StageResult captures the outcome of a single bootstrap stage.
type StageResult struct {
	Stage     string
	Status    string
	Message   string
	Error     error
	Duration  time.Duration
	Timestamp time.Time
}
