// Package tui renders bootstrap progress from Bubbletea messages.
package tui

import (
	"time"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// StageStartMsg indicates a stage has started executing.
type StageStartMsg struct {
	Stage string
	Time  time.Time
}

// StageCompleteMsg reports that a stage has finished.
type StageCompleteMsg struct {
	Result model.StageResult
}

// CancelledMsg reports a run interrupted before it could finish. State is
// where the run stopped; nothing already applied has been rolled back.
type CancelledMsg struct {
	State    model.State
	Headline string
}

// FinishedMsg carries the terminal state and the operator guidance for it.
type FinishedMsg struct {
	State    model.State
	Headline string
	Lines    []string
}

// Model contains the state of a bootstrap run's report. It follows the
// Bubbletea Update/View shape and is fed messages directly.
type Model struct {
	binding   string
	stages    map[string]model.StageResult
	order     []string
	total     int
	completed int
	finished  bool
	cancelled bool
	state     model.State
	headline  string
	lines     []string
}

// NewModel constructs a model tracking the planned stages in order.
// Stages reported later that were not planned are appended.
func NewModel(binding string, planned []string) Model {
	m := Model{
		binding: binding,
		stages:  make(map[string]model.StageResult),
		order:   make([]string, 0, len(planned)),
	}
	for _, stage := range planned {
		m.ensureStage(stage)
	}
	return m
}

// PlannedStages returns the stages a bootstrap run walks through.
func PlannedStages(skipSystemDeps bool) []string {
	if skipSystemDeps {
		return []string{model.StageVerify, model.StageBinding, model.StageReVerify}
	}
	return []string{model.StageVerify, model.StageSystemDeps, model.StageBinding, model.StageReVerify}
}

// TotalStages returns the number of stages tracked by the model.
func (m Model) TotalStages() int {
	return m.total
}

// CompletedStages returns the number of stages that reached a final status.
func (m Model) CompletedStages() int {
	return m.completed
}

// IsFinished reports whether the run has ended.
func (m Model) IsFinished() bool {
	return m.finished
}

// IsCancelled reports whether the run was interrupted.
func (m Model) IsCancelled() bool {
	return m.cancelled
}

// State returns the state recorded by FinishedMsg or CancelledMsg.
func (m Model) State() model.State {
	return m.state
}

// Stage returns the latest result recorded for stage.
func (m Model) Stage(stage string) (model.StageResult, bool) {
	res, ok := m.stages[stage]
	return res, ok
}

func (m *Model) ensureStage(stage string) {
	if stage == "" {
		return
	}
	if _, exists := m.stages[stage]; !exists {
		m.stages[stage] = model.StageResult{Stage: stage, Status: model.StatusPending}
		m.order = append(m.order, stage)
		m.total++
	}
}

func isDone(status string) bool {
	return status == model.StatusSuccess || status == model.StatusSkipped || status == model.StatusFailed
}
