package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// Update applies msg and returns the new model. Unknown messages are ignored.
func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case StageStartMsg:
		m.ensureStage(msg.Stage)
		stage := m.stages[msg.Stage]
		stage.Status = model.StatusRunning
		stage.Timestamp = msg.Time
		m.stages[msg.Stage] = stage
		return m
	case StageCompleteMsg:
		name := msg.Result.Stage
		if name == "" {
			return m
		}
		if msg.Result.Status == model.StatusRunning {
			return m.Update(StageStartMsg{Stage: name, Time: msg.Result.Timestamp})
		}
		m.ensureStage(name)
		previouslyDone := isDone(m.stages[name].Status)
		m.stages[name] = msg.Result
		if !previouslyDone {
			m.completed++
		}
		return m
	case FinishedMsg:
		m.state = msg.State
		m.headline = msg.Headline
		m.lines = append([]string(nil), msg.Lines...)
		m.finished = true
		return m
	case CancelledMsg:
		m.state = msg.State
		m.headline = msg.Headline
		m.lines = nil
		m.cancelled = true
		m.finished = true
		return m
	}

	return m
}
