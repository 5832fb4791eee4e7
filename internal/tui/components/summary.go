package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/solverboot/internal/model"
)

// SummaryData aggregates what the summary needs to know about a run.
type SummaryData struct {
	Total     int
	Completed int
	Finished  bool
	Cancelled bool
	State     model.State
}

// Summary renders a textual run summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Stages: %d/%d completed", s.data.Completed, s.data.Total))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Bootstrap cancelled")
	case !s.data.Finished:
	case s.data.State == "":
		lines = append(lines, "Bootstrap stopped")
	case s.data.State.Succeeded():
		lines = append(lines, fmt.Sprintf("Bootstrap succeeded (%s)", s.data.State))
	default:
		lines = append(lines, fmt.Sprintf("Bootstrap failed (%s)", s.data.State))
	}

	return strings.Join(lines, "\n")
}
