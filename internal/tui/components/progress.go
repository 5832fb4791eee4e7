// Package components holds the pieces the bootstrap report is assembled from.
package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders how many bootstrap stages have reached a final status.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress component for the given number of stages.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24
	return Progress{bar: bar, total: total}
}

// View renders the bar for the provided completion count.
// A run that stops early leaves the bar short of full.
func (p Progress) View(completed int) string {
	if completed > p.total {
		completed = p.total
	}
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(completed)/float64(p.total))
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d stages", completed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
