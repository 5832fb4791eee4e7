package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		completed int
		expected  string
	}{
		{"no stages", 0, 0, "0/0 stages"},
		{"partial", 4, 2, "2/4 stages"},
		{"complete", 4, 4, "4/4 stages"},
		{"clamps overflow", 3, 5, "3/3 stages"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			view := NewProgress(tt.total).View(tt.completed)
			require.Contains(t, view, tt.expected)
		})
	}
}

func TestProgressViewIncludesBar(t *testing.T) {
	t.Parallel()

	view := NewProgress(4).View(2)
	label := "2/4 stages"
	require.Greater(t, len(strings.TrimSpace(view)), len(label),
		"expected view to contain progress bar in addition to label")
}
