package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPad_FixedDisplayWidth(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
	}{
		{"empty", "", 12},
		{"short ascii", "Acme", 12},
		{"exact fit", strings.Repeat("a", 10), 12},
		{"long ascii", strings.Repeat("a", 40), 12},
		{"double-width runes", "株式会社マネーフォワード", 20},
		{"long double-width runes", strings.Repeat("社", 30), 12},
		{"mixed widths", "Acme 株式会社", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			require.NotPanics(t, func() {
				got = pad(tt.in, tt.width)
			})
			assert.Equal(t, tt.width, lipgloss.Width(got))
		})
	}
}

func TestPad_TruncatesWithEllipsis(t *testing.T) {
	got := pad("a very long company name", 12)
	assert.Contains(t, got, "…")
	assert.Equal(t, 12, lipgloss.Width(got))

	got = pad("株式会社マネーフォワード", 20)
	assert.Contains(t, got, "…")
}
