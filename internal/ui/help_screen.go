package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jobtrack/internal/theme"
)

// HelpScreen lists every key binding. It is shown wrapped in a Dialog
// and dismissed with any key.
type HelpScreen struct {
	Dismissed bool
	keys      KeyMap
}

// NewHelpScreen creates a help screen for the given key map.
func NewHelpScreen(keys KeyMap) *HelpScreen {
	return &HelpScreen{keys: keys}
}

func (hs *HelpScreen) Init() tea.Cmd {
	return nil
}

func (hs *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		hs.Dismissed = true
	}
	return hs, nil
}

func (hs *HelpScreen) View() string {
	sections := []string{"Navigation", "Applications", "Filtering", "Session"}

	var b strings.Builder
	for i, group := range hs.keys.FullHelp() {
		b.WriteString(theme.HeaderStyle.Render(sections[i]))
		b.WriteString("\n")
		for _, binding := range group {
			b.WriteString("  ")
			b.WriteString(theme.HintKeyStyle.Render(pad(binding.Help().Key, 12)))
			b.WriteString(theme.HintLabelStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.CaptionStyle.Render("press any key to close"))
	return b.String()
}
