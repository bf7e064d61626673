package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and automatically adds a header
// with title, so every dialog in the application looks the same.
//
// Usage:
//
//	form := NewApplicationForm(...)
//	dialog := NewDialog("New Application", form, devMode)
//	dialog.Init()       // Delegates to form.Init()
//	dialog.Update(msg)  // Delegates to form.Update(msg)
//	dialog.View()       // Returns header + form.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a dialog wrapper that prepends renderDialogHeader()
// to the wrapped content's View().
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
// The returned tea.Model is the Dialog itself with updated content.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View prepends the dialog header to the wrapped content's view.
func (d *Dialog) View() string {
	return renderDialogHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion, so callers
// can read content-specific fields after Update().
func (d *Dialog) Content() tea.Model {
	return d.content
}
