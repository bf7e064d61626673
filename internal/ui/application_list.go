package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"jobtrack/internal/config"
	"jobtrack/internal/domain"
	"jobtrack/internal/services"
	"jobtrack/internal/theme"
)

// ApplicationList renders the paged application table with the status
// count bar, search input and pagination footer. All derived state
// (visible rows, counts, page numbers) comes from engine.Snapshot();
// the component itself only tracks the cursor and input focus.
type ApplicationList struct {
	cursor       int
	devMode      bool
	engine       *services.ViewEngine
	errorManager *ErrorManager
	height       int
	keys         KeyMap
	loading      bool
	searchInput  textinput.Model
	searching    bool
	spinner      spinner.Model
	width        int
}

// NewApplicationList creates the list component over the view engine.
func NewApplicationList(engine *services.ViewEngine, errorManager *ErrorManager, keys KeyMap, devMode bool) *ApplicationList {
	search := textinput.New()
	search.Placeholder = "company, title or location"
	search.Prompt = "/ "
	search.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.SpinnerStyle

	return &ApplicationList{
		devMode:      devMode,
		engine:       engine,
		errorManager: errorManager,
		keys:         keys,
		searchInput:  search,
		spinner:      sp,
	}
}

func (al *ApplicationList) Init() tea.Cmd {
	return nil
}

// SetSize stores the terminal dimensions for layout.
func (al *ApplicationList) SetSize(width, height int) {
	al.width = width
	al.height = height
	al.searchInput.Width = min(60, width-4)
}

// SetLoading toggles the refresh spinner.
func (al *ApplicationList) SetLoading(loading bool) tea.Cmd {
	al.loading = loading
	if loading {
		return al.spinner.Tick
	}
	return nil
}

// Selected returns the application under the cursor, if any.
func (al *ApplicationList) Selected() (domain.Application, bool) {
	visible := al.engine.Snapshot().Visible
	if len(visible) == 0 {
		return domain.Application{}, false
	}
	if al.cursor >= len(visible) {
		al.cursor = len(visible) - 1
	}
	return visible[al.cursor], true
}

func (al *ApplicationList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !al.loading {
			return al, nil
		}
		var cmd tea.Cmd
		al.spinner, cmd = al.spinner.Update(msg)
		return al, cmd

	case tea.KeyMsg:
		if al.searching {
			return al.updateSearch(msg)
		}
		return al.updateKeys(msg)
	}

	return al, nil
}

// updateSearch routes keys to the search input while it has focus.
// Every edit re-applies the query, which also resets to page one.
func (al *ApplicationList) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		al.searching = false
		al.searchInput.Blur()
		return al, nil
	case "esc":
		al.searching = false
		al.searchInput.Blur()
		al.searchInput.SetValue("")
		al.engine.SetSearch("")
		al.cursor = 0
		return al, nil
	}

	var cmd tea.Cmd
	al.searchInput, cmd = al.searchInput.Update(msg)
	al.engine.SetSearch(al.searchInput.Value())
	al.cursor = 0
	return al, cmd
}

func (al *ApplicationList) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := al.engine.Snapshot()

	switch {
	case key.Matches(msg, al.keys.Quit):
		return al, func() tea.Msg { return QuitMsg{} }

	case key.Matches(msg, al.keys.Help):
		return al, func() tea.Msg { return ShowHelpMsg{} }

	case key.Matches(msg, al.keys.Up):
		if al.cursor > 0 {
			al.cursor--
		}

	case key.Matches(msg, al.keys.Down):
		if al.cursor < len(view.Visible)-1 {
			al.cursor++
		}

	case key.Matches(msg, al.keys.PrevPage):
		al.engine.SetPage(view.Page - 1)
		al.cursor = 0

	case key.Matches(msg, al.keys.NextPage):
		al.engine.SetPage(view.Page + 1)
		al.cursor = 0

	case key.Matches(msg, al.keys.PageSize):
		al.engine.SetPageSize(nextPageSize(view.PageSize))
		al.cursor = 0

	case key.Matches(msg, al.keys.Search):
		al.searching = true
		return al, al.searchInput.Focus()

	case key.Matches(msg, al.keys.Filter):
		al.engine.SetStatusFilter(nextStatusFilter(view.StatusFilter))
		al.cursor = 0

	case key.Matches(msg, al.keys.Refresh):
		return al, func() tea.Msg { return RefreshMsg{} }

	case key.Matches(msg, al.keys.New):
		return al, func() tea.Msg { return NewApplicationMsg{} }

	case key.Matches(msg, al.keys.Edit):
		if app, ok := al.Selected(); ok {
			return al, func() tea.Msg { return EditApplicationMsg{Application: app} }
		}

	case key.Matches(msg, al.keys.Delete):
		if app, ok := al.Selected(); ok {
			return al, func() tea.Msg { return DeleteApplicationMsg{Application: app} }
		}

	case key.Matches(msg, al.keys.Logout):
		return al, func() tea.Msg { return LogoutMsg{} }
	}

	return al, nil
}

func (al *ApplicationList) View() string {
	view := al.engine.Snapshot()
	if al.cursor >= len(view.Visible) && len(view.Visible) > 0 {
		al.cursor = len(view.Visible) - 1
	}

	var b strings.Builder
	b.WriteString(renderHeader(al.devMode, ""))
	b.WriteString("\n")
	b.WriteString(al.renderCounts(view))
	b.WriteString("\n")
	b.WriteString(al.renderFilterLine(view))
	b.WriteString("\n\n")
	b.WriteString(al.renderTable(view))
	b.WriteString("\n")
	b.WriteString(al.renderFooter(view))

	if al.errorManager.HasError() {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(al.errorManager.GetError(), max(al.width, 40))))
	}

	return b.String()
}

// renderCounts renders the per-status aggregate bar. The numbers come
// from the server-side stats endpoint, never from the local page.
func (al *ApplicationList) renderCounts(view services.View) string {
	parts := make([]string, 0, len(domain.Statuses)+1)
	parts = append(parts, theme.HeaderStyle.Render(fmt.Sprintf("%d total", view.TotalCount)))
	for _, s := range domain.Statuses {
		parts = append(parts, theme.CountStyle(s).Render(fmt.Sprintf("%s %d", s, view.Counts[s])))
	}
	return strings.Join(parts, theme.CaptionStyle.Render("  |  "))
}

func (al *ApplicationList) renderFilterLine(view services.View) string {
	filter := "All"
	if view.StatusFilter != "" {
		filter = string(view.StatusFilter)
	}
	line := theme.CaptionStyle.Render("Status: ") + theme.NormalStyle.Render(filter)

	if al.searching || al.searchInput.Value() != "" {
		line += "    " + al.searchInput.View()
	}
	if al.loading {
		line += "    " + al.spinner.View() + theme.CaptionStyle.Render("refreshing")
	}
	return line
}

func (al *ApplicationList) renderTable(view services.View) string {
	if len(view.Visible) == 0 {
		return theme.CaptionStyle.Render("No applications found")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.HeaderStyle.Render(pad("Company", 22)),
		theme.HeaderStyle.Render(pad("Title", 26)),
		theme.HeaderStyle.Render(pad("Type", 12)),
		theme.HeaderStyle.Render(pad("Location", 18)),
		theme.HeaderStyle.Render(pad("Applied", 12)),
		theme.HeaderStyle.Render("Status"),
	)

	rows := make([]string, 0, len(view.Visible)+1)
	rows = append(rows, header)
	for i, app := range view.Visible {
		style := theme.NormalStyle
		marker := "  "
		if i == al.cursor {
			style = theme.SelectedStyle
			marker = "> "
		}
		row := marker + style.Render(
			pad(app.CompanyName, 20)+
				pad(app.JobTitle, 26)+
				pad(string(app.JobType), 12)+
				pad(app.Location, 18)+
				pad(app.DateApplied.Format(domain.DateLayout), 12)) +
			theme.StatusStyle(app.Status).Render(string(app.Status))
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

func (al *ApplicationList) renderFooter(view services.View) string {
	page := fmt.Sprintf("Page %d/%d  ·  %d matching  ·  %d per page",
		view.Page+1, view.PageCount, view.FilteredCount, view.PageSize)

	hints := make([]string, 0, 8)
	for _, binding := range al.keys.ShortHelp() {
		hints = append(hints,
			theme.HintKeyStyle.Render(binding.Help().Key)+
				theme.HintLabelStyle.Render(" "+binding.Help().Desc))
	}

	return theme.CaptionStyle.Render(page) + "\n" + strings.Join(hints, theme.CaptionStyle.Render("  "))
}

// nextStatusFilter cycles All -> each status in order -> All.
func nextStatusFilter(current domain.Status) domain.Status {
	if current == "" {
		return domain.Statuses[0]
	}
	for i, s := range domain.Statuses {
		if s == current {
			if i == len(domain.Statuses)-1 {
				return ""
			}
			return domain.Statuses[i+1]
		}
	}
	return ""
}

// nextPageSize cycles through the supported page sizes.
func nextPageSize(current int) int {
	for i, size := range config.PageSizes {
		if size == current {
			return config.PageSizes[(i+1)%len(config.PageSizes)]
		}
	}
	return config.DefaultPageSize
}

// pad truncates or right-pads s to width display cells, leaving a
// separator gap. Both decisions use display width, not rune count, so
// double-width runes cannot push a cell past its column.
func pad(s string, width int) string {
	if lipgloss.Width(s) > width-2 {
		s = ansi.Truncate(s, width-2, "…")
	}
	gap := width - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	return s + strings.Repeat(" ", gap)
}
