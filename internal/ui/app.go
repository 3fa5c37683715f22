// Package ui is the interactive browse surface. It only ever reads
// store snapshots and routes changes through the domain service; all
// state invariants live below it.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"termin/internal/core"
	"termin/internal/model"
	"termin/internal/store"
)

var tabs = []string{
	model.TabAppointments,
	model.TabCalendar,
	model.TabCategories,
	model.TabSettings,
}

type Model struct {
	svc *core.Service
	st  *store.Store

	state  model.AppState
	tab    int
	cursor int
	search textinput.Model

	width, height int
	status        string
	storagePath   string

	theme Theme
}

func NewModel(svc *core.Service, st *store.Store, storagePath string) Model {
	state := st.Get()

	search := textinput.New()
	search.Placeholder = "search title, location, notes…"
	search.CharLimit = 120
	search.Width = 40
	search.SetValue(state.Preferences.AppointmentFilters.Search)

	tab := 0
	for i, name := range tabs {
		if name == state.Preferences.ActiveTab {
			tab = i
		}
	}

	return Model{
		svc:         svc,
		st:          st,
		state:       state,
		tab:         tab,
		search:      search,
		storagePath: storagePath,
		theme:       DefaultTheme,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.search.Blur()
				m.persistSearch()
				return m, nil
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				m.cursor = 0
				return m, cmd
			}
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "right":
			return m.switchTab((m.tab + 1) % len(tabs)), nil
		case "shift+tab", "left":
			return m.switchTab((m.tab + len(tabs) - 1) % len(tabs)), nil
		case "1", "2", "3", "4":
			return m.switchTab(int(msg.String()[0] - '1')), nil
		case "/":
			if m.tab == 0 {
				m.search.Focus()
			}
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < m.visibleCount()-1 {
				m.cursor++
			}
			return m, nil
		case "x":
			return m.deleteSelected(), nil
		case "r":
			m.state = m.st.Get()
			m.status = "Refreshed."
			return m, nil
		}
	}
	return m, nil
}

func (m Model) switchTab(tab int) Model {
	if tab < 0 || tab >= len(tabs) {
		return m
	}
	m.tab = tab
	m.cursor = 0
	// ActiveTab mirrors the open tab across sessions.
	m.st.Update(func(draft model.AppState) model.AppState {
		draft.Preferences.ActiveTab = tabs[tab]
		return draft
	})
	m.state = m.st.Get()
	return m
}

func (m *Model) persistSearch() {
	search := m.search.Value()
	m.st.Update(func(draft model.AppState) model.AppState {
		draft.Preferences.AppointmentFilters.Search = search
		return draft
	})
	m.state = m.st.Get()
}

func (m Model) deleteSelected() Model {
	if m.tab != 0 {
		return m
	}
	visible := m.visibleAppointments()
	if m.cursor >= len(visible) {
		return m
	}
	if m.svc.DeleteAppointment(visible[m.cursor].ID) {
		m.status = "Deleted " + visible[m.cursor].Title + "."
	}
	m.state = m.st.Get()
	if m.cursor >= m.visibleCount() && m.cursor > 0 {
		m.cursor--
	}
	return m
}

func (m Model) visibleAppointments() []model.Appointment {
	filters := m.state.Preferences.AppointmentFilters
	filters.Search = m.search.Value()
	filtered := core.FilterAppointments(m.state.Appointments, filters)
	return core.SortAppointments(filtered, filters.Sort, core.CategoriesByID(m.state.Categories))
}

func (m Model) visibleCount() int {
	switch m.tab {
	case 0:
		return len(m.visibleAppointments())
	case 2:
		return len(m.state.Categories)
	}
	return 0
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Termin"))
	b.WriteString("  ")
	for i, name := range tabs {
		style := m.theme.TabIdle
		if i == m.tab {
			style = m.theme.TabActive
		}
		b.WriteString(style.Render(name))
		b.WriteString("  ")
	}
	b.WriteString("\n\n")

	switch m.tab {
	case 0:
		b.WriteString(m.viewAppointments())
	case 1:
		b.WriteString(m.viewCalendar())
	case 2:
		b.WriteString(m.viewCategories())
	case 3:
		b.WriteString(m.viewSettings())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.Hint.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Hint.Render("tab/1-4 switch · / search · j/k move · x delete · q quit"))
	return b.String()
}

func (m Model) viewAppointments() string {
	var b strings.Builder

	b.WriteString(m.theme.Label.Render("filter: "))
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.visibleAppointments()
	if len(visible) == 0 {
		b.WriteString(m.theme.Hint.Render("No appointments match."))
		b.WriteString("\n")
		return b.String()
	}

	byID := core.CategoriesByID(m.state.Categories)
	for i, a := range visible {
		marker := "  "
		line := fmt.Sprintf("%s %s  %s  %s", a.Date, a.StartTime, a.Title, byID[a.CategoryID].Name)
		if a.Status == model.StatusCancelled {
			line = m.theme.Cancelled.Render(line)
		}
		if i == m.cursor {
			marker = "> "
			line = m.theme.Selected.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	inRange := core.FilterByRange(m.state.Appointments, m.state.Preferences.CalendarRange)
	groups := core.GroupAppointmentsByDate(inRange)
	if len(groups) == 0 {
		b.WriteString(m.theme.Hint.Render("Nothing scheduled in range."))
		b.WriteString("\n")
		return b.String()
	}

	for _, g := range groups {
		b.WriteString(m.theme.Date.Render(g.Date))
		b.WriteString("\n")
		for _, a := range g.Items {
			b.WriteString(fmt.Sprintf("  %s  %s\n", a.StartTime, a.Title))
		}
	}
	return b.String()
}

func (m Model) viewCategories() string {
	var b strings.Builder
	for i, c := range m.state.Categories {
		line := fmt.Sprintf("%-16s %-10s %s", c.Name, c.Color, m.theme.Hint.Render(c.ID))
		if i == m.cursor {
			line = m.theme.Selected.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m Model) viewSettings() string {
	rows := [][2]string{
		{"Appointments", fmt.Sprintf("%d", len(m.state.Appointments))},
		{"Categories", fmt.Sprintf("%d", len(m.state.Categories))},
		{"Storage", m.storagePath},
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(m.theme.Label.Render(fmt.Sprintf("%-14s", row[0])))
		b.WriteString(m.theme.Value.Render(row[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render("use `termin export` / `termin import` / `termin reset` to manage data"))
	b.WriteString("\n")
	return b.String()
}

// Run starts the TUI and blocks until the user quits.
func Run(svc *core.Service, st *store.Store, storagePath string) error {
	_, err := tea.NewProgram(NewModel(svc, st, storagePath), tea.WithAltScreen()).Run()
	return err
}
