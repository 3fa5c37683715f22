package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"termin/internal/model"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{
		Format: FormatDefault,
		Width:  width,
		Color:  true,
	}
}

// AppointmentList is a page of appointments plus pagination metadata.
type AppointmentList struct {
	Appointments []model.Appointment `json:"appointments"`
	Total        int                 `json:"total"`
	Page         int                 `json:"page,omitempty"`
	PerPage      int                 `json:"per_page,omitempty"`
	TotalPages   int                 `json:"total_pages,omitempty"`
	Filters      map[string]string   `json:"filters,omitempty"`
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	ID        lipgloss.Style
	Date      lipgloss.Style
	Time      lipgloss.Style
	Category  lipgloss.Style
	Location  lipgloss.Style
	Notes     lipgloss.Style
	Status    lipgloss.Style
	Done      lipgloss.Style
	Cancelled lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
}

// InitStyles initializes the style set
func InitStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.ID = lipgloss.NewStyle().Faint(true)
		styles.Date = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))
		styles.Time = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
		styles.Category = lipgloss.NewStyle().Foreground(lipgloss.Color("#CBA6F7"))
		styles.Location = lipgloss.NewStyle().Faint(true)
		styles.Notes = lipgloss.NewStyle().Faint(true)
		styles.Status = lipgloss.NewStyle()
		styles.Done = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Cancelled = lipgloss.NewStyle().Strikethrough(true).Faint(true)
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.ID = lipgloss.NewStyle()
		styles.Date = lipgloss.NewStyle().Bold(true)
		styles.Time = lipgloss.NewStyle()
		styles.Category = lipgloss.NewStyle()
		styles.Location = lipgloss.NewStyle()
		styles.Notes = lipgloss.NewStyle()
		styles.Status = lipgloss.NewStyle()
		styles.Done = lipgloss.NewStyle()
		styles.Cancelled = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
		styles.Error = lipgloss.NewStyle()
	}

	return styles
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{
		config: config,
		styles: InitStyles(config.Color),
	}
}

// Styles exposes the renderer's style set for callers composing their
// own lines (calendar groups, error lists).
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderAppointmentList renders appointments according to the
// configured format. categories resolves ids to names for display.
func (r *Renderer) RenderAppointmentList(list *AppointmentList, categories map[string]model.Category) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list, categories)
	case FormatQuiet:
		return r.renderQuiet(list)
	default:
		return r.renderDefault(list, categories)
	}
}

func (r *Renderer) renderDefault(list *AppointmentList, categories map[string]model.Category) (string, error) {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Appointments"))
	if list.Filters != nil && list.Filters["range"] != "" {
		b.WriteString("  ")
		b.WriteString(r.styles.Meta.Render(list.Filters["range"]))
	}
	b.WriteString("\n")
	b.WriteString(r.separator())

	if list.TotalPages > 1 {
		pagination := NewPagination(list.Total, list.PerPage, list.Page)
		b.WriteString(r.styles.Meta.Render(pagination.FormatSummary()))
		b.WriteString("\n")
		b.WriteString(r.separator())
	}

	if len(list.Appointments) == 0 {
		b.WriteString(r.styles.Meta.Render("No appointments."))
		b.WriteString("\n")
		return b.String(), nil
	}

	for _, a := range list.Appointments {
		b.WriteString(r.renderSingle(a, categories))
		b.WriteString(r.separator())
	}

	if list.TotalPages > 1 {
		pagination := NewPagination(list.Total, list.PerPage, list.Page)
		if nav := pagination.FormatNavigation(); nav != "" {
			b.WriteString(r.styles.Meta.Render(nav))
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func (r *Renderer) renderSingle(a model.Appointment, categories map[string]model.Category) string {
	var b strings.Builder

	when := a.StartTime
	if a.EndTime != "" {
		when += "–" + a.EndTime
	}
	meta := []string{
		r.styles.ID.Render("[" + shortID(a.ID) + "]"),
		r.styles.Date.Render(FormatDateLabel(a.Date)),
		r.styles.Time.Render(when),
		r.styles.Category.Render(categoryName(categories, a.CategoryID)),
	}
	if a.Status != model.StatusPlanned {
		meta = append(meta, r.statusStyle(a.Status).Render(a.Status))
	}
	b.WriteString(strings.Join(meta, " "))
	b.WriteString("\n")

	title := a.Title
	if a.Status == model.StatusCancelled {
		title = r.styles.Cancelled.Render(title)
	}
	b.WriteString("  " + title + "\n")

	if a.Location != "" {
		b.WriteString(r.styles.Location.Render("  @ "+a.Location) + "\n")
	}
	if a.Notes != "" {
		b.WriteString(r.styles.Notes.Render("  "+a.Notes) + "\n")
	}
	return b.String()
}

func (r *Renderer) renderTable(list *AppointmentList, categories map[string]model.Category) (string, error) {
	var b strings.Builder

	header := fmt.Sprintf("%-10s %-12s %-11s %-24s %-12s %s",
		"ID", "DATE", "TIME", "TITLE", "CATEGORY", "STATUS")
	b.WriteString(r.styles.Title.Render(header))
	b.WriteString("\n")

	for _, a := range list.Appointments {
		when := a.StartTime
		if a.EndTime != "" {
			when += "-" + a.EndTime
		}
		b.WriteString(fmt.Sprintf("%-10s %-12s %-11s %-24s %-12s %s\n",
			shortID(a.ID),
			a.Date,
			when,
			truncate(a.Title, 24),
			truncate(categoryName(categories, a.CategoryID), 12),
			a.Status,
		))
	}
	return b.String(), nil
}

func (r *Renderer) renderJSON(list *AppointmentList) (string, error) {
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", err
	}
	return string(raw) + "\n", nil
}

func (r *Renderer) renderCSV(list *AppointmentList) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"id", "title", "date", "startTime", "endTime", "categoryId", "location", "notes", "status"}); err != nil {
		return "", err
	}
	for _, a := range list.Appointments {
		record := []string{a.ID, a.Title, a.Date, a.StartTime, a.EndTime, a.CategoryID, a.Location, a.Notes, a.Status}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}

func (r *Renderer) renderQuiet(list *AppointmentList) (string, error) {
	var b strings.Builder
	for _, a := range list.Appointments {
		b.WriteString(a.ID)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Renderer) separator() string {
	return r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120))) + "\n"
}

func (r *Renderer) statusStyle(status string) lipgloss.Style {
	switch status {
	case model.StatusDone:
		return r.styles.Done
	case model.StatusCancelled:
		return r.styles.Cancelled
	}
	return r.styles.Status
}

func categoryName(categories map[string]model.Category, id string) string {
	if c, ok := categories[id]; ok {
		return c.Name
	}
	return id
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
