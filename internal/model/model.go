package model

// Appointment statuses.
const (
	StatusPlanned   = "planned"
	StatusDone      = "done"
	StatusCancelled = "cancelled"
)

// Tabs persisted in preferences.
const (
	TabAppointments = "appointments"
	TabCalendar     = "calendar"
	TabCategories   = "categories"
	TabSettings     = "settings"
)

// CategoryColors is the fixed palette a category color must come from.
var CategoryColors = []string{
	"blue", "green", "orange", "red", "purple",
	"teal", "indigo", "pink", "yellow", "gray",
}

// SortKeys accepted by appointment sorting.
const (
	SortDateAsc   = "dateAsc"
	SortDateDesc  = "dateDesc"
	SortCategory  = "category"
	SortCreatedAt = "createdAt"
)

// Appointment is a single scheduled entry. Times are naive local
// calendar dates ("2006-01-02") and 24h wall times ("15:04");
// CreatedAt/UpdatedAt are milliseconds since the epoch.
type Appointment struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CategoryID string `json:"categoryId"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

// Category groups appointments. The ID is a slug derived from the name
// and is stable for the category's lifetime.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AppointmentFilters mirrors the last-used appointment list filters.
type AppointmentFilters struct {
	Search     string `json:"search"`
	CategoryID string `json:"categoryId"`
	From       string `json:"from"`
	To         string `json:"to"`
	Sort       string `json:"sort"`
}

// CalendarRange mirrors the last-used calendar date bounds.
type CalendarRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Preferences is persisted UI state, kept for continuity across sessions.
type Preferences struct {
	ActiveTab          string             `json:"activeTab"`
	AppointmentFilters AppointmentFilters `json:"appointmentFilters"`
	CalendarRange      CalendarRange      `json:"calendarRange"`
}

// AppState is the full application snapshot. Appointments and categories
// keep insertion order.
type AppState struct {
	Appointments []Appointment `json:"appointments"`
	Categories   []Category    `json:"categories"`
	Preferences  Preferences   `json:"preferences"`
}

// Clone returns a deep, independent copy. Every field is a value type,
// so fresh slices are all that is needed. Nil and empty collections
// survive as-is.
func (s AppState) Clone() AppState {
	out := AppState{Preferences: s.Preferences}
	if s.Appointments != nil {
		out.Appointments = make([]Appointment, len(s.Appointments))
		copy(out.Appointments, s.Appointments)
	}
	if s.Categories != nil {
		out.Categories = make([]Category, len(s.Categories))
		copy(out.Categories, s.Categories)
	}
	return out
}

func DefaultCategories() []Category {
	return []Category{
		{ID: "general", Name: "General", Color: "blue"},
		{ID: "doctors", Name: "Doctors", Color: "red"},
		{ID: "house", Name: "House", Color: "orange"},
		{ID: "friends", Name: "Friends", Color: "green"},
		{ID: "work", Name: "Work", Color: "indigo"},
	}
}

func DefaultPreferences() Preferences {
	return Preferences{
		ActiveTab: TabAppointments,
		AppointmentFilters: AppointmentFilters{
			Sort: SortDateAsc,
		},
	}
}

func DefaultState() AppState {
	return AppState{
		Appointments: []Appointment{},
		Categories:   DefaultCategories(),
		Preferences:  DefaultPreferences(),
	}
}

func ValidStatus(s string) bool {
	return s == StatusPlanned || s == StatusDone || s == StatusCancelled
}

func ValidColor(c string) bool {
	for _, color := range CategoryColors {
		if c == color {
			return true
		}
	}
	return false
}

func ValidTab(t string) bool {
	switch t {
	case TabAppointments, TabCalendar, TabCategories, TabSettings:
		return true
	}
	return false
}
