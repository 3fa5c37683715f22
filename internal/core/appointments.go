package core

import (
	"sort"
	"strings"

	"termin/internal/model"
	"termin/internal/utils"
)

// validateAppointment trims every string field, defaults status, and
// collects all applicable errors instead of failing fast. The cleaned
// fields are returned alongside the errors so a successful validation
// can be applied directly.
func validateAppointment(data model.Appointment, categories []model.Category) (model.Appointment, []string) {
	var errs []string

	title := strings.TrimSpace(data.Title)
	date := strings.TrimSpace(data.Date)
	start := strings.TrimSpace(data.StartTime)
	end := strings.TrimSpace(data.EndTime)
	categoryID := strings.TrimSpace(data.CategoryID)
	location := strings.TrimSpace(data.Location)
	notes := strings.TrimSpace(data.Notes)
	status := strings.TrimSpace(data.Status)
	if status == "" {
		status = model.StatusPlanned
	}

	if title == "" {
		errs = append(errs, "Title is required.")
	}
	if date == "" || !utils.IsValidDate(date) {
		errs = append(errs, "Date is required and must be valid.")
	}
	if start == "" || !utils.IsValidTime(start) {
		errs = append(errs, "Start time is required and must be valid.")
	}
	if end != "" && !utils.IsValidTime(end) {
		errs = append(errs, "End time must be valid.")
	}
	if end != "" && utils.IsValidTime(start) && utils.IsValidTime(end) &&
		utils.CompareTimes(start, end) >= 0 {
		errs = append(errs, "End time must be after start time.")
	}
	if categoryID == "" {
		errs = append(errs, "Category is required.")
	}
	if _, ok := CategoryByID(categories, categoryID); !ok {
		errs = append(errs, "Select a valid category.")
	}
	if !model.ValidStatus(status) {
		errs = append(errs, "Status must be planned, done, or cancelled.")
	}

	return model.Appointment{
		Title:      title,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		CategoryID: categoryID,
		Location:   location,
		Notes:      notes,
		Status:     status,
	}, errs
}

// CreateAppointment validates data, assigns a fresh id and timestamps,
// and appends the record in insertion order.
func (s *Service) CreateAppointment(data model.Appointment) Result {
	state := s.store.Get()
	value, errs := validateAppointment(data, state.Categories)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	now := s.now().UnixMilli()
	appt := value
	appt.ID = s.newID()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	s.store.Update(func(draft model.AppState) model.AppState {
		draft.Appointments = append(draft.Appointments, appt)
		return draft
	})
	return Result{OK: true, Value: appt}
}

// UpdateAppointment validates first and looks the id up second, so a
// missing appointment is only ever reported for otherwise-valid input.
// On success the validated fields are merged over the existing record
// in place, preserving position and CreatedAt.
func (s *Service) UpdateAppointment(id string, data model.Appointment) Result {
	state := s.store.Get()
	value, errs := validateAppointment(data, state.Categories)
	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	var updated *model.Appointment
	s.store.Update(func(draft model.AppState) model.AppState {
		for i := range draft.Appointments {
			if draft.Appointments[i].ID != id {
				continue
			}
			current := draft.Appointments[i]
			next := value
			next.ID = current.ID
			next.CreatedAt = current.CreatedAt
			next.UpdatedAt = s.now().UnixMilli()
			draft.Appointments[i] = next
			updated = &next
			break
		}
		return draft
	})

	if updated == nil {
		return Result{Errors: []string{"Appointment not found."}}
	}
	return Result{OK: true, Value: *updated}
}

// DeleteAppointment removes the matching record and reports whether a
// removal occurred. A missing id is not an error.
func (s *Service) DeleteAppointment(id string) bool {
	removed := false
	s.store.Update(func(draft model.AppState) model.AppState {
		next := make([]model.Appointment, 0, len(draft.Appointments))
		for _, a := range draft.Appointments {
			if a.ID == id {
				removed = true
				continue
			}
			next = append(next, a)
		}
		draft.Appointments = next
		return draft
	})
	return removed
}

// AppointmentByID looks up a record in the current snapshot.
func (s *Service) AppointmentByID(id string) (model.Appointment, bool) {
	for _, a := range s.store.Get().Appointments {
		if a.ID == id {
			return a, true
		}
	}
	return model.Appointment{}, false
}

// FilterAppointments applies search, category, and inclusive date
// bounds. Empty filter fields match everything; dates compare
// lexicographically, which equals chronological order for zero-padded
// ISO dates.
func FilterAppointments(appointments []model.Appointment, filters model.AppointmentFilters) []model.Appointment {
	search := utils.NormalizeText(filters.Search)
	categoryID := utils.NormalizeText(filters.CategoryID)

	out := make([]model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if search != "" && !matchesSearch(a, search) {
			continue
		}
		if categoryID != "" && utils.NormalizeText(a.CategoryID) != categoryID {
			continue
		}
		if filters.From != "" && a.Date < filters.From {
			continue
		}
		if filters.To != "" && a.Date > filters.To {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesSearch(a model.Appointment, search string) bool {
	for _, field := range []string{a.Title, a.Location, a.Notes} {
		if strings.Contains(utils.NormalizeText(field), search) {
			return true
		}
	}
	return false
}

// compareDateTime orders by date, then start time, then title.
func compareDateTime(a, b model.Appointment) int {
	if a.Date != b.Date {
		return strings.Compare(a.Date, b.Date)
	}
	if c := utils.CompareTimes(a.StartTime, b.StartTime); c != 0 {
		return c
	}
	return strings.Compare(a.Title, b.Title)
}

// SortAppointments returns a newly ordered copy; the input is never
// mutated. Unknown sort keys fall back to dateAsc.
func SortAppointments(appointments []model.Appointment, sortKey string, categoriesByID map[string]model.Category) []model.Appointment {
	out := append([]model.Appointment(nil), appointments...)
	switch sortKey {
	case model.SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return compareDateTime(out[j], out[i]) < 0
		})
	case model.SortCategory:
		sort.SliceStable(out, func(i, j int) bool {
			nameI := categoriesByID[out[i].CategoryID].Name
			nameJ := categoriesByID[out[j].CategoryID].Name
			if nameI != nameJ {
				return nameI < nameJ
			}
			return compareDateTime(out[i], out[j]) < 0
		})
	case model.SortCreatedAt:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt > out[j].CreatedAt
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return compareDateTime(out[i], out[j]) < 0
		})
	}
	return out
}

// CompareByStartTime orders same-date appointments by minute of day,
// tie-broken by title. Malformed times sort as midnight.
func CompareByStartTime(a, b model.Appointment) int {
	ma, _ := utils.TimeToMinutes(a.StartTime)
	mb, _ := utils.TimeToMinutes(b.StartTime)
	if ma != mb {
		if ma < mb {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Title, b.Title)
}
