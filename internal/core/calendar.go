package core

import (
	"sort"

	"termin/internal/model"
)

// DayGroup is one calendar bucket: every appointment sharing a date.
type DayGroup struct {
	Date  string
	Items []model.Appointment
}

// FilterByRange keeps appointments whose date lies inside the inclusive
// bounds; an empty bound is unbounded on that side.
func FilterByRange(appointments []model.Appointment, r model.CalendarRange) []model.Appointment {
	out := make([]model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if r.From != "" && a.Date < r.From {
			continue
		}
		if r.To != "" && a.Date > r.To {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GroupAppointmentsByDate buckets by exact date string. Buckets come
// back in ascending date order with items ordered by start time.
func GroupAppointmentsByDate(appointments []model.Appointment) []DayGroup {
	buckets := map[string][]model.Appointment{}
	for _, a := range appointments {
		buckets[a.Date] = append(buckets[a.Date], a)
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	groups := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		items := buckets[date]
		sort.SliceStable(items, func(i, j int) bool {
			return CompareByStartTime(items[i], items[j]) < 0
		})
		groups = append(groups, DayGroup{Date: date, Items: items})
	}
	return groups
}
