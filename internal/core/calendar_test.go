package core

import (
	"testing"

	"termin/internal/model"
)

func TestFilterByRange(t *testing.T) {
	list := fixtureAppointments()

	cases := []struct {
		name string
		r    model.CalendarRange
		want string
	}{
		{"unbounded", model.CalendarRange{}, "a1,a2,a3"},
		{"from", model.CalendarRange{From: "2024-05-10"}, "a1,a3"},
		{"to", model.CalendarRange{To: "2024-05-09"}, "a2"},
		{"window", model.CalendarRange{From: "2024-05-09", To: "2024-05-09"}, "a2"},
		{"empty window", model.CalendarRange{From: "2024-06-01", To: "2024-06-30"}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ids(FilterByRange(list, c.r)); got != c.want {
				t.Fatalf("ids = %q, want %q", got, c.want)
			}
		})
	}
}

func TestGroupAppointmentsByDate(t *testing.T) {
	groups := GroupAppointmentsByDate(fixtureAppointments())

	if len(groups) != 2 {
		t.Fatalf("groups = %+v", groups)
	}
	if groups[0].Date != "2024-05-09" || ids(groups[0].Items) != "a2" {
		t.Fatalf("first group = %+v", groups[0])
	}
	// Second day holds two entries ordered by start time.
	if groups[1].Date != "2024-05-10" || ids(groups[1].Items) != "a1,a3" {
		t.Fatalf("second group = %+v", groups[1])
	}
}

func TestGroupAppointmentsByDateEmpty(t *testing.T) {
	if groups := GroupAppointmentsByDate(nil); len(groups) != 0 {
		t.Fatalf("groups = %+v", groups)
	}
}
