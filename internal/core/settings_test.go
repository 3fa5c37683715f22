package core

import (
	"encoding/json"
	"reflect"
	"testing"

	"termin/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	svc.AddCategory("Gym", "teal")
	svc.CreateAppointment(model.Appointment{
		Title: "Leg day", Date: "2024-05-10", StartTime: "18:00", EndTime: "19:30",
		CategoryID: "gym", Notes: "bring towel",
	})
	svc.store.Update(func(draft model.AppState) model.AppState {
		draft.Preferences.AppointmentFilters.Sort = model.SortDateDesc
		draft.Preferences.ActiveTab = model.TabCalendar
		return draft
	})
	before := svc.store.Get()

	text, err := svc.ExportText()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if result := ValidateImportPayload(payload); !result.Valid {
		t.Fatalf("export does not validate: %v", result.Errors)
	}

	fresh, _, _ := newTestService()
	after := fresh.ApplyImportPayload(payload)

	if !reflect.DeepEqual(after.Appointments, before.Appointments) {
		t.Errorf("appointments differ:\n got %+v\nwant %+v", after.Appointments, before.Appointments)
	}
	if !reflect.DeepEqual(after.Categories, before.Categories) {
		t.Errorf("categories differ:\n got %+v\nwant %+v", after.Categories, before.Categories)
	}
	if !reflect.DeepEqual(after.Preferences, before.Preferences) {
		t.Errorf("preferences differ:\n got %+v\nwant %+v", after.Preferences, before.Preferences)
	}
	if !reflect.DeepEqual(fresh.store.Get(), after) {
		t.Error("applied state not committed to the store")
	}
}

func TestApplyImportPayloadMergesPreferences(t *testing.T) {
	svc, _, _ := newTestService()

	payload := validPayload()
	payload["preferences"] = map[string]any{
		"appointmentFilters": map[string]any{"sort": "createdAt"},
	}
	state := svc.ApplyImportPayload(payload)

	if state.Preferences.AppointmentFilters.Sort != model.SortCreatedAt {
		t.Errorf("sort = %q", state.Preferences.AppointmentFilters.Sort)
	}
	// Keys absent from the payload keep their defaults.
	if state.Preferences.ActiveTab != model.TabAppointments {
		t.Errorf("activeTab = %q", state.Preferences.ActiveTab)
	}
}

func TestResetAllData(t *testing.T) {
	svc, _, _ := newTestService()

	svc.AddCategory("Gym", "teal")
	svc.CreateAppointment(model.Appointment{
		Title: "Leg day", Date: "2024-05-10", StartTime: "18:00", CategoryID: "gym",
	})

	svc.ResetAllData()
	if !reflect.DeepEqual(svc.store.Get(), model.DefaultState()) {
		t.Fatalf("state = %+v", svc.store.Get())
	}
}
