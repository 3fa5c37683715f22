package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"termin/internal/model"
	"termin/internal/storage"
)

func TestGetReturnsIndependentCopy(t *testing.T) {
	s := New(storage.NewMemory())

	first := s.Get()
	first.Appointments = append(first.Appointments, model.Appointment{ID: "rogue"})
	first.Preferences.ActiveTab = model.TabSettings

	second := s.Get()
	if len(second.Appointments) != 0 {
		t.Fatal("mutating a snapshot leaked into the store")
	}
	if second.Preferences.ActiveTab != model.TabAppointments {
		t.Fatal("preference mutation leaked into the store")
	}
}

func TestSetPersistsAndNotifies(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend)

	var order []string
	s.Subscribe(func(model.AppState) { order = append(order, "first") })
	s.Subscribe(func(model.AppState) { order = append(order, "second") })

	next := model.DefaultState()
	next.Appointments = []model.Appointment{{ID: "a1", Title: "Checkup"}}
	s.Set(next)

	if !reflect.DeepEqual(order, []string{"first", "second"}) {
		t.Fatalf("listeners ran in order %v", order)
	}

	raw, ok := backend.Get(storage.KeyAppointments)
	if !ok {
		t.Fatal("appointments document not persisted")
	}
	var persisted []model.Appointment
	if err := json.Unmarshal(raw, &persisted); err != nil || len(persisted) != 1 || persisted[0].ID != "a1" {
		t.Fatalf("persisted doc = %s (err %v)", raw, err)
	}
}

func TestSetSkipSave(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend)

	s.Set(model.DefaultState(), Options{SkipSave: true})
	if _, ok := backend.Get(storage.KeyAppointments); ok {
		t.Fatal("SkipSave still persisted")
	}
}

func TestListenersGetOwnCopies(t *testing.T) {
	s := New(storage.NewMemory())

	var fromSecond model.AppState
	s.Subscribe(func(snapshot model.AppState) {
		// A listener mutating its copy must not affect anyone else.
		snapshot.Categories[0].Name = "Tampered"
	})
	s.Subscribe(func(snapshot model.AppState) { fromSecond = snapshot })

	s.Set(model.DefaultState())
	if s.Get().Categories[0].Name != "General" {
		t.Fatal("listener mutation reached the store")
	}
	if fromSecond.Categories[0].Name != "General" {
		t.Fatal("listener mutation reached a sibling listener's copy")
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New(storage.NewMemory())

	calls := 0
	unsubscribe := s.Subscribe(func(model.AppState) { calls++ })
	s.Set(model.DefaultState())
	unsubscribe()
	s.Set(model.DefaultState())

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestUpdateCommitsDraft(t *testing.T) {
	s := New(storage.NewMemory())

	s.Update(func(draft model.AppState) model.AppState {
		draft.Appointments = append(draft.Appointments, model.Appointment{ID: "a1"})
		return draft
	})

	if got := s.Get().Appointments; len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("appointments after update = %v", got)
	}
}

func TestInitDefaultsOnEmptyStorage(t *testing.T) {
	backend := storage.NewMemory()
	s := New(backend)

	state := s.Init()
	if !reflect.DeepEqual(state, model.DefaultState()) {
		t.Fatalf("Init on empty storage = %+v", state)
	}

	// Init self-heals: the reconciled state is written back.
	if _, ok := backend.Get(storage.KeyCategories); !ok {
		t.Fatal("Init did not persist reconciled categories")
	}
}

func TestInitMergesPreferencesDeeply(t *testing.T) {
	backend := storage.NewMemory()
	backend.Set(storage.KeyPreferences,
		[]byte(`{"activeTab":"calendar","appointmentFilters":{"search":"dentist"}}`))
	s := New(backend)

	prefs := s.Init().Preferences
	if prefs.ActiveTab != model.TabCalendar {
		t.Errorf("ActiveTab = %q", prefs.ActiveTab)
	}
	if prefs.AppointmentFilters.Search != "dentist" {
		t.Errorf("Search = %q", prefs.AppointmentFilters.Search)
	}
	// Keys absent from storage keep their defaults.
	if prefs.AppointmentFilters.Sort != model.SortDateAsc {
		t.Errorf("Sort = %q, want default preserved", prefs.AppointmentFilters.Sort)
	}
}

func TestInitRejectsBadCategories(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"corrupt", `{nope`},
		{"empty", `[]`},
		{"wrong types", `[{"id":5,"name":"x","color":"blue"}]`},
		{"missing fields", `[{"id":"a","name":"","color":"blue"}]`},
		{"not an array", `"general"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			backend := storage.NewMemory()
			backend.Set(storage.KeyCategories, []byte(c.doc))
			s := New(backend)

			got := s.Init().Categories
			if !reflect.DeepEqual(got, model.DefaultCategories()) {
				t.Fatalf("categories = %v, want defaults", got)
			}
		})
	}
}

func TestInitKeepsValidCategoriesAndAppointments(t *testing.T) {
	backend := storage.NewMemory()
	backend.Set(storage.KeyCategories, []byte(`[{"id":"gym","name":"Gym","color":"teal"}]`))
	backend.Set(storage.KeyAppointments, []byte(`[{"id":"a1","title":"Leg day","date":"2024-05-10"}]`))
	s := New(backend)

	state := s.Init()
	if len(state.Categories) != 1 || state.Categories[0].ID != "gym" {
		t.Fatalf("categories = %v", state.Categories)
	}
	if len(state.Appointments) != 1 || state.Appointments[0].Title != "Leg day" {
		t.Fatalf("appointments = %v", state.Appointments)
	}
}

func TestInitDropsNonArrayAppointments(t *testing.T) {
	backend := storage.NewMemory()
	backend.Set(storage.KeyAppointments, []byte(`{"oops":true}`))
	s := New(backend)

	if got := s.Init().Appointments; len(got) != 0 {
		t.Fatalf("appointments = %v, want empty", got)
	}
}

func TestReset(t *testing.T) {
	s := New(storage.NewMemory())
	s.Update(func(draft model.AppState) model.AppState {
		draft.Appointments = append(draft.Appointments, model.Appointment{ID: "a1"})
		draft.Preferences.ActiveTab = model.TabSettings
		return draft
	})

	s.Reset()
	if !reflect.DeepEqual(s.Get(), model.DefaultState()) {
		t.Fatal("Reset did not restore defaults")
	}
}
