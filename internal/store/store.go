// Package store holds the single authoritative application snapshot.
// Every snapshot that crosses the package boundary is a deep copy:
// callers can never alias the store's internal state, and a committed
// mutation is only ever observed whole.
package store

import (
	"encoding/json"
	"sync"

	"termin/internal/model"
	"termin/internal/storage"
)

// Options controls a single commit.
type Options struct {
	// SkipSave commits the snapshot in memory without persisting it.
	SkipSave bool
}

// Listener receives a fresh snapshot after every committed change.
type Listener func(model.AppState)

type listenerEntry struct {
	id int
	fn Listener
}

// Store is the state machine: exactly one live snapshot at a time,
// replaced wholesale on every commit. A mutex serializes writers; the
// deep-copy discipline gives readers snapshot isolation.
type Store struct {
	mu        sync.Mutex
	backend   storage.Backend
	state     model.AppState
	listeners []listenerEntry
	nextID    int
}

func New(b storage.Backend) *Store {
	return &Store{backend: b, state: model.DefaultState()}
}

// Get returns a deep copy of the current snapshot.
func (s *Store) Get() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Set replaces the snapshot with a deep copy of next, persists it
// unless opts.SkipSave, and notifies subscribers synchronously in
// registration order, each with its own copy.
func (s *Store) Set(next model.AppState, opts ...Options) {
	skipSave := len(opts) > 0 && opts[0].SkipSave

	s.mu.Lock()
	s.state = next.Clone()
	snapshot := s.state.Clone()
	listeners := append([]listenerEntry(nil), s.listeners...)
	s.mu.Unlock()

	if !skipSave {
		s.save(snapshot)
	}
	for _, l := range listeners {
		l.fn(snapshot.Clone())
	}
}

// Update is the only sanctioned way to change state from outside the
// store: mutate takes an owned draft copy and returns the finished
// replacement, which is committed via Set. No partially applied
// mutation is ever observable.
func (s *Store) Update(mutate func(draft model.AppState) model.AppState, opts ...Options) {
	s.mu.Lock()
	draft := s.state.Clone()
	s.mu.Unlock()
	s.Set(mutate(draft), opts...)
}

// Subscribe registers a listener and returns its unsubscribe func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Init loads the persisted documents, reconciles them against the
// built-in defaults, persists the reconciled state (self-healing
// corrupted or partial storage), notifies, and returns the snapshot.
func (s *Store) Init() model.AppState {
	defaults := model.DefaultState()

	// Preferences merge deeply over defaults: unmarshalling into a
	// defaults-initialized value overlays only the keys present.
	prefs := defaults.Preferences
	if raw, ok := s.backend.Get(storage.KeyPreferences); ok && len(raw) > 0 {
		merged := defaults.Preferences
		if err := json.Unmarshal(raw, &merged); err == nil {
			prefs = merged
		}
	}

	categories := defaults.Categories
	if loaded, ok := loadCategories(s.backend); ok {
		categories = loaded
	}

	appointments := storage.ReadJSON(s.backend, storage.KeyAppointments, []model.Appointment{})
	if appointments == nil {
		appointments = []model.Appointment{}
	}

	s.Set(model.AppState{
		Appointments: appointments,
		Categories:   categories,
		Preferences:  prefs,
	})
	return s.Get()
}

// Reset replaces everything with the built-in defaults.
func (s *Store) Reset() {
	s.Set(model.DefaultState())
}

func (s *Store) save(state model.AppState) {
	appointments := state.Appointments
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	categories := state.Categories
	if categories == nil {
		categories = []model.Category{}
	}
	storage.WriteJSON(s.backend, storage.KeyAppointments, appointments)
	storage.WriteJSON(s.backend, storage.KeyCategories, categories)
	storage.WriteJSON(s.backend, storage.KeyPreferences, state.Preferences)
}

// loadCategories accepts the stored list only when it decodes to a
// non-empty array of fully populated categories.
func loadCategories(b storage.Backend) ([]model.Category, bool) {
	var loaded []model.Category
	raw, ok := b.Get(storage.KeyCategories)
	if !ok || len(raw) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(raw, &loaded); err != nil || len(loaded) == 0 {
		return nil, false
	}
	for _, c := range loaded {
		if c.ID == "" || c.Name == "" || c.Color == "" {
			return nil, false
		}
	}
	return loaded, true
}
