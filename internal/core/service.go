// Package core implements the domain operations over the store:
// appointment CRUD with validation, category management, filtering,
// sorting, calendar grouping, and export/import.
package core

import (
	"time"

	"github.com/google/uuid"

	"termin/internal/model"
	"termin/internal/store"
)

// Service runs all mutating operations. The clock and id source are
// injected so tests can pin them.
type Service struct {
	store *store.Store
	now   func() time.Time
	newID func() string
}

func New(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Result is the outcome of a validating mutation. OK=false means
// nothing changed and Errors is non-empty; validation never panics or
// returns an error value.
type Result struct {
	OK     bool
	Errors []string
	Value  model.Appointment
}

// CategoryResult is the outcome of a category mutation.
type CategoryResult struct {
	OK    bool
	Error string
	Value model.Category
}

// CategoriesByID indexes categories for sort and display lookups.
func CategoriesByID(categories []model.Category) map[string]model.Category {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return byID
}
