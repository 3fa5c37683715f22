package core

import (
	"fmt"
	"time"

	"termin/internal/storage"
	"termin/internal/store"
)

// newTestService wires a service against in-memory storage with a
// settable clock and deterministic ids.
func newTestService() (*Service, *store.Store, *time.Time) {
	st := store.New(storage.NewMemory())
	st.Init()

	now := time.UnixMilli(1715000000000)
	ids := 0
	svc := &Service{
		store: st,
		now:   func() time.Time { return now },
		newID: func() string { ids++; return fmt.Sprintf("appt-%d", ids) },
	}
	return svc, st, &now
}

func validInput() map[string]any {
	return map[string]any{
		"title":      "Checkup",
		"date":       "2024-05-10",
		"startTime":  "09:00",
		"endTime":    "10:00",
		"categoryId": "doctors",
		"location":   "",
		"notes":      "",
		"status":     "planned",
		"createdAt":  float64(1),
		"updatedAt":  float64(1),
	}
}
