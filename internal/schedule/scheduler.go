package schedule

import (
	"context"
	"time"

	"termin/internal/model"
)

// recheckInterval bounds how long the loop sleeps when nothing is
// scheduled, so appointments added meanwhile still get reminders.
const recheckInterval = time.Hour

// NextReminder returns the fire time of the next reminder strictly
// after now: the earliest planned appointment start minus lead. ok is
// false when nothing upcoming remains.
func NextReminder(now time.Time, appointments []model.Appointment, lead time.Duration, loc *time.Location) (time.Time, model.Appointment, bool) {
	var at time.Time
	var next model.Appointment
	found := false

	for _, a := range appointments {
		if a.Status != model.StatusPlanned {
			continue
		}
		start, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.StartTime, loc)
		if err != nil {
			continue
		}
		fire := start.Add(-lead)
		if !fire.After(now) {
			continue
		}
		if !found || fire.Before(at) {
			at, next, found = fire, a, true
		}
	}
	return at, next, found
}

// Run fires f at lead time before each upcoming appointment until ctx
// is canceled. appointments is re-read on every wakeup so schedule
// changes made while sleeping are picked up.
func Run(ctx context.Context, loc *time.Location, lead time.Duration, appointments func() []model.Appointment, f func(model.Appointment)) {
	for {
		fire, next, ok := NextReminder(time.Now(), appointments(), lead, loc)
		if !ok {
			fire = time.Now().Add(recheckInterval)
		}
		t := time.NewTimer(time.Until(fire))
		select {
		case <-ctx.Done():
			if !t.Stop() {
				select {
				case <-t.C:
				default:
				}
			}
			return
		case <-t.C:
			if ok {
				f(next)
			}
		}
	}
}
