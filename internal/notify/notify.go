package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Alert(message string) error {
	return beeep.Alert("Termin", message, "")
}

// FormatUpcoming builds the reminder notification for one appointment.
func FormatUpcoming(title, startTime string) (string, string) {
	heading := "Upcoming appointment"
	msg := fmt.Sprintf("%s at %s", title, startTime)
	return heading, msg
}

// FormatDaySummary builds the notification for a day's remaining appointments.
func FormatDaySummary(count int) (string, string) {
	heading := "Today's appointments"
	msg := fmt.Sprintf("You have %d appointment(s) left today.", count)
	return heading, msg
}
