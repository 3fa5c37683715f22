package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"termin/internal/model"
	"termin/internal/notify"
	"termin/internal/utils"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Notify about today's remaining appointments",
	RunE: func(cmd *cobra.Command, args []string) error {
		loc := cfg.Location()
		today := time.Now().In(loc).Format("2006-01-02")
		nowClock := time.Now().In(loc).Format("15:04")

		var remaining []model.Appointment
		for _, a := range st.Get().Appointments {
			if a.Status != model.StatusPlanned || a.Date != today {
				continue
			}
			if utils.CompareTimes(a.StartTime, nowClock) < 0 {
				continue
			}
			remaining = append(remaining, a)
		}

		if len(remaining) == 0 {
			fmt.Println("Nothing left today.")
			return nil
		}
		if len(remaining) == 1 {
			title, msg := notify.FormatUpcoming(remaining[0].Title, remaining[0].StartTime)
			return notify.Info(title, msg)
		}
		title, msg := notify.FormatDaySummary(len(remaining))
		return notify.Info(title, msg)
	},
}
