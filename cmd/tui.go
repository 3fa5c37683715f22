package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"termin/internal/model"
	"termin/internal/notify"
	"termin/internal/schedule"
	"termin/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI. Reminders run alongside it: the
// TUI is the only long-lived invocation, so the scheduler lives here.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive browser",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if cfg.Reminder.Enabled && os.Getenv("TERMIN_NO_REMINDER") != "1" {
			lead := time.Duration(cfg.Reminder.LeadMinutes) * time.Minute
			go schedule.Run(ctx, cfg.Location(), lead,
				func() []model.Appointment { return st.Get().Appointments },
				func(a model.Appointment) {
					title, msg := notify.FormatUpcoming(a.Title, a.StartTime)
					_ = notify.Info(title, msg)
				})
		}

		return ui.Run(svc, st, backend.Path())
	},
}
