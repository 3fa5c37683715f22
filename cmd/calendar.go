package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"termin/internal/core"
	"termin/internal/model"
	"termin/internal/utils"
)

var (
	calFrom    string
	calTo      string
	calNoColor bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show appointments grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := st.Get()

		r := state.Preferences.CalendarRange
		if cmd.Flags().Changed("from") {
			r.From = calFrom
		}
		if cmd.Flags().Changed("to") {
			r.To = calTo
		}
		for _, bound := range []string{r.From, r.To} {
			if bound != "" && !utils.IsValidDate(bound) {
				return fmt.Errorf("invalid date bound %q, want YYYY-MM-DD", bound)
			}
		}
		st.Update(func(draft model.AppState) model.AppState {
			draft.Preferences.CalendarRange = r
			return draft
		})

		groups := core.GroupAppointmentsByDate(core.FilterByRange(state.Appointments, r))
		styles := utils.InitStyles(cfg.Color && !calNoColor)
		byID := core.CategoriesByID(state.Categories)

		if len(groups) == 0 {
			fmt.Println(styles.Meta.Render("Nothing scheduled in range."))
			return nil
		}
		for _, g := range groups {
			fmt.Println(styles.Date.Render(utils.FormatDateLabel(g.Date)))
			for _, a := range g.Items {
				when := a.StartTime
				if a.EndTime != "" {
					when += "–" + a.EndTime
				}
				line := fmt.Sprintf("  %s  %s  %s",
					styles.Time.Render(when),
					a.Title,
					styles.Category.Render(byID[a.CategoryID].Name))
				if a.Status == model.StatusCancelled {
					line = styles.Cancelled.Render(line)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&calFrom, "from", "", "Earliest date to include (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calTo, "to", "", "Latest date to include (YYYY-MM-DD)")
	calendarCmd.Flags().BoolVar(&calNoColor, "no-color", false, "Disable colored output")
}
