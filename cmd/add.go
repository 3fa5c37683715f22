package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"termin/internal/model"
	"termin/internal/utils"
)

var (
	addDate     string
	addStart    string
	addEnd      string
	addCategory string
	addLocation string
	addNotes    string
	addStatus   string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Create an appointment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := svc.CreateAppointment(model.Appointment{
			Title:      strings.Join(args, " "),
			Date:       addDate,
			StartTime:  addStart,
			EndTime:    addEnd,
			CategoryID: addCategory,
			Location:   addLocation,
			Notes:      addNotes,
			Status:     addStatus,
		})
		if !result.OK {
			styles := utils.InitStyles(cfg.Color)
			for _, e := range result.Errors {
				fmt.Println(styles.Error.Render(e))
			}
			return errors.New("appointment not saved")
		}
		fmt.Printf("Saved %s on %s at %s.\n", result.Value.Title, result.Value.Date, result.Value.StartTime)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDate, "date", "d", utils.TodayISO(), "Date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "Start time (HH:MM)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "End time (HH:MM, optional)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "general", "Category id")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "Location")
	addCmd.Flags().StringVarP(&addNotes, "notes", "n", "", "Notes")
	addCmd.Flags().StringVar(&addStatus, "status", "", "Status: planned|done|cancelled")
}
