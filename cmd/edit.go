package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"termin/internal/utils"
)

var (
	editTitle    string
	editDate     string
	editStart    string
	editEnd      string
	editCategory string
	editLocation string
	editNotes    string
	editStatus   string
)

var editCmd = &cobra.Command{
	Use:   "edit [appointment-id]",
	Short: "Edit an existing appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		existing, ok := svc.AppointmentByID(id)
		if !ok {
			return fmt.Errorf("appointment with id %s not found", id)
		}
		if cmd.Flags().NFlag() == 0 {
			return errors.New("nothing to update - specify at least one field to edit")
		}

		next := existing
		if cmd.Flags().Changed("title") {
			next.Title = editTitle
		}
		if cmd.Flags().Changed("date") {
			next.Date = editDate
		}
		if cmd.Flags().Changed("start") {
			next.StartTime = editStart
		}
		if cmd.Flags().Changed("end") {
			next.EndTime = editEnd
		}
		if cmd.Flags().Changed("category") {
			next.CategoryID = editCategory
		}
		if cmd.Flags().Changed("location") {
			next.Location = editLocation
		}
		if cmd.Flags().Changed("notes") {
			next.Notes = editNotes
		}
		if cmd.Flags().Changed("status") {
			next.Status = editStatus
		}

		result := svc.UpdateAppointment(id, next)
		if !result.OK {
			styles := utils.InitStyles(cfg.Color)
			for _, e := range result.Errors {
				fmt.Println(styles.Error.Render(e))
			}
			return errors.New("appointment not updated")
		}
		fmt.Printf("Updated %s.\n", result.Value.Title)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDate, "date", "d", "", "New date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&editStart, "start", "s", "", "New start time (HH:MM)")
	editCmd.Flags().StringVarP(&editEnd, "end", "e", "", "New end time (HH:MM, empty clears)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category id")
	editCmd.Flags().StringVarP(&editLocation, "location", "l", "", "New location")
	editCmd.Flags().StringVarP(&editNotes, "notes", "n", "", "New notes")
	editCmd.Flags().StringVar(&editStatus, "status", "", "New status: planned|done|cancelled")
}
