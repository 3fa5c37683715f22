package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [appointment-id]",
	Short: "Delete an appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if svc.DeleteAppointment(args[0]) {
			fmt.Println("Deleted.")
		} else {
			fmt.Printf("No appointment with id %s.\n", args[0])
		}
		return nil
	},
}
