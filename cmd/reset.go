package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete everything and restore defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return errors.New("resetting deletes all appointments and categories; re-run with --yes to confirm")
		}
		svc.ResetAllData()
		fmt.Println("All data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the destructive reset")
}
