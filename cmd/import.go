package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"termin/internal/core"
	"termin/internal/utils"
)

var importYes bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace all data from an export file",
	Long:  "Validates the file first and reports every problem found. Importing replaces all existing data.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import: %w", err)
		}

		var payload any
		if err := json.Unmarshal(raw, &payload); err != nil {
			return errors.New("File is not valid JSON data.")
		}

		validation := core.ValidateImportPayload(payload)
		if !validation.Valid {
			styles := utils.InitStyles(cfg.Color)
			for _, e := range validation.Errors {
				fmt.Println(styles.Error.Render(e))
			}
			return errors.New("import rejected")
		}

		if !importYes {
			return errors.New("importing replaces all existing data; re-run with --yes to confirm")
		}

		state := svc.ApplyImportPayload(payload)
		fmt.Printf("Imported %d appointment(s) and %d categor(ies).\n",
			len(state.Appointments), len(state.Categories))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importYes, "yes", false, "Confirm the destructive replace")
}
