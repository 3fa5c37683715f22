package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := svc.ExportText()
		if err != nil {
			return err
		}
		if exportOutput == "" {
			fmt.Println(text)
			return nil
		}
		if err := os.WriteFile(exportOutput, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Printf("Exported to %s.\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
}
