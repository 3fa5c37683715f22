package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"termin/internal/model"
	"termin/internal/utils"
)

var categoryColor string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := svc.AddCategory(strings.Join(args, " "), categoryColor)
		if !result.OK {
			styles := utils.InitStyles(cfg.Color)
			fmt.Println(styles.Error.Render(result.Error))
			return errors.New("category not saved")
		}
		fmt.Printf("Added %s (id %s).\n", result.Value.Name, result.Value.ID)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range st.Get().Categories {
			fmt.Printf("%-16s %-10s %s\n", c.Name, c.Color, c.ID)
		}
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVarP(&categoryColor, "color", "c", "blue",
		"Color: "+strings.Join(model.CategoryColors, "|"))
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd)
}
