package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"termin/internal/core"
	"termin/internal/model"
	"termin/internal/utils"
)

var (
	listSearch   string
	listCategory string
	listFrom     string
	listTo       string
	listSort     string
	listFormat   string
	listNoColor  bool
	listLimit    int
	listPage     int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Long: `Examples:
	termin list                                   # last-used filters
	termin list --search dentist                  # text search
	termin list --category work --sort category   # filter and sort
	termin list --from 2024-05-01 --to 2024-05-31 # inclusive date bounds
	termin list --format table --limit 20         # table format`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := st.Get()

		// Flags overlay the persisted filters; the merged result is
		// written back so the next run starts from it.
		filters := state.Preferences.AppointmentFilters
		if cmd.Flags().Changed("search") {
			filters.Search = listSearch
		}
		if cmd.Flags().Changed("category") {
			filters.CategoryID = listCategory
		}
		if cmd.Flags().Changed("from") {
			filters.From = listFrom
		}
		if cmd.Flags().Changed("to") {
			filters.To = listTo
		}
		if cmd.Flags().Changed("sort") {
			filters.Sort = listSort
		}
		for _, bound := range []string{filters.From, filters.To} {
			if bound != "" && !utils.IsValidDate(bound) {
				return fmt.Errorf("invalid date bound %q, want YYYY-MM-DD", bound)
			}
		}
		st.Update(func(draft model.AppState) model.AppState {
			draft.Preferences.AppointmentFilters = filters
			return draft
		})

		byID := core.CategoriesByID(state.Categories)
		matched := core.FilterAppointments(state.Appointments, filters)
		sorted := core.SortAppointments(matched, filters.Sort, byID)

		if listLimit <= 0 || listLimit > 1000 {
			listLimit = 50
		}
		pagination := utils.NewPagination(len(sorted), listLimit, listPage)
		start, end := pagination.Slice(len(sorted))

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Color = cfg.Color && !listNoColor
		if listFormat != "" {
			renderConfig.Format = utils.OutputFormat(listFormat)
		}

		list := &utils.AppointmentList{
			Appointments: sorted[start:end],
			Total:        len(sorted),
			Page:         pagination.Current,
			PerPage:      pagination.PerPage,
			TotalPages:   pagination.TotalPages,
		}
		if filters.From != "" || filters.To != "" {
			list.Filters = map[string]string{
				"range": fmt.Sprintf("%s .. %s", orAny(filters.From), orAny(filters.To)),
			}
		}

		output, err := utils.NewRenderer(renderConfig).RenderAppointmentList(list, byID)
		if err != nil {
			return err
		}
		fmt.Print(output)
		return nil
	},
}

func orAny(bound string) string {
	if bound == "" {
		return "*"
	}
	return bound
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Substring match on title, location, notes")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category id")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Earliest date to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Latest date to include (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort: dateAsc, dateDesc, category, createdAt")
	listCmd.Flags().StringVar(&listFormat, "format", "default", "Output format: default, table, json, csv, quiet")
	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum entries per page")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
}
