package cmd

import (
	"strconv"

	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	listPeriodicity string
	listCategory    string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits, optionally filtered by periodicity or category",
	Args:    cobra.NoArgs,
	RunE:    logged("list", runList),
}

func init() {
	listCmd.Flags().StringVarP(&listPeriodicity, "periodicity", "p", "", "Filter by periodicity ('daily' or 'weekly')")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category (e.g. 'health')")
}

func runList(_ *cobra.Command, _ []string) error {
	habits, err := loadHabits()
	if err != nil {
		return err
	}
	habits, err = filterHabits(habits, listPeriodicity, listCategory)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		ui.Inf("No habits found.")
		return nil
	}

	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		rows = append(rows, []string{strconv.Itoa(h.ID), h.Name, h.Periodicity().String(), h.Category})
	}
	ui.Puts(ui.Table([]string{"ID", "Task", "Periodicity", "Category"}, rows))
	return nil
}
