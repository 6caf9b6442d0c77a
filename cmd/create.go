package cmd

import (
	"fmt"

	"github.com/rnwolfe/habit/internal/config"
	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

var (
	createTask        string
	createPeriodicity string
	createCategory    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a habit",
	Example: `  habit create --task "Drink Water" --periodicity daily --category health
  habit create -t Journal -p weekly`,
	Args: cobra.NoArgs,
	RunE: logged("create", runCreate),
}

func init() {
	createCmd.Flags().StringVarP(&createTask, "task", "t", "", "Task name (e.g. 'exercise')")
	createCmd.Flags().StringVarP(&createPeriodicity, "periodicity", "p", "", "Periodicity ('daily' or 'weekly')")
	createCmd.Flags().StringVarP(&createCategory, "category", "c", "", "Category (defaults to habits.default_category)")
	_ = createCmd.MarkFlagRequired("task")
	_ = createCmd.MarkFlagRequired("periodicity")
}

func runCreate(_ *cobra.Command, _ []string) error {
	p, err := habit.ParsePeriodicity(createPeriodicity)
	if err != nil {
		return err
	}

	category := createCategory
	if category == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		category = cfg.Habits.CategoryOrDefault()
	}

	h, err := habit.New(createTask, p, category, now())
	if err != nil {
		return err
	}

	db, hs, err := openHabits()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := hs.Create(h); err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Created %s %s habit: %s (ID: %d)", p, h.Category, h.Name, h.ID))
	return nil
}
