package cmd

import (
	"errors"
	"fmt"

	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

var deleteID int

var deleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"rm"},
	Short:   "Delete a habit and its completion history",
	Long: `Delete a habit and every completion recorded for it.

Without --id, an interactive picker is shown when running in a terminal.`,
	Args: cobra.NoArgs,
	RunE: logged("delete", runDelete),
}

func init() {
	deleteCmd.Flags().IntVar(&deleteID, "id", 0, "Habit ID to delete")
}

func runDelete(_ *cobra.Command, _ []string) error {
	db, hs, err := openHabits()
	if err != nil {
		return err
	}
	defer db.Close()

	id := deleteID
	if id == 0 {
		habits, err := hs.Load()
		if err != nil {
			return fmt.Errorf("loading habits: %w", err)
		}
		picked, ok, err := resolveID(0, "Delete a habit", habits)
		if err != nil || !ok {
			return err
		}
		id = picked
	}

	h, err := hs.Get(id)
	if errors.Is(err, habit.ErrNotFound) {
		return fmt.Errorf("no habit with ID %d: %w", id, err)
	}
	if err != nil {
		return err
	}

	if err := hs.Delete(id); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted habit with ID: %d (%s)", id, h.Name))
	return nil
}
