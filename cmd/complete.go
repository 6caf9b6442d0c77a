package cmd

import (
	"fmt"

	"github.com/rnwolfe/habit/internal/analytics"
	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/tui"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

var completeID int

// interactive and pickHabit drive the no-ID path. Swapped out in tests.
var interactive = tui.IsTTY

var pickHabit = func(title string, habits []habit.Habit) (int, bool, error) {
	c, ok, err := tui.Pick(title, tui.Choices(habits, now()))
	return c.ID, ok, err
}

// resolveID returns id, or asks the user to pick a habit when id is 0.
// ok is false when there is nothing to act on.
func resolveID(id int, title string, habits []habit.Habit) (int, bool, error) {
	if id != 0 {
		return id, true, nil
	}
	if !interactive() {
		return 0, false, fmt.Errorf("--id is required when not running in a terminal")
	}
	if len(habits) == 0 {
		ui.Inf("No habits yet.")
		return 0, false, nil
	}
	picked, ok, err := pickHabit(title, habits)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		ui.Inf("Nothing selected.")
	}
	return picked, ok, nil
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Mark a habit as completed now",
	Long: `Record a completion for a habit at the current time.

Without --id, an interactive picker is shown when running in a terminal.`,
	Args: cobra.NoArgs,
	RunE: logged("complete", runComplete),
}

func init() {
	completeCmd.Flags().IntVar(&completeID, "id", 0, "Habit ID to complete")
}

func runComplete(_ *cobra.Command, _ []string) error {
	db, hs, err := openHabits()
	if err != nil {
		return err
	}
	defer db.Close()

	habits, err := hs.Load()
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}

	id, ok, err := resolveID(completeID, "Complete a habit", habits)
	if err != nil || !ok {
		return err
	}

	h, ok := habit.Find(habits, id)
	if !ok {
		return fmt.Errorf("no habit with ID %d: %w", id, habit.ErrNotFound)
	}

	t := now()
	again := analytics.DoneThisPeriod(h, t)
	h.Complete(t)
	if err := hs.Save(&h); err != nil {
		return fmt.Errorf("saving completion: %w", err)
	}

	ui.Ok("Completed habit: " + h.Name)
	if again {
		ui.Inf(fmt.Sprintf("Already done this %s; the extra completion is logged but does not extend the streak.", periodUnit(h.Periodicity())))
	}
	if s := analytics.CurrentStreak(h, t); s > 1 {
		ui.Inf(fmt.Sprintf("%s streak: %s", ui.IconFire, ui.Plural(s, periodUnit(h.Periodicity()))))
	}
	return nil
}
