package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rnwolfe/habit/internal/analytics"
	"github.com/rnwolfe/habit/internal/config"
	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/logger"
	"github.com/rnwolfe/habit/internal/store"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
)

// now is the reference clock for every command. Tests pin it.
var now = time.Now

var (
	debugFlag   bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:               "habit",
	Short:             "Track daily and weekly habits and analyze your streaks",
	Long:              `habit records when you keep your habits and tells you how you're doing.`,
	RunE:              logged("habit", runDashboard),
	PersistentPreRunE: setup,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads config and brings up logging and color before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := logger.Init(logger.Config{
		Debug: debugFlag || cfg.Log.Debug,
		Dir:   config.GetPaths().LogDir,
	}); err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	ui.ConfigureColor(cfg.UI.ColorEnabled() && !noColorFlag)
	return nil
}

// openHabits opens the database and the habit store on top of it.
// The caller closes the returned DB.
func openHabits() (*store.DB, *habit.Store, error) {
	db, err := store.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return db, habit.NewStore(db.Conn()), nil
}

// loadHabits returns every stored habit.
func loadHabits() ([]habit.Habit, error) {
	db, hs, err := openHabits()
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return hs.Load()
}

// filterHabits applies the optional --periodicity and --category filters.
func filterHabits(habits []habit.Habit, periodicity, category string) ([]habit.Habit, error) {
	if periodicity != "" {
		p, err := habit.ParsePeriodicity(periodicity)
		if err != nil {
			return nil, err
		}
		habits = habit.ByPeriodicity(habits, p)
	}
	if category != "" {
		habits = habit.ByCategory(habits, category)
	}
	return habits, nil
}

func periodUnit(p habit.Periodicity) string {
	if p == habit.Weekly {
		return "week"
	}
	return "day"
}

// runDashboard shows the at-a-glance status when you just type `habit`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	habits, err := loadHabits()
	if err != nil {
		return fmt.Errorf("loading habits: %w", err)
	}

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	if len(habits) == 0 {
		fmt.Println("  You're not tracking any habits yet.")
		ui.Tip("`habit create --task \"Drink Water\" --periodicity daily` to start, or `habit seed` for sample data.")
		fmt.Println()
		return nil
	}

	t := now()
	due := analytics.Due(habits, t)

	ui.Kv(ui.IconHabit+"Habits", fmt.Sprintf("%d tracked", len(habits)))
	if len(due) == 0 {
		ui.Kv(ui.IconDone+" Due", ui.Success.Render("all done for now"))
	} else {
		ui.Kv(ui.IconMissed+" Due", fmt.Sprintf("%d this period", len(due)))
	}
	ui.Kv(ui.IconFire+" Best streak", fmt.Sprintf("%d", analytics.LongestStreakAll(habits)))
	ui.Kv(ui.IconChart+" Completion", ui.Percent(analytics.AverageCompletionRate(habits, t)))
	ui.Kv(ui.IconCalendar+" Today", t.Format("Monday, January 2"))

	if len(due) > 0 {
		ui.Tip(fmt.Sprintf("`habit complete --id %d` to check off %s.", due[0].ID, due[0].Name))
	} else {
		ui.Tip("`habit analyze` to see how your streaks are going.")
	}
	fmt.Println()
	return nil
}
