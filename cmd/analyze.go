package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/habit/internal/analytics"
	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const singleHabitUnavailable = "Feature not available for a single habit ID."

var (
	analyzeID          int
	analyzePeriodicity string
	analyzeCategory    string

	analyzeLongest   bool
	analyzeCurrent   bool
	analyzeRate      bool
	analyzeStruggled bool
	analyzeWeekly    bool
	analyzeMonthly   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze all habits, or a single habit by ID",
	Long: `Compute streaks, completion rates, the most struggled habit and
weekly/monthly reports. With no metric flags, every metric is shown.

Struggle detection and reports only apply across habits, not to a single --id.`,
	Args: cobra.NoArgs,
	RunE: logged("analyze", runAnalyze),
}

// analyzeAliases maps the short metric spellings onto their flags.
var analyzeAliases = map[string]string{
	"ls": "longest-streak",
	"cs": "current-streak",
	"cr": "completion-rate",
	"ms": "most-struggled",
	"wr": "weekly-report",
	"mr": "monthly-report",
}

func init() {
	f := analyzeCmd.Flags()
	f.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if full, ok := analyzeAliases[name]; ok {
			name = full
		}
		return pflag.NormalizedName(name)
	})

	f.IntVar(&analyzeID, "id", 0, "Habit ID to analyze")
	f.StringVarP(&analyzePeriodicity, "periodicity", "p", "", "Filter by periodicity ('daily' or 'weekly')")
	f.StringVarP(&analyzeCategory, "category", "c", "", "Filter by category (e.g. 'health')")
	f.BoolVar(&analyzeLongest, "longest-streak", false, "Longest streak (--ls)")
	f.BoolVar(&analyzeCurrent, "current-streak", false, "Current streak (--cs)")
	f.BoolVar(&analyzeRate, "completion-rate", false, "Completion rate (--cr)")
	f.BoolVar(&analyzeStruggled, "most-struggled", false, "Habit with the most missed periods (--ms)")
	f.BoolVar(&analyzeWeekly, "weekly-report", false, "Which habits were done this week (--wr)")
	f.BoolVar(&analyzeMonthly, "monthly-report", false, "Which habits were done this month (--mr)")
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	habits, err := loadHabits()
	if err != nil {
		return err
	}
	habits, err = filterHabits(habits, analyzePeriodicity, analyzeCategory)
	if err != nil {
		return err
	}

	t := now()
	if analyzeID != 0 {
		h, ok := habit.Find(habits, analyzeID)
		if !ok {
			return fmt.Errorf("no habit with ID %d: %w", analyzeID, habit.ErrNotFound)
		}
		analyzeOne(h, t)
		return nil
	}
	analyzeAll(habits, t)
	return nil
}

func anyMetric() bool {
	return analyzeLongest || analyzeCurrent || analyzeRate ||
		analyzeStruggled || analyzeWeekly || analyzeMonthly
}

func analyzeOne(h habit.Habit, t time.Time) {
	all := !anyMetric()
	s := analytics.Summarize(h, t)

	if all || analyzeLongest {
		ui.Putsf("Longest streak for %s: %d", h.Name, s.LongestStreak)
	}
	if all || analyzeCurrent {
		ui.Putsf("Current streak for %s: %d", h.Name, s.CurrentStreak)
	}
	if all || analyzeRate {
		ui.Putsf("Completion rate for %s: %s", h.Name, ui.Percent(s.CompletionRate))
	}
	if all {
		ui.Putsf("Missed %ss for %s: %d", periodUnit(h.Periodicity()), h.Name, s.MissedPeriods)
		return
	}
	for _, asked := range []bool{analyzeStruggled, analyzeWeekly, analyzeMonthly} {
		if asked {
			ui.Puts(singleHabitUnavailable)
		}
	}
}

func analyzeAll(habits []habit.Habit, t time.Time) {
	all := !anyMetric()

	if all || analyzeLongest {
		ui.Putsf("Longest streak across all habits: %d", analytics.LongestStreakAll(habits))
	}
	if all || analyzeCurrent {
		ui.Puts("Current streaks:")
		for _, h := range habits {
			ui.Putsf("- %s: %d", h.Name, analytics.CurrentStreak(h, t))
		}
	}
	if all || analyzeRate {
		ui.Putsf("Average completion rate across all habits: %s", ui.Percent(analytics.AverageCompletionRate(habits, t)))
	}
	if all || analyzeStruggled {
		name := "None"
		if h, ok := analytics.MostStruggled(habits); ok {
			name = h.Name
		}
		ui.Putsf("Most struggled habit: %s", name)
	}
	if all || analyzeWeekly {
		printReport("Weekly Report:", analytics.WeeklyReport(habits, t))
	}
	if all || analyzeMonthly {
		printReport("Monthly Report:", analytics.MonthlyReport(habits, t))
	}
}

func printReport(title string, r *analytics.Report) {
	ui.Puts("")
	ui.Puts(title)
	for _, e := range r.Entries() {
		status := "Not completed"
		if e.Completed {
			status = "Completed"
		}
		ui.Putsf("- %s: %s", e.Name, status)
	}
}
