package analytics

import (
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

// Summary holds every per-habit metric for one reference time.
type Summary struct {
	LongestStreak  int
	CurrentStreak  int
	CompletionRate float64
	MissedPeriods  int
	// DoneThisPeriod is true when the habit has a completion in now's day
	// (daily) or ISO week (weekly).
	DoneThisPeriod bool
}

// Summarize computes all metrics for h relative to now.
func Summarize(h habit.Habit, now time.Time) Summary {
	return Summary{
		LongestStreak:  LongestStreak(h),
		CurrentStreak:  CurrentStreak(h, now),
		CompletionRate: CompletionRate(h, now),
		MissedPeriods:  MissedPeriods(h),
		DoneThisPeriod: DoneThisPeriod(h, now),
	}
}

// DoneThisPeriod reports whether h already has a completion in now's period.
func DoneThisPeriod(h habit.Habit, now time.Time) bool {
	for _, t := range h.CompletionTimes() {
		if SamePeriod(t, now, h.Periodicity()) {
			return true
		}
	}
	return false
}

// Due returns the habits with no completion yet in now's period, in input order.
func Due(habits []habit.Habit, now time.Time) []habit.Habit {
	var out []habit.Habit
	for _, h := range habits {
		if !DoneThisPeriod(h, now) {
			out = append(out, h)
		}
	}
	return out
}
