package analytics

import (
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

// ElapsedPeriods returns how many periods have passed since the habit was
// created, counting both the creation period and now's period. It is 0 or
// negative when the creation date lies after now.
func ElapsedPeriods(h habit.Habit, now time.Time) int {
	p := h.Periodicity()
	return PeriodIndex(now, p) - PeriodIndex(h.CreatedAt(), p) + 1
}

// CompletedPeriods returns the number of distinct periods with at least one
// completion.
func CompletedPeriods(h habit.Habit) int {
	periods := periodIndices(h)
	n := 0
	for i, p := range periods {
		if i == 0 || p != periods[i-1] {
			n++
		}
	}
	return n
}

// CompletionRate returns completed periods divided by elapsed periods.
// Repeated completions within one period count once, so a habit done every
// period since creation scores exactly 1.0. Habits with no completions, or
// created after now, score 0.
func CompletionRate(h habit.Habit, now time.Time) float64 {
	if h.CompletionCount() == 0 {
		return 0
	}
	elapsed := ElapsedPeriods(h, now)
	if elapsed <= 0 {
		return 0
	}
	return float64(CompletedPeriods(h)) / float64(elapsed)
}

// AverageCompletionRate returns the arithmetic mean of CompletionRate across
// habits, or 0 for an empty list.
func AverageCompletionRate(habits []habit.Habit, now time.Time) float64 {
	if len(habits) == 0 {
		return 0
	}
	var total float64
	for _, h := range habits {
		total += CompletionRate(h, now)
	}
	return total / float64(len(habits))
}
