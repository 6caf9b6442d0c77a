package analytics

import (
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

// LongestStreak returns the longest run of consecutive periods (days or ISO
// weeks) containing at least one completion. 0 iff the habit has no
// completions. Several completions in one period count as one.
func LongestStreak(h habit.Habit) int {
	periods := periodIndices(h)
	if len(periods) == 0 {
		return 0
	}

	longest := 1
	run := 1
	for i := 1; i < len(periods); i++ {
		switch periods[i] - periods[i-1] {
		case 0:
			// Same period, the run neither grows nor breaks.
		case 1:
			run++
			if run > longest {
				longest = run
			}
		default:
			run = 1
		}
	}
	return longest
}

// LongestStreakAll returns the maximum LongestStreak across habits, or 0 for
// an empty list.
func LongestStreakAll(habits []habit.Habit) int {
	longest := 0
	for _, h := range habits {
		if s := LongestStreak(h); s > longest {
			longest = s
		}
	}
	return longest
}

// CurrentStreak returns the length of the run ending at the most recent
// completion, provided that completion is in now's period or the one before.
// Otherwise the streak is broken and 0 is returned.
//
// The result depends on now: it drops to 0 once a full period passes without
// a completion, even if no data changes.
func CurrentStreak(h habit.Habit, now time.Time) int {
	periods := periodIndices(h)
	if len(periods) == 0 {
		return 0
	}

	latest := periods[len(periods)-1]
	if PeriodIndex(now, h.Periodicity())-latest > 1 {
		return 0
	}

	current := 1
	for i := len(periods) - 2; i >= 0; i-- {
		gap := periods[i+1] - periods[i]
		if gap == 0 {
			continue
		}
		if gap != 1 {
			break
		}
		current++
	}
	return current
}
