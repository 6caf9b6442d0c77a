package analytics

import "github.com/rnwolfe/habit/internal/habit"

// MissedPeriods counts the gaps in a habit's history: each pair of
// consecutive completions more than one period apart counts once, however
// many periods were skipped.
func MissedPeriods(h habit.Habit) int {
	periods := periodIndices(h)
	missed := 0
	for i := 1; i < len(periods); i++ {
		if periods[i]-periods[i-1] > 1 {
			missed++
		}
	}
	return missed
}

// MostStruggled returns the habit with the most missed periods. Ties go to
// the habit listed first. ok is false only when habits is empty.
func MostStruggled(habits []habit.Habit) (h habit.Habit, ok bool) {
	best := -1
	for _, candidate := range habits {
		if m := MissedPeriods(candidate); m > best {
			best = m
			h = candidate
			ok = true
		}
	}
	return h, ok
}
