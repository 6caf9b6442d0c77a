package analytics

import (
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

// ReportEntry is one row of a Report.
type ReportEntry struct {
	Name      string
	Completed bool
}

// Report maps habit names to a completion flag, keeping the order in which
// names were first added. Adding a name again overwrites its earlier value
// in place.
type Report struct {
	entries []ReportEntry
	index   map[string]int
}

func newReport() *Report {
	return &Report{index: make(map[string]int)}
}

func (r *Report) set(name string, completed bool) {
	if i, ok := r.index[name]; ok {
		r.entries[i].Completed = completed
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, ReportEntry{Name: name, Completed: completed})
}

// Get returns the flag for name and whether name is in the report.
func (r *Report) Get(name string) (completed, ok bool) {
	i, ok := r.index[name]
	if !ok {
		return false, false
	}
	return r.entries[i].Completed, true
}

// Entries returns the rows in insertion order.
func (r *Report) Entries() []ReportEntry {
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of distinct names in the report.
func (r *Report) Len() int {
	return len(r.entries)
}

// WeeklyReport flags each habit that has a completion in now's ISO week.
func WeeklyReport(habits []habit.Habit, now time.Time) *Report {
	return buildReport(habits, WeekIndex, WeekIndex(now))
}

// MonthlyReport flags each habit that has a completion in now's calendar month.
func MonthlyReport(habits []habit.Habit, now time.Time) *Report {
	return buildReport(habits, MonthIndex, MonthIndex(now))
}

func buildReport(habits []habit.Habit, index func(time.Time) int, want int) *Report {
	r := newReport()
	for _, h := range habits {
		completed := false
		for _, t := range h.CompletionTimes() {
			if index(t) == want {
				completed = true
				break
			}
		}
		r.set(h.Name, completed)
	}
	return r
}
