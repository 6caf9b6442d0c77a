// Package analytics computes streaks, completion rates, struggle rankings and
// weekly/monthly reports over habit completion histories.
//
// Every function is a pure query over the habits it is given. Time-sensitive
// queries take the reference time explicitly instead of reading the clock.
//
// Periods are compared by absolute index (days since the Unix epoch, ISO
// weeks since the epoch, months since year 0), so adjacency and reporting
// stay correct across year boundaries: ISO week 52 of one year and week 1 of
// the next are adjacent.
package analytics

import (
	"sort"
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

const secondsPerDay = 24 * 60 * 60

// DayIndex returns the number of days between the Unix epoch and t's
// wall-clock calendar date. Time of day and zone offset are ignored.
func DayIndex(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay)
}

// WeekIndex returns a running index of t's ISO week (Monday start).
// Consecutive ISO weeks have consecutive indices.
func WeekIndex(t time.Time) int {
	day := DayIndex(t)
	// 1970-01-01 was a Thursday; shift so Monday 1969-12-29 starts week 0.
	return floorDiv(day+3, 7)
}

// MonthIndex returns a running index of t's calendar month.
func MonthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// PeriodIndex returns the day index for daily habits and the ISO week index
// for weekly habits.
func PeriodIndex(t time.Time, p habit.Periodicity) int {
	if p == habit.Weekly {
		return WeekIndex(t)
	}
	return DayIndex(t)
}

// Adjacent reports whether b falls in the period immediately after a's.
func Adjacent(a, b time.Time, p habit.Periodicity) bool {
	return PeriodIndex(b, p)-PeriodIndex(a, p) == 1
}

// SamePeriod reports whether a and b fall in the same day or ISO week.
func SamePeriod(a, b time.Time, p habit.Periodicity) bool {
	return PeriodIndex(a, p) == PeriodIndex(b, p)
}

// periodIndices returns the habit's completion periods sorted ascending.
// Duplicates are kept.
func periodIndices(h habit.Habit) []int {
	times := h.CompletionTimes()
	idx := make([]int, len(times))
	for i, t := range times {
		idx[i] = PeriodIndex(t, h.Periodicity())
	}
	sort.Ints(idx)
	return idx
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
