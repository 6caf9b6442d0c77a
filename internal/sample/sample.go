// Package sample seeds the database with predefined habits and four weeks of
// tracking history, for trying out the analytics without real data.
package sample

import (
	"fmt"
	"time"

	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/logger"
)

// Weeks is how much history the sample habits carry.
const Weeks = 4

type preset struct {
	name        string
	periodicity habit.Periodicity
	category    string
}

var predefined = []preset{
	{"Drink Water", habit.Daily, "health"},
	{"Yoga", habit.Weekly, "health"},
	{"Read", habit.Daily, "education"},
	{"Journal", habit.Weekly, "mental health"},
	{"Meditate", habit.Daily, "mental health"},
}

// Habits builds the sample habits relative to today's date. Daily habits are
// created 27 days ago and completed on each of the last 28 days; weekly habits
// are created 3 weeks ago and completed today and at each previous week mark.
func Habits(today time.Time) []*habit.Habit {
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	out := make([]*habit.Habit, 0, len(predefined))
	for _, p := range predefined {
		var created time.Time
		var completions []time.Time
		if p.periodicity == habit.Daily {
			created = day.AddDate(0, 0, -(Weeks*7 - 1))
			for i := 0; i < Weeks*7; i++ {
				completions = append(completions, day.AddDate(0, 0, -i))
			}
		} else {
			created = day.AddDate(0, 0, -7*(Weeks-1))
			for i := 0; i < Weeks; i++ {
				completions = append(completions, day.AddDate(0, 0, -7*i))
			}
		}

		h, err := habit.New(p.name, p.periodicity, p.category, created)
		if err != nil {
			// predefined entries are always valid.
			panic(err)
		}
		for _, c := range completions {
			h.Complete(c)
		}
		out = append(out, h)
	}
	return out
}

// Saver is the persistence needed to load sample data.
type Saver interface {
	Exists(name string) (bool, error)
	Create(h *habit.Habit) error
}

// Load persists the sample habits, skipping any whose name is already taken.
// It returns the habits that were created.
func Load(s Saver, today time.Time) ([]*habit.Habit, error) {
	var created []*habit.Habit
	for _, h := range Habits(today) {
		exists, err := s.Exists(h.Name)
		if err != nil {
			return created, err
		}
		if exists {
			logger.Info("sample habit already present, skipping", "name", h.Name)
			continue
		}
		if err := s.Create(h); err != nil {
			return created, fmt.Errorf("loading sample habit %q: %w", h.Name, err)
		}
		created = append(created, h)
	}
	return created, nil
}
