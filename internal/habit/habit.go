package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is used when a habit is created without a category.
const DefaultCategory = "general"

var (
	ErrEmptyName          = errors.New("habit name cannot be empty")
	ErrInvalidPeriodicity = errors.New("periodicity must be 'daily' or 'weekly'")
	ErrNotFound           = errors.New("habit not found")
	ErrDuplicateName      = errors.New("habit name already exists")
)

// Periodicity is the cadence a habit recurs at.
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// ParsePeriodicity converts user input into a Periodicity.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch Periodicity(strings.ToLower(strings.TrimSpace(s))) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	}
	return "", fmt.Errorf("%w, got %q", ErrInvalidPeriodicity, s)
}

func (p Periodicity) String() string {
	return string(p)
}

// Completion is one recorded completion event.
type Completion struct {
	ID string
	At time.Time
}

// Habit is a recurring task with a fixed periodicity and an append-only
// log of completion events.
type Habit struct {
	// ID is 0 until the habit has been persisted.
	ID       int
	Name     string
	Category string

	periodicity Periodicity
	createdAt   time.Time
	completions []Completion
}

// New creates an unsaved habit with an empty completion log.
func New(name string, periodicity Periodicity, category string, created time.Time) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	p, err := ParsePeriodicity(string(periodicity))
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	return &Habit{
		Name:        name,
		Category:    category,
		periodicity: p,
		createdAt:   created,
	}, nil
}

// Periodicity returns the habit's cadence. It is fixed at creation.
func (h *Habit) Periodicity() Periodicity {
	return h.periodicity
}

// CreatedAt returns the creation timestamp.
func (h *Habit) CreatedAt() time.Time {
	return h.createdAt
}

// Persisted reports whether the habit has been assigned an ID by a store.
func (h *Habit) Persisted() bool {
	return h.ID > 0
}

// Complete appends a completion event at the given time and returns it.
func (h *Habit) Complete(at time.Time) Completion {
	c := Completion{ID: uuid.NewString(), At: at}
	// Clip capacity so copies of h never share an append target.
	n := len(h.completions)
	h.completions = append(h.completions[:n:n], c)
	return c
}

// Completions returns a copy of the completion log in insertion order.
func (h *Habit) Completions() []Completion {
	out := make([]Completion, len(h.completions))
	copy(out, h.completions)
	return out
}

// CompletionTimes returns the completion timestamps in insertion order.
func (h *Habit) CompletionTimes() []time.Time {
	out := make([]time.Time, len(h.completions))
	for i, c := range h.completions {
		out[i] = c.At
	}
	return out
}

// CompletionCount returns the number of recorded completion events.
func (h *Habit) CompletionCount() int {
	return len(h.completions)
}

// ByPeriodicity returns the habits with the given periodicity.
func ByPeriodicity(habits []Habit, p Periodicity) []Habit {
	var out []Habit
	for _, h := range habits {
		if h.periodicity == p {
			out = append(out, h)
		}
	}
	return out
}

// ByCategory returns the habits in the given category.
func ByCategory(habits []Habit, category string) []Habit {
	var out []Habit
	for _, h := range habits {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

// Find returns the habit with the given ID.
func Find(habits []Habit, id int) (Habit, bool) {
	for _, h := range habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}
