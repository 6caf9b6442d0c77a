package habit

import (
	"database/sql"
	"fmt"

	"github.com/rnwolfe/habit/internal/logger"
)

// Store handles habit persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new habit store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create inserts an unsaved habit and its completions, assigning h.ID.
// A habit whose name is already taken is rejected with ErrDuplicateName.
func (s *Store) Create(h *Habit) error {
	if h.Persisted() {
		return fmt.Errorf("habit #%d is already saved", h.ID)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("creating habit: %w", err)
	}
	defer tx.Rollback()

	var existing int
	err = tx.QueryRow(`SELECT id FROM habits WHERE name = ?`, h.Name).Scan(&existing)
	if err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateName, h.Name)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("checking habit name: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO habits (name, periodicity, category, creation_date) VALUES (?, ?, ?, ?)`,
		h.Name, string(h.periodicity), h.Category, FormatTimestamp(h.createdAt),
	)
	if err != nil {
		return fmt.Errorf("creating habit: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading habit id: %w", err)
	}

	if err := insertCompletions(tx, int(id), h.completions); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing habit: %w", err)
	}

	h.ID = int(id)
	logger.Debug("habit created", "id", h.ID, "name", h.Name, "periodicity", h.periodicity)
	return nil
}

// Save persists h. Unsaved habits are created; saved habits get their name
// and category updated and any completion events not yet stored appended.
func (s *Store) Save(h *Habit) error {
	if !h.Persisted() {
		return s.Create(h)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("saving habit: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE habits SET name = ?, category = ? WHERE id = ?`,
		h.Name, h.Category, h.ID,
	)
	if err != nil {
		return fmt.Errorf("saving habit #%d: %w", h.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving habit #%d: %w", h.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("habit #%d: %w", h.ID, ErrNotFound)
	}

	if err := insertCompletions(tx, h.ID, h.completions); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing habit #%d: %w", h.ID, err)
	}

	logger.Debug("habit saved", "id", h.ID, "completions", len(h.completions))
	return nil
}

// insertCompletions appends events not already stored. Existing event IDs
// are ignored, so the stored log only ever grows.
func insertCompletions(tx *sql.Tx, habitID int, events []Completion) error {
	if len(events) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(
		`INSERT INTO completions (event_id, habit_id, completion_date) VALUES (?, ?, ?)
		 ON CONFLICT(event_id) DO NOTHING`,
	)
	if err != nil {
		return fmt.Errorf("preparing completion insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range events {
		if _, err := stmt.Exec(c.ID, habitID, FormatTimestamp(c.At)); err != nil {
			return fmt.Errorf("recording completion for habit #%d: %w", habitID, err)
		}
	}
	return nil
}

// Get returns a single habit with its full completion log.
func (s *Store) Get(id int) (Habit, error) {
	row := s.db.QueryRow(
		`SELECT id, name, periodicity, category, creation_date FROM habits WHERE id = ?`, id,
	)
	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return Habit{}, fmt.Errorf("habit #%d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Habit{}, fmt.Errorf("getting habit #%d: %w", id, err)
	}

	byHabit, err := s.loadCompletions(`WHERE habit_id = ?`, id)
	if err != nil {
		return Habit{}, err
	}
	h.completions = byHabit[h.ID]
	return h, nil
}

// Load returns every habit, ordered by ID, each with its completion log in
// insertion order.
func (s *Store) Load() ([]Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, name, periodicity, category, creation_date FROM habits ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("loading habits: %w", err)
	}
	defer rows.Close()

	var habits []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("loading habits: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading habits: %w", err)
	}

	byHabit, err := s.loadCompletions("")
	if err != nil {
		return nil, err
	}
	for i := range habits {
		habits[i].completions = byHabit[habits[i].ID]
	}
	return habits, nil
}

// Delete removes a habit and all of its completions.
func (s *Store) Delete(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM completions WHERE habit_id = ?`, id); err != nil {
		return fmt.Errorf("deleting completions for habit #%d: %w", id, err)
	}
	res, err := tx.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting habit #%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting habit #%d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("habit #%d: %w", id, ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete of habit #%d: %w", id, err)
	}

	logger.Debug("habit deleted", "id", id)
	return nil
}

// Exists reports whether a habit with the given name is stored.
func (s *Store) Exists(name string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM habits WHERE name = ?`, name).Scan(&n); err != nil {
		return false, fmt.Errorf("checking habit name: %w", err)
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (Habit, error) {
	var h Habit
	var periodicity, created string
	if err := row.Scan(&h.ID, &h.Name, &periodicity, &h.Category, &created); err != nil {
		return Habit{}, err
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return Habit{}, fmt.Errorf("habit #%d: %w", h.ID, err)
	}
	h.periodicity = p

	h.createdAt, err = ParseTimestamp(created)
	if err != nil {
		return Habit{}, fmt.Errorf("habit #%d creation_date: %w", h.ID, err)
	}
	return h, nil
}

// loadCompletions reads completion rows grouped by habit ID, in insertion order.
func (s *Store) loadCompletions(where string, args ...any) (map[int][]Completion, error) {
	rows, err := s.db.Query(
		`SELECT habit_id, event_id, completion_date FROM completions `+where+` ORDER BY id ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]Completion)
	for rows.Next() {
		var habitID int
		var c Completion
		var at string
		if err := rows.Scan(&habitID, &c.ID, &at); err != nil {
			return nil, fmt.Errorf("loading completions: %w", err)
		}
		c.At, err = ParseTimestamp(at)
		if err != nil {
			return nil, fmt.Errorf("habit #%d completion: %w", habitID, err)
		}
		out[habitID] = append(out[habitID], c)
	}
	return out, rows.Err()
}
