package store

import (
	"database/sql"
	"fmt"

	"github.com/rnwolfe/habit/internal/config"
	"github.com/rnwolfe/habit/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens (or creates) the habit database at the configured location.
func Open() (*DB, error) {
	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}
	return OpenPath(paths.DBFile)
}

// OpenPath opens (or creates) a habit database at path and applies migrations.
func OpenPath(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn, path: path}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("database opened", "path", path)
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Path returns the database file location.
func (db *DB) Path() string {
	return db.path
}

// Reset drops all habit data and re-creates the schema.
func (db *DB) Reset() error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("starting reset: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS completions`,
		`DROP TABLE IF EXISTS habits`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("reset failed: %w\nSQL: %s", err, stmt)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}

	logger.Info("database reset", "path", db.path)
	return db.migrate()
}

// migration is one named schema step. Names are recorded in the migrations
// table once applied.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{"create_habits", `CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		periodicity TEXT NOT NULL CHECK (periodicity IN ('daily', 'weekly')),
		category TEXT NOT NULL DEFAULT 'general',
		creation_date TEXT NOT NULL
	)`},
	// Completion events, one row per event. event_id makes appends idempotent.
	{"create_completions", `CREATE TABLE IF NOT EXISTS completions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL UNIQUE,
		habit_id INTEGER NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		completion_date TEXT NOT NULL
	)`},
	{"index_completions_habit_id", `CREATE INDEX IF NOT EXISTS idx_completions_habit_id ON completions(habit_id)`},
	// Key-value store for misc state
	{"create_kv", `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`},
}

// migrate runs all schema migrations and records each one by name.
// Every statement is idempotent, so steps are re-run after Reset drops
// their tables.
func (db *DB) migrate() error {
	if _, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS migrations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %s failed: %w\nSQL: %s", m.name, err, m.sql)
		}
		if _, err := db.conn.Exec(
			`INSERT INTO migrations (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, m.name,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", m.name, err)
		}
	}
	return nil
}

// Applied returns the names of recorded migrations in the order they were
// first applied.
func (db *DB) Applied() ([]string, error) {
	rows, err := db.conn.Query(`SELECT name FROM migrations ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("reading migrations: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("reading migrations: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetKV returns the value stored under key, or "" when unset.
func (db *DB) GetKV(key string) (string, error) {
	var v sql.NullString
	err := db.conn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading kv %q: %w", key, err)
	}
	return v.String, nil
}

// SetKV upserts a key-value pair.
func (db *DB) SetKV(key, value string) error {
	_, err := db.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing kv %q: %w", key, err)
	}
	return nil
}
