package store

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestXDG sets XDG env vars to a temp directory for isolated testing.
func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	return tmpDir
}

func tableExists(t *testing.T, db *DB, table string) bool {
	t.Helper()
	var name string
	err := db.Conn().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
	).Scan(&name)
	return err == nil
}

func TestOpenAndClose(t *testing.T) {
	tmpDir := setupTestXDG(t)

	db, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if db.Conn() == nil {
		t.Fatal("Conn() returned nil")
	}

	dbPath := filepath.Join(tmpDir, "habit", "habits.db")
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("Database file not created at %s: %v", dbPath, err)
	}
	if db.Path() != dbPath {
		t.Errorf("Path() = %q, want %q", db.Path(), dbPath)
	}
}

func TestMigrationsCreateTables(t *testing.T) {
	setupTestXDG(t)

	db, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"migrations", "habits", "completions", "kv"} {
		if !tableExists(t, db, table) {
			t.Errorf("Table %q not found", table)
		}
	}
}

func TestMigrationsRecorded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenPath(path)
	if err != nil {
		t.Fatal(err)
	}
	names, err := db.Applied()
	if err != nil {
		t.Fatalf("Applied: %v", err)
	}
	if len(names) != len(migrations) {
		t.Fatalf("recorded %d migrations, want %d: %v", len(names), len(migrations), names)
	}
	for i, m := range migrations {
		if names[i] != m.name {
			t.Errorf("migration %d = %q, want %q", i, names[i], m.name)
		}
	}
	if err := db.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	db.Close()

	// Reopening and resetting must not record anything twice.
	db, err = OpenPath(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	names, err = db.Applied()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != len(migrations) {
		t.Errorf("after reopen: %d migrations recorded, want %d", len(names), len(migrations))
	}
}

func TestWALMode(t *testing.T) {
	setupTestXDG(t)

	db, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	var journalMode string
	if err := db.Conn().QueryRow("PRAGMA journal_mode").Scan(&journalMode); err != nil {
		t.Fatalf("Querying journal_mode failed: %v", err)
	}
	if journalMode != "wal" {
		t.Errorf("Expected WAL mode, got %q", journalMode)
	}
}

func TestDoubleOpen(t *testing.T) {
	setupTestXDG(t)

	db1, err := Open()
	if err != nil {
		t.Fatalf("First Open failed: %v", err)
	}
	defer db1.Close()

	// Opening again should not fail (migrations are idempotent)
	db2, err := Open()
	if err != nil {
		t.Fatalf("Second Open failed: %v", err)
	}
	defer db2.Close()
}

func TestPeriodicityConstraint(t *testing.T) {
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = db.Conn().Exec(
		`INSERT INTO habits (name, periodicity, creation_date) VALUES ('x', 'monthly', '2026-01-01')`,
	)
	if err == nil {
		t.Fatal("expected CHECK constraint to reject 'monthly'")
	}
}

func TestReset(t *testing.T) {
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Conn().Exec(
		`INSERT INTO habits (name, periodicity, creation_date) VALUES ('Water', 'daily', '2026-01-01')`,
	); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Conn().Exec(
		`INSERT INTO completions (event_id, habit_id, completion_date) VALUES ('e1', 1, '2026-01-01')`,
	); err != nil {
		t.Fatal(err)
	}

	if err := db.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	for _, table := range []string{"habits", "completions"} {
		if !tableExists(t, db, table) {
			t.Fatalf("table %q missing after reset", table)
		}
		var n int
		if err := db.Conn().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Errorf("table %q has %d rows after reset", table, n)
		}
	}
}

func TestKV(t *testing.T) {
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	v, err := db.GetKV("missing")
	if err != nil || v != "" {
		t.Fatalf("GetKV(missing) = %q, %v", v, err)
	}
	if err := db.SetKV("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetKV("k", "two"); err != nil {
		t.Fatal(err)
	}
	if v, _ := db.GetKV("k"); v != "two" {
		t.Fatalf("GetKV(k) = %q, want two", v)
	}
}
