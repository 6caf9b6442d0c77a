package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"
	"time"

	"github.com/rnwolfe/habit/internal/habit"
)

var testNow = time.Date(2026, 2, 26, 18, 0, 0, 0, time.Local)

// configTestEnv sets up a temp XDG environment, pins the clock and clears
// every package-level flag for the duration of the test.
func configTestEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
	t.Setenv("USER", "tester")

	oldNow := now
	now = func() time.Time { return testNow }
	t.Cleanup(func() { now = oldNow })

	resetFlags()
	t.Cleanup(resetFlags)
}

func resetFlags() {
	createTask, createPeriodicity, createCategory = "", "", ""
	completeID = 0
	listPeriodicity, listCategory = "", ""
	analyzeID, analyzePeriodicity, analyzeCategory = 0, "", ""
	analyzeLongest, analyzeCurrent, analyzeRate = false, false, false
	analyzeStruggled, analyzeWeekly, analyzeMonthly = false, false, false
	deleteID = 0
	resetYes = false
	versionShort = false
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
		r.Close()
	}()

	fn()

	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

// seedHabit stores a habit created at created with the given completions.
func seedHabit(t *testing.T, name string, p habit.Periodicity, category string, created time.Time, done ...time.Time) int {
	t.Helper()
	h, err := habit.New(name, p, category, created)
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range done {
		h.Complete(d)
	}
	db, hs, err := openHabits()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := hs.Create(h); err != nil {
		t.Fatalf("Create(%s): %v", name, err)
	}
	return h.ID
}

func getHabit(t *testing.T, id int) *habit.Habit {
	t.Helper()
	db, hs, err := openHabits()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	h, err := hs.Get(id)
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	return &h
}
