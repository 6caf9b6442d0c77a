package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/rnwolfe/habit/internal/config"
	"github.com/rnwolfe/habit/internal/store"
	"github.com/spf13/cobra"
)

func TestRunConfigGet_Default(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runConfigGet(nil, []string{"habits.default_category"}); err != nil {
			t.Errorf("runConfigGet: %v", err)
		}
	})
	if strings.TrimSpace(out) != "general" {
		t.Errorf("got %q, want general", out)
	}
}

func TestRunConfigSetAndGet(t *testing.T) {
	configTestEnv(t)

	captureStdout(t, func() {
		if err := runConfigSet(nil, []string{"user.name", "Sam"}); err != nil {
			t.Errorf("runConfigSet: %v", err)
		}
	})
	if !config.Initialized() {
		t.Fatal("set should write the config file")
	}

	out := captureStdout(t, func() {
		if err := runConfigGet(nil, []string{"user.name"}); err != nil {
			t.Errorf("runConfigGet: %v", err)
		}
	})
	if strings.TrimSpace(out) != "Sam" {
		t.Errorf("got %q, want Sam", out)
	}
}

func TestRunConfigSet_InvalidBool(t *testing.T) {
	configTestEnv(t)
	err := runConfigSet(nil, []string{"ui.color", "maybe"})
	if err == nil || !strings.Contains(err.Error(), "ui.color") {
		t.Fatalf("expected invalid bool error, got %v", err)
	}
}

func TestRunConfig_UnknownKey(t *testing.T) {
	configTestEnv(t)
	for _, run := range []func() error{
		func() error { return runConfigGet(nil, []string{"nope"}) },
		func() error { return runConfigSet(nil, []string{"nope", "x"}) },
		func() error { return runConfigUnset(nil, []string{"nope"}) },
	} {
		err := run()
		if err == nil || !strings.Contains(err.Error(), "unknown config key") {
			t.Errorf("expected unknown key error, got %v", err)
		}
	}
}

func TestRunConfigUnset(t *testing.T) {
	configTestEnv(t)
	captureStdout(t, func() {
		if err := runConfigSet(nil, []string{"habits.default_category", "fitness"}); err != nil {
			t.Fatalf("runConfigSet: %v", err)
		}
		if err := runConfigUnset(nil, []string{"habits.default_category"}); err != nil {
			t.Fatalf("runConfigUnset: %v", err)
		}
	})
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Habits.CategoryOrDefault(); got != "general" {
		t.Errorf("after unset = %q, want general", got)
	}
}

func TestRunConfigShow(t *testing.T) {
	configTestEnv(t)
	out := captureStdout(t, func() {
		if err := runConfigShow(nil, nil); err != nil {
			t.Errorf("runConfigShow: %v", err)
		}
	})
	for _, key := range config.ValidKeyNames() {
		if !strings.Contains(out, key) {
			t.Errorf("config show missing %q:\n%s", key, out)
		}
	}
	if !strings.Contains(out, "tester") {
		t.Errorf("config show should include user.name default from $USER:\n%s", out)
	}
}

func TestRunVersion(t *testing.T) {
	configTestEnv(t)
	out := captureStdout(t, func() { _ = runVersion(nil, nil) })
	if !strings.HasPrefix(out, "habit ") {
		t.Errorf("version output = %q", out)
	}

	versionShort = true
	out = captureStdout(t, func() { _ = runVersion(nil, nil) })
	if strings.HasPrefix(out, "habit ") || strings.TrimSpace(out) == "" {
		t.Errorf("short version output = %q", out)
	}
}

func TestRunSeed(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runSeed(nil, nil); err != nil {
			t.Errorf("runSeed: %v", err)
		}
	})
	if !strings.Contains(out, "Loaded 5 sample habits") {
		t.Errorf("unexpected output: %q", out)
	}

	out = captureStdout(t, func() {
		if err := runSeed(nil, nil); err != nil {
			t.Errorf("second runSeed: %v", err)
		}
	})
	if !strings.Contains(out, "already loaded") || !strings.Contains(out, "2026-02-26T18:00:00") {
		t.Errorf("second seed should report the earlier load: %q", out)
	}

	db, err := store.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if v, _ := db.GetKV(sampleLoadedKey); v == "" {
		t.Error("sample load time not recorded")
	}
}

func TestRunDashboard(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Errorf("runDashboard: %v", err)
		}
	})
	if !strings.Contains(out, "Hey tester!") || !strings.Contains(out, "not tracking any habits") {
		t.Errorf("empty dashboard output: %q", out)
	}

	seedSamples(t)
	out = captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Errorf("runDashboard: %v", err)
		}
	})
	for _, want := range []string{"5 tracked", "all done for now", "28", "100.00%", "Thursday, February 26"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestChangedFlags(t *testing.T) {
	c := &cobra.Command{Use: "x"}
	var id int
	var name string
	c.Flags().IntVar(&id, "id", 0, "")
	c.Flags().StringVar(&name, "name", "", "")
	if err := c.Flags().Parse([]string{"--id", "3"}); err != nil {
		t.Fatal(err)
	}

	got := changedFlags(c)
	if len(got) != 1 || got["id"] != "3" {
		t.Errorf("changedFlags = %v, want map[id:3]", got)
	}
	if len(changedFlags(nil)) != 0 {
		t.Error("nil command should yield no flags")
	}
}

func TestLogged_PassesThroughError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fn := logged("test", func(_ *cobra.Command, args []string) error {
		calls++
		if len(args) > 0 {
			return boom
		}
		return nil
	})

	if err := fn(nil, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := fn(nil, []string{"x"}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped fn error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("fn called %d times, want 2", calls)
	}
}
