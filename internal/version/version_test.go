package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func resetVars(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	Version, Commit, Date = "dev", "none", "unknown"
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestString(t *testing.T) {
	resetVars(t)
	got := String()
	if !strings.HasPrefix(got, "habit dev") {
		t.Errorf("String() = %q, want habit dev prefix", got)
	}
}

func TestApplyBuildInfo_Tagged(t *testing.T) {
	resetVars(t)
	applyBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-02-26T10:00:00Z"},
		},
	})
	if Version != "v1.2.0" {
		t.Errorf("Version = %q", Version)
	}
	if Commit != "0123456" {
		t.Errorf("Commit = %q", Commit)
	}
	if Date != "2026-02-26T10:00:00Z" {
		t.Errorf("Date = %q", Date)
	}
}

func TestApplyBuildInfo_Devel(t *testing.T) {
	resetVars(t)
	applyBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}
	if Commit != "abc-dirty" {
		t.Errorf("Commit = %q, want abc-dirty", Commit)
	}
}

func TestApplyBuildInfo_LdflagsWin(t *testing.T) {
	resetVars(t)
	Version, Commit = "v9.9.9", "feedbee"
	applyBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0000000000"}},
	})
	if Version != "v9.9.9" || Commit != "feedbee" {
		t.Errorf("ldflags values overwritten: %q %q", Version, Commit)
	}
}

func TestApplyBuildInfo_Nil(t *testing.T) {
	resetVars(t)
	applyBuildInfo(nil)
	if Version != "dev" {
		t.Errorf("Version = %q", Version)
	}
}
