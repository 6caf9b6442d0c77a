package ui

import (
	"strings"
	"testing"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", IconHabit + "Hey there!"},
		{"Ryan", IconHabit + "Hey Ryan!"},
		{"World", IconHabit + "Hey World!"},
	}

	for _, tt := range tests {
		got := Greet(tt.name)
		if got != tt.expected {
			t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		unit string
		want string
	}{
		{0, "day", "0 days"},
		{1, "day", "1 day"},
		{4, "week", "4 weeks"},
	}
	for _, tt := range tests {
		if got := Plural(tt.n, tt.unit); got != tt.want {
			t.Errorf("Plural(%d, %q) = %q, want %q", tt.n, tt.unit, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.5); got != "50.00%" {
		t.Errorf("Percent(0.5) = %q", got)
	}
	if got := Percent(1); got != "100.00%" {
		t.Errorf("Percent(1) = %q", got)
	}
}

func TestTable(t *testing.T) {
	ConfigureColor(false)
	out := Table([]string{"ID", "Name"}, [][]string{{"1", "Yoga"}, {"2", "Read"}})
	for _, want := range []string{"ID", "Name", "Yoga", "Read"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestIconConstants(t *testing.T) {
	icons := []string{
		IconHabit, IconFire, IconDone, IconMissed, IconCalendar, IconChart,
		IconWarn, IconError, IconOk, IconArrow, IconDot,
	}
	for i, icon := range icons {
		if icon == "" {
			t.Errorf("Icon at index %d is empty", i)
		}
	}
}
