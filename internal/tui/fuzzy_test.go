package tui

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		query, target string
		want          bool
	}{
		{"", "anything", true},
		{"yoga", "Yoga", true},
		{"DW", "drink water", true},
		{"rd", "Read", true},
		{"oy", "Yoga", false},
		{"x", "Journal", false},
		{"a", "", false},
		{"medi", "Meditate", true},
	}
	for _, tt := range tests {
		got, _ := Match(tt.query, tt.target)
		if got != tt.want {
			t.Errorf("Match(%q, %q) = %v, want %v", tt.query, tt.target, got, tt.want)
		}
	}
}

func TestMatch_Scoring(t *testing.T) {
	_, consecutive := Match("rea", "Read")
	_, scattered := Match("rea", "rope area")
	if consecutive <= scattered {
		t.Errorf("consecutive score %d should beat scattered %d", consecutive, scattered)
	}

	_, boundary := Match("w", "drink water")
	_, inner := Match("w", "drawn")
	if boundary <= inner {
		t.Errorf("word boundary score %d should beat inner %d", boundary, inner)
	}
}

func TestMatch_Unicode(t *testing.T) {
	if ok, _ := Match("é", "Café run"); !ok {
		t.Error("expected multibyte rune to match")
	}
}
