package ui

import "github.com/charmbracelet/lipgloss"

// habit's color palette: fresh greens for progress, warm ambers for streaks.
var (
	Leaf   = lipgloss.Color("#50C878")
	Moss   = lipgloss.Color("#7BA05B")
	Amber  = lipgloss.Color("#FFBF00")
	Ember  = lipgloss.Color("#FF7F50")
	Ruby   = lipgloss.Color("#E0115F")
	Sky    = lipgloss.Color("#0F52BA")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")
	Subtle = lipgloss.Color("#AAAAAA")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	Subtitle = lipgloss.NewStyle().
			Foreground(Moss)

	Success = lipgloss.NewStyle().
		Foreground(Leaf)

	Error = lipgloss.NewStyle().
		Foreground(Ruby)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	// Component styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(Moss).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Leaf).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// Icons used across command output.
const (
	IconHabit    = "🌱 "
	IconFire     = "🔥"
	IconDone     = "✅"
	IconMissed   = "⭕"
	IconCalendar = "📅"
	IconChart    = "📈"
	IconWarn     = "⚠️ "
	IconError    = "✗ "
	IconOk       = "✓ "
	IconArrow    = "→"
	IconDot      = "·"
)
