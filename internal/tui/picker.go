// Package tui holds the interactive terminal views.
package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rnwolfe/habit/internal/analytics"
	"github.com/rnwolfe/habit/internal/habit"
	"github.com/rnwolfe/habit/internal/ui"
)

// Choice is one selectable habit.
type Choice struct {
	ID     int
	Label  string
	Detail string
}

// Choices turns habits into picker rows, marking those already done this period.
func Choices(habits []habit.Habit, now time.Time) []Choice {
	out := make([]Choice, 0, len(habits))
	for _, h := range habits {
		detail := fmt.Sprintf("%s %s %s", h.Periodicity(), ui.IconDot, h.Category)
		if analytics.DoneThisPeriod(h, now) {
			detail += " " + ui.IconDot + " done"
		}
		out = append(out, Choice{ID: h.ID, Label: h.Name, Detail: detail})
	}
	return out
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Pick shows a fuzzy picker over choices. ok is false when the user cancels.
func Pick(title string, choices []Choice) (Choice, bool, error) {
	m := newPicker(title, choices)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Choice{}, false, fmt.Errorf("picker: %w", err)
	}
	p := final.(*picker)
	if p.canceled || p.chosen == nil {
		return Choice{}, false, nil
	}
	return *p.chosen, true, nil
}

type picker struct {
	title    string
	choices  []Choice
	visible  []Choice
	query    string
	cursor   int
	offset   int
	rows     int
	chosen   *Choice
	canceled bool
}

func newPicker(title string, choices []Choice) *picker {
	p := &picker{title: title, choices: choices, rows: 8}
	p.filter()
	return p
}

func (p *picker) Init() tea.Cmd { return nil }

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.rows = max(3, min(8, msg.Height-6))
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			p.canceled = true
			return p, tea.Quit
		case tea.KeyEnter:
			if len(p.visible) > 0 {
				c := p.visible[p.cursor]
				p.chosen = &c
			}
			return p, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			p.move(-1)
		case tea.KeyDown, tea.KeyCtrlN:
			p.move(1)
		case tea.KeyBackspace:
			if r := []rune(p.query); len(r) > 0 {
				p.query = string(r[:len(r)-1])
				p.filter()
			}
		case tea.KeyRunes, tea.KeySpace:
			p.query += string(msg.Runes)
			p.filter()
		}
	}
	return p, nil
}

func (p *picker) View() string {
	var b strings.Builder
	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}
	prompt := lipgloss.NewStyle().Foreground(ui.Amber).Bold(true).Render("> ")
	b.WriteString("  " + prompt + p.query + "\n\n")

	if len(p.visible) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matching habits") + "\n")
	}
	end := min(p.offset+p.rows, len(p.visible))
	for i := p.offset; i < end; i++ {
		c := p.visible[i]
		pointer, label := "  ", c.Label
		if i == p.cursor {
			pointer = ui.Accent.Render(ui.IconArrow + " ")
			label = ui.Accent.Bold(true).Render(c.Label)
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", pointer, label, ui.Muted.Render(c.Detail)))
	}

	b.WriteString("\n" + ui.Muted.Render(fmt.Sprintf("  %d/%d %s ↑↓ move %s enter complete %s esc cancel",
		len(p.visible), len(p.choices), ui.IconDot, ui.IconDot, ui.IconDot)) + "\n")
	return b.String()
}

func (p *picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.visible) {
		return
	}
	p.cursor = next
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.rows {
		p.offset = p.cursor - p.rows + 1
	}
}

func (p *picker) filter() {
	type hit struct {
		c     Choice
		score int
	}
	var hits []hit
	for _, c := range p.choices {
		if ok, score := Match(p.query, c.Label); ok {
			hits = append(hits, hit{c, score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	p.visible = p.visible[:0]
	for _, h := range hits {
		p.visible = append(p.visible, h.c)
	}
	p.cursor, p.offset = 0, 0
}
