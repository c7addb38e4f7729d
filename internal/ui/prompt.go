// Package ui holds the Bubble Tea model for the interactive repl.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"datefmt"
	"datefmt/internal/driver"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	outputStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

const (
	focusDate = iota
	focusPattern
)

// PromptModel is an interactive date/pattern form with a live preview.
type PromptModel struct {
	date    textinput.Model
	pattern textinput.Model
	focus   int
	now     func() time.Time
}

// NewPromptModel returns a repl model seeded with the given pattern. An empty
// date field previews against the current day.
func NewPromptModel(pattern string) *PromptModel {
	date := textinput.New()
	date.Placeholder = "yyyy-mm-dd (empty for today)"
	date.Prompt = "> "
	date.CharLimit = 32
	date.Focus()

	pat := textinput.New()
	pat.Placeholder = "e.g. dd mmmm yyyy"
	pat.Prompt = "> "
	pat.CharLimit = 32
	pat.SetValue(pattern)

	return &PromptModel{
		date:    date,
		pattern: pat,
		focus:   focusDate,
		now:     time.Now,
	}
}

func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter:
			m.toggleFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == focusDate {
		m.date, cmd = m.date.Update(msg)
	} else {
		m.pattern, cmd = m.pattern.Update(msg)
	}
	return m, cmd
}

func (m *PromptModel) toggleFocus() {
	if m.focus == focusDate {
		m.focus = focusPattern
		m.date.Blur()
		m.pattern.Focus()
	} else {
		m.focus = focusDate
		m.pattern.Blur()
		m.date.Focus()
	}
}

func (m *PromptModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("datefmt repl"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("date"))
	b.WriteString("\n")
	b.WriteString(m.date.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("pattern"))
	b.WriteString("\n")
	b.WriteString(m.pattern.View())
	b.WriteString("\n\n")
	b.WriteString(m.preview())
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("tab/enter switch field · esc quit"))
	b.WriteString("\n")
	return b.String()
}

// preview renders the current inputs, or explains why it cannot.
func (m *PromptModel) preview() string {
	day := m.now()
	if raw := strings.TrimSpace(m.date.Value()); raw != "" {
		parsed, err := driver.ParseDate(raw)
		if err != nil {
			return errorStyle.Render(fmt.Sprintf("date: %v", err))
		}
		day = parsed
	}

	pattern := norm.NFC.String(strings.TrimSpace(m.pattern.Value()))
	if pattern == "" {
		return hintStyle.Render("enter a pattern to see a preview")
	}
	out, err := datefmt.Format(day, pattern)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	return outputStyle.Render(out)
}
