package course

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/screen"
	"github.com/anandk/termquest/internal/screens/quiz"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

// ModuleScreen lists one module's lessons plus its quiz entry.
type ModuleScreen struct {
	module   curriculum.Module
	pool     []corpus.StudyItem
	tracker  *session.Tracker
	selected int
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)

// NewModuleScreen creates a screen for one module.
func NewModuleScreen(module curriculum.Module, pool []corpus.StudyItem, tracker *session.Tracker) *ModuleScreen {
	return &ModuleScreen{
		module:  module,
		pool:    pool,
		tracker: tracker,
	}
}

func (m *ModuleScreen) Init() tea.Cmd {
	return nil
}

func (m *ModuleScreen) Title() string {
	return m.module.Title
}

func (m *ModuleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

// rowCount is lessons plus the trailing quiz row.
func (m *ModuleScreen) rowCount() int {
	return len(m.module.Lessons) + 1
}

func (m *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "esc":
		return m, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < m.rowCount()-1 {
			m.selected++
		}
	case "enter":
		if m.selected < len(m.module.Lessons) {
			lesson := m.module.Lessons[m.selected]
			return m, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: NewStudyScreen(lesson, m.tracker),
				}
			}
		}
		return m, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: quiz.New(m.module, m.pool, m.tracker),
			}
		}
	}
	return m, nil
}

func (m *ModuleScreen) View(width, height int) string {
	p := m.tracker.Progress()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.module.Description))
	b.WriteString("\n\n")

	for i, lesson := range m.module.Lessons {
		marker := "·"
		if p.LessonCompleted(lesson.ID) {
			marker = "✓"
		}

		prefix := "  "
		if i == m.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, lesson.Title)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if p.LessonCompleted(lesson.ID) {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == m.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		b.WriteString("    " + style.Render(line) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(lesson.Description))
		b.WriteString("\n")
	}

	quizRow := m.rowCount() - 1
	prefix := "  "
	if m.selected == quizRow {
		prefix = "▸ "
	}
	quizLine := prefix + "⚡ Module Quiz"
	if best, ok := p.QuizHighScores[m.module.QuizID()]; ok {
		quizLine += fmt.Sprintf("  (best %d%%)", best)
	}

	style := lipgloss.NewStyle().Foreground(theme.Accent)
	if m.selected == quizRow {
		style = style.Bold(true)
	}
	b.WriteString("\n    " + style.Render(quizLine) + "\n")

	return b.String()
}
