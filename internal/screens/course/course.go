package course

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/progress"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/screen"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

// CourseScreen lists the curriculum modules.
type CourseScreen struct {
	modules  []curriculum.Module
	pool     []corpus.StudyItem
	tracker  *session.Tracker
	selected int
}

var _ screen.Screen = (*CourseScreen)(nil)
var _ screen.KeyHintProvider = (*CourseScreen)(nil)

// New creates a new CourseScreen.
func New(modules []curriculum.Module, pool []corpus.StudyItem, tracker *session.Tracker) *CourseScreen {
	return &CourseScreen{
		modules: modules,
		pool:    pool,
		tracker: tracker,
	}
}

func (c *CourseScreen) Init() tea.Cmd {
	return nil
}

func (c *CourseScreen) Title() string {
	return "Course"
}

func (c *CourseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CourseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "esc":
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.modules)-1 {
			c.selected++
		}
	case "enter":
		if c.selected >= 0 && c.selected < len(c.modules) {
			mod := c.modules[c.selected]
			return c, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: NewModuleScreen(mod, c.pool, c.tracker),
				}
			}
		}
	}
	return c, nil
}

func (c *CourseScreen) View(width, height int) string {
	p := c.tracker.Progress()

	var b strings.Builder
	b.WriteString("\n")

	for i, mod := range c.modules {
		done := 0
		for _, l := range mod.Lessons {
			if p.LessonCompleted(l.ID) {
				done++
			}
		}

		prefix := "  "
		if i == c.selected {
			prefix = "▸ "
		}

		mastered := 0
		for _, it := range mod.Items {
			if p.Mastery(it.ID) == progress.MasteryMastered {
				mastered++
			}
		}
		masteryPct := 0
		if len(mod.Items) > 0 {
			masteryPct = mastered * 100 / len(mod.Items)
		}

		line := fmt.Sprintf("%s%s %s", prefix, mod.Icon, mod.Title)
		detail := fmt.Sprintf("%d items · %d/%d lessons · %d%% mastered",
			len(mod.Items), done, len(mod.Lessons), masteryPct)
		if best, ok := p.QuizHighScores[mod.QuizID()]; ok {
			detail += fmt.Sprintf(" · best quiz %d%%", best)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		row := style.Render(line) + "  " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left, "    "+row))
		b.WriteString("\n")
	}

	return b.String()
}
