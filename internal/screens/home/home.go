package home

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
	"github.com/anandk/termquest/internal/screens/course"
	"github.com/anandk/termquest/internal/screens/explore"
	"github.com/anandk/termquest/internal/screens/history"
	"github.com/anandk/termquest/internal/screens/learn"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/store"
	"github.com/anandk/termquest/internal/ui/components"
	"github.com/anandk/termquest/internal/ui/theme"
)

// Deps bundles the collaborators the home screen hands to sub-screens.
type Deps struct {
	Items   []corpus.StudyItem
	Modules []curriculum.Module
	Tracker *session.Tracker
	Events  store.EventRepo
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "COURSE", Detail: "lessons and quizzes", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: course.New(deps.Modules, deps.Items, deps.Tracker),
				}
			}
		}},
		{Label: "LEARN", Detail: "shuffled flashcards", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(deps.Items)}
			}
		}},
		{Label: "EXPLORE", Detail: "browse the corpus", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: explore.New(deps.Items, deps.Tracker),
				}
			}
		}},
		{Label: "HISTORY", Detail: "recent activity", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.deps.Tracker.Progress()
	lvl := progress.GetLevel(p.XP)

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("TermQuest"))
	sections = append(sections, theme.Subtitle.Width(width).Render("learn your stack, five items at a time"))

	sections = append(sections, renderStatsCard(p, lvl, width))

	menu := h.menu.View()
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderStatsCard shows level, XP progress to the next level, and the
// headline counters.
func renderStatsCard(p progress.UserProgress, lvl progress.Level, width int) string {
	barWidth := 40
	if barWidth > width-10 {
		barWidth = width - 10
	}

	var percent float64
	if lvl.RequiredXP > 0 {
		percent = float64(lvl.CurrentXP) / float64(lvl.RequiredXP)
	}

	bar := components.NewProgressBar("", percent, false, barWidth)

	levelLine := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Level %d · %s", lvl.Level, lvl.Title))
	xpLine := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d / %d XP to next level", lvl.CurrentXP, lvl.RequiredXP))
	counters := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%d lessons   %d quizzes   %d mastered   %d achievements",
			len(p.CompletedLessons), p.TotalQuizzesTaken, p.MasteredCount(), len(p.Achievements)))

	card := theme.Card.Render(
		levelLine + "\n" + xpLine + "\n" + bar.View() + "\n\n" + counters)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}
