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
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

// StudyScreen walks through a lesson's items card by card and applies
// the completion transition after the last card.
type StudyScreen struct {
	lesson  curriculum.Lesson
	tracker *session.Tracker
	index   int
	done    bool
	outcome session.Outcome
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// NewStudyScreen creates a study flow for one lesson.
func NewStudyScreen(lesson curriculum.Lesson, tracker *session.Tracker) *StudyScreen {
	return &StudyScreen{
		lesson:  lesson,
		tracker: tracker,
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return s.lesson.Title
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "Esc", Description: "Abandon"},
	}
	if s.index == len(s.lesson.Items)-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Finish lesson"})
	}
	return hints
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.done {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		// Abandoning mid-lesson persists nothing.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h", "p":
		if s.index > 0 {
			s.index--
		}
	case "right", "l", "n", "space":
		if s.index < len(s.lesson.Items)-1 {
			s.index++
		}
	case "enter":
		if s.index == len(s.lesson.Items)-1 {
			s.outcome = s.tracker.CompleteLesson(s.lesson)
			s.done = true
		} else {
			s.index++
		}
	}
	return s, nil
}

func (s *StudyScreen) View(width, height int) string {
	if s.done {
		return s.viewOutcome(width, height)
	}
	if len(s.lesson.Items) == 0 {
		return theme.Subtitle.Width(width).Render("\n\nNothing to study here.")
	}

	item := s.lesson.Items[s.index]
	card := renderItemCard(item, s.tracker, width)

	counter := theme.Hint.Render(
		fmt.Sprintf("card %d of %d", s.index+1, len(s.lesson.Items)))

	content := card + "\n\n" + counter
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *StudyScreen) viewOutcome(width, height int) string {
	var lines []string
	if s.outcome.AlreadyDone {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Lesson already completed."),
			theme.Hint.Render("Repeats earn no extra XP."))
	} else {
		lines = append(lines,
			theme.Correct.Render("Lesson complete!"),
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("+%d XP", s.outcome.XPGained)))
		for _, a := range s.outcome.Unlocked {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
					Render(fmt.Sprintf("%s  %s unlocked! (+%d XP)", a.Icon, a.Title, a.XPReward)))
		}
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// renderItemCard renders one study item with its descriptive fields.
func renderItemCard(item corpus.StudyItem, tracker *session.Tracker, width int) string {
	maxWidth := width - 20
	if maxWidth < 40 {
		maxWidth = 40
	}

	term := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Term)
	kind := lipgloss.NewStyle().Foreground(theme.TextDim).Render("(" + string(item.Kind) + ")")
	mastery := theme.MasteryBadge.Render(string(tracker.Progress().Mastery(item.ID)))

	body := []string{term + "  " + kind + "  " + mastery, ""}
	body = append(body, wrap(item.Description(), maxWidth))

	type field struct {
		label string
		value string
	}
	fields := []field{
		{"Why it exists", item.WhyItExists},
		{"Where it runs", item.WhereItRuns},
		{"What it touches", item.WhatItTouches},
		{"What breaks", item.WhatBreaks},
		{"In this project", item.ProjectUsage},
		{"Commonly confused", item.CommonConfusion},
	}
	for _, f := range fields {
		if !corpus.HasContent(f.value) {
			continue
		}
		body = append(body, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(f.label),
			wrap(f.value, maxWidth))
	}

	return theme.Card.MaxWidth(maxWidth + 6).Render(strings.Join(body, "\n"))
}

// wrap does simple word wrapping to the given width.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
