package learn

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/quizgen"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/screen"
	"github.com/anandk/termquest/internal/ui/components"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

type phase int

const (
	phaseSetup phase = iota
	phaseStudying
	phaseComplete
)

// LearnScreen runs a shuffled flashcard session over the corpus:
// pick kind/project filters, flip through the deck revealing each
// card, tally got-it against review-again, and finish with the list
// of cards flagged for another pass. Nothing here touches the
// progress snapshot; an abandoned or finished deck leaves no trace.
type LearnScreen struct {
	items    []corpus.StudyItem
	kinds    []corpus.Kind
	projects []string
	rng      *rand.Rand

	phase      phase
	kindIdx    int // 0 means all kinds
	projectIdx int // 0 means all projects

	deck     []corpus.StudyItem
	index    int
	revealed bool
	got      int
	review   int
	flagged  []corpus.StudyItem
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)

// New creates a LearnScreen over the full corpus.
func New(items []corpus.StudyItem) *LearnScreen {
	return &LearnScreen{
		items:    items,
		kinds:    corpus.AllKinds(),
		projects: distinctProjects(items),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// distinctProjects collects project names in first-seen order. Items
// may carry several comma-joined names; each counts separately.
func distinctProjects(items []corpus.StudyItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		for _, p := range strings.Split(it.Project, ",") {
			p = strings.TrimSpace(p)
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

func (s *LearnScreen) Init() tea.Cmd {
	return nil
}

func (s *LearnScreen) Title() string {
	return "Learn"
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseStudying:
		if s.revealed {
			return []layout.KeyHint{
				{Key: "G", Description: "Got it"},
				{Key: "R", Description: "Review again"},
				{Key: "Esc", Description: "Change filters"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Reveal"},
			{Key: "Esc", Description: "Change filters"},
		}
	case phaseComplete:
		return []layout.KeyHint{
			{Key: "Enter", Description: "New session"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Kind"},
			{Key: "P", Description: "Project"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// kindFilter returns the active kind, or "" for all.
func (s *LearnScreen) kindFilter() corpus.Kind {
	if s.kindIdx == 0 {
		return ""
	}
	return s.kinds[s.kindIdx-1]
}

// projectFilter returns the active project, or "" for all.
func (s *LearnScreen) projectFilter() string {
	if s.projectIdx == 0 {
		return ""
	}
	return s.projects[s.projectIdx-1]
}

// filtered returns the items matching the current filters. Project
// matching is a substring match since items carry comma-joined names.
func (s *LearnScreen) filtered() []corpus.StudyItem {
	kind := s.kindFilter()
	project := strings.ToLower(s.projectFilter())

	var out []corpus.StudyItem
	for _, it := range s.items {
		if kind != "" && it.Kind != kind {
			continue
		}
		if project != "" && !strings.Contains(strings.ToLower(it.Project), project) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// startSession shuffles the filtered deck and resets the tallies.
func (s *LearnScreen) startSession() {
	s.deck = quizgen.Shuffle(s.rng, s.filtered())
	s.index = 0
	s.revealed = false
	s.got = 0
	s.review = 0
	s.flagged = nil
	s.phase = phaseStudying
}

func (s *LearnScreen) advance() {
	s.revealed = false
	s.index++
	if s.index >= len(s.deck) {
		s.phase = phaseComplete
	}
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseSetup:
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.kindIdx = (s.kindIdx + 1) % (len(s.kinds) + 1)
		case "p":
			s.projectIdx = (s.projectIdx + 1) % (len(s.projects) + 1)
		case "enter":
			if len(s.filtered()) > 0 {
				s.startSession()
			}
		}

	case phaseStudying:
		switch kmsg.String() {
		case "esc":
			// Back to setup; the half-finished deck is dropped.
			s.phase = phaseSetup
		case "enter", "space":
			s.revealed = true
		case "g":
			if s.revealed {
				s.got++
				s.advance()
			}
		case "r":
			if s.revealed {
				s.review++
				s.flagged = append(s.flagged, s.deck[s.index])
				s.advance()
			}
		}

	case phaseComplete:
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			s.phase = phaseSetup
		}
	}

	return s, nil
}

func (s *LearnScreen) View(width, height int) string {
	switch s.phase {
	case phaseStudying:
		return s.viewCard(width, height)
	case phaseComplete:
		return s.viewComplete(width, height)
	default:
		return s.viewSetup(width, height)
	}
}

func (s *LearnScreen) viewSetup(width, height int) string {
	kindLabel := "all kinds"
	if k := s.kindFilter(); k != "" {
		kindLabel = string(k)
	}
	projectLabel := "all projects"
	if p := s.projectFilter(); p != "" {
		projectLabel = p
	}

	count := len(s.filtered())
	countLine := fmt.Sprintf("%d items in this set", count)
	startLine := "Enter to start studying"
	if count == 0 {
		startLine = "Nothing matches these filters"
	}

	body := strings.Join([]string{
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Set up your study session"),
		"",
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("Kind     ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(kindLabel),
		lipgloss.NewStyle().Foreground(theme.Secondary).Render("Project  ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(projectLabel),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(countLine),
		theme.Hint.Render(startLine),
	}, "\n")

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *LearnScreen) viewCard(width, height int) string {
	item := s.deck[s.index]
	maxWidth := width - 20
	if maxWidth < 40 {
		maxWidth = 40
	}

	tally := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d got it", s.got)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ·  ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d to review", s.review))

	var percent float64
	if len(s.deck) > 0 {
		percent = float64(s.index) / float64(len(s.deck))
	}
	bar := components.NewProgressBar("", percent, false, maxWidth/2)

	front := []string{
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Term),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%s · %s", item.Kind, item.Category)),
	}
	if corpus.HasContent(item.Project) {
		front = append(front, theme.Hint.Render(item.Project))
	}

	body := strings.Join(front, "\n")
	if !s.revealed {
		body += "\n\n" + theme.Hint.Render("Enter to reveal")
	} else {
		type field struct {
			label string
			value string
		}
		fields := []field{
			{"What it is", item.WhatItIs},
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
			body += "\n\n" +
				lipgloss.NewStyle().Foreground(theme.Secondary).Render(f.label) + "\n" +
				f.value
		}
		body += "\n\n" +
			lipgloss.NewStyle().Foreground(theme.Success).Render("[G]ot it") + "   " +
			lipgloss.NewStyle().Foreground(theme.Accent).Render("[R]eview again")
	}

	counter := theme.Hint.Render(fmt.Sprintf("card %d of %d", s.index+1, len(s.deck)))

	content := counter + "  " + tally + "\n" + bar.View() + "\n\n" +
		theme.Card.MaxWidth(maxWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LearnScreen) viewComplete(width, height int) string {
	lines := []string{
		theme.Title.Render("Session Complete"),
		"",
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%d got it", s.got)) +
			"   " +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d to review", s.review)),
	}

	if len(s.flagged) > 0 {
		lines = append(lines, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Flagged for review:"))
		for _, it := range s.flagged {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Text).Render("  "+it.Term)+
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ("+it.Category+")"))
		}
	}

	lines = append(lines, "", theme.Hint.Render("Enter for a new session"))

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
