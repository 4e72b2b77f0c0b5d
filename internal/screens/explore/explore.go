package explore

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/screen"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/ui/components"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

const visibleRows = 12

// ExploreScreen is a searchable, filterable browser over the corpus.
type ExploreScreen struct {
	items   []corpus.StudyItem
	tracker *session.Tracker

	search   components.SearchInput
	kinds    []corpus.Kind
	kindIdx  int // 0 means "all kinds"
	filtered []corpus.StudyItem
	selected int
	detail   bool
}

var _ screen.Screen = (*ExploreScreen)(nil)
var _ screen.KeyHintProvider = (*ExploreScreen)(nil)

// New creates a new ExploreScreen over the full corpus.
func New(items []corpus.StudyItem, tracker *session.Tracker) *ExploreScreen {
	s := &ExploreScreen{
		items:   items,
		tracker: tracker,
		search:  components.NewSearchInput("search terms, categories..."),
		kinds:   corpus.AllKinds(),
	}
	s.refilter()
	return s
}

func (s *ExploreScreen) Init() tea.Cmd {
	return s.search.Init()
}

func (s *ExploreScreen) Title() string {
	return "Explore"
}

func (s *ExploreScreen) KeyHints() []layout.KeyHint {
	if s.detail {
		return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Kind filter"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// kindFilter returns the active kind, or "" for all.
func (s *ExploreScreen) kindFilter() corpus.Kind {
	if s.kindIdx == 0 {
		return ""
	}
	return s.kinds[s.kindIdx-1]
}

func (s *ExploreScreen) refilter() {
	query := strings.ToLower(strings.TrimSpace(s.search.Value()))
	kind := s.kindFilter()

	s.filtered = s.filtered[:0]
	for _, item := range s.items {
		if kind != "" && item.Kind != kind {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Term), query) &&
			!strings.Contains(strings.ToLower(item.Category), query) {
			continue
		}
		s.filtered = append(s.filtered, item)
	}

	if s.selected >= len(s.filtered) {
		s.selected = len(s.filtered) - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

func (s *ExploreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.detail {
		switch kmsg.String() {
		case "esc", "enter":
			s.detail = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		if s.search.Value() != "" {
			s.search.Reset()
			s.refilter()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down":
		if s.selected < len(s.filtered)-1 {
			s.selected++
		}
		return s, nil
	case "tab":
		s.kindIdx = (s.kindIdx + 1) % (len(s.kinds) + 1)
		s.refilter()
		return s, nil
	case "enter":
		if len(s.filtered) > 0 {
			s.detail = true
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.refilter()
	return s, cmd
}

func (s *ExploreScreen) View(width, height int) string {
	if s.detail && s.selected < len(s.filtered) {
		return s.viewDetail(width, height)
	}

	var b strings.Builder
	b.WriteString("\n    " + s.search.View() + "\n")

	filterLabel := "all kinds"
	if k := s.kindFilter(); k != "" {
		filterLabel = string(k)
	}
	b.WriteString("    " + theme.Hint.Render(
		fmt.Sprintf("kind: %s · %d items", filterLabel, len(s.filtered))) + "\n\n")

	if len(s.filtered) == 0 {
		b.WriteString("    " + theme.Hint.Render("No matches."))
		return b.String()
	}

	start := 0
	if s.selected >= visibleRows {
		start = s.selected - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(s.filtered) {
		end = len(s.filtered)
	}

	p := s.tracker.Progress()
	for i := start; i < end; i++ {
		item := s.filtered[i]

		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		line := style.Render(fmt.Sprintf("%s%s", prefix, item.Term)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %s · %s", item.Kind, item.Category)) +
			"  " + theme.MasteryBadge.Render(string(p.Mastery(item.ID)))
		b.WriteString("    " + line + "\n")
	}

	return b.String()
}

func (s *ExploreScreen) viewDetail(width, height int) string {
	item := s.filtered[s.selected]
	maxWidth := width - 20
	if maxWidth < 40 {
		maxWidth = 40
	}

	term := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(item.Term)
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", item.Kind, item.Category))
	mastery := theme.MasteryBadge.Render(string(s.tracker.Progress().Mastery(item.ID)))

	body := []string{term + "  " + mastery, meta, "", item.Description()}

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
			f.value)
	}

	card := theme.Card.MaxWidth(maxWidth).Render(strings.Join(body, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
