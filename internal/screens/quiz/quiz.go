package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/progress"
	"github.com/anandk/termquest/internal/quizgen"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/screen"
	"github.com/anandk/termquest/internal/session"
	"github.com/anandk/termquest/internal/ui/components"
	"github.com/anandk/termquest/internal/ui/layout"
	"github.com/anandk/termquest/internal/ui/theme"
)

// questionCount is how many questions a quiz asks for. The generator
// may return fewer when the module is small.
const questionCount = 10

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

// QuizScreen runs one module-scoped quiz from generation to summary.
type QuizScreen struct {
	module    curriculum.Module
	tracker   *session.Tracker
	questions []quizgen.Question

	index   int
	phase   phase
	correct int
	results []progress.ItemResult
	outcome session.Outcome

	mc components.MultiChoice
	tf components.TrueFalse
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New generates a quiz for the module and creates the screen.
func New(module curriculum.Module, pool []corpus.StudyItem, tracker *session.Tracker) *QuizScreen {
	gen := quizgen.New(rand.NewSource(time.Now().UnixNano()))
	questions := gen.Generate(module.Items, pool, questionCount)

	s := &QuizScreen{
		module:    module,
		tracker:   tracker,
		questions: questions,
	}
	if len(questions) > 0 {
		s.loadQuestion()
	}
	return s
}

func (s *QuizScreen) loadQuestion() {
	q := s.questions[s.index]
	switch q.Type {
	case quizgen.TypeMultipleChoice:
		s.mc = components.NewMultiChoice(q.Prompt, q.Options, q.CorrectIndex)
	case quizgen.TypeTrueFalse:
		s.tf = components.NewTrueFalse(q.Prompt, q.CorrectBool)
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.module.Title + " Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	case phaseSummary:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if len(s.questions) == 0 {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter", "esc":
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
		return s, nil
	}

	switch s.phase {
	case phaseAnswering:
		return s.updateAnswering(msg)
	case phaseFeedback:
		return s.updateFeedback(msg)
	default:
		return s.updateSummary(msg)
	}
}

func (s *QuizScreen) updateAnswering(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		// Abandoning mid-quiz records nothing.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	q := s.questions[s.index]
	var answered, correct bool

	switch q.Type {
	case quizgen.TypeMultipleChoice:
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			answered = true
			correct = s.mc.IsCorrect()
		}
		if cmd != nil {
			return s, cmd
		}
	case quizgen.TypeTrueFalse:
		var cmd tea.Cmd
		s.tf, cmd = s.tf.Update(msg)
		if s.tf.Submitted {
			answered = true
			correct = s.tf.IsCorrect()
		}
		if cmd != nil {
			return s, cmd
		}
	}

	if answered {
		if correct {
			s.correct++
		}
		s.results = append(s.results, progress.ItemResult{
			ItemID:  q.ItemID,
			Correct: correct,
		})
		s.phase = phaseFeedback
	}
	return s, nil
}

func (s *QuizScreen) updateFeedback(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || kmsg.String() != "enter" {
		return s, nil
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.phase = phaseAnswering
		s.loadQuestion()
		return s, nil
	}

	s.outcome = s.tracker.RecordQuizResult(s.module, s.correct, len(s.questions), s.results)
	s.phase = phaseSummary
	return s, nil
}

func (s *QuizScreen) updateSummary(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		msg := theme.Subtitle.Width(width).
			Render("\n\nNot enough material here for a quiz yet.")
		return msg
	}

	switch s.phase {
	case phaseSummary:
		return s.viewSummary(width, height)
	default:
		return s.viewQuestion(width, height)
	}
}

func (s *QuizScreen) viewQuestion(width, height int) string {
	q := s.questions[s.index]

	counter := theme.Hint.Render(
		fmt.Sprintf("question %d of %d", s.index+1, len(s.questions)))

	var body string
	switch q.Type {
	case quizgen.TypeMultipleChoice:
		body = s.mc.View()
	case quizgen.TypeTrueFalse:
		body = s.tf.View()
	}

	content := counter + "\n\n" + body

	if s.phase == phaseFeedback {
		last := s.results[len(s.results)-1]
		verdict := theme.Incorrect.Render("Not quite.")
		if last.Correct {
			verdict = theme.Correct.Render("Correct!")
		}
		content += "\n" + verdict + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Explanation)
	}

	card := theme.Card.MaxWidth(width - 10).Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *QuizScreen) viewSummary(width, height int) string {
	total := len(s.questions)
	score := 0
	if total > 0 {
		score = s.correct * 100 / total
	}

	var lines []string
	lines = append(lines,
		theme.Title.Render("Quiz Complete"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%d / %d correct (%d%%)", s.correct, total, score)),
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("+%d XP", s.outcome.XPGained)))

	for _, a := range s.outcome.Unlocked {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render(fmt.Sprintf("%s  %s unlocked! (+%d XP)", a.Icon, a.Title, a.XPReward)))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
