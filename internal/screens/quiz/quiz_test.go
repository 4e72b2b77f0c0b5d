package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/anandk/termquest/internal/achievements"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/router"
	"github.com/anandk/termquest/internal/session"
)

func TestEmptyModuleProducesNoQuestions(t *testing.T) {
	tracker := session.NewTracker(nil, nil, achievements.Catalog(1))
	s := New(curriculum.Module{ID: "empty", Title: "Empty"}, nil, tracker)

	if len(s.questions) != 0 {
		t.Fatalf("got %d questions from an empty module, want 0", len(s.questions))
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected a no-material message, got empty view")
	}

	// Enter backs out without recording anything.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}

	if tracker.Progress().TotalQuizzesTaken != 0 {
		t.Error("empty quiz must not record an attempt")
	}
}
