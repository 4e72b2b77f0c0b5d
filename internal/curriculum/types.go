package curriculum

import "github.com/anandk/termquest/internal/corpus"

// Module is a thematic grouping of study items with derived lessons.
// Icon and color are presentation metadata carried for the UI.
type Module struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Color       string
	Categories  []string
	Items       []corpus.StudyItem
	Lessons     []Lesson
}

// Lesson is a fixed-size chunk of a module's items sharing a category.
type Lesson struct {
	ID          string
	ModuleID    string
	Title       string
	Description string
	Items       []corpus.StudyItem
	Order       int
}

// QuizID returns the stable quiz identifier for a module. High scores
// are keyed by this id, so it must not vary between sessions.
func (m Module) QuizID() string {
	return "quiz-" + m.ID
}
