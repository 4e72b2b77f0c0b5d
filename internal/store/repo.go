package store

import (
	"context"
	"time"

	"github.com/anandk/termquest/internal/progress"
)

// Snapshot is one persisted point-in-time capture of learner state.
type Snapshot struct {
	ID      int
	TakenAt time.Time
	Data    progress.UserProgress
}

// SnapshotRepo manages progress snapshots. History is append-only;
// Latest is the live state and Prune trims old captures.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// Event types recorded in the study event log.
const (
	EventLessonCompleted = "lesson_completed"
	EventQuizCompleted   = "quiz_completed"
)

// StudyEvent is one append-only record of study activity, feeding the
// history screen. Payload fields are a union across event types.
type StudyEvent struct {
	ID         string    `json:"id"`
	HappenedAt time.Time `json:"happenedAt"`
	Type       string    `json:"type"`

	LessonID    string `json:"lessonId,omitempty"`
	LessonTitle string `json:"lessonTitle,omitempty"`
	QuizID      string `json:"quizId,omitempty"`
	ModuleTitle string `json:"moduleTitle,omitempty"`
	Correct     int    `json:"correct,omitempty"`
	Total       int    `json:"total,omitempty"`
	XPGained    int    `json:"xpGained,omitempty"`
}

// EventRepo provides append and query access to the study event log.
type EventRepo interface {
	// Append records a study event. The id is assigned here.
	Append(ctx context.Context, ev StudyEvent) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]StudyEvent, error)

	// DeleteAll clears the event log (used by reset).
	DeleteAll(ctx context.Context) error
}
