package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anandk/termquest/internal/achievements"
	"github.com/anandk/termquest/internal/corpus"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/progress"
	"github.com/anandk/termquest/internal/store"
)

var testDay = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		ID:       "python-fundamentals-lesson-0",
		ModuleID: "python-fundamentals",
		Title:    "Python Concepts",
		Items: []corpus.StudyItem{
			{ID: "item-1", Term: "decorator"},
			{ID: "item-2", Term: "generator"},
		},
	}
}

func testModule() curriculum.Module {
	return curriculum.Module{
		ID:    "python-fundamentals",
		Title: "Python Fundamentals",
	}
}

func newTestTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	tr := NewTracker(st.SnapshotRepo(), st.EventRepo(), achievements.Catalog(48))
	tr.now = func() time.Time { return testDay }
	return tr, st
}

func TestCompleteLessonOutcome(t *testing.T) {
	tr, _ := newTestTracker(t)

	out := tr.CompleteLesson(testLesson())

	// 50 lesson XP plus the 25 XP first-lesson bonus.
	require.False(t, out.AlreadyDone)
	require.Equal(t, 75, out.XPGained)
	require.Len(t, out.Unlocked, 1)
	require.Equal(t, "first-lesson", out.Unlocked[0].ID)

	p := tr.Progress()
	require.Equal(t, 75, p.XP)
	require.Equal(t, progress.MasterySeen, p.Mastery("item-1"))
	require.Contains(t, p.Achievements, "first-lesson")
}

func TestCompleteLessonRepeatIsNoop(t *testing.T) {
	tr, _ := newTestTracker(t)

	tr.CompleteLesson(testLesson())
	before := tr.Progress()

	out := tr.CompleteLesson(testLesson())
	require.True(t, out.AlreadyDone)
	require.Zero(t, out.XPGained)
	require.Empty(t, out.Unlocked)
	require.Equal(t, before, tr.Progress())
}

func TestAchievementBonusBypassesStreak(t *testing.T) {
	tr, _ := newTestTracker(t)

	out := tr.CompleteLesson(testLesson())
	require.NotEmpty(t, out.Unlocked)

	// The bonus lands in XP but only the base transition touched the
	// streak, so a single study day yields exactly streak 1.
	p := tr.Progress()
	require.Equal(t, 1, p.Streak)
	require.Equal(t, testDay.Format("2006-01-02"), p.LastStudyDate)
}

func TestRecordQuizResultOutcome(t *testing.T) {
	tr, _ := newTestTracker(t)

	results := []progress.ItemResult{
		{ItemID: "item-1", Correct: true},
		{ItemID: "item-2", Correct: true},
	}
	out := tr.RecordQuizResult(testModule(), 2, 2, results)

	// 20 answer XP + 25 perfect bonus + first-quiz 25 + perfect-score 50.
	require.Equal(t, 120, out.XPGained)

	ids := make([]string, len(out.Unlocked))
	for i, a := range out.Unlocked {
		ids[i] = a.ID
	}
	require.ElementsMatch(t, []string{"first-quiz", "perfect-score"}, ids)

	p := tr.Progress()
	require.Equal(t, 100, p.QuizHighScores["quiz-python-fundamentals"])
	require.Equal(t, progress.MasteryLearning, p.Mastery("item-1"))
}

func TestTrackerPersistsSnapshotsAndEvents(t *testing.T) {
	tr, st := newTestTracker(t)
	ctx := context.Background()

	tr.CompleteLesson(testLesson())
	tr.RecordQuizResult(testModule(), 1, 2, nil)

	snap, err := st.SnapshotRepo().Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, tr.Progress().XP, snap.Data.XP)

	events, err := st.EventRepo().Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, store.EventQuizCompleted, events[0].Type)
	require.Equal(t, store.EventLessonCompleted, events[1].Type)
}

func TestNewTrackerResumesFromSnapshot(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	data := progress.Default()
	data.XP = 500
	require.NoError(t, st.SnapshotRepo().Save(context.Background(),
		&store.Snapshot{TakenAt: testDay, Data: data}))

	tr := NewTracker(st.SnapshotRepo(), st.EventRepo(), achievements.Catalog(48))
	require.Equal(t, 500, tr.Progress().XP)
}

func TestNewTrackerDefaultsWithoutRepos(t *testing.T) {
	tr := NewTracker(nil, nil, achievements.Catalog(48))
	require.Equal(t, progress.Default(), tr.Progress())

	// Transitions still work without persistence.
	out := tr.CompleteLesson(testLesson())
	require.Equal(t, 75, out.XPGained)
}
