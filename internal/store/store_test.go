package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anandk/termquest/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, snap, "expected nil snapshot when none exist")

	data := progress.Default()
	data.XP = 150
	data.Streak = 3
	data.CompletedLessons = []string{"python-fundamentals-lesson-0"}

	require.NoError(t, repo.Save(ctx, &Snapshot{TakenAt: time.Now(), Data: data}))

	snap, err = repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, 150, snap.Data.XP)
	require.Equal(t, 3, snap.Data.Streak)
	require.Equal(t, []string{"python-fundamentals-lesson-0"}, snap.Data.CompletedLessons)
	require.NotNil(t, snap.Data.ItemMastery, "Latest must normalize nil collections")
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for xp := 10; xp <= 30; xp += 10 {
		data := progress.Default()
		data.XP = xp
		require.NoError(t, repo.Save(ctx, &Snapshot{TakenAt: time.Now(), Data: data}))
	}

	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, 30, snap.Data.XP)
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for xp := 1; xp <= 5; xp++ {
		data := progress.Default()
		data.XP = xp
		require.NoError(t, repo.Save(ctx, &Snapshot{TakenAt: time.Now(), Data: data}))
	}

	require.NoError(t, repo.Prune(ctx, 2))

	var count int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM progress_snapshots`).Scan(&count))
	require.Equal(t, 2, count)

	// The newest snapshot survives pruning.
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, snap.Data.XP)
}

func TestEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, StudyEvent{
		Type:        EventLessonCompleted,
		HappenedAt:  base,
		LessonID:    "l1",
		LessonTitle: "Python Concepts",
		XPGained:    50,
	}))
	require.NoError(t, repo.Append(ctx, StudyEvent{
		Type:        EventQuizCompleted,
		HappenedAt:  base.Add(time.Hour),
		QuizID:      "quiz-python-fundamentals",
		ModuleTitle: "Python Fundamentals",
		Correct:     3,
		Total:       4,
		XPGained:    30,
	}))

	events, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.Equal(t, EventQuizCompleted, events[0].Type)
	require.Equal(t, 3, events[0].Correct)
	require.Equal(t, EventLessonCompleted, events[1].Type)
	require.Equal(t, "Python Concepts", events[1].LessonTitle)
	require.NotEmpty(t, events[0].ID, "append assigns ids")
}

func TestEventRecentLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, StudyEvent{Type: EventLessonCompleted}))
	}

	events, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, events, 3)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SnapshotRepo().Save(ctx, &Snapshot{TakenAt: time.Now(), Data: progress.Default()}))
	require.NoError(t, s.EventRepo().Append(ctx, StudyEvent{Type: EventLessonCompleted}))

	require.NoError(t, s.DeleteAllSnapshots(ctx))
	require.NoError(t, s.EventRepo().DeleteAll(ctx))

	snap, err := s.SnapshotRepo().Latest(ctx)
	require.NoError(t, err)
	require.Nil(t, snap)

	events, err := s.EventRepo().Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, events)
}
