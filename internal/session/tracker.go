package session

import (
	"context"
	"time"

	"github.com/anandk/termquest/internal/achievements"
	"github.com/anandk/termquest/internal/curriculum"
	"github.com/anandk/termquest/internal/progress"
	"github.com/anandk/termquest/internal/store"
)

// snapshotHistory is how many progress snapshots are kept around.
const snapshotHistory = 20

// Outcome summarizes what one completed transition earned.
type Outcome struct {
	XPGained    int
	Unlocked    []achievements.Achievement
	AlreadyDone bool
}

// Tracker owns the in-memory progress snapshot and applies the
// two-step mutate-then-evaluate flow: run the progress transition,
// check achievements against the post-transition snapshot, merge the
// unlocked ids and bonus XP, then persist. Persistence is best-effort:
// a failed load means "no prior progress" and failed saves are
// swallowed, because losing a snapshot beats crashing a study session.
type Tracker struct {
	progress  progress.UserProgress
	catalog   []achievements.Achievement
	snapRepo  store.SnapshotRepo
	eventRepo store.EventRepo
	now       func() time.Time
}

// NewTracker loads the latest snapshot (or the default when none
// exists or loading fails) and prepares the tracker.
func NewTracker(snapRepo store.SnapshotRepo, eventRepo store.EventRepo, catalog []achievements.Achievement) *Tracker {
	p := progress.Default()
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			p = snap.Data
		}
	}
	return &Tracker{
		progress:  p,
		catalog:   catalog,
		snapRepo:  snapRepo,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Progress returns the current snapshot.
func (t *Tracker) Progress() progress.UserProgress {
	return t.progress
}

// CompleteLesson applies the lesson-completion transition, evaluates
// achievements, and persists. Re-completing a lesson is a no-op.
func (t *Tracker) CompleteLesson(lesson curriculum.Lesson) Outcome {
	itemIDs := make([]string, len(lesson.Items))
	for i, it := range lesson.Items {
		itemIDs[i] = it.ID
	}

	before := t.progress
	if before.LessonCompleted(lesson.ID) {
		return Outcome{AlreadyDone: true}
	}

	after := progress.CompleteLesson(before, lesson.ID, itemIDs, t.now())
	unlocked := t.mergeAchievements(&after)
	t.progress = after

	t.persist(store.StudyEvent{
		Type:        store.EventLessonCompleted,
		LessonID:    lesson.ID,
		LessonTitle: lesson.Title,
		XPGained:    after.XP - before.XP,
	})

	return Outcome{XPGained: after.XP - before.XP, Unlocked: unlocked}
}

// RecordQuizResult applies the quiz-result transition, evaluates
// achievements, and persists. Repeat attempts always apply.
func (t *Tracker) RecordQuizResult(module curriculum.Module, correct, total int, results []progress.ItemResult) Outcome {
	before := t.progress
	after := progress.RecordQuizResult(before, module.QuizID(), correct, total, results, t.now())
	unlocked := t.mergeAchievements(&after)
	t.progress = after

	t.persist(store.StudyEvent{
		Type:        store.EventQuizCompleted,
		QuizID:      module.QuizID(),
		ModuleTitle: module.Title,
		Correct:     correct,
		Total:       total,
		XPGained:    after.XP - before.XP,
	})

	return Outcome{XPGained: after.XP - before.XP, Unlocked: unlocked}
}

// mergeAchievements runs the evaluator against the post-transition
// snapshot and merges the result. Bonus XP is added directly rather
// than through AddXP: award bookkeeping must not touch streak timing,
// and the batch's own bonus must not retrigger further unlocks.
func (t *Tracker) mergeAchievements(p *progress.UserProgress) []achievements.Achievement {
	unlocked := achievements.CheckNew(t.catalog, *p)
	if len(unlocked) == 0 {
		return nil
	}

	ids := make([]string, len(p.Achievements), len(p.Achievements)+len(unlocked))
	copy(ids, p.Achievements)
	for _, a := range unlocked {
		ids = append(ids, a.ID)
		p.XP += a.XPReward
	}
	p.Achievements = ids
	return unlocked
}

func (t *Tracker) persist(ev store.StudyEvent) {
	ctx := context.Background()
	if t.snapRepo != nil {
		_ = t.snapRepo.Save(ctx, &store.Snapshot{TakenAt: t.now(), Data: t.progress})
		_ = t.snapRepo.Prune(ctx, snapshotHistory)
	}
	if t.eventRepo != nil {
		_ = t.eventRepo.Append(ctx, ev)
	}
}
