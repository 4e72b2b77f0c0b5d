package progress

import (
	"reflect"
	"testing"
	"time"
)

var day = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func TestCompleteLessonAwardsXPAndMarksItems(t *testing.T) {
	p := Default()
	got := CompleteLesson(p, "mod-lesson-0", []string{"a", "b"}, day)

	if got.XP != 50 {
		t.Errorf("XP = %d, want 50", got.XP)
	}
	if !got.LessonCompleted("mod-lesson-0") {
		t.Error("lesson not recorded as completed")
	}
	if got.TotalItemsStudied != 2 {
		t.Errorf("TotalItemsStudied = %d, want 2", got.TotalItemsStudied)
	}
	for _, id := range []string{"a", "b"} {
		if got.Mastery(id) != MasterySeen {
			t.Errorf("Mastery(%q) = %s, want seen", id, got.Mastery(id))
		}
	}
}

func TestCompleteLessonIdempotent(t *testing.T) {
	p := Default()
	once := CompleteLesson(p, "mod-lesson-0", []string{"a"}, day)
	twice := CompleteLesson(once, "mod-lesson-0", []string{"a"}, day)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("replaying completion changed the snapshot: %+v vs %+v", once, twice)
	}
}

func TestCompleteLessonDoesNotRecountStudiedItems(t *testing.T) {
	p := Default()
	p.ItemMastery["a"] = MasteryLearning

	got := CompleteLesson(p, "mod-lesson-0", []string{"a", "b"}, day)

	if got.TotalItemsStudied != 1 {
		t.Errorf("TotalItemsStudied = %d, want 1 (item a already past new)", got.TotalItemsStudied)
	}
	if got.Mastery("a") != MasteryLearning {
		t.Errorf("Mastery(a) = %s, want learning untouched", got.Mastery("a"))
	}
}

func TestCompleteLessonDoesNotShareMaps(t *testing.T) {
	p := Default()
	got := CompleteLesson(p, "mod-lesson-0", []string{"a"}, day)

	got.ItemMastery["x"] = MasteryMastered
	if _, ok := p.ItemMastery["x"]; ok {
		t.Error("transition leaked a shared mastery map back into the input")
	}
}

func TestRecordQuizResult(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		total     int
		wantScore int
		wantXP    int
	}{
		{"partial", 3, 4, 75, 30},
		{"perfect gets bonus", 4, 4, 100, 65},
		{"zero correct", 0, 4, 0, 0},
		{"rounding up", 2, 3, 67, 20},
		{"empty quiz scores zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecordQuizResult(Default(), "quiz-m", tt.correct, tt.total, nil, day)
			if got.QuizHighScores["quiz-m"] != tt.wantScore {
				t.Errorf("score = %d, want %d", got.QuizHighScores["quiz-m"], tt.wantScore)
			}
			if got.XP != tt.wantXP {
				t.Errorf("XP = %d, want %d", got.XP, tt.wantXP)
			}
			if got.TotalQuizzesTaken != 1 {
				t.Errorf("TotalQuizzesTaken = %d, want 1", got.TotalQuizzesTaken)
			}
			if got.TotalCorrectAnswers != tt.correct {
				t.Errorf("TotalCorrectAnswers = %d, want %d", got.TotalCorrectAnswers, tt.correct)
			}
		})
	}
}

func TestQuizHighScoreNeverDecreases(t *testing.T) {
	p := Default()
	p = RecordQuizResult(p, "quiz-m", 4, 4, nil, day)
	p = RecordQuizResult(p, "quiz-m", 1, 4, nil, day)

	if p.QuizHighScores["quiz-m"] != 100 {
		t.Errorf("high score = %d, want 100 kept after a worse attempt", p.QuizHighScores["quiz-m"])
	}
}

func TestRecordQuizResultMasteryTransitions(t *testing.T) {
	p := Default()
	p.ItemMastery = map[string]MasteryLevel{
		"seen":     MasterySeen,
		"learning": MasteryLearning,
		"mastered": MasteryMastered,
		"slipping": MasteryMastered,
	}

	results := []ItemResult{
		{ItemID: "fresh", Correct: true},
		{ItemID: "seen", Correct: true},
		{ItemID: "learning", Correct: true},
		{ItemID: "mastered", Correct: true},
		{ItemID: "slipping", Correct: false},
		{ItemID: "fresh2", Correct: false},
	}
	got := RecordQuizResult(p, "quiz-m", 4, 6, results, day)

	want := map[string]MasteryLevel{
		"fresh":    MasteryLearning,
		"seen":     MasteryLearning,
		"learning": MasteryMastered,
		"mastered": MasteryMastered,
		"slipping": MasteryLearning,
		"fresh2":   MasteryNew,
	}
	for id, level := range want {
		if got.Mastery(id) != level {
			t.Errorf("Mastery(%q) = %s, want %s", id, got.Mastery(id), level)
		}
	}
}

func TestStreakScenario(t *testing.T) {
	d := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	p := Default()
	p = AddXP(p, 10, d)
	if p.Streak != 1 {
		t.Fatalf("first activity: streak = %d, want 1", p.Streak)
	}

	p = AddXP(p, 10, d.Add(4*time.Hour))
	if p.Streak != 1 {
		t.Fatalf("same day: streak = %d, want 1", p.Streak)
	}

	p = AddXP(p, 10, d.AddDate(0, 0, 1))
	if p.Streak != 2 {
		t.Fatalf("next day: streak = %d, want 2", p.Streak)
	}

	p = AddXP(p, 10, d.AddDate(0, 0, 3))
	if p.Streak != 1 {
		t.Fatalf("after a skipped day: streak = %d, want 1", p.Streak)
	}
}

func TestXPMonotonic(t *testing.T) {
	p := Default()
	prev := 0
	steps := []func(UserProgress) UserProgress{
		func(p UserProgress) UserProgress { return AddXP(p, 0, day) },
		func(p UserProgress) UserProgress { return CompleteLesson(p, "l1", []string{"a"}, day) },
		func(p UserProgress) UserProgress { return RecordQuizResult(p, "q", 0, 5, nil, day) },
		func(p UserProgress) UserProgress { return RecordQuizResult(p, "q", 5, 5, nil, day) },
		func(p UserProgress) UserProgress { return CompleteLesson(p, "l1", []string{"a"}, day) },
	}
	for i, step := range steps {
		p = step(p)
		if p.XP < prev {
			t.Fatalf("step %d: XP decreased from %d to %d", i, prev, p.XP)
		}
		prev = p.XP
	}
}

func TestNormalizeBackfillsCollections(t *testing.T) {
	var p UserProgress
	got := p.Normalize()

	if got.CompletedLessons == nil || got.ItemMastery == nil ||
		got.QuizHighScores == nil || got.Achievements == nil {
		t.Errorf("Normalize left nil collections: %+v", got)
	}
}
