package progress

import (
	"math"
	"time"
)

// dateLayout is the date-only precision used for streak accounting.
const dateLayout = "2006-01-02"

// UserProgress is the single persisted snapshot of all learning state.
// It is only ever mutated through the transition functions below, each
// of which returns an independent copy; callers persist the result.
type UserProgress struct {
	XP                  int                     `json:"xp"`
	Streak              int                     `json:"streak"`
	LastStudyDate       string                  `json:"lastStudyDate"`
	CompletedLessons    []string                `json:"completedLessons"`
	ItemMastery         map[string]MasteryLevel `json:"itemMastery"`
	QuizHighScores      map[string]int          `json:"quizHighScores"`
	Achievements        []string                `json:"achievements"`
	TotalItemsStudied   int                     `json:"totalItemsStudied"`
	TotalQuizzesTaken   int                     `json:"totalQuizzesTaken"`
	TotalCorrectAnswers int                     `json:"totalCorrectAnswers"`
}

// Default returns a zero-valued snapshot with allocated maps, the state
// of a learner who has never studied.
func Default() UserProgress {
	return UserProgress{
		CompletedLessons: []string{},
		ItemMastery:      map[string]MasteryLevel{},
		QuizHighScores:   map[string]int{},
		Achievements:     []string{},
	}
}

// Normalize backfills nil collections on a snapshot decoded from an
// older or partial encoding so later transitions never hit nil maps.
func (p UserProgress) Normalize() UserProgress {
	if p.CompletedLessons == nil {
		p.CompletedLessons = []string{}
	}
	if p.ItemMastery == nil {
		p.ItemMastery = map[string]MasteryLevel{}
	}
	if p.QuizHighScores == nil {
		p.QuizHighScores = map[string]int{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	return p
}

// Mastery returns the mastery level for an item, MasteryNew when the
// item has never been encountered.
func (p UserProgress) Mastery(itemID string) MasteryLevel {
	if m, ok := p.ItemMastery[itemID]; ok {
		return m
	}
	return MasteryNew
}

// MasteredCount returns how many items are currently mastered.
func (p UserProgress) MasteredCount() int {
	n := 0
	for _, m := range p.ItemMastery {
		if m == MasteryMastered {
			n++
		}
	}
	return n
}

// LessonCompleted reports whether the lesson id is already recorded.
func (p UserProgress) LessonCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// ItemResult is one per-item outcome inside a quiz attempt.
type ItemResult struct {
	ItemID  string
	Correct bool
}

// CompleteLesson records a finished lesson. Replaying an already
// completed lesson returns the snapshot unchanged, so XP and the
// studied-items counter can never be double-awarded. Items still at
// new (or never seen) move to seen and are counted once.
func CompleteLesson(p UserProgress, lessonID string, itemIDs []string, now time.Time) UserProgress {
	if p.LessonCompleted(lessonID) {
		return p
	}

	mastery := cloneMastery(p.ItemMastery)
	studied := p.TotalItemsStudied
	for _, id := range itemIDs {
		if cur, ok := mastery[id]; !ok || cur == MasteryNew {
			mastery[id] = MasterySeen
			studied++
		}
	}

	p.CompletedLessons = append(cloneStrings(p.CompletedLessons), lessonID)
	p.ItemMastery = mastery
	p.TotalItemsStudied = studied
	return AddXP(p, 50, now)
}

// RecordQuizResult records a quiz attempt. Unlike lessons, repeat
// attempts are expected and always apply. The stored high score per
// quiz id never decreases.
func RecordQuizResult(p UserProgress, quizID string, correct, total int, results []ItemResult, now time.Time) UserProgress {
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	scores := cloneScores(p.QuizHighScores)
	if score > scores[quizID] {
		scores[quizID] = score
	}

	mastery := cloneMastery(p.ItemMastery)
	for _, r := range results {
		cur := MasteryNew
		if m, ok := mastery[r.ItemID]; ok {
			cur = m
		}
		if r.Correct {
			mastery[r.ItemID] = cur.Advance()
		} else {
			mastery[r.ItemID] = cur.Regress()
		}
	}

	xpGain := correct * 10
	if score == 100 {
		xpGain += 25
	}

	p.QuizHighScores = scores
	p.ItemMastery = mastery
	p.TotalQuizzesTaken++
	p.TotalCorrectAnswers += correct
	return AddXP(p, xpGain, now)
}

// AddXP adds XP and re-evaluates the streak. Every XP-awarding
// transition funnels through here, so studying anything on a new
// calendar day extends or resets the streak exactly once.
func AddXP(p UserProgress, amount int, now time.Time) UserProgress {
	p.XP += amount
	return updateStreak(p, now)
}

// updateStreak applies the consecutive-day rule at date-only precision:
// already credited today, no change; studied yesterday, streak + 1;
// otherwise (gap or first activity) reset to 1.
func updateStreak(p UserProgress, now time.Time) UserProgress {
	today := now.Format(dateLayout)
	if p.LastStudyDate == today {
		return p
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	if p.LastStudyDate == yesterday {
		p.Streak++
	} else {
		p.Streak = 1
	}
	p.LastStudyDate = today
	return p
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneMastery(m map[string]MasteryLevel) map[string]MasteryLevel {
	out := make(map[string]MasteryLevel, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneScores(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
