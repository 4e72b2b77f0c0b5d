package achievements

import "github.com/anandk/termquest/internal/progress"

// Achievement is a static definition. Unlocked status lives in the
// progress snapshot, not here.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	XPReward    int
	Condition   func(progress.UserProgress) bool
}

// Catalog builds the full achievement list. corpusSize parameterizes
// the "study everything" achievement so the catalog tracks the shipped
// corpus instead of hardcoding its size.
func Catalog(corpusSize int) []Achievement {
	return []Achievement{
		{
			ID:          "first-lesson",
			Title:       "First Steps",
			Description: "Complete your first lesson",
			Icon:        "👶",
			XPReward:    25,
			Condition:   lessonsAtLeast(1),
		},
		{
			ID:          "five-lessons",
			Title:       "Getting Serious",
			Description: "Complete 5 lessons",
			Icon:        "📚",
			XPReward:    50,
			Condition:   lessonsAtLeast(5),
		},
		{
			ID:          "twenty-lessons",
			Title:       "Dedicated Learner",
			Description: "Complete 20 lessons",
			Icon:        "🎓",
			XPReward:    100,
			Condition:   lessonsAtLeast(20),
		},
		{
			ID:          "fifty-lessons",
			Title:       "Knowledge Seeker",
			Description: "Complete 50 lessons",
			Icon:        "🧙",
			XPReward:    200,
			Condition:   lessonsAtLeast(50),
		},
		{
			ID:          "first-quiz",
			Title:       "Quiz Taker",
			Description: "Complete your first quiz",
			Icon:        "📝",
			XPReward:    25,
			Condition:   quizzesAtLeast(1),
		},
		{
			ID:          "ten-quizzes",
			Title:       "Quiz Master",
			Description: "Complete 10 quizzes",
			Icon:        "🎯",
			XPReward:    75,
			Condition:   quizzesAtLeast(10),
		},
		{
			ID:          "perfect-score",
			Title:       "Perfectionist",
			Description: "Get 100% on a quiz",
			Icon:        "💯",
			XPReward:    50,
			Condition:   hasPerfectScore,
		},
		{
			ID:          "streak-3",
			Title:       "On Fire",
			Description: "Reach a 3-day streak",
			Icon:        "🔥",
			XPReward:    30,
			Condition:   streakAtLeast(3),
		},
		{
			ID:          "streak-7",
			Title:       "Week Warrior",
			Description: "Reach a 7-day streak",
			Icon:        "💪",
			XPReward:    75,
			Condition:   streakAtLeast(7),
		},
		{
			ID:          "streak-30",
			Title:       "Unstoppable",
			Description: "Reach a 30-day streak",
			Icon:        "👑",
			XPReward:    300,
			Condition:   streakAtLeast(30),
		},
		{
			ID:          "items-50",
			Title:       "Half Century",
			Description: "Study 50 items",
			Icon:        "🏅",
			XPReward:    50,
			Condition:   itemsAtLeast(50),
		},
		{
			ID:          "items-100",
			Title:       "Century",
			Description: "Study 100 items",
			Icon:        "🏆",
			XPReward:    100,
			Condition:   itemsAtLeast(100),
		},
		{
			ID:          "items-300",
			Title:       "Scholar",
			Description: "Study 300 items",
			Icon:        "📖",
			XPReward:    200,
			Condition:   itemsAtLeast(300),
		},
		{
			ID:          "items-all",
			Title:       "Completionist",
			Description: "Study every item in the corpus",
			Icon:        "💎",
			XPReward:    500,
			Condition:   itemsAtLeast(corpusSize),
		},
		{
			ID:          "mastered-10",
			Title:       "Mastery Begins",
			Description: "Master 10 items",
			Icon:        "⭐",
			XPReward:    50,
			Condition:   masteredAtLeast(10),
		},
		{
			ID:          "mastered-50",
			Title:       "True Mastery",
			Description: "Master 50 items",
			Icon:        "🌟",
			XPReward:    150,
			Condition:   masteredAtLeast(50),
		},
		{
			ID:          "xp-1000",
			Title:       "XP Milestone",
			Description: "Earn 1,000 XP",
			Icon:        "💰",
			XPReward:    50,
			Condition:   xpAtLeast(1000),
		},
		{
			ID:          "xp-5000",
			Title:       "XP Legend",
			Description: "Earn 5,000 XP",
			Icon:        "💎",
			XPReward:    100,
			Condition:   xpAtLeast(5000),
		},
	}
}

// CheckNew returns every achievement whose id is not yet unlocked and
// whose condition holds for the snapshot. The caller owns the merge:
// append the ids and add the XP rewards. Bonus XP from one batch must
// not retrigger evaluation within the same batch, which is why this is
// a pure filter and not a mutation.
func CheckNew(catalog []Achievement, p progress.UserProgress) []Achievement {
	unlocked := make(map[string]bool, len(p.Achievements))
	for _, id := range p.Achievements {
		unlocked[id] = true
	}

	var fresh []Achievement
	for _, a := range catalog {
		if !unlocked[a.ID] && a.Condition(p) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}

func hasPerfectScore(p progress.UserProgress) bool {
	for _, s := range p.QuizHighScores {
		if s == 100 {
			return true
		}
	}
	return false
}

func lessonsAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return len(p.CompletedLessons) >= n }
}

func quizzesAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return p.TotalQuizzesTaken >= n }
}

func streakAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return p.Streak >= n }
}

func itemsAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return p.TotalItemsStudied >= n }
}

func masteredAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return p.MasteredCount() >= n }
}

func xpAtLeast(n int) func(progress.UserProgress) bool {
	return func(p progress.UserProgress) bool { return p.XP >= n }
}
