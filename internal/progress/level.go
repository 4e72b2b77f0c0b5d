package progress

// Level describes where an XP total falls in the level table.
type Level struct {
	Level      int    // 1-indexed display level
	CurrentXP  int    // XP earned within the current level
	RequiredXP int    // XP span of the current level
	Title      string // display title for the level
}

// topLevelSpan is the XP required per level beyond the defined table.
const topLevelSpan = 2500

var levelThresholds = []int{
	0, 100, 250, 500, 1000, 1750, 2750, 4000, 5500, 7500, 10000,
}

var levelTitles = []string{
	"Beginner",
	"Novice",
	"Apprentice",
	"Student",
	"Coder",
	"Developer",
	"Engineer",
	"Architect",
	"Expert",
	"Master",
	"Grandmaster",
}

// GetLevel derives the display level from cumulative XP: the highest
// threshold not exceeding xp. Past the top title, growth continues in
// fixed topLevelSpan increments with no further titles.
func GetLevel(xp int) Level {
	idx := 0
	for i := len(levelThresholds) - 1; i >= 0; i-- {
		if xp >= levelThresholds[i] {
			idx = i
			break
		}
	}

	required := topLevelSpan
	if idx < len(levelThresholds)-1 {
		required = levelThresholds[idx+1] - levelThresholds[idx]
	}

	return Level{
		Level:      idx + 1,
		CurrentXP:  xp - levelThresholds[idx],
		RequiredXP: required,
		Title:      levelTitles[idx],
	}
}
