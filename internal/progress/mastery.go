package progress

// MasteryLevel represents an item's position in the mastery lifecycle.
type MasteryLevel string

const (
	MasteryNew      MasteryLevel = "new"
	MasterySeen     MasteryLevel = "seen"
	MasteryLearning MasteryLevel = "learning"
	MasteryMastered MasteryLevel = "mastered"
)

// Advance moves one step forward on a correct answer. New and seen both
// step to learning; mastered stays mastered.
func (m MasteryLevel) Advance() MasteryLevel {
	switch m {
	case MasteryNew, MasterySeen:
		return MasteryLearning
	case MasteryLearning:
		return MasteryMastered
	default:
		return m
	}
}

// Regress steps back on an incorrect answer. Only mastered regresses
// (to learning); every other level is unchanged.
func (m MasteryLevel) Regress() MasteryLevel {
	if m == MasteryMastered {
		return MasteryLearning
	}
	return m
}
