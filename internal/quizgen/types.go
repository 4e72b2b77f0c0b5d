package quizgen

// QuestionType distinguishes the two generated question shapes.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
)

// Question is one generated quiz question. Questions are ephemeral:
// they live for a session and only their outcomes reach the snapshot.
type Question struct {
	ID     string
	Type   QuestionType
	Prompt string

	// Options is populated only for multiple-choice questions.
	Options []string

	// CorrectIndex is the correct option index for multiple-choice.
	CorrectIndex int

	// CorrectBool is the correct answer for true/false.
	CorrectBool bool

	// Explanation is shown after the learner answers.
	Explanation string

	// ItemID is the study item this question was generated from.
	ItemID string
}
