package quiz

import (
	"fmt"
	"strings"

	"reading-service/internal/models"
)

const (
	// QuestionCount is the fixed quiz length. A stored quiz with any
	// other length is treated as absent by delivery.
	QuestionCount = 5
	// ChoiceCount is the fixed number of choices per question.
	ChoiceCount = 4
)

var choiceLetters = [ChoiceCount]string{"A", "B", "C", "D"}

// ValidationError identifies the first violated authoring constraint.
// Question is 1-indexed; 0 means the quiz as a whole is invalid.
type ValidationError struct {
	Question int
	Message  string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a candidate question set in order and fails fast on
// the first violation. Prompts and choices are expected to be trimmed
// already; Form.Extract does that.
func Validate(questions []models.Question) error {
	if len(questions) != QuestionCount {
		return &ValidationError{Message: "Quiz must have exactly 5 questions."}
	}
	for i, q := range questions {
		n := i + 1
		if strings.TrimSpace(q.Prompt) == "" {
			return &ValidationError{Question: n, Message: fmt.Sprintf("Question %d: Prompt is required.", n)}
		}
		if len(q.Choices) != ChoiceCount {
			return &ValidationError{Question: n, Message: fmt.Sprintf("Question %d: Need 4 choices.", n)}
		}
		for c, choice := range q.Choices {
			if strings.TrimSpace(choice) == "" {
				return &ValidationError{Question: n, Message: fmt.Sprintf("Question %d: Choice %s is required.", n, choiceLetters[c])}
			}
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= ChoiceCount {
			return &ValidationError{Question: n, Message: fmt.Sprintf("Question %d: Correct answer must be A–D.", n)}
		}
	}
	return nil
}
