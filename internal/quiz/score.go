package quiz

import (
	"errors"
	"fmt"

	"reading-service/internal/models"
)

// ErrQuizUnavailable means no quiz exists for the story, or the stored
// quiz is malformed (not exactly five questions). Both render the same
// unavailability state to the student.
var ErrQuizUnavailable = errors.New("this story has no quiz yet (needs exactly 5 questions)")

// IncompleteError rejects a submission with unanswered questions.
// No attempt is created when it is returned.
type IncompleteError struct {
	Question int // first unanswered question, 1-indexed
}

func (e *IncompleteError) Error() string {
	return "Please answer all 5 questions before submitting."
}

// Deliverable reports whether a stored quiz may be shown for answering.
func Deliverable(q *models.Quiz) error {
	if q == nil || len(q.Questions) != QuestionCount {
		return ErrQuizUnavailable
	}
	return nil
}

// Score counts the positions where the selected index equals the
// question's answer index. Total is always QuestionCount. Any nil
// answer rejects the whole submission; partial scores are never kept.
func Score(questions []models.Question, answers []*int) (int, error) {
	if len(questions) != QuestionCount {
		return 0, ErrQuizUnavailable
	}
	score := 0
	for i := 0; i < QuestionCount; i++ {
		var picked *int
		if i < len(answers) {
			picked = answers[i]
		}
		if picked == nil {
			return 0, &IncompleteError{Question: i + 1}
		}
		if *picked < 0 || *picked >= ChoiceCount {
			return 0, fmt.Errorf("question %d: answer index %d out of range", i+1, *picked)
		}
		if *picked == questions[i].AnswerIndex {
			score++
		}
	}
	return score, nil
}
