package quiz

import (
	"errors"
	"testing"

	"reading-service/internal/models"
)

func questionsWithKeys(keys [QuestionCount]int) []models.Question {
	questions := make([]models.Question, QuestionCount)
	for i := range questions {
		questions[i] = models.Question{
			Prompt:      "Prompt",
			Choices:     []string{"a", "b", "c", "d"},
			AnswerIndex: keys[i],
		}
	}
	return questions
}

func picks(values [QuestionCount]int) []*int {
	answers := make([]*int, QuestionCount)
	for i := range values {
		v := values[i]
		answers[i] = &v
	}
	return answers
}

func TestScore(t *testing.T) {
	keys := [QuestionCount]int{0, 1, 2, 3, 0}

	testCases := []struct {
		name    string
		answers [QuestionCount]int
		expect  int
	}{
		{"all correct", [QuestionCount]int{0, 1, 2, 3, 0}, 5},
		{"one wrong", [QuestionCount]int{1, 1, 2, 3, 0}, 4},
		{"all wrong", [QuestionCount]int{1, 0, 3, 2, 1}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, err := Score(questionsWithKeys(keys), picks(tc.answers))
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if score != tc.expect {
				t.Errorf("Expected score %d, got %d", tc.expect, score)
			}
		})
	}
}

func TestScoreRejectsUnanswered(t *testing.T) {
	answers := picks([QuestionCount]int{0, 1, 2, 3, 0})
	answers[2] = nil

	_, err := Score(questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0}), answers)
	if err == nil {
		t.Fatal("Expected incomplete-submission error, got nil")
	}
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Expected *IncompleteError, got %T", err)
	}
	if incomplete.Question != 3 {
		t.Errorf("Expected first unanswered question 3, got %d", incomplete.Question)
	}
	if incomplete.Error() != "Please answer all 5 questions before submitting." {
		t.Errorf("Unexpected message: %q", incomplete.Error())
	}
}

func TestScoreRejectsShortAnswerList(t *testing.T) {
	answers := picks([QuestionCount]int{0, 1, 2, 3, 0})[:3]

	_, err := Score(questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0}), answers)
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Expected *IncompleteError, got %v", err)
	}
	if incomplete.Question != 4 {
		t.Errorf("Expected first missing question 4, got %d", incomplete.Question)
	}
}

func TestScoreRejectsOutOfRangeAnswer(t *testing.T) {
	answers := picks([QuestionCount]int{0, 1, 2, 3, 0})
	bad := 7
	answers[0] = &bad

	if _, err := Score(questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0}), answers); err == nil {
		t.Fatal("Expected out-of-range error, got nil")
	}
}

func TestScoreRejectsMalformedQuiz(t *testing.T) {
	questions := questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0})[:3]
	if _, err := Score(questions, picks([QuestionCount]int{0, 1, 2, 3, 0})); !errors.Is(err, ErrQuizUnavailable) {
		t.Fatalf("Expected ErrQuizUnavailable, got %v", err)
	}
}

func TestDeliverable(t *testing.T) {
	if err := Deliverable(nil); !errors.Is(err, ErrQuizUnavailable) {
		t.Errorf("Expected ErrQuizUnavailable for missing quiz, got %v", err)
	}
	short := &models.Quiz{Questions: questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0})[:4]}
	if err := Deliverable(short); !errors.Is(err, ErrQuizUnavailable) {
		t.Errorf("Expected ErrQuizUnavailable for short quiz, got %v", err)
	}
	ok := &models.Quiz{Questions: questionsWithKeys([QuestionCount]int{0, 1, 2, 3, 0})}
	if err := Deliverable(ok); err != nil {
		t.Errorf("Expected deliverable quiz, got %v", err)
	}
}

func TestFeedbackFor(t *testing.T) {
	testCases := []struct {
		score    int
		expected string
	}{
		{5, "Excellent!"},
		{4, "Great job!"},
		{3, "Good effort!"},
		{2, "Keep trying!"},
		{1, "Keep trying!"},
		{0, "Keep trying!"},
	}

	for _, tc := range testCases {
		fb := FeedbackFor(tc.score, QuestionCount)
		if fb.Headline != tc.expected {
			t.Errorf("Score %d/5: expected %q, got %q", tc.score, tc.expected, fb.Headline)
		}
		if fb.Tip == "" {
			t.Errorf("Score %d/5: expected a tip", tc.score)
		}
	}
}

func TestFeedbackBoundariesAreInclusive(t *testing.T) {
	// 90, 70 and 50 percent land in the higher bucket.
	if fb := FeedbackFor(9, 10); fb.Headline != "Excellent!" {
		t.Errorf("90%%: expected Excellent!, got %q", fb.Headline)
	}
	if fb := FeedbackFor(7, 10); fb.Headline != "Great job!" {
		t.Errorf("70%%: expected Great job!, got %q", fb.Headline)
	}
	if fb := FeedbackFor(5, 10); fb.Headline != "Good effort!" {
		t.Errorf("50%%: expected Good effort!, got %q", fb.Headline)
	}
}
