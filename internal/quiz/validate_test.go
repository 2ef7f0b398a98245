package quiz

import (
	"errors"
	"testing"

	"reading-service/internal/models"
)

func validQuestions() []models.Question {
	questions := make([]models.Question, QuestionCount)
	for i := range questions {
		questions[i] = models.Question{
			Prompt:      "Prompt",
			Choices:     []string{"A", "B", "C", "D"},
			AnswerIndex: i % ChoiceCount,
		}
	}
	return questions
}

func TestValidateAcceptsWellFormedQuiz(t *testing.T) {
	if err := Validate(validQuestions()); err != nil {
		t.Fatalf("Expected valid quiz, got error: %v", err)
	}
}

func TestValidateFailsFast(t *testing.T) {
	testCases := []struct {
		name            string
		mutate          func([]models.Question) []models.Question
		expectMessage   string
		expectQuestion  int
	}{
		{
			name:          "too few questions",
			mutate:        func(qs []models.Question) []models.Question { return qs[:4] },
			expectMessage: "Quiz must have exactly 5 questions.",
		},
		{
			name:          "too many questions",
			mutate:        func(qs []models.Question) []models.Question { return append(qs, qs[0]) },
			expectMessage: "Quiz must have exactly 5 questions.",
		},
		{
			name: "blank prompt",
			mutate: func(qs []models.Question) []models.Question {
				qs[1].Prompt = "   "
				return qs
			},
			expectMessage:  "Question 2: Prompt is required.",
			expectQuestion: 2,
		},
		{
			name: "wrong choice count",
			mutate: func(qs []models.Question) []models.Question {
				qs[2].Choices = qs[2].Choices[:3]
				return qs
			},
			expectMessage:  "Question 3: Need 4 choices.",
			expectQuestion: 3,
		},
		{
			name: "blank choice maps to letter",
			mutate: func(qs []models.Question) []models.Question {
				qs[3].Choices = []string{"a", "b", "", "d"}
				return qs
			},
			expectMessage:  "Question 4: Choice C is required.",
			expectQuestion: 4,
		},
		{
			name: "answer index too high",
			mutate: func(qs []models.Question) []models.Question {
				qs[4].AnswerIndex = 4
				return qs
			},
			expectMessage:  "Question 5: Correct answer must be A–D.",
			expectQuestion: 5,
		},
		{
			name: "answer index negative",
			mutate: func(qs []models.Question) []models.Question {
				qs[0].AnswerIndex = -1
				return qs
			},
			expectMessage:  "Question 1: Correct answer must be A–D.",
			expectQuestion: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.mutate(validQuestions()))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if vErr.Message != tc.expectMessage {
				t.Errorf("Expected message %q, got %q", tc.expectMessage, vErr.Message)
			}
			if vErr.Question != tc.expectQuestion {
				t.Errorf("Expected question %d, got %d", tc.expectQuestion, vErr.Question)
			}
		})
	}
}

func TestValidateReportsFirstViolationOnly(t *testing.T) {
	qs := validQuestions()
	qs[1].Prompt = ""
	qs[3].Choices = qs[3].Choices[:2]

	err := Validate(qs)
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if err.Error() != "Question 2: Prompt is required." {
		t.Errorf("Expected first violation (question 2), got %q", err.Error())
	}
}
