package quiz

import (
	"testing"

	"reading-service/internal/models"
)

func TestLoadFormFromNilQuiz(t *testing.T) {
	f := LoadForm(nil)
	for i, b := range f {
		if b.Prompt != "" {
			t.Errorf("Block %d: expected empty prompt, got %q", i+1, b.Prompt)
		}
		for c, choice := range b.Choices {
			if choice != "" {
				t.Errorf("Block %d choice %d: expected empty, got %q", i+1, c, choice)
			}
		}
		if b.AnswerIndex != 0 {
			t.Errorf("Block %d: expected default answer 0, got %d", i+1, b.AnswerIndex)
		}
	}
}

func TestLoadFormPadsShortQuiz(t *testing.T) {
	f := LoadForm([]models.Question{
		{Prompt: "Only question", Choices: []string{"w", "x", "y", "z"}, AnswerIndex: 2},
	})

	if f[0].Prompt != "Only question" || f[0].AnswerIndex != 2 {
		t.Errorf("Block 1 not populated: %+v", f[0])
	}
	if f[0].Choices != [ChoiceCount]string{"w", "x", "y", "z"} {
		t.Errorf("Block 1 choices not populated: %v", f[0].Choices)
	}
	for i := 1; i < QuestionCount; i++ {
		if f[i].Prompt != "" || f[i].AnswerIndex != 0 {
			t.Errorf("Block %d: expected blank slot, got %+v", i+1, f[i])
		}
	}
}

func TestLoadFormClampsBadAnswerIndex(t *testing.T) {
	qs := validQuestions()
	qs[0].AnswerIndex = 9
	f := LoadForm(qs)
	if f[0].AnswerIndex != 0 {
		t.Errorf("Expected out-of-range answer to default to 0, got %d", f[0].AnswerIndex)
	}
}

func TestExtractTrimsAndValidates(t *testing.T) {
	var f Form
	for i := range f {
		f[i] = Block{
			Prompt:      "  Prompt  ",
			Choices:     [ChoiceCount]string{" a ", "b", "c ", " d"},
			AnswerIndex: 1,
		}
	}

	questions, err := f.Extract()
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(questions) != QuestionCount {
		t.Fatalf("Expected %d questions, got %d", QuestionCount, len(questions))
	}
	if questions[0].Prompt != "Prompt" {
		t.Errorf("Expected trimmed prompt, got %q", questions[0].Prompt)
	}
	if questions[0].Choices[0] != "a" || questions[0].Choices[3] != "d" {
		t.Errorf("Expected trimmed choices, got %v", questions[0].Choices)
	}
}

func TestExtractSurfacesFirstViolation(t *testing.T) {
	var f Form
	for i := range f {
		f[i] = Block{
			Prompt:  "Prompt",
			Choices: [ChoiceCount]string{"a", "b", "c", "d"},
		}
	}
	f[2].Choices[1] = "   " // whitespace only

	_, err := f.Extract()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if err.Error() != "Question 3: Choice B is required." {
		t.Errorf("Expected choice-B violation for question 3, got %q", err.Error())
	}
}

func TestSampleQuizIsValid(t *testing.T) {
	sample := SampleQuiz()
	if err := Validate(sample); err != nil {
		t.Fatalf("Sample quiz must validate, got: %v", err)
	}
	// Round-trip through the form keeps it intact.
	questions, err := LoadForm(sample).Extract()
	if err != nil {
		t.Fatalf("Sample quiz round-trip failed: %v", err)
	}
	for i := range sample {
		if questions[i].Prompt != sample[i].Prompt {
			t.Errorf("Question %d prompt changed in round-trip", i+1)
		}
	}
}
