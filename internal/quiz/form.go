package quiz

import (
	"strings"

	"reading-service/internal/models"
)

// Block is one question-editing block in the authoring form: a prompt,
// four choice fields and the selected answer index.
type Block struct {
	Prompt      string              `json:"prompt"`
	Choices     [ChoiceCount]string `json:"choices"`
	AnswerIndex int                 `json:"answer_index"`
}

// Form is the fixed authoring layout of exactly five blocks.
type Form [QuestionCount]Block

// LoadForm populates a form from an existing question set. Missing
// slots are filled with empty prompt/choices and answer A, so authors
// can start from a blank template; nil means no quiz yet.
func LoadForm(questions []models.Question) Form {
	var f Form
	for i := range f {
		if i >= len(questions) {
			continue
		}
		q := questions[i]
		f[i].Prompt = q.Prompt
		for c := 0; c < ChoiceCount && c < len(q.Choices); c++ {
			f[i].Choices[c] = q.Choices[c]
		}
		if q.AnswerIndex >= 0 && q.AnswerIndex < ChoiceCount {
			f[i].AnswerIndex = q.AnswerIndex
		}
	}
	return f
}

// Extract trims the current field values into five draft questions and
// validates them. On failure nothing is saved and the first violation
// is returned verbatim.
func (f Form) Extract() ([]models.Question, error) {
	questions := make([]models.Question, 0, QuestionCount)
	for _, b := range f {
		choices := make([]string, ChoiceCount)
		for c, choice := range b.Choices {
			choices[c] = strings.TrimSpace(choice)
		}
		questions = append(questions, models.Question{
			Prompt:      strings.TrimSpace(b.Prompt),
			Choices:     choices,
			AnswerIndex: b.AnswerIndex,
		})
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// SampleQuiz returns the fixed illustrative template shown by the
// "fill sample" authoring action. It is never saved automatically.
func SampleQuiz() []models.Question {
	return []models.Question{
		{Prompt: "Who is the main character?", Choices: []string{"The student", "A dragon", "A king", "A robot"}, AnswerIndex: 0},
		{Prompt: "Where did the story happen?", Choices: []string{"In a school", "On the moon", "In a cave", "Underwater"}, AnswerIndex: 0},
		{Prompt: "What problem happened?", Choices: []string{"Someone struggled", "A ship sank", "A fire started", "A storm froze"}, AnswerIndex: 0},
		{Prompt: "What did the character do?", Choices: []string{"Tried again", "Gave up", "Hid", "Blamed others"}, AnswerIndex: 0},
		{Prompt: "What is the lesson?", Choices: []string{"Keep practicing", "Never read", "Always rush", "Never help"}, AnswerIndex: 0},
	}
}
