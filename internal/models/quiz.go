package models

import "time"

type Question struct {
	Prompt      string   `bson:"prompt" json:"prompt"`
	Choices     []string `bson:"choices" json:"choices"`
	AnswerIndex int      `bson:"answer_index" json:"answer_index"`
}

// Quiz is the single five-question assessment attached to one story.
type Quiz struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	StoryID   string     `bson:"story_id" json:"story_id"`
	Questions []Question `bson:"questions" json:"questions"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// QuestionView is a question as delivered to a student, without the
// answer key.
type QuestionView struct {
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
}

type QuizView struct {
	StoryID   string         `json:"story_id"`
	Questions []QuestionView `json:"questions"`
}

// View strips answer keys for delivery.
func (q *Quiz) View() QuizView {
	view := QuizView{StoryID: q.StoryID, Questions: make([]QuestionView, 0, len(q.Questions))}
	for _, question := range q.Questions {
		view.Questions = append(view.Questions, QuestionView{
			Prompt:  question.Prompt,
			Choices: question.Choices,
		})
	}
	return view
}
