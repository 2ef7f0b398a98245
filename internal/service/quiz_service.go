package service

import (
	"context"

	"reading-service/internal/models"
	"reading-service/internal/quiz"
	"reading-service/internal/repository"
)

type QuizService struct {
	Repo *repository.QuizRepository
}

func NewQuizService(repo *repository.QuizRepository) *QuizService {
	return &QuizService{Repo: repo}
}

// LoadForm populates the authoring form for a story. The second return
// reports whether a stored quiz existed; false means the author starts
// from a blank template.
func (s *QuizService) LoadForm(ctx context.Context, storyID string) (quiz.Form, bool, error) {
	stored, err := s.Repo.FindByStory(ctx, storyID)
	if err != nil {
		return quiz.Form{}, false, err
	}
	if stored == nil {
		return quiz.LoadForm(nil), false, nil
	}
	return quiz.LoadForm(stored.Questions), true, nil
}

// SaveForm validates the submitted form and upserts the story's quiz.
// Nothing is persisted when validation fails.
func (s *QuizService) SaveForm(ctx context.Context, storyID string, form quiz.Form) ([]models.Question, error) {
	questions, err := form.Extract()
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Upsert(ctx, storyID, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// DeliverQuiz returns the student view of a story's quiz with answer
// keys stripped. A missing or malformed quiz (not exactly five
// questions) is ErrQuizUnavailable.
func (s *QuizService) DeliverQuiz(ctx context.Context, storyID string) (*models.QuizView, error) {
	stored, err := s.Repo.FindByStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if err := quiz.Deliverable(stored); err != nil {
		return nil, err
	}
	view := stored.View()
	return &view, nil
}
