package service

import (
	"context"
	"time"

	"reading-service/internal/models"
	"reading-service/internal/quiz"
	"reading-service/internal/repository"
)

type AttemptService struct {
	Repo     *repository.AttemptRepository
	QuizRepo *repository.QuizRepository
}

func NewAttemptService(repo *repository.AttemptRepository, quizRepo *repository.QuizRepository) *AttemptService {
	return &AttemptService{Repo: repo, QuizRepo: quizRepo}
}

// SubmitAttempt scores the five submitted answers against the story's
// quiz and persists exactly one immutable attempt. A submission with
// any unanswered question is rejected before anything is written.
func (s *AttemptService) SubmitAttempt(ctx context.Context, storyID, userID string, answers []*int) (*models.Attempt, error) {
	stored, err := s.QuizRepo.FindByStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if err := quiz.Deliverable(stored); err != nil {
		return nil, err
	}

	score, err := quiz.Score(stored.Questions, answers)
	if err != nil {
		return nil, err
	}

	attempt := &models.Attempt{
		StoryID:   storyID,
		UserID:    userID,
		Score:     score,
		Total:     quiz.QuestionCount,
		Answers:   answers,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// GetAttempt returns an attempt together with its score feedback.
func (s *AttemptService) GetAttempt(ctx context.Context, id string) (*models.Attempt, quiz.Feedback, error) {
	attempt, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, quiz.Feedback{}, err
	}
	return attempt, quiz.FeedbackFor(attempt.Score, attempt.Total), nil
}

func (s *AttemptService) ListRecent(ctx context.Context, limit int64) ([]models.Attempt, error) {
	return s.Repo.FindRecent(ctx, limit)
}
