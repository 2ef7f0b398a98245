package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"reading-service/internal/models"
	"reading-service/internal/repository"
)

var ErrStoryRequired = errors.New("Choose a story.")

type RecommendationService struct {
	Repo *repository.RecommendationRepository
}

func NewRecommendationService(repo *repository.RecommendationRepository) *RecommendationService {
	return &RecommendationService{Repo: repo}
}

func (s *RecommendationService) CreateRecommendation(ctx context.Context, storyID, teacherID string, gradeLevel *int, note string) (*models.Recommendation, error) {
	if storyID == "" {
		return nil, ErrStoryRequired
	}
	rec := &models.Recommendation{
		StoryID:    storyID,
		TeacherID:  teacherID,
		GradeLevel: gradeLevel,
		Note:       strings.TrimSpace(note),
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) ListRecent(ctx context.Context, limit int64) ([]models.Recommendation, error) {
	return s.Repo.FindRecent(ctx, limit)
}

func (s *RecommendationService) DeleteRecommendation(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
