package service

import (
	"context"

	"reading-service/internal/models"
	"reading-service/internal/repository"
)

type StoryService struct {
	Repo *repository.StoryRepository
}

func NewStoryService(repo *repository.StoryRepository) *StoryService {
	return &StoryService{Repo: repo}
}

func (s *StoryService) ListStories(ctx context.Context) ([]models.Story, error) {
	return s.Repo.FindAll(ctx)
}

func (s *StoryService) GetStory(ctx context.Context, id string) (*models.Story, error) {
	return s.Repo.FindByID(ctx, id)
}
