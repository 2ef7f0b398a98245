package repository

import (
	"context"
	"errors"
	"time"

	"reading-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuizRepository struct {
	Col *mongo.Collection
}

func NewQuizRepository(db *mongo.Database) *QuizRepository {
	return &QuizRepository{Col: db.Collection("quizzes")}
}

// FindByStory returns the story's quiz, or nil (without error) when no
// quiz exists yet.
func (r *QuizRepository) FindByStory(ctx context.Context, storyID string) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.Col.FindOne(ctx, bson.M{"story_id": storyID}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// Upsert updates the existing quiz for the story, or inserts one when
// none exists. One quiz per story; no transactional guard, single-admin
// authoring.
func (r *QuizRepository) Upsert(ctx context.Context, storyID string, questions []models.Question) error {
	existing, err := r.FindByStory(ctx, storyID)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		_, err = r.Col.UpdateOne(ctx,
			bson.M{"story_id": storyID},
			bson.M{"$set": bson.M{"questions": questions, "updated_at": now}},
		)
		return err
	}
	_, err = r.Col.InsertOne(ctx, &models.Quiz{
		StoryID:   storyID,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}
