package repository

import (
	"context"

	"reading-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StoryRepository struct {
	Col *mongo.Collection
}

func NewStoryRepository(db *mongo.Database) *StoryRepository {
	return &StoryRepository{Col: db.Collection("stories")}
}

func (r *StoryRepository) FindAll(ctx context.Context) ([]models.Story, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var stories []models.Story
	for cur.Next(ctx) {
		var s models.Story
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}
	return stories, nil
}

func (r *StoryRepository) FindByID(ctx context.Context, id string) (*models.Story, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err // invalid id format
	}
	var story models.Story
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&story)
	if err != nil {
		return nil, err
	}
	return &story, nil
}
