package models

import "time"

// Attempt is one immutable record of a student's quiz submission.
// Answers holds the five selected choice indices in question order;
// a nil entry means unanswered, which blocks creation upstream.
type Attempt struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	StoryID   string    `bson:"story_id" json:"story_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Score     int       `bson:"score" json:"score"`
	Total     int       `bson:"total" json:"total"`
	Answers   []*int    `bson:"answers" json:"answers"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
