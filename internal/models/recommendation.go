package models

import "time"

// Recommendation is a teacher-authored pointer from a grade level to a
// story. GradeLevel nil means "all grades".
type Recommendation struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	StoryID    string    `bson:"story_id" json:"story_id"`
	TeacherID  string    `bson:"teacher_id" json:"teacher_id"`
	GradeLevel *int      `bson:"grade_level" json:"grade_level"`
	Note       string    `bson:"note" json:"note"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
