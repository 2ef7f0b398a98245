package models

import "time"

type Story struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Content       string    `bson:"content" json:"content"`
	StoryType     string    `bson:"story_type" json:"story_type"`
	Language      string    `bson:"language" json:"language"`
	Difficulty    string    `bson:"difficulty" json:"difficulty"`
	GradeMin      int       `bson:"grade_min" json:"grade_min"`
	GradeMax      int       `bson:"grade_max" json:"grade_max"`
	SubjectTags   []string  `bson:"subject_tags" json:"subject_tags"`
	CoverURL      string    `bson:"cover_url" json:"cover_url"`
	Author        string    `bson:"author" json:"author"`
	YearPublished int       `bson:"year_published" json:"year_published"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// StoryTypeAlamat marks a legend; its narration is Filipino even when
// no language tag is set.
const StoryTypeAlamat = "alamat"

// IsFilipino reports whether the story should be narrated in Filipino.
func (s *Story) IsFilipino() bool {
	return s.Language == "fil" || s.StoryType == StoryTypeAlamat
}
