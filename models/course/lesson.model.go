package course

import "gorm.io/gorm"

// Lesson content types
const (
	LessonTypeVideo = "VIDEO"
	LessonTypePDF   = "PDF"
	LessonTypeLink  = "LINK"
	LessonTypeText  = "TEXT"
)

// Lesson represents a single lesson within a module.
// TEXT lessons carry HTML, every other type carries ContentURL.
type Lesson struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"not null;uniqueIndex:uq_course_lesson_position;index"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Position    int    `json:"position" gorm:"not null;uniqueIndex:uq_course_lesson_position"`
	Type        string `json:"type" gorm:"default:'LINK'"` // VIDEO, PDF, LINK, TEXT
	ContentURL  string `json:"content_url"`
	HTML        string `json:"html" gorm:"type:text"`
	DurationSec int    `json:"duration_sec" gorm:"default:0"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
}

func (Lesson) TableName() string { return "course_lessons" }
