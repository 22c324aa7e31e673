package course

import "gorm.io/gorm"

// Module represents a section/module within a course.
// Position is 1-based and unique per course among non-deleted modules;
// the soft-delete path parks the position outside the live range so the
// composite unique index never collides with a reused slot.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"not null;uniqueIndex:uq_course_module_position;index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Position    int    `json:"position" gorm:"not null;uniqueIndex:uq_course_module_position"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`

	Lessons []Lesson `json:"lessons,omitempty" gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

func (Module) TableName() string { return "course_modules" }
