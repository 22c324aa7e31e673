package course

import "gorm.io/gorm"

// Course represents a learning course and owns the full content tree
type Course struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;uniqueIndex:uq_course_name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`

	Modules     []Module     `json:"modules,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Resources   []Resource   `json:"resources,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
